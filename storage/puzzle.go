// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/gridseer/nonet/puzzle"
)

/*

puzzle archive

Grids go into the archive keyed by their signature, the SHA-1 of
their numeric form.  The same grid always gets the same id, so
saving is naturally idempotent, and the ids are safe to hand to
web clients.  Reads go through the cache; a cache miss falls back
to the database and refills the cache.

*/

// An Entry is the stored form of a grid.  It is JSON serializable
// so it can go into the cache as well as the database.
type Entry struct {
	PuzzleId string    // grid signature
	Clues    int32     // fixed cells at save time
	Values   []int32   // row-major values, 0 for open cells
	Created  time.Time // time of first save
}

// Signature computes the archive id of a grid.
func Signature(g *puzzle.Grid) string {
	sum := sha1.Sum([]byte(g.Numeric()))
	return hex.EncodeToString(sum[:])
}

// Grid rebuilds the grid an entry stores.
func (pe *Entry) Grid() (*puzzle.Grid, error) {
	values := make([]int, len(pe.Values))
	for i, v := range pe.Values {
		values[i] = int(v)
	}
	return puzzle.NewGrid(values)
}

// makeEntry builds the stored form of a grid.
func makeEntry(g *puzzle.Grid) *Entry {
	vs := g.Values()
	values := make([]int32, len(vs))
	for i, v := range vs {
		values[i] = int32(v)
	}
	return &Entry{
		PuzzleId: Signature(g),
		Clues:    int32(g.FixedCount()),
		Values:   values,
		Created:  time.Now(),
	}
}

/*

exported operations

*/

// SaveGrid archives a grid, returning its id.  Saving a grid that
// is already archived is a no-op that returns the same id.
func SaveGrid(g *puzzle.Grid) (id string, err error) {
	defer guard(&err)
	pe := makeEntry(g)
	if !pe.databaseInsert() {
		// already archived; make sure the cache has it too
		pe.databaseLoad()
	}
	pe.cacheInsert()
	return pe.PuzzleId, nil
}

// LoadGrid rebuilds an archived grid from its id.
func LoadGrid(id string) (g *puzzle.Grid, err error) {
	defer guard(&err)
	pe := loadEntry(id)
	return pe.Grid()
}

// Recent returns the most recently archived entries, newest
// first.
func Recent(limit int) (entries []*Entry, err error) {
	defer guard(&err)
	body := func(tx pgx.Tx) error {
		rows, e := tx.Query(context.Background(),
			"SELECT puzzleId, clues, valueList, created FROM puzzles "+
				"ORDER BY created DESC LIMIT $1", limit)
		if e != nil {
			return fmt.Errorf("Database error listing puzzles: %v", e)
		}
		defer rows.Close()
		for rows.Next() {
			pe := &Entry{}
			if e := rows.Scan(&pe.PuzzleId, &pe.Clues, &pe.Values, &pe.Created); e != nil {
				return fmt.Errorf("Database error reading puzzle list: %v", e)
			}
			entries = append(entries, pe)
		}
		return rows.Err()
	}
	pgExecute(body)
	return entries, nil
}

/*

entry plumbing

*/

// loadEntry first checks the cache, then the database, to find
// the entry.  If it loads from the database, it caches the
// result.  Panics if there is no such stored entry.
func loadEntry(id string) *Entry {
	pe := &Entry{PuzzleId: id}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, load from database and save to cache
	pe.databaseLoad()
	pe.cacheInsert()
	return pe
}

// key: compute the cache key for an Entry.
func (pe *Entry) key() string {
	return "PID:" + pe.PuzzleId
}

// cacheLoad: load an already cached entry.  Returns whether the
// entry was found in the cache.
func (pe *Entry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *Entry
	err := json.Unmarshal(bytes, &spe)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal entry %q: %v", pe.PuzzleId, err))
	}
	if spe.PuzzleId != pe.PuzzleId {
		panic(fmt.Errorf("Cached entry (id: %q) found for puzzle %q!",
			spe.PuzzleId, pe.PuzzleId))
	}
	*pe = *spe
	return true
}

// cacheInsert: insert an entry into the cache.  Replaces any
// existing entry with the same id.
func (pe *Entry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal entry %q: %v", pe.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseLoad: load an entry from the database.  Panics if there
// is no saved entry with the given id.
func (pe *Entry) databaseLoad() {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(context.Background(),
			"SELECT clues, valueList, created FROM puzzles "+
				"WHERE puzzleId = $1", pe.PuzzleId)
		if err := row.Scan(&pe.Clues, &pe.Values, &pe.Created); err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", pe.PuzzleId, err)
		}
		return nil
	}
	pgExecute(body)
}

// databaseInsert: insert a new entry into the database.  Returns
// whether the entry was actually inserted; an entry with the same
// id already stored leaves the database unchanged.
func (pe *Entry) databaseInsert() bool {
	var inserted bool
	body := func(tx pgx.Tx) (err error) {
		tag, err := tx.Exec(context.Background(),
			"INSERT INTO puzzles (puzzleId, clues, valueList, created) "+
				"VALUES ($1, $2, $3, $4) ON CONFLICT (puzzleId) DO NOTHING",
			pe.PuzzleId, pe.Clues, pe.Values, pe.Created)
		if err != nil {
			return fmt.Errorf("Database error saving entry %q: %v", pe.PuzzleId, err)
		}
		inserted = tag.RowsAffected() > 0
		return nil
	}
	pgExecute(body)
	return inserted
}

// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package dbprep

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gridseer/nonet/puzzle"
)

/*

entries

*/

type dataFunction func(pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample data into the database.  You should do
// this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample data from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/nonet?sslmode=disable"
	}
	ctx := context.Background()

	// open the database, defer the close
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("data function failed: %v", err)
		}
	}
	return nil
}

/*

sample puzzles

*/

// Starter puzzles loaded on a fresh install, so a new service has
// something to serve before anyone generates a puzzle.
var sampleValues = [][]int{
	{
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	},
	{
		0, 1, 0, 5, 0, 6, 0, 2, 0,
		0, 0, 0, 0, 0, 3, 0, 1, 8,
		0, 0, 0, 0, 7, 0, 0, 0, 6,
		0, 0, 5, 0, 0, 0, 0, 3, 0,
		0, 0, 8, 0, 9, 0, 7, 0, 0,
		0, 6, 0, 0, 0, 0, 4, 0, 0,
		5, 0, 0, 0, 4, 0, 0, 0, 0,
		6, 4, 0, 2, 0, 0, 0, 0, 0,
		0, 3, 0, 9, 0, 1, 0, 8, 0,
	},
	{
		9, 0, 0, 4, 5, 0, 0, 0, 8,
		0, 2, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 7, 2, 4, 0, 0,
		0, 7, 9, 0, 0, 0, 6, 8, 0,
		2, 0, 0, 0, 0, 0, 0, 0, 5,
		0, 4, 3, 0, 0, 0, 2, 7, 0,
		0, 0, 8, 3, 2, 5, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 6, 0,
		4, 0, 0, 0, 1, 6, 0, 0, 3,
	},
}

// signature computes the archive id of a sample, the same way
// the storage package signs grids.
func signature(g *puzzle.Grid) string {
	sum := sha1.Sum([]byte(g.Numeric()))
	return hex.EncodeToString(sum[:])
}

// insertSamples: put the sample puzzles into the puzzles table.
func insertSamples(tx pgx.Tx) error {
	for i, values := range sampleValues {
		g, err := puzzle.NewGrid(values)
		if err != nil {
			return fmt.Errorf("Sample %d is malformed: %v", i+1, err)
		}
		list := make([]int32, len(values))
		for j, v := range values {
			list[j] = int32(v)
		}
		_, err = tx.Exec(context.Background(),
			"INSERT INTO puzzles (puzzleId, clues, valueList, created) "+
				"VALUES ($1, $2, $3, $4) ON CONFLICT (puzzleId) DO NOTHING",
			signature(g), int32(g.FixedCount()), list, time.Now())
		if err != nil {
			return fmt.Errorf("Couldn't insert sample %d: %v", i+1, err)
		}
	}
	return nil
}

// deleteSamples: remove the sample puzzles from the puzzles
// table.
func deleteSamples(tx pgx.Tx) error {
	for i, values := range sampleValues {
		g, err := puzzle.NewGrid(values)
		if err != nil {
			return fmt.Errorf("Sample %d is malformed: %v", i+1, err)
		}
		_, err = tx.Exec(context.Background(),
			"DELETE FROM puzzles WHERE puzzleId = $1", signature(g))
		if err != nil {
			return fmt.Errorf("Couldn't delete sample %d: %v", i+1, err)
		}
	}
	return nil
}

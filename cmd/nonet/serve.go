// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridseer/nonet/puzzle"
	"github.com/gridseer/nonet/storage"
)

var (
	serveAddr    string
	serveArchive bool
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver and generator over HTTP",
		Long: `Run the JSON API: POST /api/solve, /api/reduce, and
/api/generate.  With --archive every solved and generated grid
is also saved, and GET /api/recent lists the archive.

Examples:
  nonet serve
  nonet serve --addr :9000 --archive`,
		RunE: runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $PORT or :8080)")
	serveCmd.Flags().BoolVar(&serveArchive, "archive", false, "save solved and generated grids")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			serveAddr = ":" + port
		} else {
			serveAddr = ":8080"
		}
	}

	if serveArchive {
		cacheId, databaseId, err := storage.Connect()
		if err != nil {
			return err
		}
		defer storage.Close()
		log.Printf("Connected to cache at %q and database at %q.", cacheId, databaseId)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/solve", post(logged(archived(puzzle.SolveHandler))))
	mux.HandleFunc("/api/reduce", post(logged(puzzle.ReduceHandler)))
	mux.HandleFunc("/api/generate", post(logged(archived(puzzle.GenerateHandler))))
	mux.HandleFunc("/api/recent", recentHandler)

	log.Printf("Listening on %s...", serveAddr)
	return http.ListenAndServe(serveAddr, mux)
}

type gridHandler func(http.ResponseWriter, *http.Request) (*puzzle.Grid, error)

// post rejects anything but POST before the handler runs.
func post(handler gridHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			log.Printf("%s %s rejected: wrong method.", r.Method, r.URL.Path)
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

// logged reports each request's outcome in the server log.
func logged(handler gridHandler) gridHandler {
	return func(w http.ResponseWriter, r *http.Request) (*puzzle.Grid, error) {
		g, err := handler(w, r)
		if err != nil {
			log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
		} else {
			log.Printf("Handled %s %s.", r.Method, r.URL.Path)
		}
		return g, err
	}
}

// archived saves the handler's result grid when the server runs
// with --archive.  Archive trouble is logged, not surfaced: the
// client already has its response.
func archived(handler gridHandler) gridHandler {
	return func(w http.ResponseWriter, r *http.Request) (*puzzle.Grid, error) {
		g, err := handler(w, r)
		if err == nil && g != nil && serveArchive {
			if id, e := storage.SaveGrid(g); e != nil {
				log.Printf("Couldn't archive result of %s: %v", r.URL.Path, e)
			} else {
				log.Printf("Archived %s.", id)
			}
		}
		return g, err
	}
}

// recentHandler lists the newest archive entries.
func recentHandler(w http.ResponseWriter, r *http.Request) {
	if !serveArchive {
		http.Error(w, "archive disabled", http.StatusNotFound)
		return
	}
	entries, err := storage.Recent(20)
	if err != nil {
		log.Printf("GET %s failed: %v", r.URL.Path, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		log.Printf("GET %s encoding failed: %v", r.URL.Path, err)
	}
	log.Printf("Handled GET %s.", r.URL.Path)
}

// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/gridseer/nonet/dbprep"
)

func init() {
	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "Prepare or clear the puzzle archive",
	}
	storageCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Install the schema and load the sample puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dbprep.EnsureData(); err != nil {
				return err
			}
			log.Printf("Database initialized.")
			return nil
		},
	})
	storageCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Wipe the cache and database and rebuild both",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("Removing existing data storage and cache...")
			if err := dbprep.ReinitializeAll(); err != nil {
				return err
			}
			log.Printf("Database re-initialized.")
			return nil
		},
	})
	rootCmd.AddCommand(storageCmd)
}

// nonet - a constraint-propagation Sudoku solver and puzzle generator.
// Distributed under the GNU General Public License v2.

package dbprep

import (
	"os"
	"testing"
)

// These tests need live Redis and Postgres; they run only when
// NONET_STORAGE_TESTS is set.
func requireLive(t *testing.T) {
	t.Helper()
	if os.Getenv("NONET_STORAGE_TESTS") == "" {
		t.Skip("set NONET_STORAGE_TESTS to run database preparation tests")
	}
	os.Setenv("NONET_MIGRATIONS", "migrations")
}

func TestReinitializeAll(t *testing.T) {
	requireLive(t)
	if err := ReinitializeAll(); err != nil {
		t.Fatalf("TestReinitializeAll: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		t.Fatalf("TestReinitializeAll: couldn't read schema version: %v", err)
	}
	if version == 0 {
		t.Errorf("TestReinitializeAll: schema version is still 0 after install")
	}
}

func TestEnsureDataIdempotent(t *testing.T) {
	requireLive(t)
	if err := EnsureData(); err != nil {
		t.Fatalf("TestEnsureDataIdempotent: first run: %v", err)
	}
	if err := EnsureData(); err != nil {
		t.Fatalf("TestEnsureDataIdempotent: second run: %v", err)
	}
}

func TestRemoveData(t *testing.T) {
	requireLive(t)
	if err := EnsureData(); err != nil {
		t.Fatalf("TestRemoveData: setup: %v", err)
	}
	if err := RemoveData(); err != nil {
		t.Fatalf("TestRemoveData: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		t.Fatalf("TestRemoveData: couldn't read schema version: %v", err)
	}
	if version != 0 {
		t.Errorf("TestRemoveData: schema version is %d after teardown", version)
	}
	// leave the database installed for whoever runs next
	if err := EnsureData(); err != nil {
		t.Fatalf("TestRemoveData: reinstall: %v", err)
	}
}

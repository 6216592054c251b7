package store

import (
	"testing"

	"github.com/erazemk/boxtrack/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(db.NewTestDB(t), db.SQLite)
}

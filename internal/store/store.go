package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/erazemk/boxtrack/internal/db"
)

// Lookup errors.
var (
	ErrBoxNotFound  = errors.New("box not found")
	ErrBoxExists    = errors.New("box already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// Store reads and writes users, boxes and the move log.
type Store struct {
	DB      *sql.DB
	Dialect db.Dialect

	// Now returns the time stamped on log entries.
	Now func() time.Time
}

// New returns a Store backed by database.
func New(database *sql.DB, dialect db.Dialect) *Store {
	return &Store{DB: database, Dialect: dialect, Now: time.Now}
}

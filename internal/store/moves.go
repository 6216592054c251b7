package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/boxtrack/internal/model"
)

// Checkout marks a box as away and logs the move.
func (s *Store) Checkout(ctx context.Context, size string, num int64, actor model.User) (*model.LogEntry, error) {
	return s.move(ctx, size, num, actor, model.StatusAway)
}

// Checkin sets a box's location and logs the move. The location must be
// non-empty and must not be the away sentinel.
func (s *Store) Checkin(ctx context.Context, size string, num int64, actor model.User, location string) (*model.LogEntry, error) {
	location, err := model.NormalizeLocation(location)
	if err != nil {
		return nil, err
	}
	return s.move(ctx, size, num, actor, location)
}

// move updates the box status and appends the log entry in one transaction,
// so the box status always equals the status of its latest log entry.
func (s *Store) move(ctx context.Context, size string, num int64, actor model.User, status string) (*model.LogEntry, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE boxes SET status = ? WHERE box_size = ? AND box_num = ?`,
		status, size, num,
	)
	if err != nil {
		return nil, fmt.Errorf("updating box status: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating box status: %w", err)
	}
	if n == 0 {
		return nil, ErrBoxNotFound
	}

	entry := &model.LogEntry{
		Size:      size,
		Number:    num,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		Timestamp: s.Now().UTC(),
		Status:    status,
	}

	result, err = tx.ExecContext(ctx,
		`INSERT INTO logs (box_size, box_num, first_name, last_name, timestamp, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Size, entry.Number, entry.FirstName, entry.LastName, entry.Timestamp, entry.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("logging move: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing move: %w", err)
	}

	entry.ID, _ = result.LastInsertId()
	return entry, nil
}

// ListLogs returns log entries newest first. An empty size lists all boxes.
// A limit of 0 or less returns everything.
func (s *Store) ListLogs(ctx context.Context, size string, num int64, limit int) ([]model.LogEntry, error) {
	query := `SELECT id, box_size, box_num, first_name, last_name, timestamp, status
	          FROM logs WHERE 1=1`
	var args []any

	if size != "" {
		query += ` AND box_size = ? AND box_num = ?`
		args = append(args, size, num)
	}

	query += ` ORDER BY id DESC`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		if err := rows.Scan(&e.ID, &e.Size, &e.Number, &e.FirstName, &e.LastName, &e.Timestamp, &e.Status); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LatestLog returns the most recent log entry for a box, or nil if the box
// has never moved.
func (s *Store) LatestLog(ctx context.Context, size string, num int64) (*model.LogEntry, error) {
	e := &model.LogEntry{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, box_size, box_num, first_name, last_name, timestamp, status
		 FROM logs WHERE box_size = ? AND box_num = ?
		 ORDER BY id DESC LIMIT 1`,
		size, num,
	).Scan(&e.ID, &e.Size, &e.Number, &e.FirstName, &e.LastName, &e.Timestamp, &e.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting latest log: %w", err)
	}
	return e, nil
}

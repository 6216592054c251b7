package store

import (
	"context"
	"fmt"

	"github.com/erazemk/boxtrack/internal/model"
)

// IsUser reports whether a user with exactly this name pair exists.
func (s *Store) IsUser(ctx context.Context, firstName, lastName string) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE first_name = ? AND last_name = ?`,
		firstName, lastName,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking user: %w", err)
	}
	return count > 0, nil
}

// CreateUser provisions a new user.
func (s *Store) CreateUser(ctx context.Context, firstName, lastName string) (*model.User, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name required")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE first_name = ? AND last_name = ?`,
		firstName, lastName,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name) VALUES (?, ?)`,
		firstName, lastName,
	); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing user: %w", err)
	}
	return &model.User{FirstName: firstName, LastName: lastName}, nil
}

// ListUsers returns all users ordered by name.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT first_name, last_name FROM users ORDER BY last_name, first_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// DeleteUser removes a user. Their log entries are kept.
func (s *Store) DeleteUser(ctx context.Context, firstName, lastName string) error {
	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM users WHERE first_name = ? AND last_name = ?`,
		firstName, lastName,
	)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

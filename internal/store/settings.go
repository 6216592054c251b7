package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const sessionSecretSetting = "session_secret"

// GetSessionSecret returns the key that signs session tokens, creating a
// random one the first time the database is used.
func (s *Store) GetSessionSecret(ctx context.Context) (string, error) {
	return s.settingOrInit(ctx, sessionSecretSetting, func() (string, error) {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generating session secret: %w", err)
		}
		return hex.EncodeToString(buf), nil
	})
}

// settingOrInit reads a setting, storing the value from init if the setting
// is missing. Concurrent first calls agree on whichever insert landed.
func (s *Store) settingOrInit(ctx context.Context, name string, init func() (string, error)) (string, error) {
	value, err := init()
	if err != nil {
		return "", err
	}

	if _, err := s.DB.ExecContext(ctx,
		s.Dialect.InsertIgnore+` INTO settings (name, value) VALUES (?, ?)`,
		name, value,
	); err != nil {
		return "", fmt.Errorf("storing setting %s: %w", name, err)
	}

	if err := s.DB.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE name = ?`, name,
	).Scan(&value); err != nil {
		return "", fmt.Errorf("reading setting %s: %w", name, err)
	}
	return value, nil
}

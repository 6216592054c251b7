package db

import (
	"database/sql"
	"fmt"
)

// Dialect holds the SQL that differs between the supported drivers.
type Dialect struct {
	Name string

	// InsertIgnore is the INSERT prefix that skips rows violating a key.
	InsertIgnore string

	schema []string
}

// SQLite is the dialect for modernc.org/sqlite.
var SQLite = Dialect{
	Name:         DriverSQLite,
	InsertIgnore: "INSERT OR IGNORE",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS users (
		    first_name TEXT NOT NULL,
		    last_name  TEXT NOT NULL,
		    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		    PRIMARY KEY (first_name, last_name)
		)`,
		`CREATE TABLE IF NOT EXISTS boxes (
		    box_size TEXT NOT NULL,
		    box_num  INTEGER NOT NULL,
		    status   TEXT NOT NULL DEFAULT 'away',
		    PRIMARY KEY (box_size, box_num)
		)`,
		`CREATE TABLE IF NOT EXISTS logs (
		    id         INTEGER PRIMARY KEY,
		    box_size   TEXT NOT NULL,
		    box_num    INTEGER NOT NULL,
		    first_name TEXT NOT NULL,
		    last_name  TEXT NOT NULL,
		    timestamp  DATETIME NOT NULL,
		    status     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_box ON logs(box_size, box_num, id)`,
		`CREATE TABLE IF NOT EXISTS settings (
		    name  TEXT PRIMARY KEY,
		    value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS revoked_tokens (
		    jti        TEXT PRIMARY KEY,
		    expires_at DATETIME NOT NULL
		)`,
	},
}

// MySQL is the dialect for github.com/go-sql-driver/mysql.
var MySQL = Dialect{
	Name:         DriverMySQL,
	InsertIgnore: "INSERT IGNORE",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS users (
		    first_name VARCHAR(191) NOT NULL,
		    last_name  VARCHAR(191) NOT NULL,
		    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		    PRIMARY KEY (first_name, last_name)
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin`,
		`CREATE TABLE IF NOT EXISTS boxes (
		    box_size VARCHAR(64) NOT NULL,
		    box_num  BIGINT NOT NULL,
		    status   VARCHAR(255) NOT NULL DEFAULT 'away',
		    PRIMARY KEY (box_size, box_num)
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin`,
		`CREATE TABLE IF NOT EXISTS logs (
		    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		    box_size   VARCHAR(64) NOT NULL,
		    box_num    BIGINT NOT NULL,
		    first_name VARCHAR(191) NOT NULL,
		    last_name  VARCHAR(191) NOT NULL,
		    timestamp  DATETIME(6) NOT NULL,
		    status     VARCHAR(255) NOT NULL,
		    INDEX idx_logs_box (box_size, box_num, id)
		) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin`,
		`CREATE TABLE IF NOT EXISTS settings (
		    name  VARCHAR(64) PRIMARY KEY,
		    value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS revoked_tokens (
		    jti        VARCHAR(64) PRIMARY KEY,
		    expires_at DATETIME NOT NULL
		)`,
	},
}

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB, d Dialect) error {
	for i, stmt := range d.schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema (statement %d): %w", i+1, err)
		}
	}
	return nil
}

package db

import (
	"context"
	"database/sql"
	"fmt"
)

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS goods (
    id     INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name   VARCHAR(255) NOT NULL,
    status ENUM('locked', 'unlocked') NOT NULL DEFAULT 'unlocked'
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS goods (
    id     INTEGER PRIMARY KEY,
    name   TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'unlocked' CHECK (status IN ('locked', 'unlocked'))
)
`

// EnsureSchema creates the goods table for driver if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	var ddl string
	switch driver {
	case "mysql":
		ddl = mysqlSchema
	case "sqlite":
		ddl = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", driver)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

package db

import (
	"context"
	"database/sql"
	"testing"

	"goods/internal/domain/models"

	_ "modernc.org/sqlite"
)

// NewTestDB creates a fresh in-memory SQLite database with the goods table.
func NewTestDB(t *testing.T, goods ...models.Good) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := EnsureSchema(ctx, db, "sqlite"); err != nil {
		db.Close()
		t.Fatalf("creating test database schema: %v", err)
	}
	if _, err := Seed(ctx, db, goods); err != nil {
		db.Close()
		t.Fatalf("seeding test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}

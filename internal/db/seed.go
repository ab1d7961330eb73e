package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"goods/internal/domain/models"
	"goods/internal/utils"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Goods []models.Good `yaml:"goods"`
}

// LoadSeed parses a YAML document of the form `goods: [{name, status}]`.
// Status is optional and defaults to unlocked.
func LoadSeed(data []byte) ([]models.Good, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	out := make([]models.Good, 0, len(f.Goods))
	for i, g := range f.Goods {
		g.Name = utils.NormalizeSpace(g.Name)
		if g.Name == "" {
			return nil, fmt.Errorf("seed entry %d: name required", i)
		}
		if g.Status == "" {
			g.Status = models.StatusUnlocked
		}
		st, ok := models.ParseGoodStatus(string(g.Status))
		if !ok {
			return nil, fmt.Errorf("seed entry %d: invalid status %q", i, g.Status)
		}
		g.Status = st
		out = append(out, g)
	}
	return out, nil
}

// SeedFromFile inserts the goods listed in path, but only into an empty table.
// It returns the number of rows inserted.
func SeedFromFile(ctx context.Context, db *sql.DB, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}
	goods, err := LoadSeed(data)
	if err != nil {
		return 0, err
	}
	return Seed(ctx, db, goods)
}

// Seed inserts goods in one transaction when the table is empty.
func Seed(ctx context.Context, db *sql.DB, goods []models.Good) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goods`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting goods: %w", err)
	}
	if count > 0 || len(goods) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting seed: %w", err)
	}
	defer tx.Rollback()

	for _, g := range goods {
		if g.ID > 0 {
			_, err = tx.ExecContext(ctx, `INSERT INTO goods (id, name, status) VALUES (?, ?, ?)`, g.ID, g.Name, string(g.Status))
		} else {
			_, err = tx.ExecContext(ctx, `INSERT INTO goods (name, status) VALUES (?, ?)`, g.Name, string(g.Status))
		}
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", g.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed: %w", err)
	}
	return len(goods), nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"goods/internal/domain"
	"goods/internal/domain/models"
)

// likeEscaper makes user input match literally inside a LIKE pattern using '!' as escape.
// '!' is used instead of '\' because the two supported dialects disagree on backslashes.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// GoodsRepository reads and updates the goods table.
type GoodsRepository struct {
	DB *sql.DB
}

// Find returns one page of goods ordered by id, optionally filtered by a
// case-insensitive substring of name.
func (r GoodsRepository) Find(ctx context.Context, f domain.GoodsFilter) ([]models.Good, error) {
	query := `SELECT id, name, status FROM goods`
	args := []any{}

	if f.Search != "" {
		query += ` WHERE LOWER(name) LIKE ? ESCAPE '!'`
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(f.Search))+"%")
	}

	query += ` ORDER BY id ASC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goods: %w", err)
	}
	defer rows.Close()

	goods := []models.Good{}
	for rows.Next() {
		var (
			g      models.Good
			status string
		)
		if err := rows.Scan(&g.ID, &g.Name, &status); err != nil {
			return nil, fmt.Errorf("scanning good: %w", err)
		}
		g.Status = models.GoodStatus(status)
		goods = append(goods, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goods: %w", err)
	}
	return goods, nil
}

// UpdateStatus sets the status of one good and returns the number of matched rows.
func (r GoodsRepository) UpdateStatus(ctx context.Context, id int64, status models.GoodStatus) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE goods SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return 0, fmt.Errorf("updating good %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return affected, nil
}

// Count returns the total number of goods.
func (r GoodsRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM goods`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting goods: %w", err)
	}
	return n, nil
}

package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"goods/internal/db"
	"goods/internal/domain"
	"goods/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func scenarioGoods() []models.Good {
	return []models.Good{
		{ID: 1, Name: "Widget", Status: models.StatusUnlocked},
		{ID: 2, Name: "Gadget", Status: models.StatusLocked},
	}
}

func page(search string, limit, offset int) domain.GoodsFilter {
	return domain.GoodsFilter{Search: search, Pagination: domain.Pagination{Limit: limit, Offset: offset}}
}

func TestFindFiltersCaseInsensitively(t *testing.T) {
	repo := GoodsRepository{DB: db.NewTestDB(t, scenarioGoods()...)}

	got, err := repo.Find(context.Background(), page("wid", 10, 0))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 || got[0] != scenarioGoods()[0] {
		t.Fatalf("search=wid returned %+v", got)
	}

	got, err = repo.Find(context.Background(), page("GADG", 10, 0))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Gadget" {
		t.Fatalf("search=GADG returned %+v", got)
	}
}

func TestFindPagesInIDOrder(t *testing.T) {
	repo := GoodsRepository{DB: db.NewTestDB(t, scenarioGoods()...)}

	got, err := repo.Find(context.Background(), page("", 1, 1))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 || got[0].Name != "Gadget" {
		t.Fatalf("limit=1 offset=1 returned %+v", got)
	}

	got, err = repo.Find(context.Background(), page("", 10, 5))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("past-the-end page should be empty, not nil: %#v", got)
	}
}

func TestFindTreatsWildcardsLiterally(t *testing.T) {
	repo := GoodsRepository{DB: db.NewTestDB(t,
		models.Good{ID: 1, Name: "100% cotton", Status: models.StatusUnlocked},
		models.Good{ID: 2, Name: "1000 cotton", Status: models.StatusUnlocked},
		models.Good{ID: 3, Name: "snake_case!", Status: models.StatusLocked},
		models.Good{ID: 4, Name: "snakeXcase", Status: models.StatusLocked},
	)}

	for search, wantID := range map[string]int64{"0%": 1, "e_c": 3, "e!": 3} {
		got, err := repo.Find(context.Background(), page(search, 10, 0))
		if err != nil {
			t.Fatalf("Find(%q): %v", search, err)
		}
		if len(got) != 1 || got[0].ID != wantID {
			t.Fatalf("Find(%q) = %+v, want only id %d", search, got, wantID)
		}
	}
}

func TestUpdateStatusCountsMatchedRows(t *testing.T) {
	database := db.NewTestDB(t, scenarioGoods()...)
	repo := GoodsRepository{DB: database}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		n, err := repo.UpdateStatus(ctx, 1, models.StatusLocked)
		if err != nil {
			t.Fatalf("UpdateStatus #%d: %v", i, err)
		}
		if n != 1 {
			t.Fatalf("UpdateStatus #%d affected %d rows, want 1", i, n)
		}
	}

	n, err := repo.UpdateStatus(ctx, 99, models.StatusLocked)
	if err != nil {
		t.Fatalf("UpdateStatus unknown id: %v", err)
	}
	if n != 0 {
		t.Fatalf("unknown id affected %d rows", n)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 2 {
		t.Fatalf("row count changed to %d", total)
	}
}

func TestFindQueryShape(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, status FROM goods WHERE LOWER(name) LIKE ? ESCAPE '!' ORDER BY id ASC LIMIT ? OFFSET ?`)).
		WithArgs("%wid%", 10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).AddRow(1, "Widget", "unlocked"))

	got, err := GoodsRepository{DB: sqlDB}.Find(context.Background(), page("Wid", 10, 20))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 1 || got[0].Status != models.StatusUnlocked {
		t.Fatalf("unexpected rows %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindWrapsDriverErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer sqlDB.Close()

	boom := errors.New("connection refused")
	mock.ExpectQuery("SELECT id, name, status FROM goods").WillReturnError(boom)

	_, err = GoodsRepository{DB: sqlDB}.Find(context.Background(), page("", 10, 0))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestUpdateStatusWrapsDriverErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer sqlDB.Close()

	boom := errors.New("lock wait timeout")
	mock.ExpectExec(regexp.QuoteMeta("UPDATE goods SET status = ? WHERE id = ?")).
		WithArgs("locked", int64(1)).
		WillReturnError(boom)

	if _, err := (GoodsRepository{DB: sqlDB}).UpdateStatus(context.Background(), 1, models.StatusLocked); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

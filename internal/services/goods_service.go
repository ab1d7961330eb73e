package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"goods/internal/domain"
	"goods/internal/domain/models"
	"goods/internal/utils"
)

// GoodsStore is the storage contract consumed by GoodsService.
type GoodsStore interface {
	Find(ctx context.Context, f domain.GoodsFilter) ([]models.Good, error)
	UpdateStatus(ctx context.Context, id int64, status models.GoodStatus) (int64, error)
}

// GoodsService validates goods requests and translates storage failures into domain errors.
type GoodsService struct {
	Repo      GoodsStore
	RequestID string
}

// ParseGoodsFilter builds a filter from raw query values. Empty limit/offset fall back to defaults.
func ParseGoodsFilter(search, limitRaw, offsetRaw string) (domain.GoodsFilter, error) {
	f := domain.GoodsFilter{
		Search:     search,
		Pagination: domain.Pagination{Limit: domain.DefaultLimit, Offset: domain.DefaultOffset},
	}

	if s := strings.TrimSpace(limitRaw); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return f, domain.ValidationError{Field: "limit", Msg: "must be an integer", Err: err}
		}
		f.Limit = n
	}
	if s := strings.TrimSpace(offsetRaw); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return f, domain.ValidationError{Field: "offset", Msg: "must be an integer", Err: err}
		}
		f.Offset = n
	}

	return f, validateFilter(f)
}

func validateFilter(f domain.GoodsFilter) error {
	if f.Limit < 1 {
		return domain.ValidationError{Field: "limit", Msg: "must be at least 1"}
	}
	if f.Offset < 0 {
		return domain.ValidationError{Field: "offset", Msg: "must not be negative"}
	}
	return nil
}

// List returns one page of goods. Storage errors never leak partial results.
func (s GoodsService) List(ctx context.Context, f domain.GoodsFilter) ([]models.Good, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}

	goods, err := s.Repo.Find(ctx, f)
	if err != nil {
		utils.LogEvent(s.RequestID, "goods", "list_failed", err.Error())
		return nil, domain.InternalError{Msg: "Failed to fetch goods.", Err: err}
	}

	utils.LogEvent(s.RequestID, "goods", "list", fmt.Sprintf("search=%q limit=%d offset=%d rows=%d", f.Search, f.Limit, f.Offset, len(goods)))
	return goods, nil
}

// SetStatus moves good id to the requested status. The status is checked before storage is touched.
func (s GoodsService) SetStatus(ctx context.Context, id int64, rawStatus string) (models.GoodStatus, error) {
	status, ok := models.ParseGoodStatus(rawStatus)
	if !ok {
		return "", domain.ValidationError{Field: "status", Msg: "Invalid status. Use 'locked' or 'unlocked'."}
	}
	if id < 1 {
		return "", domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}

	n, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		utils.LogEvent(s.RequestID, "goods", "set_status_failed", err.Error())
		return "", domain.InternalError{Msg: "Failed to update status.", Err: err}
	}
	if n == 0 {
		return "", domain.NotFoundError{Resource: "good", ID: id}
	}

	utils.LogEvent(s.RequestID, "goods", "set_status", fmt.Sprintf("id=%d status=%s", id, status))
	return status, nil
}

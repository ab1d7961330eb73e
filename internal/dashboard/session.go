// Package dashboard holds the per-session view state of the goods dashboard
// and the actions a user can take on it.
package dashboard

import (
	"context"
	"fmt"

	"goods/internal/client"
	"goods/internal/domain/models"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// API is the part of the goods service the dashboard talks to.
type API interface {
	ListGoods(ctx context.Context, search string, limit, offset int) ([]models.Good, client.ResponseInfo, error)
	SetStatus(ctx context.Context, id int64, status models.GoodStatus) (client.LockResult, error)
}

// State is the view of one dashboard session. Goods is replaced wholesale on every fetch.
type State struct {
	Goods  []models.Good
	Search string
	Limit  int
	Page   int
}

// Session owns State and keeps it consistent with the server by re-fetching after every change.
type Session struct {
	api   API
	State State

	// Err and Notice are the last messages shown to the user.
	Err    string
	Notice string

	Debug        bool
	LastResponse client.ResponseInfo
}

func NewSession(api API, limit int) *Session {
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return &Session{
		api:   api,
		State: State{Goods: []models.Good{}, Limit: limit, Page: 1},
	}
}

// Offset is the row offset of the current page.
func (s *Session) Offset() int {
	return (s.State.Page - 1) * s.State.Limit
}

// Fetch replaces the view with the current page. On failure the view is emptied.
func (s *Session) Fetch(ctx context.Context) error {
	goods, info, err := s.api.ListGoods(ctx, s.State.Search, s.State.Limit, s.Offset())
	s.LastResponse = info
	if err != nil {
		s.State.Goods = []models.Good{}
		s.Err = fmt.Sprintf("Error fetching goods: %v", err)
		return err
	}
	s.State.Goods = goods
	s.Err = ""
	return nil
}

func (s *Session) SetSearch(ctx context.Context, search string) error {
	s.State.Search = search
	return s.Fetch(ctx)
}

func (s *Session) SetLimit(ctx context.Context, limit int) error {
	if limit < 1 || limit > MaxLimit {
		err := fmt.Errorf("items per page must be between 1 and %d", MaxLimit)
		s.Err = err.Error()
		return err
	}
	s.State.Limit = limit
	return s.Fetch(ctx)
}

// Prev moves one page back. On the first page it does nothing.
func (s *Session) Prev(ctx context.Context) error {
	if s.State.Page <= 1 {
		return nil
	}
	s.State.Page--
	return s.Fetch(ctx)
}

// Next always advances; an empty result marks the end of the list.
func (s *Session) Next(ctx context.Context) error {
	s.State.Page++
	return s.Fetch(ctx)
}

// Refresh returns to the first page keeping search and limit.
func (s *Session) Refresh(ctx context.Context) error {
	s.State.Page = 1
	return s.Fetch(ctx)
}

// Toggle flips the status of a displayed good and then re-fetches the page.
// The cached row is never edited locally; a failed update leaves the view as it was.
func (s *Session) Toggle(ctx context.Context, id int64) error {
	var target *models.Good
	for i := range s.State.Goods {
		if s.State.Goods[i].ID == id {
			target = &s.State.Goods[i]
			break
		}
	}
	if target == nil {
		err := fmt.Errorf("good %d is not on this page", id)
		s.Err = err.Error()
		return err
	}

	next := target.Status.Inverse()
	if _, err := s.api.SetStatus(ctx, id, next); err != nil {
		s.Err = fmt.Sprintf("Error updating status: %v", err)
		return err
	}

	s.Notice = fmt.Sprintf("Good %d: %s", id, next)
	return s.Fetch(ctx)
}

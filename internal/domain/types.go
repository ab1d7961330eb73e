package domain

// Listing defaults applied when the caller omits paging params.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Pagination carries offset-based paging params.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// GoodsFilter narrows a goods listing. An empty Search disables name filtering.
type GoodsFilter struct {
	Search string `json:"search,omitempty"`
	Pagination
}

package pagination

import (
	"net/url"
	"strconv"
)

// MaxPage bounds requested page numbers so page offsets cannot overflow.
const MaxPage = 1_000_000

// PageRequest identifies a 1-indexed page window over an ordered sequence.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(1, min(r.Page, MaxPage))
	r.Limit = cfg.Clamp(r.Limit)
}

// Offset calculates the number of items to skip based on page and limit.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: page, limit.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	limit, _ := strconv.Atoi(values.Get("limit"))

	req := PageRequest{
		Page:  page,
		Limit: limit,
	}

	req.Normalize(cfg)
	return req
}

// Meta describes a page window relative to the full filtered set.
type Meta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewMeta derives page metadata. TotalPages is ceil(total / perPage).
func NewMeta(total, page, perPage int) Meta {
	return Meta{
		CurrentPage:  page,
		TotalPages:   TotalPages(total, perPage),
		TotalItems:   total,
		ItemsPerPage: perPage,
	}
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// NewPageResult slices items to the requested page and attaches metadata.
func NewPageResult[T any](items []T, req PageRequest) PageResult[T] {
	return PageResult[T]{
		Data:       Paginate(items, req.Page, req.Limit),
		Pagination: NewMeta(len(items), req.Page, req.Limit),
	}
}

// TotalPages returns ceil(total / perPage), or 0 when perPage is not positive.
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Paginate returns the items in the window [(page-1)*perPage, page*perPage).
// Pages outside the sequence yield an empty, non-nil slice.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage < 1 || page > TotalPages(len(items), perPage) {
		return []T{}
	}
	return window(items, (page-1)*perPage, page*perPage)
}

// Batch returns the cumulative prefix [0, batch*perBatch) used by
// infinite-scroll views.
func Batch[T any](items []T, batch, perBatch int) []T {
	if batch < 1 || perBatch < 1 {
		return []T{}
	}
	if batch >= TotalPages(len(items), perBatch) {
		return window(items, 0, len(items))
	}
	return window(items, 0, batch*perBatch)
}

// HasMore reports whether a batch prefix leaves items unshown.
func HasMore(total, batch, perBatch int) bool {
	return batch < TotalPages(total, perBatch)
}

func window[T any](items []T, start, end int) []T {
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end = min(end, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

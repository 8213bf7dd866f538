package documents

import (
	"net/url"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField names the document attribute a view is ordered by.
type SortField string

const (
	SortTitle     SortField = "title"
	SortCreatedAt SortField = "createdAt"
	SortType      SortField = "type"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DateRange bounds createdAt inclusively. A zero bound is open.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Filters restricts a view by type, category and creation date.
// Empty or "all" type and category match every document.
type Filters struct {
	Type      Type       `json:"type,omitempty"`
	Category  Category   `json:"category,omitempty"`
	DateRange *DateRange `json:"dateRange,omitempty"`
}

// SearchState drives the session view.
type SearchState struct {
	Query     string    `json:"query"`
	Filters   Filters   `json:"filters"`
	SortBy    SortField `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
}

// DefaultSearch returns an empty query ordered newest first.
func DefaultSearch() SearchState {
	return SearchState{
		SortBy:    SortCreatedAt,
		SortOrder: SortDesc,
	}
}

// SearchUpdate is a partial SearchState. Nil fields are left unchanged.
type SearchUpdate struct {
	Query     *string    `json:"query,omitempty"`
	Filters   *Filters   `json:"filters,omitempty"`
	SortBy    *SortField `json:"sortBy,omitempty"`
	SortOrder *SortOrder `json:"sortOrder,omitempty"`
}

// Validate rejects unknown filter values and sort keys.
func (u SearchUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Filters),
		validation.Field(&u.SortBy, validation.NilOrNotEmpty, validation.In(SortTitle, SortCreatedAt, SortType)),
		validation.Field(&u.SortOrder, validation.NilOrNotEmpty, validation.In(SortAsc, SortDesc)),
	)
}

// Validate accepts an empty or "all" type and category.
func (f Filters) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Type, validation.In(Type(All), TypeDocument, TypeSlide, TypeSpreadsheet)),
		validation.Field(&f.Category, validation.In(Category(All), CategoryBusiness, CategoryPersonal, CategoryAcademic)),
	)
}

// resets reports whether applying u moves the view back to its first page.
func (u SearchUpdate) resets() bool {
	return u.Query != nil || u.Filters != nil
}

func (s SearchState) clone() SearchState {
	if s.Filters.DateRange != nil {
		r := *s.Filters.DateRange
		s.Filters.DateRange = &r
	}
	return s
}

func (s SearchState) merge(u SearchUpdate) SearchState {
	if u.Query != nil {
		s.Query = *u.Query
	}
	if u.Filters != nil {
		s.Filters = *u.Filters
	}
	s = s.clone()
	if u.SortBy != nil {
		s.SortBy = *u.SortBy
	}
	if u.SortOrder != nil {
		s.SortOrder = *u.SortOrder
	}
	return s
}

// Filter returns the documents matching query and filters, in their original order.
// The query matches case-insensitively against title, content and tags.
func Filter(docs []Document, filters Filters, query string) []Document {
	query = strings.ToLower(query)
	out := make([]Document, 0, len(docs))

	for _, d := range docs {
		if query != "" && !matchesQuery(d, query) {
			continue
		}
		if !matchesEnum(string(filters.Type), string(d.Type)) {
			continue
		}
		if !matchesEnum(string(filters.Category), string(d.Category)) {
			continue
		}
		if filters.DateRange != nil && !filters.DateRange.contains(d.CreatedAt) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesQuery(d Document, query string) bool {
	if strings.Contains(strings.ToLower(d.Title), query) ||
		strings.Contains(strings.ToLower(d.Content), query) {
		return true
	}
	return slices.ContainsFunc(d.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), query)
	})
}

func matchesEnum(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// Sort returns a stably sorted copy of docs. Title and type compare with
// English collation; unknown fields leave the order unchanged.
func Sort(docs []Document, by SortField, order SortOrder) []Document {
	out := slices.Clone(docs)
	col := collate.New(language.English)

	compare := func(a, b Document) int {
		var c int
		switch by {
		case SortTitle:
			c = col.CompareString(a.Title, b.Title)
		case SortType:
			c = col.CompareString(string(a.Type), string(b.Type))
		case SortCreatedAt:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if order == SortDesc {
			return -c
		}
		return c
	}

	slices.SortStableFunc(out, compare)
	return out
}

// Apply filters then sorts docs by s. Every view slices this sequence.
func Apply(docs []Document, s SearchState) []Document {
	return Sort(Filter(docs, s.Filters, s.Query), s.SortBy, s.SortOrder)
}

// SearchFromQuery parses a stateless search from URL query values.
// Supported parameters: search, type, category, from, to, sortBy, sortOrder.
// Dates are RFC 3339; unparsable dates are ignored.
func SearchFromQuery(values url.Values) SearchState {
	s := DefaultSearch()
	s.Query = strings.TrimSpace(values.Get("search"))
	s.Filters.Type = Type(values.Get("type"))
	s.Filters.Category = Category(values.Get("category"))

	if v := values.Get("sortBy"); v != "" {
		s.SortBy = SortField(v)
	}
	if v := values.Get("sortOrder"); v != "" {
		s.SortOrder = SortOrder(v)
	}

	var r DateRange
	if t, err := time.Parse(time.RFC3339, values.Get("from")); err == nil {
		r.Start = t
	}
	if t, err := time.Parse(time.RFC3339, values.Get("to")); err == nil {
		r.End = t
	}
	if !r.Start.IsZero() || !r.End.IsZero() {
		s.Filters.DateRange = &r
	}

	return s
}

package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/docudash/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 12, MaxPageSize: 100}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   pagination.PageRequest
		want pagination.PageRequest
	}{
		{"zero values", pagination.PageRequest{}, pagination.PageRequest{Page: 1, Limit: 12}},
		{"negative page", pagination.PageRequest{Page: -3, Limit: 5}, pagination.PageRequest{Page: 1, Limit: 5}},
		{"limit capped", pagination.PageRequest{Page: 2, Limit: 500}, pagination.PageRequest{Page: 2, Limit: 100}},
		{"page capped", pagination.PageRequest{Page: 1 << 62, Limit: 12}, pagination.PageRequest{Page: pagination.MaxPage, Limit: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Normalize(cfg)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	req := pagination.PageRequestFromQuery(url.Values{"page": {"3"}, "limit": {"7"}}, cfg)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 7, req.Limit)
	assert.Equal(t, 14, req.Offset())

	req = pagination.PageRequestFromQuery(url.Values{"page": {"abc"}}, cfg)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 12, req.Limit)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pagination.TotalPages(0, 12))
	assert.Equal(t, 1, pagination.TotalPages(12, 12))
	assert.Equal(t, 2, pagination.TotalPages(13, 12))
	assert.Equal(t, 0, pagination.TotalPages(10, 0))
}

func TestPaginate(t *testing.T) {
	items := seq(30)

	assert.Equal(t, seq(12), pagination.Paginate(items, 1, 12))
	assert.Equal(t, []int{24, 25, 26, 27, 28, 29}, pagination.Paginate(items, 3, 12))
	assert.Empty(t, pagination.Paginate(items, 4, 12))
	assert.NotNil(t, pagination.Paginate(items, 9, 12))
	assert.Empty(t, pagination.Paginate(items, 0, 12))
}

func TestBatch(t *testing.T) {
	items := seq(30)

	assert.Equal(t, seq(12), pagination.Batch(items, 1, 12))
	assert.Equal(t, seq(24), pagination.Batch(items, 2, 12))
	assert.Equal(t, items, pagination.Batch(items, 3, 12))
	assert.Equal(t, items, pagination.Batch(items, 10, 12))

	assert.True(t, pagination.HasMore(30, 2, 12))
	assert.False(t, pagination.HasMore(30, 3, 12))
}

func TestHugePageNumbers(t *testing.T) {
	items := seq(30)

	assert.NotPanics(t, func() {
		page := pagination.Paginate(items, 1<<62, 12)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})
	assert.NotPanics(t, func() {
		assert.Equal(t, items, pagination.Batch(items, 1<<62, 12))
	})
	assert.False(t, pagination.HasMore(30, 1<<62, 12))

	req := pagination.PageRequestFromQuery(url.Values{"page": {"4611686018427387904"}}, cfg)
	assert.Equal(t, pagination.MaxPage, req.Page)
	assert.NotPanics(t, func() {
		assert.Empty(t, pagination.NewPageResult(items, req).Data)
	})
}

func TestPaginateDoesNotAlias(t *testing.T) {
	items := seq(5)
	page := pagination.Paginate(items, 1, 3)
	page[0] = 99
	assert.Equal(t, 0, items[0])
}

// Traditional pages concatenated in order equal the batch prefix covering them.
func TestModesShareSequence(t *testing.T) {
	items := seq(37)
	for k := 1; k <= 4; k++ {
		var joined []int
		for p := 1; p <= k; p++ {
			joined = append(joined, pagination.Paginate(items, p, 12)...)
		}
		assert.Equal(t, pagination.Batch(items, k, 12), joined, "k=%d", k)
	}
}

func TestNewPageResult(t *testing.T) {
	result := pagination.NewPageResult(seq(25), pagination.PageRequest{Page: 3, Limit: 12})
	assert.Equal(t, []int{24}, result.Data)
	assert.Equal(t, pagination.Meta{CurrentPage: 3, TotalPages: 3, TotalItems: 25, ItemsPerPage: 12}, result.Pagination)
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_PAGINATION_MAX", "50")

	c := pagination.Config{}
	err := c.Finalize(&pagination.ConfigEnv{MaxPageSize: "TEST_PAGINATION_MAX"})
	assert.NoError(t, err)
	assert.Equal(t, 12, c.DefaultPageSize)
	assert.Equal(t, 50, c.MaxPageSize)

	bad := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	assert.Error(t, bad.Finalize(nil))
}

func TestConfigFinalizeRejectsNonNumericEnv(t *testing.T) {
	t.Setenv("TEST_PAGINATION_DEFAULT", "twelve")

	c := pagination.Config{}
	assert.Error(t, c.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGINATION_DEFAULT"}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 12, cfg.Clamp(0))
	assert.Equal(t, 12, cfg.Clamp(-3))
	assert.Equal(t, 24, cfg.Clamp(24))
	assert.Equal(t, 100, cfg.Clamp(500))
}

package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/all-meals", nil)

	page := ParsePagination(r)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(0), page.Skip())
}

func TestParsePaginationSkip(t *testing.T) {
	r := httptest.NewRequest("GET", "/all-meals?currentPage=2&itemsLimit=10", nil)

	page := ParsePagination(r)
	assert.Equal(t, int64(10), page.Skip())

	skip, limit := page.SkipLimit()
	assert.Equal(t, int64(10), skip)
	assert.Equal(t, int64(10), limit)
}

func TestParsePaginationFloorsBadInput(t *testing.T) {
	r := httptest.NewRequest("GET", "/all-meals?currentPage=-3&itemsLimit=abc", nil)

	page := ParsePagination(r)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(3), TotalPages(25, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(0), TotalPages(0, 10))
	assert.Equal(t, int64(0), TotalPages(25, 0))
}

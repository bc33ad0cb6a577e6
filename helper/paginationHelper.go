package helper

import (
	"net/http"
	"strconv"
)

// Pagination carries the offset-based paging parameters every list
// endpoint shares: currentPage and itemsLimit query params, defaults
// 1 and 10, floored at 1.
type Pagination struct {
	Page  int
	Limit int
}

func ParsePagination(r *http.Request) Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get("currentPage"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("itemsLimit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

func (p Pagination) SkipLimit() (int64, int64) {
	return p.Skip(), int64(p.Limit)
}

// TotalPages is recomputed from a fresh count on every call; there is
// no cached count and no cursor.
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

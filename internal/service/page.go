package service

import (
	"math"

	"moviedb/internal/repository"
)

// Page is one page of a listing with paginator metadata.
type Page[T any] struct {
	Items       []T  `json:"data"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// pageCount is at least one so an empty listing still has a first page.
func pageCount(total, size int) int {
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// paginate fetches the requested page. Pages below 1 resolve to the first
// page and pages past the end to the last one.
func paginate[T any](page, size int, fetch func(pq repository.PageQuery) (*repository.PageResult[T], error)) (*Page[T], error) {
	if page < 1 {
		page = 1
	}
	// keeps (page-1)*size from overflowing into a negative offset
	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}
	res, err := fetch(repository.PageQuery{Limit: size, Offset: (page - 1) * size})
	if err != nil {
		return nil, err
	}
	if last := pageCount(res.Total, size); page > last {
		page = last
		res, err = fetch(repository.PageQuery{Limit: size, Offset: (page - 1) * size})
		if err != nil {
			return nil, err
		}
	}

	pages := pageCount(res.Total, size)
	items := res.Items
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:       items,
		Page:        page,
		PageSize:    size,
		Total:       res.Total,
		TotalPages:  pages,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}, nil
}

// mapPage converts the items of a page, keeping its metadata.
func mapPage[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return &Page[U]{
		Items:       items,
		Page:        p.Page,
		PageSize:    p.PageSize,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}

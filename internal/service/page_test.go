package service

import (
	"errors"
	"math"
	"testing"

	"moviedb/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	fetchFrom := func(total int, calls *[]repository.PageQuery) func(pq repository.PageQuery) (*repository.PageResult[int], error) {
		return func(pq repository.PageQuery) (*repository.PageResult[int], error) {
			*calls = append(*calls, pq)
			var items []int
			for i := pq.Offset; i < total && i < pq.Offset+pq.Limit; i++ {
				items = append(items, i)
			}
			return &repository.PageResult[int]{Items: items, Total: total}, nil
		}
	}

	tests := []struct {
		name      string
		page      int
		total     int
		wantPage  int
		wantItems []int
		wantCalls int
		wantNext  bool
		wantPrev  bool
		wantPages int
	}{
		{name: "first page", page: 1, total: 7, wantPage: 1, wantItems: []int{0, 1, 2}, wantCalls: 1, wantNext: true, wantPages: 3},
		{name: "zero means first", page: 0, total: 7, wantPage: 1, wantItems: []int{0, 1, 2}, wantCalls: 1, wantNext: true, wantPages: 3},
		{name: "negative means first", page: -4, total: 7, wantPage: 1, wantItems: []int{0, 1, 2}, wantCalls: 1, wantNext: true, wantPages: 3},
		{name: "last page", page: 3, total: 7, wantPage: 3, wantItems: []int{6}, wantCalls: 1, wantPrev: true, wantPages: 3},
		{name: "past the end clamps", page: 99, total: 7, wantPage: 3, wantItems: []int{6}, wantCalls: 2, wantPrev: true, wantPages: 3},
		{name: "empty listing", page: 5, total: 0, wantPage: 1, wantItems: []int{}, wantCalls: 2, wantPages: 1},
		{name: "huge page clamps without overflow", page: math.MaxInt, total: 7, wantPage: 3, wantItems: []int{6}, wantCalls: 2, wantPrev: true, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []repository.PageQuery
			p, err := paginate(tt.page, 3, fetchFrom(tt.total, &calls))

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantItems, p.Items)
			assert.Len(t, calls, tt.wantCalls)
			for _, c := range calls {
				assert.GreaterOrEqual(t, c.Offset, 0)
			}
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrevious)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestPaginate_Error(t *testing.T) {
	_, err := paginate(1, 10, func(repository.PageQuery) (*repository.PageResult[int], error) {
		return nil, errors.New("db down")
	})
	assert.EqualError(t, err, "db down")
}

func TestMapPage(t *testing.T) {
	p := &Page[int]{Items: []int{1, 2}, Page: 2, PageSize: 2, Total: 4, TotalPages: 2, HasPrevious: true}
	out := mapPage(p, func(i int) string { return string(rune('a' + i)) })

	assert.Equal(t, []string{"b", "c"}, out.Items)
	assert.Equal(t, 2, out.Page)
	assert.True(t, out.HasPrevious)
}

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	letters := []string{"a", "b", "c", "d", "e", "f", "g"}

	tests := []struct {
		name      string
		items     []string
		pageSize  int
		requested int
		wantItems []string
		wantPage  int
		wantTotal int
		wantStart int
	}{
		{
			name:      "first page",
			items:     letters,
			pageSize:  3,
			requested: 1,
			wantItems: []string{"a", "b", "c"},
			wantPage:  1,
			wantTotal: 3,
			wantStart: 0,
		},
		{
			name:      "partial last page",
			items:     letters,
			pageSize:  3,
			requested: 3,
			wantItems: []string{"g"},
			wantPage:  3,
			wantTotal: 3,
			wantStart: 6,
		},
		{
			name:      "overshoot clamps to last page",
			items:     []string{"a", "b", "c"},
			pageSize:  2,
			requested: 99,
			wantItems: []string{"c"},
			wantPage:  2,
			wantTotal: 2,
			wantStart: 2,
		},
		{
			name:      "zero request clamps to first page",
			items:     letters,
			pageSize:  3,
			requested: 0,
			wantItems: []string{"a", "b", "c"},
			wantPage:  1,
			wantTotal: 3,
			wantStart: 0,
		},
		{
			name:      "empty input still has one page",
			items:     nil,
			pageSize:  5,
			requested: 1,
			wantItems: nil,
			wantPage:  1,
			wantTotal: 1,
			wantStart: 0,
		},
		{
			name:      "page size exceeds items",
			items:     []string{"a", "b"},
			pageSize:  10,
			requested: 1,
			wantItems: []string{"a", "b"},
			wantPage:  1,
			wantTotal: 1,
			wantStart: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.items, tt.pageSize, tt.requested)
			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, tt.wantPage, p.Current)
			assert.Equal(t, tt.wantTotal, p.TotalPages)
			assert.Equal(t, len(tt.items), p.TotalItems)
			assert.Equal(t, tt.wantStart, p.Start)
		})
	}
}

func TestPaginateConcatenationRestoresInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	const pageSize = 4

	first := Paginate(items, pageSize, 1)
	var got []int
	for page := 1; page <= first.TotalPages; page++ {
		got = append(got, Paginate(items, pageSize, page).Items...)
	}
	require.Equal(t, items, got)
}

func TestPaginateNavigation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	first := Paginate(items, 2, 1)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())
	assert.Equal(t, 2, first.End())

	last := Paginate(items, 2, 3)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
	assert.Equal(t, 5, last.End())
}

func TestSortThenPaginateTimeline(t *testing.T) {
	items := []Item{
		{Date: "2024-01-10", Title: "A"},
		{Date: "2024-01-10", Title: "B"},
		{Date: "2024-02-01", Title: "C"},
	}

	sorted := SortByDateDesc(items, func(i Item) string { return i.Date })

	titles := func(page Page[Item]) []string {
		out := make([]string, len(page.Items))
		for i, it := range page.Items {
			out[i] = it.Title
		}
		return out
	}

	first := Paginate(sorted, 2, 1)
	require.Equal(t, 2, first.TotalPages)
	assert.Equal(t, []string{"C", "A"}, titles(first))

	second := Paginate(sorted, 2, 2)
	assert.Equal(t, []string{"B"}, titles(second))
}

func TestPaginateDegeneratePageSize(t *testing.T) {
	p := Paginate([]string{"a", "b"}, 0, 1)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, []string{"a"}, p.Items)
}

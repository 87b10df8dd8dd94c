package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/model"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"date only", "2025-03-14", true},
		{"datetime", "2025-03-14T09:30:00", true},
		{"rfc3339", "2025-03-14T09:30:00Z", true},
		{"empty", "", false},
		{"garbage", "next tuesday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, 2025, parsed.Year())
			}
		})
	}
}

func TestSortByDateDescNewestFirst(t *testing.T) {
	items := []Item{
		{Date: "2024-01-05", Title: "A"},
		{Date: "2025-06-01", Title: "C"},
		{Date: "2024-11-20", Title: "B"},
	}

	sorted := SortByDateDesc(items, func(i Item) string { return i.Date })

	titles := make([]string, len(sorted))
	for i, it := range sorted {
		titles[i] = it.Title
	}
	assert.Equal(t, []string{"C", "B", "A"}, titles)

	// input untouched
	assert.Equal(t, "A", items[0].Title)
}

func TestSortByDateDescMissingDatesLast(t *testing.T) {
	items := []Item{
		{Date: "", Title: "no date"},
		{Date: "2025-01-01", Title: "dated"},
		{Date: "not a date", Title: "bad date"},
	}

	sorted := SortByDateDesc(items, func(i Item) string { return i.Date })

	require.Equal(t, "dated", sorted[0].Title)
	// ties among unparseable dates keep input order
	assert.Equal(t, "no date", sorted[1].Title)
	assert.Equal(t, "bad date", sorted[2].Title)
}

func TestGroupByDate(t *testing.T) {
	items := []Item{
		{Date: "2025-05-02", Title: "show"},
		{Date: "2025-05-02", Title: "release"},
		{Date: "2025-05-01", Title: "interview"},
		{Date: "", Title: "lost"},
		{Date: "???", Title: "broken"},
	}
	sorted := SortByDateDesc(items, func(i Item) string { return i.Date })

	groups := GroupByDate(sorted, func(i Item) string { return i.Date })

	require.Len(t, groups, 3)
	assert.Equal(t, "2025-05-02", groups[0].Key)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "2025-05-01", groups[1].Key)
	assert.Len(t, groups[1].Items, 1)
	assert.Equal(t, NoDateKey, groups[2].Key)
	assert.Len(t, groups[2].Items, 2)
}

func TestGroupByDateEmpty(t *testing.T) {
	groups := GroupByDate(nil, func(i Item) string { return i.Date })
	assert.Empty(t, groups)
}

func TestNormalizeActivity(t *testing.T) {
	a := model.Activity{
		ID:    7,
		Title: "   ",
		Icon:  "Microphone",
		Date:  "2025-02-01",
	}

	item := NormalizeActivity(a)
	assert.Equal(t, "(untitled)", item.Title)
	assert.Equal(t, "microphone", item.Icon)
	assert.Equal(t, "2025-02-01", item.Date)
}

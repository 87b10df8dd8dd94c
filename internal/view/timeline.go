package view

import (
	"sort"
	"strings"
	"time"

	"artistdesk/internal/model"
)

// NoDateKey is the sentinel group key for records without a usable date.
// Records whose date string is empty or unparseable always sort after all
// dated records and coalesce under this key.
const NoDateKey = "No Date"

// dateLayouts are the accepted shapes of backend date strings, most
// specific first.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a backend date string. ok is false for empty or
// malformed input; the caller decides how the record degrades.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// SortByDateDesc returns a copy of items ordered newest first by the date
// string dateOf extracts. Records with no parseable date are treated as
// maximally old and land at the end. Ties keep their source order.
func SortByDateDesc[T any](items []T, dateOf func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := ParseDate(dateOf(out[i]))
		tj, _ := ParseDate(dateOf(out[j]))
		return ti.After(tj)
	})

	return out
}

// DateGroup is the ordered run of records sharing one raw date key.
type DateGroup[T any] struct {
	// Key is the raw date string from the record, not a reformatted
	// one, so that records on the same calendar day coalesce; NoDateKey
	// for records without a usable date.
	Key string

	Items []T
}

// GroupByDate sorts items newest first and buckets them by their raw date
// string. Group order follows the sorted item order, so the undated group
// is always last when present.
func GroupByDate[T any](items []T, dateOf func(T) string) []DateGroup[T] {
	sorted := SortByDateDesc(items, dateOf)

	var groups []DateGroup[T]
	index := make(map[string]int)

	for _, item := range sorted {
		key := strings.TrimSpace(dateOf(item))
		if _, ok := ParseDate(key); !ok {
			key = NoDateKey
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup[T]{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// Item is the flattened, normalized record shape consumed by timeline and
// table renderers, produced from heterogeneous backend rows.
type Item struct {
	Date        string
	Title       string
	Type        string
	Icon        string
	ExternalURL string
}

// NormalizeActivity trims and defaults an activity's display fields.
func NormalizeActivity(a model.Activity) Item {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = "(untitled)"
	}
	return Item{
		Date:        strings.TrimSpace(a.Date),
		Title:       title,
		Type:        strings.TrimSpace(a.Type),
		Icon:        strings.ToLower(strings.TrimSpace(a.Icon)),
		ExternalURL: strings.TrimSpace(a.ExternalURL),
	}
}

// NormalizeActivities maps a backend activity collection into display items.
func NormalizeActivities(activities []model.Activity) []Item {
	items := make([]Item, len(activities))
	for i, a := range activities {
		items[i] = NormalizeActivity(a)
	}
	return items
}

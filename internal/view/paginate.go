// Package view holds the presentation-independent transforms shared by the
// dashboard widgets: client-side pagination, date sorting and grouping,
// and metric reductions. Everything here is pure; widgets own their page
// state and call back in on every render.
package view

// Page is one window into a cached collection.
type Page[T any] struct {
	// Items is the slice for the current page; empty when the
	// collection is empty.
	Items []T

	// Current is the clamped page number, always in [1, TotalPages].
	Current int

	// TotalPages is max(1, ceil(TotalItems/pageSize)).
	TotalPages int

	// TotalItems is the size of the full collection.
	TotalItems int

	// Start is the zero-based offset of Items within the collection.
	Start int
}

// Paginate slices items into fixed-size pages and returns the requested
// page with the page number clamped into range. It is pure: the same
// inputs always produce the same page. pageSize must be positive; values
// below 1 are treated as 1.
func Paginate[T any](items []T, pageSize, requested int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	current := requested
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Current:    current,
		TotalPages: totalPages,
		TotalItems: total,
		Start:      start,
	}
}

// HasPrev reports whether a previous page exists; pager buttons derive
// their disabled state directly from this.
func (p Page[T]) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Current < p.TotalPages }

// End returns the zero-based offset just past the last item on this page.
func (p Page[T]) End() int { return p.Start + len(p.Items) }

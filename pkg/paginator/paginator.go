// Package paginator slices ordered sequences by raw element offset and limit.
package paginator

// Page is an offset/limit request. Offset counts elements, not pages.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Result is the window selected by a Page plus whether elements remain after it.
type Result[T any] struct {
	Items   []T
	HasMore bool
}

// New builds a Page. Negative values are the caller's to reject.
func New(limit, offset int) Page {
	return Page{Limit: limit, Offset: offset}
}

// Apply returns at most p.Limit consecutive elements of items starting at p.Offset.
// The returned slice shares no memory with items.
func Apply[T any](items []T, p Page) Result[T] {
	total := len(items)
	start := min(max(p.Offset, 0), total)
	end := min(start+max(p.Limit, 0), total)

	window := make([]T, end-start)
	copy(window, items[start:end])

	return Result[T]{
		Items:   window,
		HasMore: p.Offset+len(window) < total,
	}
}

// FetchLimit is the row count a store should read to answer p in one query:
// one extra row tells whether more exist.
func (p Page) FetchLimit() int {
	return p.Limit + 1
}

// Trim cuts a FetchLimit-sized read back to p.Limit and reports whether the extra row was present.
func Trim[T any](fetched []T, p Page) Result[T] {
	if len(fetched) > p.Limit {
		return Result[T]{Items: fetched[:p.Limit], HasMore: true}
	}
	return Result[T]{Items: fetched, HasMore: false}
}

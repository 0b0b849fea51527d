package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 12
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 100
)

// Page holds 1-indexed offset pagination inputs.
type Page struct {
	Number int
	Limit  int
}

// Meta describes where a page sits inside the full result set.
type Meta struct {
	TotalCount  int
	CurrentPage int
	TotalPages  int
	HasNext     bool
	HasPrev     bool
}

// Normalize enforces the default page number and the default/maximum limits.
func (p Page) Normalize() Page {
	if p.Number <= 0 {
		p.Number = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Bounds returns the half-open [start, end) slice indexes for a set of
// total elements. End is clamped to total; start may exceed total, which
// yields an empty page.
func (p Page) Bounds(total int) (start, end int) {
	p = p.Normalize()
	start = (p.Number - 1) * p.Limit
	end = start + p.Limit
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}
	return start, end
}

// MetaFor derives pagination metadata for the normalized page over total
// elements. hasNext/hasPrev follow the unclamped window edges.
func (p Page) MetaFor(total int) Meta {
	p = p.Normalize()
	start := (p.Number - 1) * p.Limit
	end := start + p.Limit
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return Meta{
		TotalCount:  total,
		CurrentPage: p.Number,
		TotalPages:  pages,
		HasNext:     end < total,
		HasPrev:     start > 0,
	}
}

package storage

// Default pagination values applied by NewListOptions
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListOptions describes pagination and sorting for list queries.
// SortBy names a model field; implementations whitelist it against the
// resource's sortable columns and fall back to the primary key.
type ListOptions struct {
	Page    int    // 0-indexed
	Size    int    // items per page
	SortBy  string // model field name, e.g. "id", "title", "createdAt"
	SortDir string // "asc" or "desc"
}

// NewListOptions normalizes raw pagination input
func NewListOptions(page, size int, sortBy, sortDir string) ListOptions {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if sortDir != "asc" {
		sortDir = "desc"
	}
	return ListOptions{Page: page, Size: size, SortBy: sortBy, SortDir: sortDir}
}

// Offset returns the SQL offset for the page
func (o ListOptions) Offset() int {
	return o.Page * o.Size
}

package realestate

// Pagination defaults for the property search
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 50
)

// Page is a clamped page request
type Page struct {
	Number int
	Size   int
}

// NewPage builds a page, falling back to defaults for non-positive values
// and capping the size at MaxPageSize. It never fails.
func NewPage(number, size int) Page {
	if number < 1 {
		number = DefaultPageNumber
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of rows to return
func (p Page) Limit() int {
	return p.Size
}

package services

// Pagination defaults and the server-side page size ceiling. The ceiling
// applies regardless of what the client asks for, to bound query cost.
const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 48
)

// Page is a resolved pagination window.
type Page struct {
	Page  int
	Limit int
}

// Pagination is the listing metadata returned with every page. Total is the
// pre-pagination match count.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ResolvePage clamps raw page/limit values to valid bounds.
func ResolvePage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Skip() int {
	return (p.Page - 1) * p.Limit
}

package models

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	// MaxPage keeps Skip far from int64 overflow.
	MaxPage = 100000
)

type Page struct {
	Page    int
	PerPage int
}

func (p Page) Skip() int64 {
	return int64((p.Page - 1) * p.PerPage)
}

func (p Page) Limit() int64 {
	return int64(p.PerPage)
}

// TotalPages rounds total up to whole pages.
func (p Page) TotalPages(total int64) int64 {
	if p.PerPage <= 0 {
		return 0
	}
	return (total + int64(p.PerPage) - 1) / int64(p.PerPage)
}

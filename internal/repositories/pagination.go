package repositories

// MaxPageSize caps the window size; the public listing endpoints would
// otherwise allow unbounded fetches.
const MaxPageSize = 100

const defaultPageSize = 10

type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies defaults (page 1, limit 10) and clamps limit to
// MaxPageSize.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the envelope accompanying every windowed listing.
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

// NewPagination computes totalPages = ceil(total/limit), 0 when total is 0.
func NewPagination(total int64, p PageRequest) Pagination {
	var pages int64
	if total > 0 {
		pages = (total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return Pagination{
		Total:       total,
		TotalPages:  pages,
		CurrentPage: p.Page,
		PageSize:    p.Limit,
	}
}

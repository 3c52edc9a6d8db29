package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 15
	MaxLimit     = 100
)

// PaginateQuery is the page request bound from the query string. Page is 1-indexed.
type PaginateQuery struct {
	Page  int   `json:"page" form:"page"`
	Limit int64 `json:"limit" form:"limit"`
}

// Adjust clamps Page and Limit into range, falling back to the defaults.
func (p *PaginateQuery) Adjust() {
	if p.Page < DefaultPage {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit < 1:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
}

// Offset is the number of rows to skip. Call Adjust first.
func (p PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// Paginator describes one page of a result set.
type Paginator struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
}

func (p Paginator) TotalPages() int {
	if p.Total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return int((p.Total + p.PerPage - 1) / p.PerPage)
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// PaginatorResponse is Paginator plus the derived navigation fields.
type PaginatorResponse struct {
	Paginator
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Paginator:  p,
		TotalPages: p.TotalPages(),
		HasNext:    p.HasNextPage(),
		HasPrev:    p.CurrentPage > 1,
	}
}

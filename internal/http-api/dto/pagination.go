package dto

// PaginationQuery is embedded by list queries using offset pagination.
type PaginationQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalize applies the default page size when the client omits paging.
func (p *PaginationQuery) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

// TotalPages computes ceil(total/limit) for the paged response envelopes.
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}

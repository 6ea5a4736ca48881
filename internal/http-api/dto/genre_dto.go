package dto

// GenreRequest: create/update payload; the slug is always derived from the
// name, never supplied.
type GenreRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ListGenresQuery: paged genre listing with free-text search.
type ListGenresQuery struct {
	PaginationQuery
	Search string `form:"search"`
}

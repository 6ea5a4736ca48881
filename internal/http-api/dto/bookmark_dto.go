package dto

// CreateBookmarkRequest: follow a serie; existence alone is the signal.
type CreateBookmarkRequest struct {
	SerieID int64 `json:"serieId" binding:"required"`
}

// ListBookmarksQuery: the caller's bookmarked series, paged.
type ListBookmarksQuery struct {
	PaginationQuery
}

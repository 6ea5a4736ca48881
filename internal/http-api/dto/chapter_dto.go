package dto

import "mangashelf/internal/http-api/models"

// CreateChapterRequest: new chapter under an existing serie.
type CreateChapterRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required,min=1"`
	Chapter string `json:"chapter" binding:"required,min=1,max=50"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published"`
	SerieID int64  `json:"serieId" binding:"required"`
}

// UpdateChapterRequest: partial update; only supplied fields change.
type UpdateChapterRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content *string `json:"content" binding:"omitempty,min=1"`
	Chapter *string `json:"chapter" binding:"omitempty,min=1,max=50"`
	Status  *string `json:"status" binding:"omitempty,oneof=draft published"`
	SerieID *int64  `json:"serieId"`
}

// ListChaptersQuery: paged chapter listing with status filter and title search.
type ListChaptersQuery struct {
	PaginationQuery
	Status string `form:"status" binding:"omitempty,oneof=draft published"`
	Search string `form:"search"`
}

// SerieSummary is the parent shape embedded in chapter responses.
type SerieSummary struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// ChapterListItem is the chapter listing shape.
type ChapterListItem struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Slug      string       `json:"slug"`
	Chapter   string       `json:"chapter"`
	Status    string       `json:"status"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
	User      UserSummary  `json:"user"`
	Serie     SerieSummary `json:"serie"`
}

func NewChapterListItem(ch models.Chapter) ChapterListItem {
	return ChapterListItem{
		ID:        ch.ID,
		Title:     ch.Title,
		Slug:      ch.Slug,
		Chapter:   ch.Chapter,
		Status:    ch.Status,
		CreatedAt: ch.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		UpdatedAt: ch.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		User:      UserSummary{Username: ch.User.Username},
		Serie: SerieSummary{
			ID:       ch.Serie.ID,
			Title:    ch.Serie.Title,
			Slug:     ch.Serie.Slug,
			ImageURL: ch.Serie.ImageURL,
		},
	}
}

func NewChapterListItems(chapters []models.Chapter) []ChapterListItem {
	items := make([]ChapterListItem, 0, len(chapters))
	for _, ch := range chapters {
		items = append(items, NewChapterListItem(ch))
	}
	return items
}

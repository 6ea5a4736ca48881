package dto

import "mangashelf/internal/http-api/models"

// CreateSerieRequest: new catalog entry. Genres are free-form names; existing
// genres are reused by derived slug, missing ones are created.
type CreateSerieRequest struct {
	Title         string   `json:"title" binding:"required,min=1,max=255"`
	Alternative   *string  `json:"alternative"`
	ImageURL      *string  `json:"imageUrl"`
	Description   *string  `json:"description"`
	Status        string   `json:"status" binding:"omitempty,oneof=draft published"`
	SeriesType    string   `json:"seriesType" binding:"required,oneof=manga manhwa manhua"`
	SeriesStatus  string   `json:"seriesStatus" binding:"required,oneof=ongoing completed"`
	Rating        *string  `json:"rating"`
	Released      *string  `json:"released"`
	Author        *string  `json:"author"`
	Artist        *string  `json:"artist"`
	Serialization *string  `json:"serialization"`
	Genres        []string `json:"genres"`
}

// UpdateSerieRequest: partial update; only supplied fields change. A nil
// Genres leaves associations untouched, a non-nil one replaces the whole set.
type UpdateSerieRequest struct {
	Title         *string   `json:"title" binding:"omitempty,min=1,max=255"`
	Alternative   *string   `json:"alternative"`
	ImageURL      *string   `json:"imageUrl"`
	Description   *string   `json:"description"`
	Status        *string   `json:"status" binding:"omitempty,oneof=draft published"`
	SeriesType    *string   `json:"seriesType" binding:"omitempty,oneof=manga manhwa manhua"`
	SeriesStatus  *string   `json:"seriesStatus" binding:"omitempty,oneof=ongoing completed"`
	Rating        *string   `json:"rating"`
	Released      *string   `json:"released"`
	Author        *string   `json:"author"`
	Artist        *string   `json:"artist"`
	Serialization *string   `json:"serialization"`
	Genres        *[]string `json:"genres"`
}

// ListSeriesQuery: paged series listing with status filter and title search.
type ListSeriesQuery struct {
	PaginationQuery
	Status string `form:"status" binding:"omitempty,oneof=draft published"`
	Search string `form:"search"`
}

// UserSummary is the owner shape embedded in serie responses.
type UserSummary struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// SerieListItem is the series listing shape.
type SerieListItem struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
	User        UserSummary `json:"user"`
}

// SerieBookmarks summarizes the follow state of a serie for the caller.
type SerieBookmarks struct {
	Count        int64 `json:"count"`
	IsBookmarked bool  `json:"isBookmarked"`
}

func NewSerieListItem(s models.Serie) SerieListItem {
	return SerieListItem{
		ID:          s.ID,
		Title:       s.Title,
		Slug:        s.Slug,
		ImageURL:    s.ImageURL,
		Description: s.Description,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		UpdatedAt:   s.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		User: UserSummary{
			ID:       s.User.ID,
			Username: s.User.Username,
			Role:     s.User.Role,
		},
	}
}

func NewSerieListItems(series []models.Serie) []SerieListItem {
	items := make([]SerieListItem, 0, len(series))
	for _, s := range series {
		items = append(items, NewSerieListItem(s))
	}
	return items
}

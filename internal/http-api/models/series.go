package models

import "time"

// Serie statuses and kinds kept as plain strings, validated at the DTO layer.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Serie struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string  `gorm:"size:255;not null" json:"title"`
	Slug          string  `gorm:"uniqueIndex;size:255;not null" json:"slug"` // always slugify(title)
	Alternative   *string `json:"alternative,omitempty"`
	ImageURL      *string `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Description   *string `json:"description,omitempty"`
	Status        string  `gorm:"size:20;default:'draft';not null" json:"status"`
	SeriesType    string  `gorm:"size:20;not null" json:"seriesType"` // manga | manhwa | manhua
	SeriesStatus  string  `gorm:"size:20;not null" json:"seriesStatus"` // ongoing | completed
	Rating        *string `json:"rating,omitempty"`
	Released      *string `json:"released,omitempty"`
	Author        *string `json:"author,omitempty"`
	Artist        *string `json:"artist,omitempty"`
	Serialization *string `json:"serialization,omitempty"`

	UserID    int64     `gorm:"index;not null" json:"userId"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Genres []Genre `gorm:"many2many:series_genres" json:"genres,omitempty"`
}

func (Serie) TableName() string {
	return "series"
}

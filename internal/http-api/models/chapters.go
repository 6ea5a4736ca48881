package models

import "time"

type Chapter struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"size:255;not null" json:"title"`
	// Chapter slugs are globally unique, not scoped per series, so the same
	// chapter title in two series collides.
	Slug    string `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Content string `gorm:"type:text;not null" json:"-"`
	Chapter string `gorm:"size:50;not null" json:"chapter"` // ordering label, e.g. "12" or "12.5"
	Status  string `gorm:"size:20;default:'draft';not null" json:"status"`

	SerieID int64 `gorm:"index;not null" json:"serieId"`
	Serie   Serie `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID  int64 `gorm:"index;not null" json:"userId"`
	User    User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Chapter) TableName() string {
	return "chapters"
}

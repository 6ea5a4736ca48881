package models

import "time"

// Bookmark existence alone signals "user follows series".
type Bookmark struct {
	UserID    int64     `gorm:"primaryKey" json:"userId"`
	SerieID   int64     `gorm:"primaryKey" json:"serieId"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Serie     Serie     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

package models

// Explicit join model so association rewrites can delete-then-reinsert rows
// and migrations get proper cascading foreign keys.
type SerieGenre struct {
	SerieID int64 `gorm:"primaryKey" json:"serieId"`
	GenreID int64 `gorm:"primaryKey" json:"genreId"`
	Serie   Serie `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Genre   Genre `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (SerieGenre) TableName() string {
	return "series_genres"
}

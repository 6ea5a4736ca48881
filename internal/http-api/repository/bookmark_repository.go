package repository

import (
	"context"

	"mangashelf/internal/http-api/models"

	"gorm.io/gorm"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	Delete(ctx context.Context, userID, serieID int64) error
	Exists(ctx context.Context, userID, serieID int64) (bool, error)
	CountBySerie(ctx context.Context, serieID int64) (int64, error)
	SerieIDsByUser(ctx context.Context, userID int64) ([]int64, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *bookmarkRepository) Delete(ctx context.Context, userID, serieID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND serie_id = ?", userID, serieID).
		Delete(&models.Bookmark{}).Error
}

func (r *bookmarkRepository) Exists(ctx context.Context, userID, serieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ? AND serie_id = ?", userID, serieID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookmarkRepository) CountBySerie(ctx context.Context, serieID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("serie_id = ?", serieID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookmarkRepository) SerieIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Pluck("serie_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

package repository

import (
	"context"
	"fmt"

	"mangashelf/internal/http-api/models"

	"gorm.io/gorm"
)

type ChapterRepository interface {
	List(ctx context.Context, status, search string, page, limit int) ([]models.Chapter, int64, error)
	Find(ctx context.Context, ident Ident) (*models.Chapter, error)
	Create(ctx context.Context, chapter *models.Chapter) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Chapter, error)
	Delete(ctx context.Context, id int64) error
}

type chapterRepository struct {
	db *gorm.DB
}

func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) List(ctx context.Context, status, search string, page, limit int) ([]models.Chapter, int64, error) {
	var list []models.Chapter
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Chapter{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := q.Preload("Serie").
		Preload("User").
		Order("updated_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *chapterRepository) Find(ctx context.Context, ident Ident) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := ident.where(r.db.WithContext(ctx), "slug").
		Preload("Serie").
		Preload("User").
		First(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	if err := r.db.WithContext(ctx).Create(chapter).Error; err != nil {
		return fmt.Errorf("create chapter: %w", err)
	}
	return nil
}

func (r *chapterRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Chapter, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.Chapter{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update chapter: %w", err)
	}
	return r.Find(ctx, ByID(id))
}

func (r *chapterRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Chapter{}, id).Error; err != nil {
		return fmt.Errorf("delete chapter: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"mangashelf/internal/http-api/models"

	"gorm.io/gorm"
)

// GenreWithCount pairs a genre with the number of series tagged with it.
type GenreWithCount struct {
	models.Genre
	Count int64 `json:"count"`
}

type GenreRepository interface {
	ListAll(ctx context.Context) ([]GenreWithCount, error)
	List(ctx context.Context, search string, page, limit int) ([]models.Genre, int64, error)
	Find(ctx context.Context, ident Ident) (*models.Genre, error)
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, id int64, name, slug string) (*models.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) ListAll(ctx context.Context) ([]GenreWithCount, error) {
	var list []GenreWithCount
	if err := r.db.WithContext(ctx).
		Model(&models.Genre{}).
		Select("genres.*, count(series_genres.serie_id) as count").
		Joins("LEFT JOIN series_genres ON series_genres.genre_id = genres.id").
		Group("genres.id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return list, nil
}

func (r *genreRepository) List(ctx context.Context, search string, page, limit int) ([]models.Genre, int64, error) {
	var list []models.Genre
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Genre{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := q.Order("id desc").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *genreRepository) Find(ctx context.Context, ident Ident) (*models.Genre, error) {
	var genre models.Genre
	if err := ident.where(r.db.WithContext(ctx), "slug").First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(genre).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *genreRepository) Update(ctx context.Context, id int64, name, slug string) (*models.Genre, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.Genre{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "slug": slug}).Error; err != nil {
		return nil, fmt.Errorf("update genre: %w", err)
	}
	return r.Find(ctx, ByID(id))
}

func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Genre{}, id).Error; err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}

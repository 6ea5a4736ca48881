package repository

import (
	"context"
	"fmt"

	"mangashelf/internal/http-api/models"

	"gorm.io/gorm"
)

type SerieRepository interface {
	Latest(ctx context.Context, page, limit int) ([]models.Serie, int64, error)
	ListAll(ctx context.Context) ([]models.Serie, error)
	List(ctx context.Context, status, search string, page, limit int) ([]models.Serie, int64, error)
	ListByGenre(ctx context.Context, genreID int64, page, limit int) ([]models.Serie, int64, error)
	ListByIDs(ctx context.Context, ids []int64, status string, page, limit int) ([]models.Serie, error)
	Find(ctx context.Context, ident Ident) (*models.Serie, error)
	Create(ctx context.Context, serie *models.Serie) error
	Update(ctx context.Context, id int64, fields map[string]any) (*models.Serie, error)
	Delete(ctx context.Context, id int64) error
	ReplaceGenres(ctx context.Context, serieID int64, genreIDs []int64) error
}

type serieRepository struct {
	db *gorm.DB
}

func NewSerieRepository(db *gorm.DB) SerieRepository {
	return &serieRepository{db: db}
}

func (r *serieRepository) Latest(ctx context.Context, page, limit int) ([]models.Serie, int64, error) {
	return r.List(ctx, models.StatusPublished, "", page, limit)
}

// ListAll returns the full catalog index (id, title, slug only).
func (r *serieRepository) ListAll(ctx context.Context) ([]models.Serie, error) {
	var list []models.Serie
	if err := r.db.WithContext(ctx).
		Select("id", "title", "slug").
		Order("title desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return list, nil
}

func (r *serieRepository) List(ctx context.Context, status, search string, page, limit int) ([]models.Serie, int64, error) {
	var list []models.Serie
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Serie{})
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
	if err := q.Preload("User").
		Order("updated_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *serieRepository) ListByGenre(ctx context.Context, genreID int64, page, limit int) ([]models.Serie, int64, error) {
	var list []models.Serie
	var total int64

	q := r.db.WithContext(ctx).
		Model(&models.Serie{}).
		Joins("JOIN series_genres sg ON sg.serie_id = series.id").
		Where("sg.genre_id = ?", genreID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := q.Preload("Genres").
		Preload("User").
		Order("updated_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list series by genre: %w", err)
	}

	return list, total, nil
}

// ListByIDs fetches series restricted to the given ids, used for bookmark
// listings.
func (r *serieRepository) ListByIDs(ctx context.Context, ids []int64, status string, page, limit int) ([]models.Serie, error) {
	var list []models.Serie
	if len(ids) == 0 {
		return list, nil
	}

	q := r.db.WithContext(ctx).Where("id IN ?", ids)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	offset := (page - 1) * limit
	if err := q.Preload("Genres").
		Preload("User").
		Order("updated_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list series by ids: %w", err)
	}
	return list, nil
}

func (r *serieRepository) Find(ctx context.Context, ident Ident) (*models.Serie, error) {
	var serie models.Serie
	if err := ident.where(r.db.WithContext(ctx), "slug").
		Preload("Genres").
		Preload("User").
		First(&serie).Error; err != nil {
		return nil, err
	}
	return &serie, nil
}

func (r *serieRepository) Create(ctx context.Context, serie *models.Serie) error {
	// Association writes go through ReplaceGenres, not the create.
	if err := r.db.WithContext(ctx).Omit("Genres").Create(serie).Error; err != nil {
		return fmt.Errorf("create serie: %w", err)
	}
	return nil
}

func (r *serieRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Serie, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.Serie{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update serie: %w", err)
	}
	return r.Find(ctx, ByID(id))
}

func (r *serieRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Serie{}, id).Error; err != nil {
		return fmt.Errorf("delete serie: %w", err)
	}
	return nil
}

// ReplaceGenres rewrites the serie's full genre association set:
// delete-all-then-reinsert, not diff-based.
func (r *serieRepository) ReplaceGenres(ctx context.Context, serieID int64, genreIDs []int64) error {
	tx := r.db.WithContext(ctx).Begin()
	if err := tx.Where("serie_id = ?", serieID).Delete(&models.SerieGenre{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("clear serie genres: %w", err)
	}

	if len(genreIDs) > 0 {
		rows := make([]models.SerieGenre, 0, len(genreIDs))
		for _, genreID := range genreIDs {
			rows = append(rows, models.SerieGenre{SerieID: serieID, GenreID: genreID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("insert serie genres: %w", err)
		}
	}

	return tx.Commit().Error
}

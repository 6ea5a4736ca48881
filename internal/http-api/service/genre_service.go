package service

import (
	"context"
	"errors"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/models"
	"mangashelf/internal/http-api/repository"
	"mangashelf/pkg/slugify"

	"gorm.io/gorm"
)

type GenreService interface {
	ListAll(ctx context.Context) ([]repository.GenreWithCount, error)
	List(ctx context.Context, query dto.ListGenresQuery) ([]models.Genre, int64, error)
	Get(ctx context.Context, ident repository.Ident) (*models.Genre, error)
	Series(ctx context.Context, ident repository.Ident, page dto.PaginationQuery) (*models.Genre, []models.Serie, int64, error)
	Create(ctx context.Context, req dto.GenreRequest) (*models.Genre, error)
	Update(ctx context.Context, ident repository.Ident, req dto.GenreRequest) (*models.Genre, error)
	Delete(ctx context.Context, ident repository.Ident) (*models.Genre, error)
}

type genreService struct {
	genreRepo repository.GenreRepository
	serieRepo repository.SerieRepository
}

func NewGenreService(genreRepo repository.GenreRepository, serieRepo repository.SerieRepository) GenreService {
	return &genreService{genreRepo: genreRepo, serieRepo: serieRepo}
}

func (s *genreService) ListAll(ctx context.Context) ([]repository.GenreWithCount, error) {
	return s.genreRepo.ListAll(ctx)
}

func (s *genreService) List(ctx context.Context, query dto.ListGenresQuery) ([]models.Genre, int64, error) {
	query.Normalize(10)
	return s.genreRepo.List(ctx, query.Search, query.Page, query.Limit)
}

func (s *genreService) Get(ctx context.Context, ident repository.Ident) (*models.Genre, error) {
	genre, err := s.genreRepo.Find(ctx, ident)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Genre not found")
		}
		return nil, err
	}
	return genre, nil
}

// Series lists the series tagged with a genre, paged.
func (s *genreService) Series(ctx context.Context, ident repository.Ident, page dto.PaginationQuery) (*models.Genre, []models.Serie, int64, error) {
	genre, err := s.Get(ctx, ident)
	if err != nil {
		return nil, nil, 0, err
	}

	page.Normalize(10)
	series, total, err := s.serieRepo.ListByGenre(ctx, genre.ID, page.Page, page.Limit)
	if err != nil {
		return nil, nil, 0, err
	}
	return genre, series, total, nil
}

func (s *genreService) Create(ctx context.Context, req dto.GenreRequest) (*models.Genre, error) {
	slug := slugify.Slugify(req.Name)
	if existing, _ := s.genreRepo.Find(ctx, repository.BySlug(slug)); existing != nil {
		return nil, apperr.NewValidation("Genre already exist")
	}

	genre := &models.Genre{Name: req.Name, Slug: slug}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) Update(ctx context.Context, ident repository.Ident, req dto.GenreRequest) (*models.Genre, error) {
	genre, err := s.Get(ctx, ident)
	if err != nil {
		return nil, err
	}

	slug := slugify.Slugify(req.Name)
	if existing, _ := s.genreRepo.Find(ctx, repository.BySlug(slug)); existing != nil && existing.ID != genre.ID {
		return nil, apperr.NewValidation("Genre already exist")
	}

	return s.genreRepo.Update(ctx, genre.ID, req.Name, slug)
}

func (s *genreService) Delete(ctx context.Context, ident repository.Ident) (*models.Genre, error) {
	genre, err := s.Get(ctx, ident)
	if err != nil {
		return nil, err
	}

	if err := s.genreRepo.Delete(ctx, genre.ID); err != nil {
		return nil, err
	}
	return genre, nil
}

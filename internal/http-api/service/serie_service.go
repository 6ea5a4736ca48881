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

// SerieDetail bundles a serie with its follow state for the detail route.
type SerieDetail struct {
	Serie         *models.Serie
	BookmarkCount int64
	IsBookmarked  bool
}

type SerieService interface {
	Latest(ctx context.Context, page dto.PaginationQuery) ([]models.Serie, int64, error)
	ListAll(ctx context.Context) ([]models.Serie, error)
	List(ctx context.Context, query dto.ListSeriesQuery) ([]models.Serie, int64, error)
	Get(ctx context.Context, ident repository.Ident, viewer *Principal) (*SerieDetail, error)
	Create(ctx context.Context, principal Principal, req dto.CreateSerieRequest) (*models.Serie, error)
	Update(ctx context.Context, ident repository.Ident, req dto.UpdateSerieRequest) (*models.Serie, error)
	Delete(ctx context.Context, ident repository.Ident) (*models.Serie, error)
}

type serieService struct {
	serieRepo    repository.SerieRepository
	genreRepo    repository.GenreRepository
	bookmarkRepo repository.BookmarkRepository
}

func NewSerieService(
	serieRepo repository.SerieRepository,
	genreRepo repository.GenreRepository,
	bookmarkRepo repository.BookmarkRepository,
) SerieService {
	return &serieService{
		serieRepo:    serieRepo,
		genreRepo:    genreRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

func (s *serieService) Latest(ctx context.Context, page dto.PaginationQuery) ([]models.Serie, int64, error) {
	page.Normalize(10)
	return s.serieRepo.Latest(ctx, page.Page, page.Limit)
}

func (s *serieService) ListAll(ctx context.Context) ([]models.Serie, error) {
	return s.serieRepo.ListAll(ctx)
}

func (s *serieService) List(ctx context.Context, query dto.ListSeriesQuery) ([]models.Serie, int64, error) {
	query.Normalize(10)
	return s.serieRepo.List(ctx, query.Status, query.Search, query.Page, query.Limit)
}

// Get returns the serie with genres, owner and follow state. The viewer is
// optional: anonymous callers still get the bookmark count.
func (s *serieService) Get(ctx context.Context, ident repository.Ident, viewer *Principal) (*SerieDetail, error) {
	serie, err := s.find(ctx, ident)
	if err != nil {
		return nil, err
	}

	count, err := s.bookmarkRepo.CountBySerie(ctx, serie.ID)
	if err != nil {
		return nil, err
	}

	isBookmarked := false
	if viewer != nil {
		isBookmarked, err = s.bookmarkRepo.Exists(ctx, viewer.UserID, serie.ID)
		if err != nil {
			return nil, err
		}
	}

	return &SerieDetail{Serie: serie, BookmarkCount: count, IsBookmarked: isBookmarked}, nil
}

func (s *serieService) Create(ctx context.Context, principal Principal, req dto.CreateSerieRequest) (*models.Serie, error) {
	slug := slugify.Slugify(req.Title)
	if existing, _ := s.serieRepo.Find(ctx, repository.BySlug(slug)); existing != nil {
		return nil, apperr.NewValidation("Serie already exist")
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	serie := &models.Serie{
		Title:         req.Title,
		Slug:          slug,
		Alternative:   req.Alternative,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		Status:        status,
		SeriesType:    req.SeriesType,
		SeriesStatus:  req.SeriesStatus,
		Rating:        req.Rating,
		Released:      req.Released,
		Author:        req.Author,
		Artist:        req.Artist,
		Serialization: req.Serialization,
		UserID:        principal.UserID,
	}

	if err := s.serieRepo.Create(ctx, serie); err != nil {
		return nil, err
	}

	if len(req.Genres) > 0 {
		genreIDs, err := s.upsertGenres(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
		if err := s.serieRepo.ReplaceGenres(ctx, serie.ID, genreIDs); err != nil {
			return nil, err
		}
	}

	return serie, nil
}

func (s *serieService) Update(ctx context.Context, ident repository.Ident, req dto.UpdateSerieRequest) (*models.Serie, error) {
	serie, err := s.find(ctx, ident)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	// Retitling re-derives the slug; the slug is never independently mutable.
	if req.Title != nil && *req.Title != serie.Title {
		slug := slugify.Slugify(*req.Title)
		if existing, _ := s.serieRepo.Find(ctx, repository.BySlug(slug)); existing != nil {
			return nil, apperr.NewValidation("Serie already exist")
		}
		fields["title"] = *req.Title
		fields["slug"] = slug
	}
	if req.Alternative != nil {
		fields["alternative"] = *req.Alternative
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.SeriesType != nil {
		fields["series_type"] = *req.SeriesType
	}
	if req.SeriesStatus != nil {
		fields["series_status"] = *req.SeriesStatus
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Released != nil {
		fields["released"] = *req.Released
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Artist != nil {
		fields["artist"] = *req.Artist
	}
	if req.Serialization != nil {
		fields["serialization"] = *req.Serialization
	}

	updated := serie
	if len(fields) > 0 {
		updated, err = s.serieRepo.Update(ctx, serie.ID, fields)
		if err != nil {
			return nil, err
		}
	}

	// A supplied genre list replaces the whole association set.
	if req.Genres != nil {
		genreIDs, err := s.upsertGenres(ctx, *req.Genres)
		if err != nil {
			return nil, err
		}
		if err := s.serieRepo.ReplaceGenres(ctx, serie.ID, genreIDs); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

func (s *serieService) Delete(ctx context.Context, ident repository.Ident) (*models.Serie, error) {
	serie, err := s.find(ctx, ident)
	if err != nil {
		return nil, err
	}

	// Chapters, genre joins and bookmarks go with it via FK cascade.
	if err := s.serieRepo.Delete(ctx, serie.ID); err != nil {
		return nil, err
	}
	return serie, nil
}

func (s *serieService) find(ctx context.Context, ident repository.Ident) (*models.Serie, error) {
	serie, err := s.serieRepo.Find(ctx, ident)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Serie not found")
		}
		return nil, err
	}
	return serie, nil
}

// upsertGenres resolves genre names to ids, reusing an existing genre when
// its derived slug already exists and creating it otherwise. Empty names are
// skipped.
func (s *serieService) upsertGenres(ctx context.Context, names []string) ([]int64, error) {
	genreIDs := make([]int64, 0, len(names))
	for _, name := range names {
		if len(name) == 0 {
			continue
		}

		slug := slugify.Slugify(name)
		existing, err := s.genreRepo.Find(ctx, repository.BySlug(slug))
		if err == nil {
			genreIDs = append(genreIDs, existing.ID)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		genre := &models.Genre{Name: name, Slug: slug}
		if err := s.genreRepo.Create(ctx, genre); err != nil {
			return nil, err
		}
		genreIDs = append(genreIDs, genre.ID)
	}
	return genreIDs, nil
}

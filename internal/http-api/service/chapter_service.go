package service

import (
	"context"
	"errors"
	"strings"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/models"
	"mangashelf/internal/http-api/repository"
	"mangashelf/pkg/slugify"

	"gorm.io/gorm"
)

// ChapterDetail carries the chapter with its body split into lines for the
// reader view.
type ChapterDetail struct {
	Chapter *models.Chapter
	Content []string
}

type ChapterService interface {
	List(ctx context.Context, query dto.ListChaptersQuery) ([]models.Chapter, int64, error)
	Get(ctx context.Context, ident repository.Ident) (*ChapterDetail, error)
	Create(ctx context.Context, principal Principal, req dto.CreateChapterRequest) (*models.Chapter, error)
	Update(ctx context.Context, ident repository.Ident, req dto.UpdateChapterRequest) (*models.Chapter, error)
	Delete(ctx context.Context, ident repository.Ident) (*models.Chapter, error)
}

type chapterService struct {
	chapterRepo repository.ChapterRepository
	serieRepo   repository.SerieRepository
}

func NewChapterService(chapterRepo repository.ChapterRepository, serieRepo repository.SerieRepository) ChapterService {
	return &chapterService{chapterRepo: chapterRepo, serieRepo: serieRepo}
}

func (s *chapterService) List(ctx context.Context, query dto.ListChaptersQuery) ([]models.Chapter, int64, error) {
	query.Normalize(10)
	return s.chapterRepo.List(ctx, query.Status, query.Search, query.Page, query.Limit)
}

func (s *chapterService) Get(ctx context.Context, ident repository.Ident) (*ChapterDetail, error) {
	chapter, err := s.find(ctx, ident)
	if err != nil {
		return nil, err
	}
	return &ChapterDetail{
		Chapter: chapter,
		Content: strings.Split(chapter.Content, "\n"),
	}, nil
}

func (s *chapterService) Create(ctx context.Context, principal Principal, req dto.CreateChapterRequest) (*models.Chapter, error) {
	if _, err := s.serieRepo.Find(ctx, repository.ByID(req.SerieID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewValidation("Serie not found")
		}
		return nil, err
	}

	// Chapter slugs are global, not scoped per serie.
	slug := slugify.Slugify(req.Title)
	if existing, _ := s.chapterRepo.Find(ctx, repository.BySlug(slug)); existing != nil {
		return nil, apperr.NewValidation("Chapter already exist")
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	chapter := &models.Chapter{
		Title:   req.Title,
		Slug:    slug,
		Content: req.Content,
		Chapter: req.Chapter,
		Status:  status,
		SerieID: req.SerieID,
		UserID:  principal.UserID,
	}

	if err := s.chapterRepo.Create(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *chapterService) Update(ctx context.Context, ident repository.Ident, req dto.UpdateChapterRequest) (*models.Chapter, error) {
	chapter, err := s.find(ctx, ident)
	if err != nil {
		return nil, err
	}

	if req.SerieID != nil {
		if _, err := s.serieRepo.Find(ctx, repository.ByID(*req.SerieID)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewNotFound("Serie not found")
			}
			return nil, err
		}
	}

	fields := map[string]any{}
	if req.Title != nil && *req.Title != chapter.Title {
		slug := slugify.Slugify(*req.Title)
		if existing, _ := s.chapterRepo.Find(ctx, repository.BySlug(slug)); existing != nil {
			return nil, apperr.NewValidation("Chapter already exist")
		}
		fields["title"] = *req.Title
		fields["slug"] = slug
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Chapter != nil {
		fields["chapter"] = *req.Chapter
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.SerieID != nil {
		fields["serie_id"] = *req.SerieID
	}

	if len(fields) == 0 {
		return chapter, nil
	}
	return s.chapterRepo.Update(ctx, chapter.ID, fields)
}

func (s *chapterService) Delete(ctx context.Context, ident repository.Ident) (*models.Chapter, error) {
	chapter, err := s.find(ctx, ident)
	if err != nil {
		return nil, err
	}

	if err := s.chapterRepo.Delete(ctx, chapter.ID); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *chapterService) find(ctx context.Context, ident repository.Ident) (*models.Chapter, error) {
	chapter, err := s.chapterRepo.Find(ctx, ident)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Chapter not found")
		}
		return nil, err
	}
	return chapter, nil
}

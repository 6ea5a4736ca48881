package service

import (
	"context"
	"errors"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/models"
	"mangashelf/internal/http-api/repository"

	"gorm.io/gorm"
)

// BookmarkPage is the paged listing of a user's followed series.
type BookmarkPage struct {
	TotalPages int64
	Count      int64
	Series     []models.Serie
}

type BookmarkService interface {
	List(ctx context.Context, userID int64, query dto.ListBookmarksQuery) (*BookmarkPage, error)
	Create(ctx context.Context, userID, serieID int64) error
	Delete(ctx context.Context, userID, serieID int64) error
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	serieRepo    repository.SerieRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, serieRepo repository.SerieRepository) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo, serieRepo: serieRepo}
}

func (s *bookmarkService) List(ctx context.Context, userID int64, query dto.ListBookmarksQuery) (*BookmarkPage, error) {
	query.Normalize(9)

	serieIDs, err := s.bookmarkRepo.SerieIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(serieIDs) == 0 {
		return &BookmarkPage{TotalPages: 1, Count: 0, Series: []models.Serie{}}, nil
	}

	series, err := s.serieRepo.ListByIDs(ctx, serieIDs, models.StatusPublished, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	return &BookmarkPage{
		TotalPages: dto.TotalPages(int64(len(serieIDs)), query.Limit),
		Count:      int64(len(serieIDs)),
		Series:     series,
	}, nil
}

// Create follows a serie. The insert error is swallowed unconditionally so a
// repeated follow stays idempotent for the caller; note this also masks
// transient storage failures, not just duplicate-key violations.
func (s *bookmarkService) Create(ctx context.Context, userID, serieID int64) error {
	if err := s.ensureSerie(ctx, serieID); err != nil {
		return err
	}

	_ = s.bookmarkRepo.Create(ctx, &models.Bookmark{UserID: userID, SerieID: serieID})
	return nil
}

// Delete unfollows a serie with the same swallow-everything contract.
func (s *bookmarkService) Delete(ctx context.Context, userID, serieID int64) error {
	if err := s.ensureSerie(ctx, serieID); err != nil {
		return err
	}

	_ = s.bookmarkRepo.Delete(ctx, userID, serieID)
	return nil
}

func (s *bookmarkService) ensureSerie(ctx context.Context, serieID int64) error {
	if _, err := s.serieRepo.Find(ctx, repository.ByID(serieID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("Series not found")
		}
		return err
	}
	return nil
}

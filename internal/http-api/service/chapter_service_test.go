package service

import (
	"context"
	"net/http"
	"testing"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/models"
	"mangashelf/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newChapterFixture() (*mockChapterRepository, *mockSerieRepository, ChapterService) {
	chapterRepo := new(mockChapterRepository)
	serieRepo := new(mockSerieRepository)
	return chapterRepo, serieRepo, NewChapterService(chapterRepo, serieRepo)
}

func TestCreateChapterRequiresExistingSerie(t *testing.T) {
	chapterRepo, serieRepo, svc := newChapterFixture()

	serieRepo.On("Find", mock.Anything, repository.ByID(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), Principal{UserID: 1}, dto.CreateChapterRequest{
		Title:   "Chapter 1",
		SerieID: 99,
	})
	// A dangling serie reference on create is reported as bad input.
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
	assert.EqualError(t, err, "Serie not found")
	chapterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateChapterRejectsGlobalSlugCollision(t *testing.T) {
	chapterRepo, serieRepo, svc := newChapterFixture()

	serieRepo.On("Find", mock.Anything, repository.ByID(2)).Return(&models.Serie{ID: 2}, nil)
	// The colliding chapter belongs to a different serie; slugs are global.
	chapterRepo.On("Find", mock.Anything, repository.BySlug("chapter-1")).
		Return(&models.Chapter{ID: 5, Slug: "chapter-1", SerieID: 1}, nil)

	_, err := svc.Create(context.Background(), Principal{UserID: 1}, dto.CreateChapterRequest{
		Title:   "Chapter 1",
		SerieID: 2,
	})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
	assert.EqualError(t, err, "Chapter already exist")
}

func TestCreateChapterDefaultsToDraft(t *testing.T) {
	chapterRepo, serieRepo, svc := newChapterFixture()

	serieRepo.On("Find", mock.Anything, repository.ByID(2)).Return(&models.Serie{ID: 2}, nil)
	chapterRepo.On("Find", mock.Anything, repository.BySlug("chapter-1")).Return(nil, gorm.ErrRecordNotFound)
	chapterRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Chapter")).Return(nil)

	chapter, err := svc.Create(context.Background(), Principal{UserID: 3}, dto.CreateChapterRequest{
		Title:   "Chapter 1",
		Content: "line one\nline two",
		SerieID: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDraft, chapter.Status)
	assert.Equal(t, int64(3), chapter.UserID)
}

func TestUpdateChapterReassignmentRequiresSerie(t *testing.T) {
	chapterRepo, serieRepo, svc := newChapterFixture()

	chapter := &models.Chapter{ID: 5, Title: "Chapter 1", Slug: "chapter-1"}
	chapterRepo.On("Find", mock.Anything, repository.ByID(5)).Return(chapter, nil)
	serieRepo.On("Find", mock.Anything, repository.ByID(77)).Return(nil, gorm.ErrRecordNotFound)

	serieID := int64(77)
	_, err := svc.Update(context.Background(), repository.ByID(5), dto.UpdateChapterRequest{SerieID: &serieID})
	// On update the dangling reference reads as a missing target instead.
	assert.Equal(t, http.StatusNotFound, apperr.StatusCode(err))
	assert.EqualError(t, err, "Serie not found")
}

func TestGetChapterSplitsContentIntoLines(t *testing.T) {
	chapterRepo, _, svc := newChapterFixture()

	chapter := &models.Chapter{ID: 5, Slug: "chapter-1", Content: "page one\npage two\npage three"}
	chapterRepo.On("Find", mock.Anything, repository.BySlug("chapter-1")).Return(chapter, nil)

	detail, err := svc.Get(context.Background(), repository.BySlug("chapter-1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"page one", "page two", "page three"}, detail.Content)
}

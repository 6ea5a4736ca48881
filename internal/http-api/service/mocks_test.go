package service

import (
	"context"

	"mangashelf/internal/http-api/models"
	"mangashelf/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, role string, page, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, role, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRefreshTokenRepository struct {
	mock.Mock
}

func (m *mockRefreshTokenRepository) Save(ctx context.Context, userID int64, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *mockRefreshTokenRepository) Get(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockRefreshTokenRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockSerieRepository struct {
	mock.Mock
}

func (m *mockSerieRepository) Latest(ctx context.Context, page, limit int) ([]models.Serie, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Serie), args.Get(1).(int64), args.Error(2)
}

func (m *mockSerieRepository) ListAll(ctx context.Context) ([]models.Serie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Serie), args.Error(1)
}

func (m *mockSerieRepository) List(ctx context.Context, status, search string, page, limit int) ([]models.Serie, int64, error) {
	args := m.Called(ctx, status, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Serie), args.Get(1).(int64), args.Error(2)
}

func (m *mockSerieRepository) ListByGenre(ctx context.Context, genreID int64, page, limit int) ([]models.Serie, int64, error) {
	args := m.Called(ctx, genreID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Serie), args.Get(1).(int64), args.Error(2)
}

func (m *mockSerieRepository) ListByIDs(ctx context.Context, ids []int64, status string, page, limit int) ([]models.Serie, error) {
	args := m.Called(ctx, ids, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Serie), args.Error(1)
}

func (m *mockSerieRepository) Find(ctx context.Context, ident repository.Ident) (*models.Serie, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Serie), args.Error(1)
}

func (m *mockSerieRepository) Create(ctx context.Context, serie *models.Serie) error {
	args := m.Called(ctx, serie)
	return args.Error(0)
}

func (m *mockSerieRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Serie, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Serie), args.Error(1)
}

func (m *mockSerieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSerieRepository) ReplaceGenres(ctx context.Context, serieID int64, genreIDs []int64) error {
	args := m.Called(ctx, serieID, genreIDs)
	return args.Error(0)
}

type mockGenreRepository struct {
	mock.Mock
}

func (m *mockGenreRepository) ListAll(ctx context.Context) ([]repository.GenreWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GenreWithCount), args.Error(1)
}

func (m *mockGenreRepository) List(ctx context.Context, search string, page, limit int) ([]models.Genre, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Genre), args.Get(1).(int64), args.Error(2)
}

func (m *mockGenreRepository) Find(ctx context.Context, ident repository.Ident) (*models.Genre, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *mockGenreRepository) Create(ctx context.Context, genre *models.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *mockGenreRepository) Update(ctx context.Context, id int64, name, slug string) (*models.Genre, error) {
	args := m.Called(ctx, id, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *mockGenreRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBookmarkRepository struct {
	mock.Mock
}

func (m *mockBookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *mockBookmarkRepository) Delete(ctx context.Context, userID, serieID int64) error {
	args := m.Called(ctx, userID, serieID)
	return args.Error(0)
}

func (m *mockBookmarkRepository) Exists(ctx context.Context, userID, serieID int64) (bool, error) {
	args := m.Called(ctx, userID, serieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookmarkRepository) CountBySerie(ctx context.Context, serieID int64) (int64, error) {
	args := m.Called(ctx, serieID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookmarkRepository) SerieIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockChapterRepository struct {
	mock.Mock
}

func (m *mockChapterRepository) List(ctx context.Context, status, search string, page, limit int) ([]models.Chapter, int64, error) {
	args := m.Called(ctx, status, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Chapter), args.Get(1).(int64), args.Error(2)
}

func (m *mockChapterRepository) Find(ctx context.Context, ident repository.Ident) (*models.Chapter, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chapter), args.Error(1)
}

func (m *mockChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	args := m.Called(ctx, chapter)
	return args.Error(0)
}

func (m *mockChapterRepository) Update(ctx context.Context, id int64, fields map[string]any) (*models.Chapter, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chapter), args.Error(1)
}

func (m *mockChapterRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

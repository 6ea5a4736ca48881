package service

import (
	"context"
	"net/http"
	"testing"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/auth"
	"mangashelf/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*mockUserRepository, *mockRefreshTokenRepository, AuthService) {
	t.Helper()
	userRepo := new(mockUserRepository)
	tokenRepo := new(mockRefreshTokenRepository)
	return userRepo, tokenRepo, NewAuthService(userRepo, tokenRepo, newTestTokenService())
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return hashed
}

func TestLoginIssuesAndStoresPair(t *testing.T) {
	userRepo, tokenRepo, svc := newAuthFixture(t)

	user := &models.User{ID: 3, Email: "alice@example.com", Role: models.RoleUser, Password: hashFor(t, "correct horse")}
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	tokenRepo.On("Save", mock.Anything, int64(3), mock.AnythingOfType("string")).Return(nil)

	pair, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	tokenRepo.AssertCalled(t, "Save", mock.Anything, int64(3), pair.RefreshToken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	userRepo, _, svc := newAuthFixture(t)

	user := &models.User{ID: 3, Email: "alice@example.com", Role: models.RoleUser, Password: hashFor(t, "correct horse")}
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, wrongPassword := svc.Login(context.Background(), "alice@example.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "wrong")

	assert.Equal(t, http.StatusUnauthorized, apperr.StatusCode(wrongPassword))
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusCode(unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRefreshRotatesAgainstSideStore(t *testing.T) {
	userRepo, tokenRepo, svc := newAuthFixture(t)

	user := &models.User{ID: 5, Email: "bob@example.com", Role: models.RoleAdmin, Password: hashFor(t, "password123")}
	userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(user, nil)
	userRepo.On("FindByID", mock.Anything, int64(5)).Return(user, nil)
	tokenRepo.On("Save", mock.Anything, int64(5), mock.AnythingOfType("string")).Return(nil)

	pair, err := svc.Login(context.Background(), "bob@example.com", "password123")
	assert.NoError(t, err)

	// The side-store holds exactly what login minted, so refresh succeeds.
	tokenRepo.On("Get", mock.Anything, int64(5)).Return(pair.RefreshToken, nil).Once()
	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.RefreshToken)

	// Replaying the pre-rotation token now mismatches the stored value.
	tokenRepo.On("Get", mock.Anything, int64(5)).Return(rotated.RefreshToken, nil).Once()
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusCode(err))
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	_, _, svc := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusCode(err))
}

func TestLogoutClearsSideStoreAndIsIdempotent(t *testing.T) {
	userRepo, tokenRepo, svc := newAuthFixture(t)

	user := &models.User{ID: 9, Email: "eve@example.com", Role: models.RoleUser, Password: hashFor(t, "password123")}
	userRepo.On("FindByEmail", mock.Anything, "eve@example.com").Return(user, nil)
	tokenRepo.On("Save", mock.Anything, int64(9), mock.AnythingOfType("string")).Return(nil)

	pair, err := svc.Login(context.Background(), "eve@example.com", "password123")
	assert.NoError(t, err)

	tokenRepo.On("Delete", mock.Anything, int64(9)).Return(nil)
	svc.Logout(context.Background(), pair.RefreshToken)
	svc.Logout(context.Background(), pair.RefreshToken)
	tokenRepo.AssertNumberOfCalls(t, "Delete", 2)

	// Unverifiable tokens never reach the side-store.
	svc.Logout(context.Background(), "garbage")
	tokenRepo.AssertNumberOfCalls(t, "Delete", 2)
}

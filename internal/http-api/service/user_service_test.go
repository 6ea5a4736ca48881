package service

import (
	"context"
	"net/http"
	"testing"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/auth"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestFirstRegistrantBecomesSuperadmin(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("CountByRole", mock.Anything, models.RoleSuperadmin).Return(int64(0), nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), dto.RegisterUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleSuperadmin, user.Role)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
}

func TestLaterRegistrantsAreUsers(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByUsernameOrEmail", mock.Anything, "bob", "bob@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("CountByRole", mock.Anything, models.RoleSuperadmin).Return(int64(1), nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), dto.RegisterUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	existing := &models.User{ID: 1, Username: "alice"}
	userRepo.On("FindByUsernameOrEmail", mock.Anything, "alice", "other@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), dto.RegisterUserRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
	assert.EqualError(t, err, "User already exist")
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminCannotAssignElevatedRole(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	admin := Principal{UserID: 1, Role: models.RoleAdmin}
	_, err := svc.Create(context.Background(), admin, dto.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	assert.Equal(t, http.StatusForbidden, apperr.StatusCode(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSuperadminAssignsAnyRole(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByUsernameOrEmail", mock.Anything, "carol", "carol@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	superadmin := Principal{UserID: 1, Role: models.RoleSuperadmin}
	user, err := svc.Create(context.Background(), superadmin, dto.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestRoleChangeRequiresSuperadmin(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	target := &models.User{ID: 2, Username: "dave", Role: models.RoleUser}
	userRepo.On("FindByUsername", mock.Anything, "dave").Return(target, nil)

	role := models.RoleAdmin
	admin := Principal{UserID: 1, Role: models.RoleAdmin}
	_, err := svc.Update(context.Background(), admin, "dave", dto.UpdateUserRequest{Role: &role})
	assert.Equal(t, http.StatusForbidden, apperr.StatusCode(err))
	assert.EqualError(t, err, "You are not allowed to update user role")
}

func TestDeleteElevatedTargetRequiresSuperadmin(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	target := &models.User{ID: 2, Username: "erin", Role: models.RoleAdmin}
	userRepo.On("FindByUsername", mock.Anything, "erin").Return(target, nil)

	admin := Principal{UserID: 1, Role: models.RoleAdmin}
	_, err := svc.Delete(context.Background(), admin, "erin")
	assert.Equal(t, http.StatusForbidden, apperr.StatusCode(err))
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	userRepo.On("Delete", mock.Anything, int64(2)).Return(nil)
	superadmin := Principal{UserID: 1, Role: models.RoleSuperadmin}
	deleted, err := svc.Delete(context.Background(), superadmin, "erin")
	assert.NoError(t, err)
	assert.Equal(t, "erin", deleted.Username)
}

func TestGetByUsernameMapsMissingTo404(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByUsername(context.Background(), "ghost")
	assert.Equal(t, http.StatusNotFound, apperr.StatusCode(err))
	assert.EqualError(t, err, "User not found")
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewUserService(userRepo)

	self := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	other := &models.User{ID: 2, Username: "bob"}
	userRepo.On("FindByID", mock.Anything, int64(1)).Return(self, nil)
	userRepo.On("FindByUsernameOrEmail", mock.Anything, "bob", "").Return(other, nil)

	username := "bob"
	_, err := svc.UpdateProfile(context.Background(), 1, dto.UpdateProfileRequest{Username: &username})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusCode(err))
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

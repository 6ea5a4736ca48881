package service

import (
	"context"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/auth"
	"mangashelf/internal/http-api/repository"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService owns the session lifecycle: issue on login, rotate on refresh,
// revoke on logout. A refresh token is honored only when it verifies AND
// exactly matches the side-store value for its user, which makes rotation and
// logout effective immediately rather than at natural expiry.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	tokens    TokenService
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	tokens TokenService,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

// Login authenticates by email and issues a fresh token pair.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email takes a dummy compare so both failure paths cost the
		// same (timing attack mitigation).
		auth.VerifyPassword(auth.DummyHash, password)
		return nil, apperr.NewAuthentication("email or password is incorrect")
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, apperr.NewAuthentication("email or password is incorrect")
	}

	return s.issuePair(ctx, Principal{UserID: user.ID, Role: user.Role})
}

// Refresh rotates both tokens. The presented refresh token must pass
// signature/expiry verification and equal the side-store's current value;
// the stale one stops working the moment the new pair is stored.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.NewAuthentication("Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.NewAuthentication("Invalid refresh token")
	}

	stored, err := s.tokenRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if stored != refreshToken {
		return nil, apperr.NewAuthentication("Invalid refresh token")
	}

	return s.issuePair(ctx, Principal{UserID: user.ID, Role: user.Role})
}

// Logout is best-effort and idempotent: an unverifiable or absent token still
// counts as logged out.
func (s *authService) Logout(ctx context.Context, refreshToken string) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return
	}
	// Clearing the side-store entry is what invalidates the session; the
	// error is ignored on purpose, logout always succeeds for the caller.
	s.tokenRepo.Delete(ctx, claims.UserID)
}

// issuePair mints both tokens, then persists the refresh token as the sole
// valid one for the user. Mint-then-persist is an explicit two-step protocol:
// a crash in between leaves the previous refresh token valid until overwrite.
func (s *authService) issuePair(ctx context.Context, p Principal) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(p)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(p)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Save(ctx, p.UserID, refreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

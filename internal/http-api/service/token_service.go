package service

import (
	"errors"
	"time"

	"mangashelf/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Principal is the authenticated identity attached to a request after
// session verification.
type Principal struct {
	UserID int64
	Role   string
}

// Claims embedded in both token classes. Expiry is Unix seconds; clock skew
// is not compensated for.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and validates the two token classes. Access tokens are
// short-lived and irrevocable before expiry; refresh tokens are long-lived
// and validated against the side-store by AuthService. Each class is signed
// with its own secret so one can never stand in for the other.
type TokenService interface {
	IssueAccessToken(p Principal) (string, error)
	IssueRefreshToken(p Principal) (string, error)
	VerifyAccessToken(token string) (*Claims, error)
	VerifyRefreshToken(token string) (*Claims, error)
}

type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,  // 15 minutes
		refreshTTL:    cfg.RefreshTokenTTL, // 3 days
	}
}

func (s *tokenService) IssueAccessToken(p Principal) (string, error) {
	return s.issue(p, s.accessTTL, s.accessSecret)
}

func (s *tokenService) IssueRefreshToken(p Principal) (string, error) {
	// The caller is responsible for persisting the result as the sole valid
	// refresh token for the user; minting has no side effect.
	return s.issue(p, s.refreshTTL, s.refreshSecret)
}

func (s *tokenService) issue(p Principal, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: p.UserID,
		Role:   p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *tokenService) VerifyAccessToken(token string) (*Claims, error) {
	return s.verify(token, s.accessSecret)
}

func (s *tokenService) VerifyRefreshToken(token string) (*Claims, error) {
	return s.verify(token, s.refreshSecret)
}

// verify returns the decoded claims, or an error for any malformed, forged or
// expired token. Callers treat every error as "unauthenticated".
func (s *tokenService) verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

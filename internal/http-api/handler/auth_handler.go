package handler

import (
	"net/http"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/middleware"
	"mangashelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// RefreshTokenCookie carries the long-lived token; it is only read by the
// refresh and logout routes.
const RefreshTokenCookie = "refreshToken"

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /authentications.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	setAuthCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": dto.TokenPairResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	})
}

// Refresh handles PUT /authentications: rotates both tokens against the
// side-store.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		apperr.Respond(c, apperr.NewAuthentication("Unauthenticated"))
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	setAuthCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": dto.TokenPairResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	})
}

// Logout handles DELETE /authentications. Best-effort: clears the side-store
// entry when the cookie verifies and always reports success, so calling it
// twice in a row is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(RefreshTokenCookie); err == nil && refreshToken != "" {
		h.authService.Logout(c.Request.Context(), refreshToken)
	}

	clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logout success",
	})
}

func setAuthCookies(c *gin.Context, pair *service.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken, 0, "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, 0, "/", "", false, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", false, true)
}

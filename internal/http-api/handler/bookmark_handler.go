package handler

import (
	"net/http"
	"strconv"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/middleware"
	"mangashelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// List handles GET /bookmarks: the caller's followed series.
func (h *BookmarkHandler) List(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)

	var query dto.ListBookmarksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	page, err := h.bookmarkService.List(c.Request.Context(), principal.UserID, query)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"totalPages": page.TotalPages,
			"count":      page.Count,
			"series":     dto.NewSerieListItems(page.Series),
		},
	})
}

// Create handles POST /bookmarks.
func (h *BookmarkHandler) Create(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)

	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	if err := h.bookmarkService.Create(c.Request.Context(), principal.UserID, req.SerieID); err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"message": "Bookmark created successfully",
		},
	})
}

// Delete handles DELETE /bookmarks/:id where id is the serie id.
func (h *BookmarkHandler) Delete(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)

	serieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperr.Respond(c, apperr.NewValidation("invalid serie id"))
		return
	}

	if err := h.bookmarkService.Delete(c.Request.Context(), principal.UserID, serieID); err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"message": "Bookmark deleted successfully",
		},
	})
}

package handler

import (
	"net/http"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/middleware"
	"mangashelf/internal/http-api/repository"
	"mangashelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ChapterHandler struct {
	chapterService service.ChapterService
}

func NewChapterHandler(chapterService service.ChapterService) *ChapterHandler {
	return &ChapterHandler{chapterService: chapterService}
}

// List handles GET /chapters.
func (h *ChapterHandler) List(c *gin.Context) {
	var query dto.ListChaptersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	query.Normalize(10)
	chapters, total, err := h.chapterService.List(c.Request.Context(), query)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"totalPages": dto.TotalPages(total, query.Limit),
			"data":       dto.NewChapterListItems(chapters),
		},
	})
}

// Get handles GET /chapters/:id (id or slug). The body is returned as lines.
func (h *ChapterHandler) Get(c *gin.Context) {
	detail, err := h.chapterService.Get(c.Request.Context(), repository.ParseIdent(c.Param("id")))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	item := dto.NewChapterListItem(*detail.Chapter)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":        item.ID,
			"title":     item.Title,
			"slug":      item.Slug,
			"content":   detail.Content,
			"chapter":   item.Chapter,
			"status":    item.Status,
			"createdAt": item.CreatedAt,
			"updatedAt": item.UpdatedAt,
			"user":      item.User,
			"serie":     item.Serie,
		},
	})
}

// Create handles POST /chapters.
func (h *ChapterHandler) Create(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)

	var req dto.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	chapter, err := h.chapterService.Create(c.Request.Context(), principal, req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":    chapter.ID,
			"title": chapter.Title,
			"slug":  chapter.Slug,
		},
	})
}

// Update handles PATCH /chapters/:id (id or slug).
func (h *ChapterHandler) Update(c *gin.Context) {
	var req dto.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	chapter, err := h.chapterService.Update(c.Request.Context(), repository.ParseIdent(c.Param("id")), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":    chapter.ID,
			"title": chapter.Title,
			"slug":  chapter.Slug,
		},
	})
}

// Delete handles DELETE /chapters/:id (id or slug).
func (h *ChapterHandler) Delete(c *gin.Context) {
	chapter, err := h.chapterService.Delete(c.Request.Context(), repository.ParseIdent(c.Param("id")))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":    chapter.ID,
			"title": chapter.Title,
			"slug":  chapter.Slug,
		},
	})
}

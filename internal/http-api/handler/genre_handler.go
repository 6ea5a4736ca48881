package handler

import (
	"net/http"

	"mangashelf/internal/http-api/apperr"
	"mangashelf/internal/http-api/dto"
	"mangashelf/internal/http-api/repository"
	"mangashelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreService service.GenreService
}

func NewGenreHandler(genreService service.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// GetAll handles GET /genres/all: the full genre index with series counts.
func (h *GenreHandler) GetAll(c *gin.Context) {
	genres, err := h.genreService.ListAll(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   genres,
	})
}

// List handles GET /genres.
func (h *GenreHandler) List(c *gin.Context) {
	var query dto.ListGenresQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	query.Normalize(10)
	genres, total, err := h.genreService.List(c.Request.Context(), query)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"totalPages": dto.TotalPages(total, query.Limit),
			"data":       genres,
		},
	})
}

// Get handles GET /genres/:id (id or slug).
func (h *GenreHandler) Get(c *gin.Context) {
	genre, err := h.genreService.Get(c.Request.Context(), repository.ParseIdent(c.Param("id")))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   genre,
	})
}

// Series handles GET /genres/:id/series.
func (h *GenreHandler) Series(c *gin.Context) {
	var page dto.PaginationQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	page.Normalize(10)
	genre, series, total, err := h.genreService.Series(c.Request.Context(), repository.ParseIdent(c.Param("id")), page)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"totalPages": dto.TotalPages(total, page.Limit),
			"genre": gin.H{
				"id":   genre.ID,
				"name": genre.Name,
				"slug": genre.Slug,
			},
			"series": dto.NewSerieListItems(series),
		},
	})
}

// Create handles POST /genres.
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	genre, err := h.genreService.Create(c.Request.Context(), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":   genre.ID,
			"name": genre.Name,
			"slug": genre.Slug,
		},
	})
}

// Update handles PATCH /genres/:id (id or slug).
func (h *GenreHandler) Update(c *gin.Context) {
	var req dto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	genre, err := h.genreService.Update(c.Request.Context(), repository.ParseIdent(c.Param("id")), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":   genre.ID,
			"name": genre.Name,
			"slug": genre.Slug,
		},
	})
}

// Delete handles DELETE /genres/:id (id or slug).
func (h *GenreHandler) Delete(c *gin.Context) {
	genre, err := h.genreService.Delete(c.Request.Context(), repository.ParseIdent(c.Param("id")))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":   genre.ID,
			"name": genre.Name,
			"slug": genre.Slug,
		},
	})
}

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

type SerieHandler struct {
	serieService service.SerieService
}

func NewSerieHandler(serieService service.SerieService) *SerieHandler {
	return &SerieHandler{serieService: serieService}
}

// Latest handles GET /series/latest.
func (h *SerieHandler) Latest(c *gin.Context) {
	var page dto.PaginationQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	page.Normalize(10)
	series, total, err := h.serieService.Latest(c.Request.Context(), page)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"totalPages": dto.TotalPages(total, page.Limit),
			"data":       dto.NewSerieListItems(series),
		},
	})
}

// All handles GET /series/all: the bare catalog index.
func (h *SerieHandler) All(c *gin.Context) {
	series, err := h.serieService.ListAll(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	index := make([]gin.H, 0, len(series))
	for _, s := range series {
		index = append(index, gin.H{"id": s.ID, "title": s.Title, "slug": s.Slug})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   index,
	})
}

// List handles GET /series.
func (h *SerieHandler) List(c *gin.Context) {
	var query dto.ListSeriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	query.Normalize(10)
	series, total, err := h.serieService.List(c.Request.Context(), query)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"totalPages": dto.TotalPages(total, query.Limit),
			"data":       dto.NewSerieListItems(series),
		},
	})
}

// Get handles GET /series/:id (id or slug). Runs behind Identify, so an
// anonymous caller still gets the serie with isBookmarked=false.
func (h *SerieHandler) Get(c *gin.Context) {
	var viewer *service.Principal
	if principal, ok := middleware.PrincipalFrom(c); ok {
		viewer = &principal
	}

	detail, err := h.serieService.Get(c.Request.Context(), repository.ParseIdent(c.Param("id")), viewer)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	serie := detail.Serie
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":            serie.ID,
			"title":         serie.Title,
			"slug":          serie.Slug,
			"alternative":   serie.Alternative,
			"imageUrl":      serie.ImageURL,
			"description":   serie.Description,
			"status":        serie.Status,
			"seriesType":    serie.SeriesType,
			"seriesStatus":  serie.SeriesStatus,
			"rating":        serie.Rating,
			"released":      serie.Released,
			"author":        serie.Author,
			"artist":        serie.Artist,
			"serialization": serie.Serialization,
			"createdAt":     serie.CreatedAt,
			"updatedAt":     serie.UpdatedAt,
			"genres":        serie.Genres,
			"user": gin.H{
				"username": serie.User.Username,
			},
			"bookmarks": dto.SerieBookmarks{
				Count:        detail.BookmarkCount,
				IsBookmarked: detail.IsBookmarked,
			},
		},
	})
}

// Create handles POST /series.
func (h *SerieHandler) Create(c *gin.Context) {
	principal, _ := middleware.PrincipalFrom(c)

	var req dto.CreateSerieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	serie, err := h.serieService.Create(c.Request.Context(), principal, req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":       serie.ID,
			"title":    serie.Title,
			"slug":     serie.Slug,
			"imageUrl": serie.ImageURL,
			"userId":   serie.UserID,
		},
	})
}

// Update handles PATCH /series/:id (id or slug).
func (h *SerieHandler) Update(c *gin.Context) {
	var req dto.UpdateSerieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.NewValidation(err.Error()))
		return
	}

	serie, err := h.serieService.Update(c.Request.Context(), repository.ParseIdent(c.Param("id")), req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":       serie.ID,
			"title":    serie.Title,
			"slug":     serie.Slug,
			"imageUrl": serie.ImageURL,
			"userId":   serie.UserID,
		},
	})
}

// Delete handles DELETE /series/:id (id or slug).
func (h *SerieHandler) Delete(c *gin.Context) {
	serie, err := h.serieService.Delete(c.Request.Context(), repository.ParseIdent(c.Param("id")))
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"id":    serie.ID,
			"title": serie.Title,
			"slug":  serie.Slug,
		},
	})
}

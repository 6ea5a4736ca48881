package router

import (
	"mangashelf/internal/config"
	"mangashelf/internal/http-api/handler"
	"mangashelf/internal/http-api/middleware"
	"mangashelf/internal/http-api/models"
	"mangashelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Genre    *handler.GenreHandler
	Serie    *handler.SerieHandler
	Chapter  *handler.ChapterHandler
	Bookmark *handler.BookmarkHandler
}

// New builds the gin engine with all routes mounted. Catalog reads are
// public; catalog writes deny the plain "user" role; profile and bookmark
// routes only require a session.
func New(cfg *config.Config, tokens service.TokenService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())

	authentications := r.Group("/authentications")
	{
		authentications.POST("", middleware.RateLimit(cfg.LoginRatePerMinute), h.Auth.Login)
		authentications.PUT("", h.Auth.Refresh)
		authentications.DELETE("", h.Auth.Logout)
	}

	users := r.Group("/users")
	{
		users.POST("/register", h.User.Register)
		users.GET("/me", middleware.Auth(tokens), h.User.Profile)
		users.PATCH("/me", middleware.Auth(tokens), h.User.UpdateProfile)

		staff := users.Group("", middleware.Auth(tokens, models.RoleUser))
		{
			staff.GET("", h.User.List)
			staff.POST("", h.User.Create)
			staff.GET("/:username", h.User.Get)
			staff.PATCH("/:username", h.User.Update)
			staff.DELETE("/:username", h.User.Delete)
		}
	}

	genres := r.Group("/genres")
	{
		genres.GET("/all", h.Genre.GetAll)
		genres.GET("", h.Genre.List)
		genres.GET("/:id", h.Genre.Get)
		genres.GET("/:id/series", h.Genre.Series)

		genres.POST("", middleware.Auth(tokens, models.RoleUser), h.Genre.Create)
		genres.PATCH("/:id", middleware.Auth(tokens, models.RoleUser), h.Genre.Update)
		genres.DELETE("/:id", middleware.Auth(tokens, models.RoleUser), h.Genre.Delete)
	}

	series := r.Group("/series")
	{
		series.GET("/latest", h.Serie.Latest)
		series.GET("/all", h.Serie.All)
		series.GET("", h.Serie.List)
		series.GET("/:id", middleware.Identify(tokens), h.Serie.Get)

		series.POST("", middleware.Auth(tokens, models.RoleUser), h.Serie.Create)
		series.PATCH("/:id", middleware.Auth(tokens, models.RoleUser), h.Serie.Update)
		series.DELETE("/:id", middleware.Auth(tokens, models.RoleUser), h.Serie.Delete)
	}

	chapters := r.Group("/chapters")
	{
		chapters.GET("", h.Chapter.List)
		chapters.GET("/:id", h.Chapter.Get)

		chapters.POST("", middleware.Auth(tokens, models.RoleUser), h.Chapter.Create)
		chapters.PATCH("/:id", middleware.Auth(tokens, models.RoleUser), h.Chapter.Update)
		chapters.DELETE("/:id", middleware.Auth(tokens, models.RoleUser), h.Chapter.Delete)
	}

	bookmarks := r.Group("/bookmarks", middleware.Auth(tokens))
	{
		bookmarks.GET("", h.Bookmark.List)
		bookmarks.POST("", h.Bookmark.Create)
		// :id is the serie id, mirroring the POST body.
		bookmarks.DELETE("/:id", h.Bookmark.Delete)
	}

	return r
}

package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"paintpro-backend/internal/config"
	"paintpro-backend/internal/domains/content"
	"paintpro-backend/internal/shared/middleware"
	"paintpro-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	registerPages(router, c)
	registerAPI(router, c)

	return router
}

func registerPages(router *gin.Engine, c *container.Container) {
	pages := c.Handlers.Pages

	router.GET("/", pages.Home)
	router.GET("/about", pages.About)
	router.GET("/services", pages.Services)
	router.GET("/areas-served", pages.AreasServed)
	router.GET("/contact", pages.Contact)
	router.GET("/blog", pages.Blog)
	router.GET("/blog/:id", pages.BlogPost)
}

func registerAPI(router *gin.Engine, c *container.Container) {
	h := c.Handlers
	admin := middleware.AdminAuth(c.JWTManager)

	// Editors poll these endpoints; stale intermediaries must never mask a
	// just-saved version.
	api := router.Group("/api")
	api.Use(middleware.NoCache())

	api.POST("/auth/login", h.Auth.Login)

	// Single-payload sections share one handler parameterized by section key.
	for _, key := range content.SimpleSections {
		path := "/" + string(key)
		api.GET(path, h.Content.Get(key))
		api.PUT(path, admin, h.Content.Put(key))
	}

	api.GET("/services", h.Services.Get)
	api.PUT("/services", admin, h.Services.Put)
	api.POST("/services", admin, h.Services.Post)
	api.DELETE("/services", admin, h.Services.Delete)
	api.PATCH("/services", admin, h.Services.Patch)

	api.GET("/projects", h.Projects.Get)
	api.PUT("/projects", admin, h.Projects.Put)
	api.POST("/projects", admin, h.Projects.Post)
	api.DELETE("/projects", admin, h.Projects.Delete)
	api.PATCH("/projects", admin, h.Projects.Patch)

	api.GET("/clients", h.Clients.Get)
	api.PUT("/clients", admin, h.Clients.Put)
	api.POST("/clients", admin, h.Clients.Post)
	api.DELETE("/clients", admin, h.Clients.Delete)
	api.PATCH("/clients", admin, h.Clients.Patch)

	api.GET("/blogs", h.Blog.List)
	api.GET("/blogs/:id", h.Blog.Get)
	api.POST("/blogs", admin, h.Blog.Post)
	api.PUT("/blogs", admin, h.Blog.Put)
	api.DELETE("/blogs", admin, h.Blog.Delete)

	api.GET("/videos", h.Video.List)
	api.GET("/videos/:id", h.Video.Get)
	api.POST("/videos", admin, h.Video.Post)
	api.DELETE("/videos", admin, h.Video.Delete)

	api.POST("/upload", admin, h.Upload.Post)

	api.GET("/health", healthHandler(c))
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"backend": c.Config.Content.Backend,
			"time":    time.Now().UTC(),
		}

		if c.Config.Content.Backend == config.BackendPostgres {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = err.Error()
				ctx.JSON(http.StatusServiceUnavailable, status)
				return
			}
		}

		ctx.JSON(http.StatusOK, status)
	}
}

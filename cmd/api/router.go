package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
	"blog-backend/pkg/jwt"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupPostRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
	}

	write := authors.Group("")
	write.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRole(jwt.RoleEditor, jwt.RoleAdmin),
	)
	{
		write.POST("", c.AuthorHandler.Create)
		write.PATCH("/:id", c.AuthorHandler.Update)
		write.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.GetByID)
	}

	write := posts.Group("")
	write.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRole(jwt.RoleEditor, jwt.RoleAdmin),
	)
	{
		write.POST("", c.PostHandler.Create)
		write.PATCH("/:id", c.PostHandler.Update)
		write.DELETE("/:id", c.PostHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok", "cache": "ok"}

		// cache outage degrades performance only
		if err := c.Cache.Ping(checkCtx); err != nil {
			checks["cache"] = err.Error()
		}
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = err.Error()
			response.ErrorWithDetails(ctx, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database unavailable", checks)
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"service": c.Config.App.Name,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}

// Package handler provides the HTTP handlers of the blog post API.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	BlogPost *BlogPostHandler
	Health   *HealthHandler
	logger   *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, logger *logger.Logger) *Handler {
	return &Handler{
		BlogPost: NewBlogPostHandler(svc.BlogPost, logger),
		Health:   NewHealthHandler(svc.Health, logger),
		logger:   logger,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health.Check)

	posts := r.Group("/blog-posts")
	{
		posts.GET("", h.BlogPost.List)
		posts.GET("/:id", h.BlogPost.Get)
		posts.POST("", h.BlogPost.Create)
		posts.PUT("/:id", h.BlogPost.Update)
		posts.DELETE("/:id", h.BlogPost.Delete)
	}
}

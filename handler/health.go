package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/net/resp"
	"github.com/ncobase/blogpost/service"
)

// HealthHandler reports datastore reachability.
type HealthHandler struct {
	svc    *service.HealthService
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(svc *service.HealthService, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Check handles the health probe.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.svc.Check(c.Request.Context()); err != nil {
		h.logger.Warn(c.Request.Context(), "health check failed", "error", err)
		resp.Fail(c.Writer, resp.ServiceUnavailable(""))
		return
	}

	resp.Success(c.Writer, map[string]string{"status": "healthy"})
}

package handlers

import (
	xhttp "github.com/Bigsouley03/cat-payment-app/pkg/http"
	"github.com/Bigsouley03/cat-payment-app/pkg/logger"
	"github.com/fasthttp/router"
)

type HealthService interface {
	Get() error
}
type HealthHandler struct {
	healthService HealthService
}

func RegisterHealthRoutes(e *router.Group, h *HealthHandler) {
	e.GET("/health", h.GetHealth)
}

func NewHealthHandler(healthService HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

func (h *HealthHandler) GetHealth(ctx *xhttp.RequestCtx) {
	if err := h.healthService.Get(); err != nil {
		logger.Error("health check failed", "error", err)
		ctx.Response.SetStatusCode(xhttp.StatusInternalServerError)
		ctx.Response.SetBodyString("unhealthy")
		return
	}
	ctx.Response.SetBodyString("success")
}

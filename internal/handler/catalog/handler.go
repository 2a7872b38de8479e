package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/handler"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
)

type catalogService interface {
	ListServices(ctx context.Context) ([]*model.Service, error)
}

type availabilityService interface {
	ListAvailable(ctx context.Context, date string) ([]*model.Service, error)
}

type Handler struct {
	catalog      catalogService
	availability availabilityService
}

func NewHandler(catalog catalogService, availability availabilityService) *Handler {
	return &Handler{
		catalog:      catalog,
		availability: availability,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/services")
	{
		services.GET("", h.ListServices)
		services.GET("/available", h.ListAvailable)
	}
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

// ListAvailable serves the per-date availability projection. The date query
// parameter is passed through as-is: an absent or unknown date matches no
// bookings, so every treatment reports all slots open.
func (h *Handler) ListAvailable(c *gin.Context) {
	date := c.Query("date")

	services, err := h.availability.ListAvailable(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

package booking

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/handler"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
)

type bookingService interface {
	CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingResult, error)
	ListByPatient(ctx context.Context, email string) ([]*model.Booking, error)
}

type Handler struct {
	service bookingService
}

func NewHandler(service bookingService) *Handler {
	return &Handler{service: service}
}

// CreateBooking registers a booking. A duplicate triple is not an HTTP error:
// the response reports success=false and carries the existing booking so the
// client can display it.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("patientEmail")

	bookings, err := h.service.ListByPatient(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}

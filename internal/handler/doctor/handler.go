package doctor

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/handler"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	doctorservice "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/doctor"
)

type doctorService interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	DeleteDoctor(ctx context.Context, email string) error
}

type Handler struct {
	service doctorService
}

func NewHandler(service doctorService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", h.CreateDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.DELETE("/:email", h.DeleteDoctor)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doctor, err := h.service.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(doctor))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")

	if err := h.service.DeleteDoctor(c.Request.Context(), email); err != nil {
		if errors.Is(err, doctorservice.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("doctor not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": email}))
}

package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/handler"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	userservice "github.com/abdullah-masud/Doctors-Portal-Server/internal/service/user"
)

type userService interface {
	UpsertUser(ctx context.Context, email string, req *model.UpsertUserRequest) (*model.User, string, error)
	PromoteToAdmin(ctx context.Context, email string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}

type Handler struct {
	service userService
}

func NewHandler(service userService) *Handler {
	return &Handler{service: service}
}

// UpsertUser is the account-creation/login endpoint: it stores the profile
// keyed by email and returns a fresh token bound to it.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var req model.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	user, token, err := h.service.UpsertUser(c.Request.Context(), email, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"user":  user,
		"token": token,
	}))
}

func (h *Handler) PromoteToAdmin(c *gin.Context) {
	email := c.Param("email")

	if err := h.service.PromoteToAdmin(c.Request.Context(), email); err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("user not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"email": c.Param("email"), "role": model.RoleAdmin}))
}

// CheckAdmin reports whether the email belongs to an admin. Unknown emails
// answer false rather than erroring.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/handler"
	"github.com/abdullah-masud/Doctors-Portal-Server/pkg/auth"
)

// ContextUserEmail is the gin context key holding the verified caller email.
const ContextUserEmail = "userEmail"

// AdminChecker resolves whether an email belongs to an administrator.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type AuthMiddleware struct {
	jwtSvc       auth.JWTService
	adminChecker AdminChecker
}

func NewAuthMiddleware(jwtSvc auth.JWTService, adminChecker AdminChecker) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSvc:       jwtSvc,
		adminChecker: adminChecker,
	}
}

// Authenticate validates the bearer token and attaches the caller email to
// the context. A missing header is 401; a present but unverifiable token
// (malformed, bad signature, expired) is 403.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		claims, err := m.jwtSvc.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("invalid token"))
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

// RequireAdmin allows the request through only when the authenticated caller
// has the admin role. An email with no user record is treated as non-admin.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)
		if email == "" {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("forbidden"))
			c.Abort()
			return
		}

		isAdmin, err := m.adminChecker.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to check role"))
			c.Abort()
			return
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("forbidden"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelf ensures the email named in the query matches the authenticated
// caller: a user may only ever list their own bookings.
func (m *AuthMiddleware) RequireSelf(queryParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.Query(queryParam)
		if requested == "" || requested != c.GetString(ContextUserEmail) {
			c.JSON(http.StatusForbidden, handler.NewErrorResponse("forbidden"))
			c.Abort()
			return
		}
		c.Next()
	}
}

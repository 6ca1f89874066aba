package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// ContextSessionKey holds the *entity.Session on the gin context.
const ContextSessionKey = "session"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func attachSession(c *gin.Context, s *entity.Session) {
	c.Set(ContextSessionKey, s)
	c.Request = c.Request.WithContext(entity.WithSession(c.Request.Context(), *s))
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's session on the request context.
func AuthMiddleware(users usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed authorization header"})
			return
		}

		session, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrForbidden):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Account is banned"})
			case errors.Is(err, entity.ErrUnauthorized):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
			}
			return
		}

		attachSession(c, session)
		c.Next()
	}
}

// OptionalAuth attaches a session when a valid token is presented and otherwise lets
// the request through anonymously.
func OptionalAuth(users usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if session, err := users.Authenticate(c.Request.Context(), token); err == nil {
				attachSession(c, session)
			}
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := entity.SessionFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		for _, role := range roles {
			if session.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
	}
}

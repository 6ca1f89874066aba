package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// HandleError maps an error kind to its status code. resource names the entity in
// not-found messages.
func HandleError(c *gin.Context, err error, resource string) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: verr.Error(), Errors: verr.Fields})
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, entity.ErrConflict):
		ErrorHandler(c, http.StatusBadRequest, resource+" already exists")
	case errors.Is(err, entity.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, entity.ErrInvalidOTP):
		ErrorHandler(c, http.StatusBadRequest, "Invalid or expired OTP")
	case errors.Is(err, entity.ErrUnauthorized):
		ErrorHandler(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, entity.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "Insufficient permissions")
	case errors.Is(err, entity.ErrEmailDelivery):
		ErrorHandler(c, http.StatusInternalServerError, "Email could not be sent")
	default:
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

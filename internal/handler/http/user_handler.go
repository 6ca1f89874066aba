package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	GetUsers(*gin.Context)
	GetReporters(*gin.Context)
	GetUser(*gin.Context)
	UpdateUserStatus(*gin.Context)
	DeleteUser(*gin.Context)
	ForgotPassword(*gin.Context)
	VerifyOTP(*gin.Context)
	ResetPassword(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles user registration (signup)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if _, err := h.userUsecase.Register(c.Request.Context(), req.ToInput()); err != nil {
		HandleError(c, err, "User")
		return
	}

	MessageHandler(c, http.StatusCreated, "User registered successfully")
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(c, err, "User")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{Token: token, User: user})
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userUsecase.GetUsers(c.Request.Context())
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

func (h *UserHandler) GetReporters(c *gin.Context) {
	users, err := h.userUsecase.GetReporters(c.Request.Context())
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdateUserStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserStatusResponse{Message: "Status updated", User: user})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err, "User")
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted successfully")
}

// ForgotPassword handles the forgot password request
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		HandleError(c, err, "User")
		return
	}
	MessageHandler(c, http.StatusOK, "OTP sent to email")
}

func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}

	if err := h.userUsecase.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		HandleError(c, err, "User")
		return
	}
	MessageHandler(c, http.StatusOK, "OTP verified successfully")
}

// ResetPassword handles the reset password request
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}

	if err := h.userUsecase.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPasswordValue()); err != nil {
		HandleError(c, err, "User")
		return
	}
	MessageHandler(c, http.StatusOK, "Password reset successful")
}

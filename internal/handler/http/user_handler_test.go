package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/mikiasgoitom/newsdesk/internal/handler/http"
	dto "github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/newsdesk/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(h handler.UserHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/status/:id", h.UpdateUserStatus)
	r.DELETE("/users/:id", h.DeleteUser)
	r.POST("/forgot-password", h.ForgotPassword)
	r.POST("/verify-otp", h.VerifyOTP)
	r.POST("/reset-password", h.ResetPassword)
	return r
}

func doJSON(r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupRouter(h)
	payload := dto.RegisterRequest{
		FullName: "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     "Reporter",
	}

	w := doJSON(r, http.MethodPost, "/register", payload)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully", decodeMessage(t, w))
	assert.Equal(t, "Reporter", mockUsecase.LastRegisterInput.Role)
}

func TestRegister_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailCreateUser = true
	h := handler.NewUserHandler(mockUsecase)
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/register", dto.RegisterRequest{FullName: "Test User", Email: "test@example.com", Password: "Password123!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decodeMessage(t, w))

	// missing required fields never reach the usecase
	w = doJSON(r, http.MethodPost, "/register", dto.RegisterRequest{Email: "test@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'FullName' failed on the 'required' tag")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Email: "test@example.com", Password: "Password123!"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock_access_token", resp.Token)
	assert.Equal(t, "mock-user-id", resp.User.ID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailLogin = true
	h := handler.NewUserHandler(mockUsecase)
	r := setupRouter(h)

	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Email: "test@example.com", Password: "Password123!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", decodeMessage(t, w))

	// a malformed body fails the same way
	w2 := doJSON(r, http.MethodPost, "/login", map[string]string{"email": "test@example.com"})
	assert.Equal(t, w.Code, w2.Code)
	assert.Equal(t, w.Body.String(), w2.Body.String())
}

func TestGetUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupRouter(h)
	id := uuid.New().String()

	w := doJSON(r, http.MethodGet, "/users/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
}

func TestGetUser_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailGetByID = true
	h := handler.NewUserHandler(mockUsecase)
	r := setupRouter(h)

	w := doJSON(r, http.MethodGet, "/users/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeMessage(t, w))
}

func TestUpdateUserStatus(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodPut, "/users/status/mock-user-id", dto.StatusRequest{Status: "Banned"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		User    struct {
			Status string `json:"status"`
			Email  string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Status updated", resp.Message)
	assert.Equal(t, "Banned", resp.User.Status)
	assert.Equal(t, "test@example.com", resp.User.Email)

	w = doJSON(r, http.MethodPut, "/users/status/mock-user-id", dto.StatusRequest{Status: "Suspended"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Suspended")

	mockUsecase.ShouldFailUpdateStatus = true
	w = doJSON(r, http.MethodPut, "/users/status/ghost", dto.StatusRequest{Status: "Active"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodDelete, "/users/mock-user-id", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully", decodeMessage(t, w))

	mockUsecase.ShouldFailDeleteUser = true
	w = doJSON(r, http.MethodDelete, "/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForgotPassword(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(*mocks.MockUserUsecase)
		code    int
		message string
	}{
		{"sent", func(*mocks.MockUserUsecase) {}, http.StatusOK, "OTP sent to email"},
		{"unknown email", func(m *mocks.MockUserUsecase) { m.ShouldFailForgotPassword = true }, http.StatusNotFound, "User not found"},
		{"mail failure", func(m *mocks.MockUserUsecase) { m.ShouldFailEmail = true }, http.StatusInternalServerError, "Email could not be sent"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockUserUsecase()
			tc.setup(mockUsecase)
			r := setupRouter(handler.NewUserHandler(mockUsecase))

			w := doJSON(r, http.MethodPost, "/forgot-password", dto.ForgotPasswordRequest{Email: "test@example.com"})
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.message, decodeMessage(t, w))
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/verify-otp", dto.VerifyOTPRequest{Email: "test@example.com", OTP: "123456"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OTP verified successfully", decodeMessage(t, w))

	mockUsecase.ShouldFailVerifyOTP = true
	w = doJSON(r, http.MethodPost, "/verify-otp", dto.VerifyOTPRequest{Email: "test@example.com", OTP: "123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired OTP", decodeMessage(t, w))
}

func TestResetPassword(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/reset-password", map[string]string{"email": "test@example.com", "otp": "123456", "newPassword": "fresh-pass"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password reset successful", decodeMessage(t, w))
	assert.Equal(t, "fresh-pass", mockUsecase.LastNewPassword)

	w = doJSON(r, http.MethodPost, "/reset-password", map[string]string{"email": "test@example.com", "otp": "123456", "password": "other-pass"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "other-pass", mockUsecase.LastNewPassword)

	w = doJSON(r, http.MethodPost, "/reset-password", map[string]string{"email": "test@example.com", "otp": "123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password is required", decodeMessage(t, w))

	mockUsecase.ShouldFailResetPassword = true
	w = doJSON(r, http.MethodPost, "/reset-password", map[string]string{"email": "test@example.com", "otp": "123456", "password": "x-pass"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid or expired OTP", decodeMessage(t, w))
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"
	"healthhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AccountResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountResponse), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, accountID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, accountID, tokenID)
	return args.Error(0)
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*dto.AccountResponse, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountResponse), args.Error(1)
}

func postJSON(t *testing.T, target string, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSignupSuccess(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Signup", mock.Anything, mock.AnythingOfType("*dto.SignupRequest")).
		Return(&dto.AccountResponse{
			ID:       uuid.New(),
			FullName: "Dr. Smith",
			Email:    "smith@example.com",
			Role:     "doctor",
			Status:   "pending",
		}, nil)

	req := postJSON(t, "/api/v1/auth/signup", dto.SignupRequest{
		Name:     "Dr. Smith",
		Email:    "smith@example.com",
		Password: "secret123",
		Role:     "doctor",
	})
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	mockUsecase.AssertExpectations(t)
}

func TestSignupDuplicateEmail(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Signup", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrEmailAlreadyExists)

	req := postJSON(t, "/api/v1/auth/signup", dto.SignupRequest{
		Name:     "Dr. Smith",
		Email:    "smith@example.com",
		Password: "secret123",
		Role:     "doctor",
	})
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	req := postJSON(t, "/api/v1/auth/signup", dto.SignupRequest{
		Name:     "Someone",
		Email:    "someone@example.com",
		Password: "secret123",
		Role:     "nurse",
	})
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignupInvalidBody(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Login", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrInvalidCredentials)

	req := postJSON(t, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "smith@example.com",
		Password: "wrong",
	})
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginPendingApproval(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Login", mock.Anything, mock.Anything).
		Return(nil, usecase.ErrPendingApproval)

	req := postJSON(t, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "smith@example.com",
		Password: "secret123",
	})
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Login", mock.Anything, mock.Anything).
		Return(&dto.LoginResponse{
			Token:     "signed-token",
			ExpiresIn: 86400,
			User: &dto.AccountResponse{
				ID:    uuid.New(),
				Email: "smith@example.com",
				Role:  "doctor",
			},
		}, nil)

	req := postJSON(t, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "smith@example.com",
		Password: "secret123",
	})
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestLogoutWithoutContext(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutSuccess(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	h := NewAuthHandler(mockUsecase, validator.NewValidator())

	accountID := uuid.New()
	mockUsecase.On("Logout", mock.Anything, accountID, "token-123").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	ctx := context.WithValue(req.Context(), middleware.AccountIDKey, accountID)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "token-123")
	rec := httptest.NewRecorder()

	h.Logout(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

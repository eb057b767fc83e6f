package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRoleAllows(t *testing.T) {
	called := false
	handler := RequireRole(entity.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleAdmin))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbids(t *testing.T) {
	called := false
	handler := RequireRole(entity.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RolePatient))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleMissingContext(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleMultipleRoles(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin, entity.RoleDoctor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleDoctor))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleStaff))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContextGetters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), EmailKey, "user@example.com")
	ctx = context.WithValue(ctx, RoleKey, entity.RoleStaff)
	ctx = context.WithValue(ctx, TokenIDKey, "token-123")

	email, ok := GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", email)

	role, ok := GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, entity.RoleStaff, role)

	tokenID, ok := GetTokenIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "token-123", tokenID)

	_, ok = GetAccountIDFromContext(ctx)
	assert.False(t, ok)
}

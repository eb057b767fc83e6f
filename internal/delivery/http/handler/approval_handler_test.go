package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockApprovalUsecase is a mock implementation of usecase.ApprovalUsecase.
type MockApprovalUsecase struct {
	mock.Mock
}

func (m *MockApprovalUsecase) PendingDoctors(ctx context.Context) ([]entity.DoctorProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorProfile), args.Error(1)
}

func (m *MockApprovalUsecase) PendingStaff(ctx context.Context) ([]entity.StaffProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StaffProfile), args.Error(1)
}

func (m *MockApprovalUsecase) PendingAdmins(ctx context.Context) ([]entity.AdminProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AdminProfile), args.Error(1)
}

func (m *MockApprovalUsecase) Approve(ctx context.Context, reviewerID uuid.UUID, role string, profileID uuid.UUID) error {
	args := m.Called(ctx, reviewerID, role, profileID)
	return args.Error(0)
}

func (m *MockApprovalUsecase) Reject(ctx context.Context, reviewerID uuid.UUID, role string, profileID uuid.UUID) error {
	args := m.Called(ctx, reviewerID, role, profileID)
	return args.Error(0)
}

func withReviewer(req *http.Request, reviewerID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.AccountIDKey, reviewerID)
	return req.WithContext(ctx)
}

func TestPendingProfilesByRole(t *testing.T) {
	mockUsecase := new(MockApprovalUsecase)
	h := NewApprovalHandler(mockUsecase)

	mockUsecase.On("PendingDoctors", mock.Anything).
		Return([]entity.DoctorProfile{{DoctorCode: "DOC-001", Status: entity.StatusPending}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/requests/doctor", nil)
	req = mux.SetURLVars(req, map[string]string{"role": "doctor"})
	rec := httptest.NewRecorder()

	h.PendingProfiles(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestPendingProfilesUnknownRole(t *testing.T) {
	mockUsecase := new(MockApprovalUsecase)
	h := NewApprovalHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/requests/patient", nil)
	req = mux.SetURLVars(req, map[string]string{"role": "patient"})
	rec := httptest.NewRecorder()

	h.PendingProfiles(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveSuccess(t *testing.T) {
	mockUsecase := new(MockApprovalUsecase)
	h := NewApprovalHandler(mockUsecase)

	reviewerID := uuid.New()
	profileID := uuid.New()
	mockUsecase.On("Approve", mock.Anything, reviewerID, "doctor", profileID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/requests/doctor/"+profileID.String()+"/approve", nil)
	req = mux.SetURLVars(req, map[string]string{"role": "doctor", "id": profileID.String()})
	rec := httptest.NewRecorder()

	h.Approve(rec, withReviewer(req, reviewerID))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestRejectProfileNotFound(t *testing.T) {
	mockUsecase := new(MockApprovalUsecase)
	h := NewApprovalHandler(mockUsecase)

	reviewerID := uuid.New()
	profileID := uuid.New()
	mockUsecase.On("Reject", mock.Anything, reviewerID, "staff", profileID).
		Return(usecase.ErrProfileNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/requests/staff/"+profileID.String()+"/reject", nil)
	req = mux.SetURLVars(req, map[string]string{"role": "staff", "id": profileID.String()})
	rec := httptest.NewRecorder()

	h.Reject(rec, withReviewer(req, reviewerID))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApproveInvalidProfileID(t *testing.T) {
	mockUsecase := new(MockApprovalUsecase)
	h := NewApprovalHandler(mockUsecase)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/requests/doctor/abc/approve", nil)
	req = mux.SetURLVars(req, map[string]string{"role": "doctor", "id": "abc"})
	rec := httptest.NewRecorder()

	h.Approve(rec, withReviewer(req, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveWithoutReviewerContext(t *testing.T) {
	mockUsecase := new(MockApprovalUsecase)
	h := NewApprovalHandler(mockUsecase)

	profileID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/requests/doctor/"+profileID.String()+"/approve", nil)
	req = mux.SetURLVars(req, map[string]string{"role": "doctor", "id": profileID.String()})
	rec := httptest.NewRecorder()

	h.Approve(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

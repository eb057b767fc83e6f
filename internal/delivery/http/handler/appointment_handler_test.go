package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"
	"healthhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAppointmentUsecase is a mock implementation of usecase.AppointmentUsecase.
type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorProfileResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DoctorProfileResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) Book(ctx context.Context, patientEmail string, req *dto.BookAppointmentRequest) (*entity.Appointment, error) {
	args := m.Called(ctx, patientEmail, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) MyAppointments(ctx context.Context, patientEmail string) ([]entity.Appointment, error) {
	args := m.Called(ctx, patientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, patientEmail string, appointmentID uuid.UUID) error {
	args := m.Called(ctx, patientEmail, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) DoctorAppointments(ctx context.Context, doctorEmail string) ([]entity.Appointment, error) {
	args := m.Called(ctx, doctorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Complete(ctx context.Context, doctorEmail string, appointmentID uuid.UUID) (*entity.PatientHistory, error) {
	args := m.Called(ctx, doctorEmail, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientHistory), args.Error(1)
}

func (m *MockAppointmentUsecase) History(ctx context.Context, patientEmail string) ([]entity.PatientHistory, error) {
	args := m.Called(ctx, patientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientHistory), args.Error(1)
}

func (m *MockAppointmentUsecase) PatientHistory(ctx context.Context, patientCode string) ([]entity.PatientHistory, error) {
	args := m.Called(ctx, patientCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientHistory), args.Error(1)
}

func withEmail(req *http.Request, email string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.EmailKey, email)
	return req.WithContext(ctx)
}

func TestBookSuccess(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Book", mock.Anything, "pat@example.com", mock.AnythingOfType("*dto.BookAppointmentRequest")).
		Return(&entity.Appointment{
			ID:          uuid.New(),
			PatientCode: "PT-001",
			DoctorName:  "Dr. Smith",
			Status:      entity.AppointmentStatusBooked,
		}, nil)

	req := postJSON(t, "/api/v1/patient/appointments", dto.BookAppointmentRequest{
		DoctorID: uuid.New(),
		Date:     "2026-09-15",
		Problem:  "Recurring headaches",
	})
	rec := httptest.NewRecorder()

	h.Book(rec, withEmail(req, "pat@example.com"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestBookWithoutAuthContext(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	req := postJSON(t, "/api/v1/patient/appointments", dto.BookAppointmentRequest{
		DoctorID: uuid.New(),
		Date:     "2026-09-15",
		Problem:  "Recurring headaches",
	})
	rec := httptest.NewRecorder()

	h.Book(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockUsecase.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookDuplicate(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Book", mock.Anything, "pat@example.com", mock.Anything).
		Return(nil, usecase.ErrAlreadyBooked)

	req := postJSON(t, "/api/v1/patient/appointments", dto.BookAppointmentRequest{
		DoctorID: uuid.New(),
		Date:     "2026-09-15",
		Problem:  "Recurring headaches",
	})
	rec := httptest.NewRecorder()

	h.Book(rec, withEmail(req, "pat@example.com"))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookDoctorUnavailable(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("Book", mock.Anything, "pat@example.com", mock.Anything).
		Return(nil, usecase.ErrDoctorUnavailable)

	req := postJSON(t, "/api/v1/patient/appointments", dto.BookAppointmentRequest{
		DoctorID: uuid.New(),
		Date:     "2026-09-15",
		Problem:  "Recurring headaches",
	})
	rec := httptest.NewRecorder()

	h.Book(rec, withEmail(req, "pat@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookMissingFields(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	req := postJSON(t, "/api/v1/patient/appointments", dto.BookAppointmentRequest{
		Date: "2026-09-15",
	})
	rec := httptest.NewRecorder()

	h.Book(rec, withEmail(req, "pat@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelNotFound(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	appointmentID := uuid.New()
	mockUsecase.On("Cancel", mock.Anything, "pat@example.com", appointmentID).
		Return(usecase.ErrAppointmentNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patient/appointments/"+appointmentID.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()

	h.Cancel(rec, withEmail(req, "pat@example.com"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelInvalidID(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patient/appointments/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.Cancel(rec, withEmail(req, "pat@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteReturnsHistory(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	appointmentID := uuid.New()
	mockUsecase.On("Complete", mock.Anything, "doc@example.com", appointmentID).
		Return(&entity.PatientHistory{
			PatientCode:        "PT-001",
			DoctorName:         "Dr. Smith",
			PaymentStatus:      "Paid",
			PrescriptionIssued: true,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctor/appointments/"+appointmentID.String()+"/complete", nil)
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()

	h.Complete(rec, withEmail(req, "doc@example.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestListDoctors(t *testing.T) {
	mockUsecase := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(mockUsecase, validator.NewValidator())

	mockUsecase.On("ListDoctors", mock.Anything).
		Return([]dto.DoctorProfileResponse{
			{DoctorCode: "DOC-001", FullName: "Dr. Smith", Specialization: "Cardiology"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	rec := httptest.NewRecorder()

	h.ListDoctors(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

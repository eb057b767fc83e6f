package handler

import (
	"encoding/json"
	"net/http"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"
	"healthhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// ListDoctors returns the directory of approved doctors
// @Summary List approved doctors
// @Tags Appointments
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *AppointmentHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.appointmentUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// Book creates an appointment with a doctor
// @Summary Book appointment
// @Tags Appointments
// @Security BearerAuth
// @Param request body dto.BookAppointmentRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), email, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.BadRequest(w, "Complete your patient profile before booking")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorUnavailable:
			response.BadRequest(w, "Doctor is not available on that day")
		case usecase.ErrAlreadyBooked:
			response.Error(w, http.StatusConflict, "You already have an appointment with this doctor on that date", nil)
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case usecase.ErrPastDate:
			response.BadRequest(w, "Appointment date cannot be in the past")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// MyAppointments lists the patient's active appointments
// @Summary List own appointments
// @Tags Appointments
// @Security BearerAuth
// @Router /patient/appointments [get]
func (h *AppointmentHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.MyAppointments(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Cancel removes one of the patient's own appointments
// @Summary Cancel appointment
// @Tags Appointments
// @Security BearerAuth
// @Router /patient/appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), email, appointmentID); err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// DoctorAppointments lists the doctor's active appointments
// @Summary List doctor's appointments
// @Tags Appointments
// @Security BearerAuth
// @Router /doctor/appointments [get]
func (h *AppointmentHandler) DoctorAppointments(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.DoctorAppointments(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Complete closes an appointment into the patient's history
// @Summary Complete appointment
// @Tags Appointments
// @Security BearerAuth
// @Router /doctor/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	history, err := h.appointmentUsecase.Complete(r.Context(), email, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", history)
}

// History lists the patient's completed visits
// @Summary Get own visit history
// @Tags Appointments
// @Security BearerAuth
// @Router /patient/history [get]
func (h *AppointmentHandler) History(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	histories, err := h.appointmentUsecase.History(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get history")
		}
		return
	}

	response.Success(w, http.StatusOK, "History retrieved successfully", histories)
}

// PatientHistory lets a doctor or admin view a patient's completed visits
// @Summary Get a patient's visit history
// @Tags Appointments
// @Security BearerAuth
// @Param code path string true "Patient Code"
// @Router /history/{code} [get]
func (h *AppointmentHandler) PatientHistory(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	histories, err := h.appointmentUsecase.PatientHistory(r.Context(), code)
	if err != nil {
		response.InternalServerError(w, "Failed to get history")
		return
	}

	response.Success(w, http.StatusOK, "History retrieved successfully", histories)
}

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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// Create issues a prescription against one of the doctor's appointments
// @Summary Create prescription
// @Tags Prescriptions
// @Security BearerAuth
// @Param request body dto.CreatePrescriptionRequest true "Prescription"
// @Success 201 {object} response.Response
// @Router /doctor/prescriptions [post]
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), email, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

// MyPrescriptions lists the patient's prescriptions
// @Summary List own prescriptions
// @Tags Prescriptions
// @Security BearerAuth
// @Router /patient/prescriptions [get]
func (h *PrescriptionHandler) MyPrescriptions(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescriptions, err := h.prescriptionUsecase.MyPrescriptions(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list prescriptions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

// Check reports whether the doctor already issued a prescription for an appointment
// @Summary Check prescription for appointment
// @Tags Prescriptions
// @Security BearerAuth
// @Param code path string true "Patient Code"
// @Param appointmentId path string true "Appointment ID"
// @Router /doctor/prescriptions/{code}/{appointmentId} [get]
func (h *PrescriptionHandler) Check(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)

	appointmentID, err := uuid.Parse(vars["appointmentId"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	result, err := h.prescriptionUsecase.CheckForAppointment(r.Context(), email, vars["code"], appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to check prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription check completed", result)
}

// Acknowledge marks a prescription as seen by the patient
// @Summary Acknowledge prescription
// @Tags Prescriptions
// @Security BearerAuth
// @Router /patient/prescriptions/{id}/acknowledge [patch]
func (h *PrescriptionHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescriptionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	prescription, err := h.prescriptionUsecase.Acknowledge(r.Context(), email, prescriptionID)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to acknowledge prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription acknowledged", prescription)
}

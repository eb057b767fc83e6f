package handler

import (
	"encoding/json"
	"net/http"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"
	"healthhub/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) submitError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrAccountNotFound:
		response.BadRequest(w, "No account found for this email, sign up first")
	case usecase.ErrPasswordMismatch:
		response.BadRequest(w, "Password does not match the account")
	case usecase.ErrProfileAlreadyExists:
		response.Error(w, http.StatusConflict, "Profile already submitted", nil)
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	default:
		response.InternalServerError(w, "Failed to submit profile")
	}
}

// SubmitDoctorProfile files a doctor profile for admin review
// @Summary Submit doctor profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body dto.SubmitDoctorProfileRequest true "Doctor Profile"
// @Success 201 {object} response.Response
// @Router /profiles/doctor [post]
func (h *ProfileHandler) SubmitDoctorProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.profileUsecase.SubmitDoctorProfile(r.Context(), &req)
	if err != nil {
		h.submitError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Profile submitted for approval", result)
}

// SubmitStaffProfile files a staff profile for admin review
// @Summary Submit staff profile
// @Tags Profiles
// @Router /profiles/staff [post]
func (h *ProfileHandler) SubmitStaffProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitStaffProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.profileUsecase.SubmitStaffProfile(r.Context(), &req)
	if err != nil {
		h.submitError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Profile submitted for approval", result)
}

// SubmitAdminProfile files an admin profile for review by an existing admin
// @Summary Submit admin profile
// @Tags Profiles
// @Router /profiles/admin [post]
func (h *ProfileHandler) SubmitAdminProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitAdminProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.profileUsecase.SubmitAdminProfile(r.Context(), &req)
	if err != nil {
		h.submitError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Profile submitted for approval", result)
}

// RegisterPatient creates a patient account and profile in one step
// @Summary Register patient
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Patient Registration"
// @Success 201 {object} response.Response
// @Router /profiles/patient [post]
func (h *ProfileHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.profileUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already registered", nil)
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", result)
}

// MyPatientProfile returns the authenticated patient's profile
// @Summary Get own patient profile
// @Tags Profiles
// @Security BearerAuth
// @Router /patient/profile [get]
func (h *ProfileHandler) MyPatientProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.profileUsecase.GetPatientProfile(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

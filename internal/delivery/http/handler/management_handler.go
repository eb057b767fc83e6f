package handler

import (
	"encoding/json"
	"net/http"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"
	"healthhub/pkg/validator"

	"github.com/gorilla/mux"
)

type ManagementHandler struct {
	managementUsecase usecase.ManagementUsecase
	validator         *validator.CustomValidator
}

func NewManagementHandler(managementUsecase usecase.ManagementUsecase, validator *validator.CustomValidator) *ManagementHandler {
	return &ManagementHandler{
		managementUsecase: managementUsecase,
		validator:         validator,
	}
}

// Members lists the approved members of one role
// @Summary List approved members
// @Tags Management
// @Security BearerAuth
// @Param role path string true "Role" Enums(admin, doctor, staff, patient)
// @Success 200 {object} response.Response
// @Router /admin/members/{role} [get]
func (h *ManagementHandler) Members(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]

	var (
		data interface{}
		err  error
	)
	switch role {
	case entity.RoleDoctor:
		data, err = h.managementUsecase.ApprovedDoctors(r.Context())
	case entity.RoleStaff:
		data, err = h.managementUsecase.ApprovedStaff(r.Context())
	case entity.RoleAdmin:
		data, err = h.managementUsecase.ApprovedAdmins(r.Context())
	case entity.RolePatient:
		data, err = h.managementUsecase.AllPatients(r.Context())
	default:
		response.BadRequest(w, "Unknown role")
		return
	}
	if err != nil {
		response.InternalServerError(w, "Failed to list members")
		return
	}

	response.Success(w, http.StatusOK, "Members retrieved successfully", data)
}

// AddAdmin creates a pre-approved admin directly
// @Summary Add admin directly
// @Tags Management
// @Security BearerAuth
// @Param request body dto.AddAdminRequest true "Admin"
// @Success 201 {object} response.Response
// @Router /admin/members/admin [post]
func (h *ManagementHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.managementUsecase.AddAdmin(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already registered", nil)
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to add admin")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Admin added successfully", result)
}

// AddPatient creates a pre-approved patient account
// @Summary Add patient directly
// @Tags Management
// @Security BearerAuth
// @Param request body dto.AddPatientRequest true "Patient"
// @Success 201 {object} response.Response
// @Router /admin/members/patient [post]
func (h *ManagementHandler) AddPatient(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.AddPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.managementUsecase.AddPatient(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already registered", nil)
		default:
			response.InternalServerError(w, "Failed to add patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient added successfully", result)
}

// DeleteMember removes a member's profile and account by code
// @Summary Delete member by code
// @Tags Management
// @Security BearerAuth
// @Param role path string true "Role"
// @Param code path string true "Member Code"
// @Success 200 {object} response.Response
// @Router /admin/members/{role}/{code} [delete]
func (h *ManagementHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)

	if err := h.managementUsecase.DeleteByCode(r.Context(), actorID, vars["role"], vars["code"]); err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Member not found")
		case usecase.ErrInvalidRole:
			response.BadRequest(w, "Unknown role")
		default:
			response.InternalServerError(w, "Failed to delete member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Member deleted successfully", nil)
}

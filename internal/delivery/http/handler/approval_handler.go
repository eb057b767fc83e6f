package handler

import (
	"context"
	"net/http"

	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ApprovalHandler struct {
	approvalUsecase usecase.ApprovalUsecase
}

func NewApprovalHandler(approvalUsecase usecase.ApprovalUsecase) *ApprovalHandler {
	return &ApprovalHandler{
		approvalUsecase: approvalUsecase,
	}
}

// PendingProfiles lists submissions awaiting review for one role
// @Summary List pending profile submissions
// @Tags Approval
// @Security BearerAuth
// @Param role path string true "Role" Enums(admin, doctor, staff)
// @Success 200 {object} response.Response
// @Router /admin/requests/{role} [get]
func (h *ApprovalHandler) PendingProfiles(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]

	var (
		data interface{}
		err  error
	)
	switch role {
	case entity.RoleDoctor:
		data, err = h.approvalUsecase.PendingDoctors(r.Context())
	case entity.RoleStaff:
		data, err = h.approvalUsecase.PendingStaff(r.Context())
	case entity.RoleAdmin:
		data, err = h.approvalUsecase.PendingAdmins(r.Context())
	default:
		response.BadRequest(w, "Unknown role")
		return
	}
	if err != nil {
		response.InternalServerError(w, "Failed to list pending profiles")
		return
	}

	response.Success(w, http.StatusOK, "Pending profiles retrieved successfully", data)
}

// Approve accepts a pending submission
// @Summary Approve a profile submission
// @Tags Approval
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/requests/{role}/{id}/approve [post]
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.approvalUsecase.Approve, "Profile approved successfully")
}

// Reject removes a pending submission together with its account
// @Summary Reject a profile submission
// @Tags Approval
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/requests/{role}/{id}/reject [post]
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.approvalUsecase.Reject, "Profile rejected")
}

func (h *ApprovalHandler) review(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, reviewerID uuid.UUID, role string, profileID uuid.UUID) error,
	message string,
) {
	reviewerID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	role := vars["role"]

	profileID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid profile ID")
		return
	}

	if err := action(r.Context(), reviewerID, role, profileID); err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Profile not found")
		case usecase.ErrInvalidRole:
			response.BadRequest(w, "Unknown role")
		default:
			response.InternalServerError(w, "Failed to review profile")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}

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

type StaffTaskHandler struct {
	staffTaskUsecase usecase.StaffTaskUsecase
	validator        *validator.CustomValidator
}

func NewStaffTaskHandler(staffTaskUsecase usecase.StaffTaskUsecase, validator *validator.CustomValidator) *StaffTaskHandler {
	return &StaffTaskHandler{
		staffTaskUsecase: staffTaskUsecase,
		validator:        validator,
	}
}

// StaffList returns the approved staff available for assignment
// @Summary List assignable staff
// @Tags Staff Tasks
// @Security BearerAuth
// @Router /admin/staff [get]
func (h *StaffTaskHandler) StaffList(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffTaskUsecase.StaffList(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

// Assign gives a task to an approved staff member
// @Summary Assign task
// @Tags Staff Tasks
// @Security BearerAuth
// @Param request body dto.AssignTaskRequest true "Task"
// @Success 201 {object} response.Response
// @Router /admin/tasks [post]
func (h *StaffTaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetAccountIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	email, _ := middleware.GetEmailFromContext(r.Context())

	var req dto.AssignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	task, err := h.staffTaskUsecase.Assign(r.Context(), actorID, email, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		default:
			response.InternalServerError(w, "Failed to assign task")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Task assigned successfully", task)
}

// All lists every assigned task
// @Summary List all tasks
// @Tags Staff Tasks
// @Security BearerAuth
// @Router /admin/tasks [get]
func (h *StaffTaskHandler) All(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.staffTaskUsecase.All(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list tasks")
		return
	}

	response.Success(w, http.StatusOK, "Tasks retrieved successfully", tasks)
}

// MyTasks lists the tasks assigned to the authenticated staff member
// @Summary List own tasks
// @Tags Staff Tasks
// @Security BearerAuth
// @Router /staff/tasks [get]
func (h *StaffTaskHandler) MyTasks(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	tasks, err := h.staffTaskUsecase.MyTasks(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff profile not found")
		default:
			response.InternalServerError(w, "Failed to list tasks")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tasks retrieved successfully", tasks)
}

// Delete removes a task
// @Summary Delete task
// @Tags Staff Tasks
// @Security BearerAuth
// @Router /admin/tasks/{id} [delete]
func (h *StaffTaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	if err := h.staffTaskUsecase.Delete(r.Context(), taskID); err != nil {
		switch err {
		case usecase.ErrTaskNotFound:
			response.NotFound(w, "Task not found")
		default:
			response.InternalServerError(w, "Failed to delete task")
		}
		return
	}

	response.Success(w, http.StatusOK, "Task deleted successfully", nil)
}

package handler

import (
	"net/http"

	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
	}
}

// MyBills lists the patient's appointments with their payment state
// @Summary List own bills
// @Tags Billing
// @Security BearerAuth
// @Router /patient/billing [get]
func (h *BillingHandler) MyBills(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bills, err := h.billingUsecase.MyBills(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to list bills")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

// Pay settles the consultation fee for an appointment
// @Summary Pay appointment fee
// @Tags Billing
// @Security BearerAuth
// @Param appointmentId path string true "Appointment ID"
// @Router /patient/billing/{appointmentId}/pay [post]
func (h *BillingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	billing, err := h.billingUsecase.Pay(r.Context(), email, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to pay bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment recorded successfully", billing)
}

package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Problem  string    `json:"problem" validate:"required"`
}

// BillingItemResponse is an appointment merged with its billing state.
// Appointments without a billing row are reported as Pending.
type BillingItemResponse struct {
	AppointmentID        uuid.UUID       `json:"appointment_id"`
	DoctorName           string          `json:"doctor_name"`
	DoctorSpecialization string          `json:"doctor_specialization"`
	Date                 string          `json:"date"`
	ConsultationFee      decimal.Decimal `json:"consultation_fee"`
	BillingStatus        string          `json:"billing_status"`
	BillingID            *uuid.UUID      `json:"billing_id,omitempty"`
	PaidAt               string          `json:"paid_at,omitempty"`
}

package dto

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicineRequest struct {
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Instructions string `json:"instructions" validate:"omitempty"`
}

type CreatePrescriptionRequest struct {
	AppointmentID uuid.UUID         `json:"appointment_id" validate:"required"`
	Medicines     []MedicineRequest `json:"medicines" validate:"required,min=1,dive"`
	Notes         string            `json:"notes" validate:"omitempty"`
}

type PrescriptionExistsResponse struct {
	Exists       bool                 `json:"exists"`
	Prescription *entity.Prescription `json:"prescription,omitempty"`
}

package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillingRepository interface {
	Save(db *gorm.DB, billing *entity.Billing) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Billing, error)
	FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.Billing, error)
}

package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.Prescription, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Prescription, error)
	// FindForDoctor looks up a prescription scoped to the issuing doctor.
	FindForDoctor(db *gorm.DB, patientCode string, appointmentID uuid.UUID, doctorID uuid.UUID) (*entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
}

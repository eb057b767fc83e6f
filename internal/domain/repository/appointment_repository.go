package repository

import (
	"time"

	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindBooked returns the active appointment for the same patient, doctor
	// and date, if any. Used to reject duplicate bookings.
	FindBooked(db *gorm.DB, patientCode string, doctorID uuid.UUID, date time.Time) (*entity.Appointment, error)
	FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.Appointment, error)
	FindBookedByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	// LatestBookedByPatientCode returns the most recent active appointment.
	LatestBookedByPatientCode(db *gorm.DB, patientCode string) (*entity.Appointment, error)
	Delete(db *gorm.DB, appointment *entity.Appointment) error
}

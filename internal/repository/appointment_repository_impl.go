package repository

import (
	"errors"
	"time"

	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindBooked(db *gorm.DB, patientCode string, doctorID uuid.UUID, date time.Time) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where(
		"patient_code = ? AND doctor_id = ? AND date = ? AND status = ?",
		patientCode, doctorID, date, entity.AppointmentStatusBooked,
	).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_code = ?", patientCode).Order("date desc").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBookedByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND status = ?", doctorID, entity.AppointmentStatusBooked).
		Order("date asc").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) LatestBookedByPatientCode(db *gorm.DB, patientCode string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("patient_code = ? AND status = ?", patientCode, entity.AppointmentStatusBooked).
		Order("date desc").First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Delete(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Delete(appointment).Error
}

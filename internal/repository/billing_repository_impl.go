package repository

import (
	"errors"

	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billingRepository struct{}

func NewBillingRepository() domainRepo.BillingRepository {
	return &billingRepository{}
}

func (r *billingRepository) Save(db *gorm.DB, billing *entity.Billing) error {
	return db.Save(billing).Error
}

func (r *billingRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Billing, error) {
	var billing entity.Billing
	err := db.Where("appointment_id = ?", appointmentID).First(&billing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.Billing, error) {
	var billings []entity.Billing
	err := db.Where("patient_code = ?", patientCode).Find(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

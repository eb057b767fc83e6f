package repository

import (
	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"gorm.io/gorm"
)

type patientHistoryRepository struct{}

func NewPatientHistoryRepository() domainRepo.PatientHistoryRepository {
	return &patientHistoryRepository{}
}

func (r *patientHistoryRepository) Create(db *gorm.DB, history *entity.PatientHistory) error {
	return db.Create(history).Error
}

func (r *patientHistoryRepository) FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.PatientHistory, error) {
	var histories []entity.PatientHistory
	err := db.Where("patient_code = ?", patientCode).Order("date desc").Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

package repository

import (
	"healthhub/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientHistoryRepository interface {
	Create(db *gorm.DB, history *entity.PatientHistory) error
	FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.PatientHistory, error)
}

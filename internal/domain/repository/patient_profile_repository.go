package repository

import (
	"healthhub/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByEmail(db *gorm.DB, email string) (*entity.PatientProfile, error)
	FindByCode(db *gorm.DB, code string) (*entity.PatientProfile, error)
	FindAll(db *gorm.DB) ([]entity.PatientProfile, error)
	Delete(db *gorm.DB, profile *entity.PatientProfile) error
}

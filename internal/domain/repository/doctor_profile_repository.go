package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error)
	FindByEmail(db *gorm.DB, email string) (*entity.DoctorProfile, error)
	FindByCode(db *gorm.DB, code string) (*entity.DoctorProfile, error)
	FindByStatus(db *gorm.DB, status string) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	Delete(db *gorm.DB, profile *entity.DoctorProfile) error
}

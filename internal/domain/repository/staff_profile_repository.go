package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffProfileRepository interface {
	Create(db *gorm.DB, profile *entity.StaffProfile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffProfile, error)
	FindByEmail(db *gorm.DB, email string) (*entity.StaffProfile, error)
	FindByCode(db *gorm.DB, code string) (*entity.StaffProfile, error)
	FindByStatus(db *gorm.DB, status string) ([]entity.StaffProfile, error)
	Update(db *gorm.DB, profile *entity.StaffProfile) error
	Delete(db *gorm.DB, profile *entity.StaffProfile) error
}

package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminProfileRepository interface {
	Create(db *gorm.DB, profile *entity.AdminProfile) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AdminProfile, error)
	FindByEmail(db *gorm.DB, email string) (*entity.AdminProfile, error)
	FindByCode(db *gorm.DB, code string) (*entity.AdminProfile, error)
	FindByStatus(db *gorm.DB, status string) ([]entity.AdminProfile, error)
	Update(db *gorm.DB, profile *entity.AdminProfile) error
	Delete(db *gorm.DB, profile *entity.AdminProfile) error
}

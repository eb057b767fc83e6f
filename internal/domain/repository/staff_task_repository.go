package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffTaskRepository interface {
	Create(db *gorm.DB, task *entity.StaffTask) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffTask, error)
	FindAll(db *gorm.DB) ([]entity.StaffTask, error)
	FindByStaffCode(db *gorm.DB, staffCode string) ([]entity.StaffTask, error)
	Delete(db *gorm.DB, task *entity.StaffTask) error
}

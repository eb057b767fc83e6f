package repository

import (
	"errors"

	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffTaskRepository struct{}

func NewStaffTaskRepository() domainRepo.StaffTaskRepository {
	return &staffTaskRepository{}
}

func (r *staffTaskRepository) Create(db *gorm.DB, task *entity.StaffTask) error {
	return db.Create(task).Error
}

func (r *staffTaskRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffTask, error) {
	var task entity.StaffTask
	err := db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *staffTaskRepository) FindAll(db *gorm.DB) ([]entity.StaffTask, error) {
	var tasks []entity.StaffTask
	err := db.Order("assigned_at desc").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *staffTaskRepository) FindByStaffCode(db *gorm.DB, staffCode string) ([]entity.StaffTask, error) {
	var tasks []entity.StaffTask
	err := db.Where("staff_code = ?", staffCode).Order("assigned_at desc").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *staffTaskRepository) Delete(db *gorm.DB, task *entity.StaffTask) error {
	return db.Delete(task).Error
}

package repository

import (
	"errors"

	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffProfileRepository struct{}

func NewStaffProfileRepository() domainRepo.StaffProfileRepository {
	return &staffProfileRepository{}
}

func (r *staffProfileRepository) Create(db *gorm.DB, profile *entity.StaffProfile) error {
	return db.Create(profile).Error
}

func (r *staffProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffProfile, error) {
	var profile entity.StaffProfile
	err := db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *staffProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.StaffProfile, error) {
	var profile entity.StaffProfile
	err := db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *staffProfileRepository) FindByCode(db *gorm.DB, code string) (*entity.StaffProfile, error) {
	var profile entity.StaffProfile
	err := db.Where("staff_code = ?", code).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *staffProfileRepository) FindByStatus(db *gorm.DB, status string) ([]entity.StaffProfile, error) {
	var profiles []entity.StaffProfile
	err := db.Where("status = ?", status).Order("staff_code asc").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *staffProfileRepository) Update(db *gorm.DB, profile *entity.StaffProfile) error {
	return db.Save(profile).Error
}

func (r *staffProfileRepository) Delete(db *gorm.DB, profile *entity.StaffProfile) error {
	return db.Delete(profile).Error
}

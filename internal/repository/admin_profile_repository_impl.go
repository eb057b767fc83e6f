package repository

import (
	"errors"

	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminProfileRepository struct{}

func NewAdminProfileRepository() domainRepo.AdminProfileRepository {
	return &adminProfileRepository{}
}

func (r *adminProfileRepository) Create(db *gorm.DB, profile *entity.AdminProfile) error {
	return db.Create(profile).Error
}

func (r *adminProfileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AdminProfile, error) {
	var profile entity.AdminProfile
	err := db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *adminProfileRepository) FindByEmail(db *gorm.DB, email string) (*entity.AdminProfile, error) {
	var profile entity.AdminProfile
	err := db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *adminProfileRepository) FindByCode(db *gorm.DB, code string) (*entity.AdminProfile, error) {
	var profile entity.AdminProfile
	err := db.Where("admin_code = ?", code).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *adminProfileRepository) FindByStatus(db *gorm.DB, status string) ([]entity.AdminProfile, error) {
	var profiles []entity.AdminProfile
	err := db.Where("status = ?", status).Order("admin_code asc").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *adminProfileRepository) Update(db *gorm.DB, profile *entity.AdminProfile) error {
	return db.Save(profile).Error
}

func (r *adminProfileRepository) Delete(db *gorm.DB, profile *entity.AdminProfile) error {
	return db.Delete(profile).Error
}

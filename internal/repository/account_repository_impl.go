package repository

import (
	"errors"

	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct{}

func NewAccountRepository() domainRepo.AccountRepository {
	return &accountRepository{}
}

func (r *accountRepository) Create(db *gorm.DB, account *entity.Account) error {
	return db.Create(account).Error
}

func (r *accountRepository) FindByEmail(db *gorm.DB, email string) (*entity.Account, error) {
	var account entity.Account
	err := db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdateStatusByEmail(db *gorm.DB, email string, status string) error {
	return db.Model(&entity.Account{}).Where("email = ?", email).Update("status", status).Error
}

func (r *accountRepository) DeleteByEmail(db *gorm.DB, email string) error {
	return db.Where("email = ?", email).Delete(&entity.Account{}).Error
}

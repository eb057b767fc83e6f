package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(db *gorm.DB, account *entity.Account) error
	// FindByEmail returns (nil, nil) when no account matches.
	FindByEmail(db *gorm.DB, email string) (*entity.Account, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Account, error)
	UpdateStatusByEmail(db *gorm.DB, email string, status string) error
	DeleteByEmail(db *gorm.DB, email string) error
}

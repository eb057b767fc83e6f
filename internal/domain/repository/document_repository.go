package repository

import (
	"healthhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(db *gorm.DB, document *entity.Document) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Document, error)
	FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.Document, error)
	FindByPatientAndDoctor(db *gorm.DB, patientCode string, doctorID uuid.UUID) ([]entity.Document, error)
	Delete(db *gorm.DB, document *entity.Document) error
}

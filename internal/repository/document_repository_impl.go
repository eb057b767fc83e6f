package repository

import (
	"errors"

	"healthhub/internal/domain/entity"
	domainRepo "healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(db *gorm.DB, document *entity.Document) error {
	return db.Create(document).Error
}

func (r *documentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := db.Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) FindByPatientCode(db *gorm.DB, patientCode string) ([]entity.Document, error) {
	var documents []entity.Document
	err := db.Where("patient_code = ?", patientCode).Order("uploaded_at desc").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) FindByPatientAndDoctor(db *gorm.DB, patientCode string, doctorID uuid.UUID) ([]entity.Document, error) {
	var documents []entity.Document
	err := db.Where("patient_code = ? AND doctor_id = ?", patientCode, doctorID).
		Order("uploaded_at desc").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) Delete(db *gorm.DB, document *entity.Document) error {
	return db.Delete(document).Error
}

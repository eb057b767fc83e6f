package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is metadata for a file a patient uploaded for their doctor. The
// file itself lives on disk under the configured upload directory.
type Document struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientCode string    `gorm:"type:varchar(20);not null;index" json:"patient_code"`
	PatientName string    `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName  string    `gorm:"type:varchar(255);not null" json:"doctor_name"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FilePath    string    `gorm:"type:text;not null" json:"file_path"`
	FileType    string    `gorm:"type:varchar(100);not null" json:"file_type"`
	Description string    `gorm:"type:text;not null" json:"description"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Document) TableName() string {
	return "documents"
}

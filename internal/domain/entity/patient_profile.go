package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile is created together with the patient account in a single
// transaction. Patients skip the approval queue, so there is no status column.
type PatientProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientCode    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_code"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Address        string    `gorm:"type:text;not null" json:"address"`
	MedicalProblem string    `gorm:"type:text;not null" json:"medical_problem"`
	DateOfBirth    time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Age            int       `gorm:"not null" json:"age"`
	Gender         string    `gorm:"type:varchar(10);not null" json:"gender"`
	Contact        string    `gorm:"type:varchar(20);not null" json:"contact"`
	BloodGroup     string    `gorm:"type:varchar(5);not null" json:"blood_group"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

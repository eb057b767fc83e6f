package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PatientHistory is the immutable snapshot written when a doctor completes an
// appointment. Payment status and the prescription flag are captured at
// completion time and never updated afterwards.
type PatientHistory struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientCode        string          `gorm:"type:varchar(20);not null;index" json:"patient_code"`
	PatientName        string          `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName         string          `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Date               time.Time       `gorm:"type:date;not null" json:"date"`
	MedicalProblem     string          `gorm:"type:text" json:"medical_problem,omitempty"`
	ConsultationFee    decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	PaymentStatus      string          `gorm:"type:varchar(20)" json:"payment_status,omitempty"`
	PrescriptionIssued bool            `gorm:"not null;default:false" json:"prescription_issued"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (PatientHistory) TableName() string {
	return "patient_histories"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingStatus represents the payment state of a bill
type BillingStatus string

const (
	BillingStatusPending BillingStatus = "Pending"
	BillingStatusPaid    BillingStatus = "Paid"
)

// Billing is the payment record for a single appointment. A row is only
// created at first payment; appointments without one are reported as Pending.
type Billing struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	PatientCode     string          `gorm:"type:varchar(20);not null;index" json:"patient_code"`
	PatientName     string          `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorName      string          `gorm:"type:varchar(255);not null" json:"doctor_name"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	AppointmentDate time.Time       `gorm:"type:date;not null" json:"appointment_date"`
	Status          BillingStatus   `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Billing) TableName() string {
	return "billings"
}

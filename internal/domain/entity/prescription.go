package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PrescriptionStatus represents the lifecycle of a prescription
type PrescriptionStatus string

const (
	PrescriptionStatusActive    PrescriptionStatus = "Active"
	PrescriptionStatusCompleted PrescriptionStatus = "Completed"
)

// Medicine is a single line on a prescription, embedded as JSONB.
type Medicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

// MedicineList stores prescription lines as a JSONB array.
type MedicineList []Medicine

func (m MedicineList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *MedicineList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}

	var result []Medicine
	err = json.Unmarshal(bytes, &result)
	*m = MedicineList(result)
	return err
}

// Prescription is issued by a doctor against one of their appointments.
// AcknowledgedAt is set server-side when the patient confirms receipt, so the
// flag survives across devices and sessions.
type Prescription struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"appointment_id"`
	PatientCode    string             `gorm:"type:varchar(20);not null;index" json:"patient_code"`
	PatientName    string             `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName     string             `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Medicines      MedicineList       `gorm:"type:jsonb;not null" json:"medicines"`
	Notes          string             `gorm:"type:text" json:"notes,omitempty"`
	Status         PrescriptionStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	IssuedAt       time.Time          `gorm:"not null" json:"issued_at"`
	AcknowledgedAt *time.Time         `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

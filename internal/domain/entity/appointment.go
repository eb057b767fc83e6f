package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an active appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "Booked"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is an active booking between a patient and a doctor. Doctor name,
// specialization and fee are snapshotted at booking time so later profile edits
// do not rewrite past bookings.
type Appointment struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientCode          string            `gorm:"type:varchar(20);not null;index" json:"patient_code"`
	PatientName          string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID             uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName           string            `gorm:"type:varchar(255);not null" json:"doctor_name"`
	DoctorSpecialization string            `gorm:"type:varchar(100);not null" json:"doctor_specialization"`
	Date                 time.Time         `gorm:"type:date;not null;index" json:"date"`
	Status               AppointmentStatus `gorm:"type:varchar(20);not null;default:'Booked';index" json:"status"`
	ConsultationFee      decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	Problem              string            `gorm:"type:text;not null" json:"problem"`
	CreatedAt            time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsBooked checks if the appointment is still active
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

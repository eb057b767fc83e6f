package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile holds doctor-specific attributes, approved separately from the
// account it is linked to by email.
type DoctorProfile struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorCode      string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"doctor_code"`
	FullName        string          `gorm:"type:varchar(255);not null" json:"full_name"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DateOfBirth     *time.Time      `gorm:"type:date" json:"date_of_birth,omitempty"`
	Age             int             `json:"age,omitempty"`
	Gender          string          `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Qualification   string          `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Experience      string          `gorm:"type:varchar(50)" json:"experience,omitempty"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	AvailableDays   StringList      `gorm:"type:jsonb" json:"available_days,omitempty"`
	AvailableTime   string          `gorm:"type:varchar(50)" json:"available_time,omitempty"`
	Address         string          `gorm:"type:text" json:"address,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// AvailableOn reports whether the doctor consults on the given weekday.
func (p *DoctorProfile) AvailableOn(day time.Weekday) bool {
	return p.AvailableDays.Contains(day.String())
}

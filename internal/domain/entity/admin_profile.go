package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminProfile holds administrator-specific attributes pending approval by an
// existing admin.
type AdminProfile struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdminCode          string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"admin_code"`
	FullName           string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DateOfBirth        *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Age                int        `json:"age,omitempty"`
	Contact            string     `gorm:"type:varchar(20)" json:"contact,omitempty"`
	Address            string     `gorm:"type:text" json:"address,omitempty"`
	BloodGroup         string     `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	EmergencyContact   string     `gorm:"type:varchar(20)" json:"emergency_contact,omitempty"`
	Designation        string     `gorm:"type:varchar(100)" json:"designation,omitempty"`
	Department         string     `gorm:"type:varchar(100)" json:"department,omitempty"`
	JoiningDate        *time.Time `gorm:"type:date" json:"joining_date,omitempty"`
	Qualification      string     `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	Experience         string     `gorm:"type:varchar(50)" json:"experience,omitempty"`
	PreviousExperience string     `gorm:"type:text" json:"previous_experience,omitempty"`
	AvailableDays      StringList `gorm:"type:jsonb" json:"available_days,omitempty"`
	AvailableTime      string     `gorm:"type:varchar(50)" json:"available_time,omitempty"`
	Status             string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminProfile) TableName() string {
	return "admin_profiles"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffTask is a work item an admin assigns to an approved staff member.
type StaffTask struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StaffCode   string    `gorm:"type:varchar(20);not null;index" json:"staff_code"`
	StaffName   string    `gorm:"type:varchar(255);not null" json:"staff_name"`
	Designation string    `gorm:"type:varchar(100)" json:"designation,omitempty"`
	Department  string    `gorm:"type:varchar(100)" json:"department,omitempty"`
	Task        string    `gorm:"type:text;not null" json:"task"`
	AssignedBy  string    `gorm:"type:varchar(255);not null;default:'Admin'" json:"assigned_by"`
	AssignedAt  time.Time `gorm:"autoCreateTime" json:"assigned_at"`
}

func (StaffTask) TableName() string {
	return "staff_tasks"
}

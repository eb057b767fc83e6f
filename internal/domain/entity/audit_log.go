package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID *uuid.UUID `gorm:"type:uuid;index" json:"account_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionSignup              = "account.signup"
	AuditActionLogin               = "account.login"
	AuditActionLogout              = "account.logout"
	AuditActionProfileSubmit       = "profile.submit"
	AuditActionProfileApprove      = "profile.approve"
	AuditActionProfileReject       = "profile.reject"
	AuditActionProfileDelete       = "profile.delete"
	AuditActionPatientRegister     = "patient.register"
	AuditActionAppointmentBook     = "appointment.book"
	AuditActionAppointmentCancel   = "appointment.cancel"
	AuditActionAppointmentComplete = "appointment.complete"
	AuditActionPrescriptionCreate  = "prescription.create"
	AuditActionBillingPay          = "billing.pay"
	AuditActionDocumentUpload      = "document.upload"
	AuditActionTaskAssign          = "task.assign"
)

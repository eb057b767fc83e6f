package entity

import "fmt"

// RoleSequence backs the per-role human-readable code counter. The counter is
// incremented atomically in the same transaction that inserts the profile, so
// codes are unique and strictly increasing per role.
type RoleSequence struct {
	Role      string `gorm:"type:varchar(20);primaryKey" json:"role"`
	LastValue int    `gorm:"not null" json:"last_value"`
}

func (RoleSequence) TableName() string {
	return "role_sequences"
}

// Code prefixes per role
const (
	CodePrefixAdmin   = "ADM"
	CodePrefixDoctor  = "DOC"
	CodePrefixStaff   = "STF"
	CodePrefixPatient = "PT"
)

// CodePrefix returns the human-readable code prefix for a role.
func CodePrefix(role string) string {
	switch role {
	case RoleAdmin:
		return CodePrefixAdmin
	case RoleDoctor:
		return CodePrefixDoctor
	case RoleStaff:
		return CodePrefixStaff
	case RolePatient:
		return CodePrefixPatient
	}
	return ""
}

// FormatCode renders a sequence value as <PREFIX>-NNN, zero-padded to three
// digits (DOC-001, DOC-002, ...). Values past 999 keep their full width.
func FormatCode(role string, n int) string {
	return fmt.Sprintf("%s-%03d", CodePrefix(role), n)
}

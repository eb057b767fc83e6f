package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin doctor staff patient"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AccountResponse struct {
	ID        uuid.UUID               `json:"id"`
	FullName  string                  `json:"full_name"`
	Email     string                  `json:"email"`
	Role      string                  `json:"role"`
	Status    string                  `json:"status"`
	Doctor    *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	Patient   *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expires_in"`
	User      *AccountResponse `json:"user"`
}

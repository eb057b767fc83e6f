package dto

import "github.com/shopspring/decimal"

// Role profile submission requests. Each one re-authenticates the caller with
// the password chosen at signup before the profile is accepted.

type SubmitDoctorProfileRequest struct {
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required"`
	FullName        string          `json:"name" validate:"required,min=2"`
	DateOfBirth     string          `json:"dob" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender          string          `json:"gender" validate:"omitempty"`
	Qualification   string          `json:"qualification" validate:"omitempty"`
	Specialization  string          `json:"specialization" validate:"required"`
	Experience      string          `json:"experience" validate:"omitempty"`
	Phone           string          `json:"phone" validate:"omitempty,min=7,max=20"`
	AvailableDays   []string        `json:"available_days" validate:"omitempty"`
	AvailableTime   string          `json:"available_time" validate:"omitempty"`
	Address         string          `json:"address" validate:"omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee" validate:"required"`
}

type SubmitStaffProfileRequest struct {
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required"`
	FullName         string   `json:"name" validate:"required,min=2"`
	DateOfBirth      string   `json:"dob" validate:"omitempty"`
	Gender           string   `json:"gender" validate:"omitempty"`
	ContactNumber    string   `json:"contact_number" validate:"omitempty,min=7,max=20"`
	Designation      string   `json:"designation" validate:"omitempty"`
	Department       string   `json:"department" validate:"omitempty"`
	Qualification    string   `json:"qualification" validate:"omitempty"`
	Experience       string   `json:"experience" validate:"omitempty"`
	JoiningDate      string   `json:"joining_date" validate:"omitempty"`
	AvailableDays    []string `json:"available_days" validate:"omitempty"`
	AvailableTime    string   `json:"available_time" validate:"omitempty"`
	Address          string   `json:"address" validate:"omitempty"`
	EmergencyContact string   `json:"emergency_contact" validate:"omitempty"`
	BloodGroup       string   `json:"blood_group" validate:"omitempty"`
}

type SubmitAdminProfileRequest struct {
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required"`
	FullName           string   `json:"name" validate:"required,min=2"`
	DateOfBirth        string   `json:"dob" validate:"omitempty"`
	Contact            string   `json:"contact" validate:"omitempty,min=7,max=20"`
	Address            string   `json:"address" validate:"omitempty"`
	BloodGroup         string   `json:"blood_group" validate:"omitempty"`
	EmergencyContact   string   `json:"emergency_contact" validate:"omitempty"`
	Designation        string   `json:"designation" validate:"omitempty"`
	Department         string   `json:"department" validate:"omitempty"`
	JoiningDate        string   `json:"joining_date" validate:"omitempty"`
	Qualification      string   `json:"qualification" validate:"omitempty"`
	Experience         string   `json:"experience" validate:"omitempty"`
	PreviousExperience string   `json:"previous_experience" validate:"omitempty"`
	AvailableDays      []string `json:"available_days" validate:"omitempty"`
	AvailableTime      string   `json:"available_time" validate:"omitempty"`
}

type SubmitProfileResponse struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}

// RegisterPatientRequest creates account and profile in one step; patients do
// not go through the approval queue.
type RegisterPatientRequest struct {
	FullName       string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Address        string `json:"address" validate:"required"`
	MedicalProblem string `json:"medical_problem" validate:"required"`
	DateOfBirth    string `json:"dob" validate:"required"` // Format: YYYY-MM-DD
	Gender         string `json:"gender" validate:"required"`
	Contact        string `json:"contact" validate:"required,min=7,max=20"`
	BloodGroup     string `json:"blood_group" validate:"required"`
}

type DoctorProfileResponse struct {
	DoctorCode      string          `json:"doctor_code"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	Gender          string          `json:"gender,omitempty"`
	Age             int             `json:"age,omitempty"`
	Qualification   string          `json:"qualification,omitempty"`
	Specialization  string          `json:"specialization"`
	Experience      string          `json:"experience,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	AvailableDays   []string        `json:"available_days,omitempty"`
	AvailableTime   string          `json:"available_time,omitempty"`
	Address         string          `json:"address,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Status          string          `json:"status,omitempty"`
}

type PatientProfileResponse struct {
	PatientCode    string `json:"patient_code"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	MedicalProblem string `json:"medical_problem"`
	DateOfBirth    string `json:"dob"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Contact        string `json:"contact"`
	BloodGroup     string `json:"blood_group"`
}

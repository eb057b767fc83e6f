package dto

// AddAdminRequest is the direct-add path: an existing admin creates an already
// approved admin account and profile in one call.
type AddAdminRequest struct {
	FullName           string   `json:"name" validate:"required,min=2"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=6"`
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

// AddPatientRequest creates an auto-approved patient account without a
// profile; the patient completes the profile on first login.
type AddPatientRequest struct {
	FullName string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

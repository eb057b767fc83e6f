package dto

type AssignTaskRequest struct {
	StaffCode string `json:"staff_code" validate:"required"`
	Task      string `json:"task" validate:"required"`
}

// StaffListItem is the short staff record used by the assignment dropdown.
type StaffListItem struct {
	StaffCode   string `json:"staff_code"`
	FullName    string `json:"full_name"`
	Designation string `json:"designation,omitempty"`
	Department  string `json:"department,omitempty"`
}

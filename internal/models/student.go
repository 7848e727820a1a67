package models

// Student is an enrollee profile, paired with a User login record by email
// the same way Teacher is.
type Student struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Course   string `json:"course,omitempty"`
	Status   Status `json:"status"`
	JoinDate string `json:"joinDate"`
}

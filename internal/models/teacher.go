package models

// Status marks a profile as active or inactive.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is a known variant.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Teacher is a staff profile. It is paired with a User login record by email;
// the pairing is written sequentially, not atomically.
type Teacher struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Subject  string `json:"subject"`
	Status   Status `json:"status"`
	JoinDate string `json:"joinDate"`
}

package models

// Role is the closed set of roles the console gates navigation by.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is a login identity in the users collection. The password is stored
// and compared as plain text: the console inherits the storage layout of the
// browser-local original and makes no attempt to harden it.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Sanitized returns a copy with the credential blanked, safe to hand to
// clients.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

package models

import "time"

// AssignmentStatus tracks whether an assignment is visible to students.
type AssignmentStatus string

const (
	AssignmentDraft  AssignmentStatus = "draft"
	AssignmentActive AssignmentStatus = "active"
)

// Valid reports whether the status is a known variant.
func (s AssignmentStatus) Valid() bool {
	return s == AssignmentDraft || s == AssignmentActive
}

// Assignment is coursework published by a teacher. Submissions counts the
// records in the submittedAssignments collection referencing it.
type Assignment struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Course        string           `json:"course"`
	DueDate       string           `json:"dueDate"`
	Status        AssignmentStatus `json:"status"`
	Submissions   int              `json:"submissions"`
	TotalStudents int              `json:"totalStudents"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Submission is a student's answer to an assignment.
type Submission struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	StudentID    string    `json:"studentId"`
	Content      string    `json:"content,omitempty"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

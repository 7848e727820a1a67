package models

import "time"

// Grade scores a student in a course on a 0-100 scale. StudentID and
// CourseID reference the student and course collections but are not
// enforced: deleting a course leaves its grades behind, dangling.
type Grade struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"studentId"`
	CourseID       string    `json:"courseId"`
	Grade          float64   `json:"grade"`
	Remarks        string    `json:"remarks,omitempty"`
	SubmissionDate time.Time `json:"submissionDate"`
}

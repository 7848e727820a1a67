package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
)

// Collection names for coursework.
const (
	AssignmentsCollection = "assignments"
	SubmissionsCollection = "submittedAssignments"
)

// AssignmentRepository manages the assignments collection.
type AssignmentRepository struct {
	store *store.Adapter
}

// NewAssignmentRepository constructs an AssignmentRepository.
func NewAssignmentRepository(adapter *store.Adapter) *AssignmentRepository {
	return &AssignmentRepository{store: adapter}
}

// List returns all assignments in insertion order.
func (r *AssignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.store.Collection(ctx, AssignmentsCollection, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindByID returns the assignment with the given id, if present.
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*models.Assignment, bool, error) {
	assignments, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range assignments {
		if assignments[i].ID == id {
			assignment := assignments[i]
			return &assignment, true, nil
		}
	}
	return nil, false, nil
}

// Create appends the assignment, assigning an id when absent.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	assignments, err := r.List(ctx)
	if err != nil {
		return err
	}
	assignments = append(assignments, *assignment)
	return r.store.SetCollection(ctx, AssignmentsCollection, assignments)
}

// Update replaces the record whose id matches; silent no-op when absent.
func (r *AssignmentRepository) Update(ctx context.Context, updated models.Assignment) (bool, error) {
	assignments, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range assignments {
		if assignments[i].ID == updated.ID {
			assignments[i] = updated
			found = true
		}
	}
	if err := r.store.SetCollection(ctx, AssignmentsCollection, assignments); err != nil {
		return false, err
	}
	return found, nil
}

// Delete removes the record by id; idempotent.
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	assignments, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := assignments[:0]
	for _, assignment := range assignments {
		if assignment.ID != id {
			kept = append(kept, assignment)
		}
	}
	return r.store.SetCollection(ctx, AssignmentsCollection, kept)
}

// SubmissionRepository manages the submittedAssignments collection.
type SubmissionRepository struct {
	store *store.Adapter
}

// NewSubmissionRepository constructs a SubmissionRepository.
func NewSubmissionRepository(adapter *store.Adapter) *SubmissionRepository {
	return &SubmissionRepository{store: adapter}
}

// List returns all submissions in insertion order.
func (r *SubmissionRepository) List(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := r.store.Collection(ctx, SubmissionsCollection, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// ListByAssignment filters submissions for one assignment.
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	submissions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Submission, 0, len(submissions))
	for _, submission := range submissions {
		if submission.AssignmentID == assignmentID {
			matched = append(matched, submission)
		}
	}
	return matched, nil
}

// ListByStudent filters submissions made by one student.
func (r *SubmissionRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Submission, error) {
	submissions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Submission, 0, len(submissions))
	for _, submission := range submissions {
		if submission.StudentID == studentID {
			matched = append(matched, submission)
		}
	}
	return matched, nil
}

// Create appends the submission, assigning an id when absent.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	submissions, err := r.List(ctx)
	if err != nil {
		return err
	}
	submissions = append(submissions, *submission)
	return r.store.SetCollection(ctx, SubmissionsCollection, submissions)
}

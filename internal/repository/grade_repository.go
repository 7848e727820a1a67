package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
)

// GradesCollection names the grade-entry collection.
const GradesCollection = "grades"

// GradeRepository manages the grades collection.
type GradeRepository struct {
	store *store.Adapter
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(adapter *store.Adapter) *GradeRepository {
	return &GradeRepository{store: adapter}
}

// List returns all grades in insertion order.
func (r *GradeRepository) List(ctx context.Context) ([]models.Grade, error) {
	var grades []models.Grade
	if err := r.store.Collection(ctx, GradesCollection, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// ListByStudent filters grades for a single student.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Grade, error) {
	grades, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Grade, 0, len(grades))
	for _, grade := range grades {
		if grade.StudentID == studentID {
			matched = append(matched, grade)
		}
	}
	return matched, nil
}

// FindByID returns the grade with the given id, if present.
func (r *GradeRepository) FindByID(ctx context.Context, id string) (*models.Grade, bool, error) {
	grades, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range grades {
		if grades[i].ID == id {
			grade := grades[i]
			return &grade, true, nil
		}
	}
	return nil, false, nil
}

// Create appends the grade, assigning an id when absent.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	if grade.ID == "" {
		grade.ID = uuid.NewString()
	}
	grades, err := r.List(ctx)
	if err != nil {
		return err
	}
	grades = append(grades, *grade)
	return r.store.SetCollection(ctx, GradesCollection, grades)
}

// Update replaces the record whose id matches; silent no-op when absent.
func (r *GradeRepository) Update(ctx context.Context, updated models.Grade) (bool, error) {
	grades, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range grades {
		if grades[i].ID == updated.ID {
			grades[i] = updated
			found = true
		}
	}
	if err := r.store.SetCollection(ctx, GradesCollection, grades); err != nil {
		return false, err
	}
	return found, nil
}

// Delete removes the record by id; idempotent.
func (r *GradeRepository) Delete(ctx context.Context, id string) error {
	grades, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := grades[:0]
	for _, grade := range grades {
		if grade.ID != id {
			kept = append(kept, grade)
		}
	}
	return r.store.SetCollection(ctx, GradesCollection, kept)
}

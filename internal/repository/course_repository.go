package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
)

// CoursesCollection names the catalogue collection.
const CoursesCollection = "courses"

// CourseRepository manages the courses collection.
type CourseRepository struct {
	store *store.Adapter
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(adapter *store.Adapter) *CourseRepository {
	return &CourseRepository{store: adapter}
}

// List returns all courses in insertion order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.store.Collection(ctx, CoursesCollection, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByID returns the course with the given id, if present.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, bool, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range courses {
		if courses[i].ID == id {
			course := courses[i]
			return &course, true, nil
		}
	}
	return nil, false, nil
}

// Create appends the course, assigning an id when absent.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	courses, err := r.List(ctx)
	if err != nil {
		return err
	}
	courses = append(courses, *course)
	return r.store.SetCollection(ctx, CoursesCollection, courses)
}

// Update replaces the record whose id matches; silent no-op when absent.
func (r *CourseRepository) Update(ctx context.Context, updated models.Course) (bool, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range courses {
		if courses[i].ID == updated.ID {
			courses[i] = updated
			found = true
		}
	}
	if err := r.store.SetCollection(ctx, CoursesCollection, courses); err != nil {
		return false, err
	}
	return found, nil
}

// Delete removes the record by id; idempotent. Grades referencing the course
// are deliberately left in place (no cascade).
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	courses, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := courses[:0]
	for _, course := range courses {
		if course.ID != id {
			kept = append(kept, course)
		}
	}
	return r.store.SetCollection(ctx, CoursesCollection, kept)
}

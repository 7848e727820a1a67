package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
)

// StudentsCollection names the enrollee-profile collection.
const StudentsCollection = "students"

// StudentRepository manages the students collection.
type StudentRepository struct {
	store *store.Adapter
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(adapter *store.Adapter) *StudentRepository {
	return &StudentRepository{store: adapter}
}

// List returns all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.store.Collection(ctx, StudentsCollection, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// FindByID returns the student with the given id, if present.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, bool, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range students {
		if students[i].ID == id {
			student := students[i]
			return &student, true, nil
		}
	}
	return nil, false, nil
}

// FindByEmail returns the student whose stored email matches exactly.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, bool, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range students {
		if students[i].Email == email {
			student := students[i]
			return &student, true, nil
		}
	}
	return nil, false, nil
}

// CreateWithLogin appends the student profile and mirrors a login record into
// the users collection with the default password. Sequential, non-atomic,
// like the teacher variant.
func (r *StudentRepository) CreateWithLogin(ctx context.Context, student *models.Student, defaultPassword string) (*models.User, error) {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}

	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	students = append(students, *student)
	if err := r.store.SetCollection(ctx, StudentsCollection, students); err != nil {
		return nil, err
	}

	login := models.User{
		ID:       uuid.NewString(),
		Name:     student.Name,
		Email:    student.Email,
		Password: defaultPassword,
		Role:     models.RoleStudent,
	}
	var users []models.User
	if err := r.store.Collection(ctx, UsersCollection, &users); err != nil {
		return nil, err
	}
	users = append(users, login)
	if err := r.store.SetCollection(ctx, UsersCollection, users); err != nil {
		return nil, err
	}
	return &login, nil
}

// Update replaces the record whose id matches; silent no-op when absent.
func (r *StudentRepository) Update(ctx context.Context, updated models.Student) (bool, error) {
	students, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range students {
		if students[i].ID == updated.ID {
			students[i] = updated
			found = true
		}
	}
	if err := r.store.SetCollection(ctx, StudentsCollection, students); err != nil {
		return false, err
	}
	return found, nil
}

// Delete removes the record by id; idempotent.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := students[:0]
	for _, student := range students {
		if student.ID != id {
			kept = append(kept, student)
		}
	}
	return r.store.SetCollection(ctx, StudentsCollection, kept)
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
)

// TeachersCollection names the staff-profile collection.
const TeachersCollection = "teachers"

// TeacherRepository manages the teachers collection.
type TeacherRepository struct {
	store *store.Adapter
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(adapter *store.Adapter) *TeacherRepository {
	return &TeacherRepository{store: adapter}
}

// List returns all teachers in insertion order.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := r.store.Collection(ctx, TeachersCollection, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// FindByID returns the teacher with the given id, if present.
func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, bool, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			teacher := teachers[i]
			return &teacher, true, nil
		}
	}
	return nil, false, nil
}

// CreateWithLogin appends the teacher profile and then mirrors a login record
// into the users collection with the provided default password. The two
// writes are sequential, not atomic: a crash in between leaves a profile
// without a login, matching the storage contract this console inherits.
func (r *TeacherRepository) CreateWithLogin(ctx context.Context, teacher *models.Teacher, defaultPassword string) (*models.User, error) {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}

	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	teachers = append(teachers, *teacher)
	if err := r.store.SetCollection(ctx, TeachersCollection, teachers); err != nil {
		return nil, err
	}

	login := models.User{
		ID:       uuid.NewString(),
		Name:     teacher.Name,
		Email:    teacher.Email,
		Password: defaultPassword,
		Role:     models.RoleTeacher,
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
func (r *TeacherRepository) Update(ctx context.Context, updated models.Teacher) (bool, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range teachers {
		if teachers[i].ID == updated.ID {
			teachers[i] = updated
			found = true
		}
	}
	if err := r.store.SetCollection(ctx, TeachersCollection, teachers); err != nil {
		return false, err
	}
	return found, nil
}

// Delete removes the record by id; idempotent. The mirrored login record is
// left untouched, as the original console leaves it.
func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := teachers[:0]
	for _, teacher := range teachers {
		if teacher.ID != id {
			kept = append(kept, teacher)
		}
	}
	return r.store.SetCollection(ctx, TeachersCollection, kept)
}

package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
)

// UsersCollection names the login-identity collection.
const UsersCollection = "users"

// UserRepository manages the users collection.
type UserRepository struct {
	store *store.Adapter
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(adapter *store.Adapter) *UserRepository {
	return &UserRepository{store: adapter}
}

// List returns all users in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.store.Collection(ctx, UsersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the user with the given id, if present.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user, true, nil
		}
	}
	return nil, false, nil
}

// FindByEmail matches the stored email exactly, the comparison sign-in uses.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range users {
		if users[i].Email == email {
			user := users[i]
			return &user, true, nil
		}
	}
	return nil, false, nil
}

// ExistsByEmailFold reports whether any user holds the email, compared
// case-insensitively. Sign-up uses it for the duplicate check.
func (r *UserRepository) ExistsByEmailFold(ctx context.Context, email string) (bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// Create appends the user, assigning an id when absent.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.store.SetCollection(ctx, UsersCollection, users)
}

// Update replaces the record whose id matches. A missing id is a silent
// no-op; the found flag tells callers whether anything changed.
func (r *UserRepository) Update(ctx context.Context, updated models.User) (bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range users {
		if users[i].ID == updated.ID {
			users[i] = updated
			found = true
		}
	}
	if err := r.store.SetCollection(ctx, UsersCollection, users); err != nil {
		return false, err
	}
	return found, nil
}

// Delete removes the record by id. Deleting an absent id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, user := range users {
		if user.ID != id {
			kept = append(kept, user)
		}
	}
	return r.store.SetCollection(ctx, UsersCollection, kept)
}

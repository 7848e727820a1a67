package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, bool, error)
	Update(ctx context.Context, updated models.User) (bool, error)
	Delete(ctx context.Context, id string) error
}

// UpdateProfileRequest carries the self-service profile fields.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=1"`
}

// UserService manages login accounts.
type UserService struct {
	repo       userRepository
	store      *store.Adapter
	sessionKey string
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(repo userRepository, adapter *store.Adapter, sessionKey string, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if sessionKey == "" {
		sessionKey = "currentUser"
	}
	return &UserService{repo: repo, store: adapter, sessionKey: sessionKey, validator: validate, logger: logger}
}

// List returns all accounts with passwords blanked.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sanitized := make([]models.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}
	return sanitized, nil
}

// UpdateProfile changes the signed-in user's display name and, when given,
// password, then refreshes the persisted session record to match.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	current, found, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load account")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "account not found")
	}

	current.Name = strings.TrimSpace(req.Name)
	if req.Password != "" {
		current.Password = req.Password
	}

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update account")
	}

	if err := s.store.SetRecord(ctx, s.sessionKey, current); err != nil {
		s.logger.Warn("failed to refresh session after profile update", zap.Error(err))
	}

	sanitized := current.Sanitized()
	return &sanitized, nil
}

// Delete removes an account once the caller has confirmed.
func (s *UserService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "confirm deletion of this account")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete account")
	}
	s.logger.Info("account deleted", zap.String("userId", id))
	return nil
}

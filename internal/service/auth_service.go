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

type authUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, bool, error)
	ExistsByEmailFold(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

// SignInRequest carries the credentials submitted on the sign-in form.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest carries the registration form fields.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
	Role     string `json:"role" validate:"required,oneof=admin teacher student"`
}

// AuthService implements sign-in, sign-up and the persisted session record.
type AuthService struct {
	users      authUserRepository
	store      *store.Adapter
	sessionKey string
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users authUserRepository, adapter *store.Adapter, sessionKey string, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if sessionKey == "" {
		sessionKey = "currentUser"
	}
	return &AuthService{users: users, store: adapter, sessionKey: sessionKey, validator: validate, logger: logger}
}

// SignIn matches the submitted email and password against the stored account
// and persists the matched record as the session. Both fields compare as
// literal strings; the lookup is case sensitive on purpose because accounts
// are stored with the email already lowercased at registration.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid sign-in payload")
	}

	user, found, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch account")
	}
	if !found || user.Password != req.Password {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
	}

	if err := s.store.SetRecord(ctx, s.sessionKey, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	s.logger.Info("user signed in", zap.String("userId", user.ID), zap.String("role", string(user.Role)))
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// SignUp registers a new account. The duplicate check folds case so that
// Jane@x.com cannot register alongside jane@x.com, and the stored email is
// trimmed and lowercased.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid sign-up payload")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.users.ExistsByEmailFold(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing accounts")
	}
	if taken {
		return nil, appErrors.Clone(appErrors.ErrEmailTaken, "an account with this email already exists")
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	if err := s.store.SetRecord(ctx, s.sessionKey, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	s.logger.Info("user registered", zap.String("userId", user.ID), zap.String("role", req.Role))
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// SignOut clears the persisted session record. Clearing an absent session is
// a no-op.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.store.RemoveRecord(ctx, s.sessionKey); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	return nil
}

// Current returns the signed-in user, or found=false when the session record
// is absent or unreadable.
func (s *AuthService) Current(ctx context.Context) (*models.User, bool, error) {
	var user models.User
	found, err := s.store.Record(ctx, s.sessionKey, &user)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	if !found {
		return nil, false, nil
	}
	return &user, true, nil
}

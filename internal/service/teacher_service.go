package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edukit/edu-console-api/internal/models"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, bool, error)
	CreateWithLogin(ctx context.Context, teacher *models.Teacher, defaultPassword string) (*models.User, error)
	Update(ctx context.Context, updated models.Teacher) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CreateTeacherRequest carries the staff registration form fields.
type CreateTeacherRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
}

// UpdateTeacherRequest carries the editable staff profile fields.
type UpdateTeacherRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
}

// TeacherService manages staff profiles and their mirrored logins.
type TeacherService struct {
	repo            teacherRepository
	defaultPassword string
	validator       *validator.Validate
	logger          *zap.Logger
}

// NewTeacherService constructs a TeacherService instance.
func NewTeacherService(repo teacherRepository, defaultPassword string, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TeacherService{repo: repo, defaultPassword: defaultPassword, validator: validate, logger: logger}
}

// List returns all staff profiles.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	return s.repo.List(ctx)
}

// Search filters profiles by a case-insensitive substring over name, email
// and subject. An empty term returns everything.
func (s *TeacherService) Search(ctx context.Context, term string) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return teachers, nil
	}
	matched := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(t.Email), term) ||
			strings.Contains(strings.ToLower(t.Subject), term) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Get returns one profile by id.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return teacher, nil
}

// Create registers a staff profile and mirrors a login account for it with
// the configured default password. The profile starts active and is stamped
// with today's date.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	teacher := &models.Teacher{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    strings.TrimSpace(req.Phone),
		Subject:  strings.TrimSpace(req.Subject),
		Status:   models.StatusActive,
		JoinDate: time.Now().Format("2006-01-02"),
	}

	login, err := s.repo.CreateWithLogin(ctx, teacher, s.defaultPassword)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}

	s.logger.Info("teacher created",
		zap.String("teacherId", teacher.ID),
		zap.String("loginId", login.ID))
	return teacher, nil
}

// Update replaces the editable fields of an existing profile.
func (s *TeacherService) Update(ctx context.Context, id string, req UpdateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Email = strings.ToLower(strings.TrimSpace(req.Email))
	current.Phone = strings.TrimSpace(req.Phone)
	current.Subject = strings.TrimSpace(req.Subject)

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return current, nil
}

// ToggleStatus flips the profile between active and inactive.
func (s *TeacherService) ToggleStatus(ctx context.Context, id string) (*models.Teacher, error) {
	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	if current.Status == models.StatusActive {
		current.Status = models.StatusInactive
	} else {
		current.Status = models.StatusActive
	}

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return current, nil
}

// Delete removes a profile once the caller has confirmed. The mirrored login
// account is intentionally left in place.
func (s *TeacherService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "confirm deletion of this teacher")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	s.logger.Info("teacher deleted", zap.String("teacherId", id))
	return nil
}

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

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, bool, error)
	CreateWithLogin(ctx context.Context, student *models.Student, defaultPassword string) (*models.User, error)
	Update(ctx context.Context, updated models.Student) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CreateStudentRequest carries the enrollee registration form fields.
type CreateStudentRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Course string `json:"course"`
}

// UpdateStudentRequest carries the editable enrollee profile fields.
type UpdateStudentRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Course string `json:"course"`
}

// StudentService manages enrollee profiles and their mirrored logins.
type StudentService struct {
	repo            studentRepository
	defaultPassword string
	validator       *validator.Validate
	logger          *zap.Logger
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(repo studentRepository, defaultPassword string, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{repo: repo, defaultPassword: defaultPassword, validator: validate, logger: logger}
}

// List returns all enrollee profiles.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.List(ctx)
}

// Search filters profiles by a case-insensitive substring over name, email
// and course. An empty term returns everything.
func (s *StudentService) Search(ctx context.Context, term string) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return students, nil
	}
	matched := make([]models.Student, 0, len(students))
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.Name), term) ||
			strings.Contains(strings.ToLower(st.Email), term) ||
			strings.Contains(strings.ToLower(st.Course), term) {
			matched = append(matched, st)
		}
	}
	return matched, nil
}

// Get returns one profile by id.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

// FindByEmail resolves the profile belonging to a login account, used by the
// student-facing views to scope data to the signed-in user.
func (s *StudentService) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	student, found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

// Create registers an enrollee profile and mirrors a login account with the
// configured default password.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	student := &models.Student{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    strings.TrimSpace(req.Phone),
		Course:   strings.TrimSpace(req.Course),
		Status:   models.StatusActive,
		JoinDate: time.Now().Format("2006-01-02"),
	}

	login, err := s.repo.CreateWithLogin(ctx, student, s.defaultPassword)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	s.logger.Info("student created",
		zap.String("studentId", student.ID),
		zap.String("loginId", login.ID))
	return student, nil
}

// Update replaces the editable fields of an existing profile.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Email = strings.ToLower(strings.TrimSpace(req.Email))
	current.Phone = strings.TrimSpace(req.Phone)
	current.Course = strings.TrimSpace(req.Course)

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return current, nil
}

// ToggleStatus flips the profile between active and inactive.
func (s *StudentService) ToggleStatus(ctx context.Context, id string) (*models.Student, error) {
	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	if current.Status == models.StatusActive {
		current.Status = models.StatusInactive
	} else {
		current.Status = models.StatusActive
	}

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return current, nil
}

// Delete removes a profile once the caller has confirmed. The mirrored login
// account and any grades stay behind.
func (s *StudentService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "confirm deletion of this student")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.logger.Info("student deleted", zap.String("studentId", id))
	return nil
}

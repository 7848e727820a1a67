package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edukit/edu-console-api/internal/models"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, bool, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, updated models.Course) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CourseRequest carries the catalogue form fields, shared by create and
// update.
type CourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Instructor  string `json:"instructor" validate:"required"`
	Category    string `json:"category"`
	Price       string `json:"price" validate:"required"`
	Level       string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration    string `json:"duration"`
	Capacity    int    `json:"capacity" validate:"omitempty,gte=0"`
	StartDate   string `json:"startDate"`
}

// CourseService manages the catalogue.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// normalizePrice guarantees a single leading currency symbol on the stored
// display string.
func normalizePrice(price string) string {
	price = strings.TrimSpace(price)
	if price == "" || strings.HasPrefix(price, "$") {
		return price
	}
	return "$" + price
}

// List returns the full catalogue.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.List(ctx)
}

// Get returns one catalogue entry by id.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Create adds a catalogue entry. New courses start active with no enrollees
// and the catalogue's seed rating.
func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	course := &models.Course{
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		Instructor:       strings.TrimSpace(req.Instructor),
		Category:         strings.TrimSpace(req.Category),
		Price:            normalizePrice(req.Price),
		Level:            req.Level,
		Duration:         strings.TrimSpace(req.Duration),
		Capacity:         req.Capacity,
		StartDate:        req.StartDate,
		Status:           models.StatusActive,
		EnrolledStudents: 0,
		Rating:           4.5,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	s.logger.Info("course created", zap.String("courseId", course.ID), zap.String("title", course.Title))
	return course, nil
}

// Update replaces the editable fields of a catalogue entry, re-normalizing
// the price on every write.
func (s *CourseService) Update(ctx context.Context, id string, req CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	current.Title = strings.TrimSpace(req.Title)
	current.Description = strings.TrimSpace(req.Description)
	current.Instructor = strings.TrimSpace(req.Instructor)
	current.Category = strings.TrimSpace(req.Category)
	current.Price = normalizePrice(req.Price)
	current.Level = req.Level
	current.Duration = strings.TrimSpace(req.Duration)
	current.Capacity = req.Capacity
	current.StartDate = req.StartDate

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return current, nil
}

// ToggleStatus flips a catalogue entry between active and inactive.
func (s *CourseService) ToggleStatus(ctx context.Context, id string) (*models.Course, error) {
	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	if current.Status == models.StatusActive {
		current.Status = models.StatusInactive
	} else {
		current.Status = models.StatusActive
	}

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return current, nil
}

// Delete removes a catalogue entry once the caller has confirmed. Grades
// that reference the course are left in place.
func (s *CourseService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "confirm deletion of this course")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	s.logger.Info("course deleted", zap.String("courseId", id))
	return nil
}

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

type gradeRepository interface {
	List(ctx context.Context) ([]models.Grade, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Grade, error)
	FindByID(ctx context.Context, id string) (*models.Grade, bool, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, updated models.Grade) (bool, error)
	Delete(ctx context.Context, id string) error
}

// GradeRequest carries the grading form fields, shared by create and update.
// The score bounds are enforced here at the edge; stored records are trusted
// as-is.
type GradeRequest struct {
	StudentID string  `json:"studentId" validate:"required"`
	CourseID  string  `json:"courseId" validate:"required"`
	Grade     float64 `json:"grade" validate:"gte=0,lte=100"`
	Remarks   string  `json:"remarks"`
}

// GradeService manages grade records.
type GradeService struct {
	repo      gradeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs a GradeService instance.
func NewGradeService(repo gradeRepository, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &GradeService{repo: repo, validator: validate, logger: logger}
}

// List returns all grade records.
func (s *GradeService) List(ctx context.Context) ([]models.Grade, error) {
	return s.repo.List(ctx)
}

// ListByStudent returns the records for one student.
func (s *GradeService) ListByStudent(ctx context.Context, studentID string) ([]models.Grade, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// Create records a new grade, stamped with the submission time.
func (s *GradeService) Create(ctx context.Context, req GradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}

	grade := &models.Grade{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		Grade:          req.Grade,
		Remarks:        strings.TrimSpace(req.Remarks),
		SubmissionDate: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record grade")
	}

	s.logger.Info("grade recorded",
		zap.String("gradeId", grade.ID),
		zap.String("studentId", grade.StudentID),
		zap.Float64("grade", grade.Grade))
	return grade, nil
}

// Update replaces an existing record's score and remarks.
func (s *GradeService) Update(ctx context.Context, id string, req GradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}

	current, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grade")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}

	current.StudentID = req.StudentID
	current.CourseID = req.CourseID
	current.Grade = req.Grade
	current.Remarks = strings.TrimSpace(req.Remarks)

	if _, err := s.repo.Update(ctx, *current); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update grade")
	}
	return current, nil
}

// Delete removes a record once the caller has confirmed.
func (s *GradeService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "confirm deletion of this grade")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete grade")
	}
	s.logger.Info("grade deleted", zap.String("gradeId", id))
	return nil
}

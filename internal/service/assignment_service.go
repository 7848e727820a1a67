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

type assignmentRepository interface {
	List(ctx context.Context) ([]models.Assignment, error)
	FindByID(ctx context.Context, id string) (*models.Assignment, bool, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Update(ctx context.Context, updated models.Assignment) (bool, error)
	Delete(ctx context.Context, id string) error
}

type submissionRepository interface {
	ListByAssignment(ctx context.Context, assignmentID string) ([]models.Submission, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Submission, error)
	Create(ctx context.Context, submission *models.Submission) error
}

// CreateAssignmentRequest carries the coursework form fields.
type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Course      string `json:"course" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
}

// SubmitAssignmentRequest carries a student's answer.
type SubmitAssignmentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Content   string `json:"content"`
}

// AssignmentService manages coursework and its submissions.
type AssignmentService struct {
	assignments assignmentRepository
	submissions submissionRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAssignmentService constructs an AssignmentService instance.
func NewAssignmentService(assignments assignmentRepository, submissions submissionRepository, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AssignmentService{assignments: assignments, submissions: submissions, validator: validate, logger: logger}
}

// List returns all coursework.
func (s *AssignmentService) List(ctx context.Context) ([]models.Assignment, error) {
	return s.assignments.List(ctx)
}

// Get returns one assignment by id.
func (s *AssignmentService) Get(ctx context.Context, id string) (*models.Assignment, error) {
	assignment, found, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	return assignment, nil
}

// Create publishes new coursework as a draft with zero submissions.
func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	assignment := &models.Assignment{
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Course:        strings.TrimSpace(req.Course),
		DueDate:       req.DueDate,
		Status:        models.AssignmentDraft,
		Submissions:   0,
		TotalStudents: 0,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}

	s.logger.Info("assignment created", zap.String("assignmentId", assignment.ID), zap.String("title", assignment.Title))
	return assignment, nil
}

// Publish makes a draft visible to students.
func (s *AssignmentService) Publish(ctx context.Context, id string) (*models.Assignment, error) {
	assignment, found, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}

	assignment.Status = models.AssignmentActive
	if _, err := s.assignments.Update(ctx, *assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update assignment")
	}
	return assignment, nil
}

// Submit records a student's answer and bumps the assignment's submission
// counter. The two writes are sequential, matching how profile and login
// records pair up elsewhere.
func (s *AssignmentService) Submit(ctx context.Context, assignmentID string, req SubmitAssignmentRequest) (*models.Submission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	assignment, found, err := s.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	if assignment.Status != models.AssignmentActive {
		return nil, appErrors.Clone(appErrors.ErrConflict, "assignment is not open for submissions")
	}

	submission := &models.Submission{
		AssignmentID: assignment.ID,
		StudentID:    req.StudentID,
		Content:      req.Content,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record submission")
	}

	assignment.Submissions++
	if _, err := s.assignments.Update(ctx, *assignment); err != nil {
		s.logger.Warn("failed to bump submission counter", zap.String("assignmentId", assignment.ID), zap.Error(err))
	}

	return submission, nil
}

// SubmissionsFor lists the answers received for an assignment.
func (s *AssignmentService) SubmissionsFor(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	return s.submissions.ListByAssignment(ctx, assignmentID)
}

// SubmissionsByStudent lists one student's answers across all coursework.
func (s *AssignmentService) SubmissionsByStudent(ctx context.Context, studentID string) ([]models.Submission, error) {
	return s.submissions.ListByStudent(ctx, studentID)
}

// Delete removes coursework once the caller has confirmed. Submissions
// referencing it stay behind.
func (s *AssignmentService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "confirm deletion of this assignment")
	}
	if err := s.assignments.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete assignment")
	}
	s.logger.Info("assignment deleted", zap.String("assignmentId", id))
	return nil
}

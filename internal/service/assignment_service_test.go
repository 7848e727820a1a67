package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/store"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

func newAssignmentFixture(t *testing.T) (*AssignmentService, *repository.SubmissionRepository) {
	t.Helper()
	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	assignments := repository.NewAssignmentRepository(adapter)
	submissions := repository.NewSubmissionRepository(adapter)
	return NewAssignmentService(assignments, submissions, nil, nil), submissions
}

func TestAssignmentCreateStartsAsDraft(t *testing.T) {
	svc, _ := newAssignmentFixture(t)

	assignment, err := svc.Create(context.Background(), CreateAssignmentRequest{
		Title: "Essay", Course: "History", DueDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentDraft, assignment.Status)
	assert.Zero(t, assignment.Submissions)
	assert.False(t, assignment.CreatedAt.IsZero())
}

func TestSubmitRequiresActiveAssignment(t *testing.T) {
	svc, _ := newAssignmentFixture(t)
	ctx := context.Background()

	assignment, err := svc.Create(ctx, CreateAssignmentRequest{Title: "Essay", Course: "History", DueDate: "2026-09-15"})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, assignment.ID, SubmitAssignmentRequest{StudentID: "s1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestSubmitBumpsCounter(t *testing.T) {
	svc, submissions := newAssignmentFixture(t)
	ctx := context.Background()

	assignment, err := svc.Create(ctx, CreateAssignmentRequest{Title: "Essay", Course: "History", DueDate: "2026-09-15"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, assignment.ID)
	require.NoError(t, err)

	first, err := svc.Submit(ctx, assignment.ID, SubmitAssignmentRequest{StudentID: "s1", Content: "my essay"})
	require.NoError(t, err)
	assert.Equal(t, assignment.ID, first.AssignmentID)

	_, err = svc.Submit(ctx, assignment.ID, SubmitAssignmentRequest{StudentID: "s2"})
	require.NoError(t, err)

	reloaded, err := svc.Get(ctx, assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Submissions)

	received, err := submissions.ListByAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	assert.Len(t, received, 2)
}

func TestSubmitUnknownAssignment(t *testing.T) {
	svc, _ := newAssignmentFixture(t)

	_, err := svc.Submit(context.Background(), "missing", SubmitAssignmentRequest{StudentID: "s1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

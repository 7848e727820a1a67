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

func newCourseFixture(t *testing.T) (*CourseService, *repository.CourseRepository) {
	t.Helper()
	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	repo := repository.NewCourseRepository(adapter)
	return NewCourseService(repo, nil, nil), repo
}

func TestCoursePriceNormalization(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{name: "bare number gains prefix", price: "49.99", want: "$49.99"},
		{name: "prefixed price kept as-is", price: "$20", want: "$20"},
		{name: "whitespace trimmed first", price: " 15 ", want: "$15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCourseFixture(t)
			course, err := svc.Create(context.Background(), CourseRequest{
				Title: "Algebra", Instructor: "Jane", Price: tt.price,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, course.Price)
		})
	}
}

func TestCourseUpdateRenormalizesPrice(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	course, err := svc.Create(ctx, CourseRequest{Title: "Algebra", Instructor: "Jane", Price: "$10"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, course.ID, CourseRequest{Title: "Algebra II", Instructor: "Jane", Price: "25"})
	require.NoError(t, err)
	assert.Equal(t, "$25", updated.Price)
	assert.Equal(t, "Algebra II", updated.Title)
}

func TestCourseCreateSeedsDefaults(t *testing.T) {
	svc, _ := newCourseFixture(t)

	course, err := svc.Create(context.Background(), CourseRequest{
		Title: "Physics", Instructor: "Jane", Price: "$30",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, course.Status)
	assert.Equal(t, 0, course.EnrolledStudents)
	assert.Equal(t, 4.5, course.Rating)
	assert.NotEmpty(t, course.ID)
}

func TestCourseDeleteRequiresConfirmation(t *testing.T) {
	svc, repo := newCourseFixture(t)
	ctx := context.Background()

	course, err := svc.Create(ctx, CourseRequest{Title: "Physics", Instructor: "Jane", Price: "$30"})
	require.NoError(t, err)

	err = svc.Delete(ctx, course.ID, false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConfirmationRequired.Code, appErrors.FromError(err).Code)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "unconfirmed delete leaves the course in place")

	require.NoError(t, svc.Delete(ctx, course.ID, true))
	remaining, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCourseGetMissing(t *testing.T) {
	svc, _ := newCourseFixture(t)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
)

func TestGradeRepositoryCRUD(t *testing.T) {
	repo := NewGradeRepository(newTestAdapter())
	ctx := context.Background()

	grade := &models.Grade{StudentID: "s1", CourseID: "c1", Grade: 91, SubmissionDate: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, grade))
	require.NotEmpty(t, grade.ID)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	grade.Remarks = "excellent"
	found, err := repo.Update(ctx, *grade)
	require.NoError(t, err)
	assert.True(t, found)

	stored, found, err := repo.FindByID(ctx, grade.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "excellent", stored.Remarks)

	require.NoError(t, repo.Delete(ctx, grade.ID))
	listed, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCourseDeleteDoesNotCascadeToGrades(t *testing.T) {
	adapter := newTestAdapter()
	courses := NewCourseRepository(adapter)
	grades := NewGradeRepository(adapter)
	ctx := context.Background()

	course := &models.Course{Title: "Physics", Instructor: "Jane", Price: "$10", Status: models.StatusActive}
	require.NoError(t, courses.Create(ctx, course))
	require.NoError(t, grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: course.ID, Grade: 80}))
	require.NoError(t, grades.Create(ctx, &models.Grade{StudentID: "s2", CourseID: course.ID, Grade: 95}))

	require.NoError(t, courses.Delete(ctx, course.ID))

	remaining, err := grades.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2, "grades referencing a deleted course stay behind")
	for _, grade := range remaining {
		assert.Equal(t, course.ID, grade.CourseID)
	}
}

func TestGradeListByStudent(t *testing.T) {
	repo := NewGradeRepository(newTestAdapter())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: 70}))
	require.NoError(t, repo.Create(ctx, &models.Grade{StudentID: "s2", CourseID: "c1", Grade: 85}))
	require.NoError(t, repo.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c2", Grade: 90}))

	mine, err := repo.ListByStudent(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

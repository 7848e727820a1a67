package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/store"
)

type analyticsFixture struct {
	svc      *AnalyticsService
	users    *repository.UserRepository
	teachers *repository.TeacherRepository
	students *repository.StudentRepository
	courses  *repository.CourseRepository
	grades   *repository.GradeRepository
}

func newAnalyticsFixture(t *testing.T) analyticsFixture {
	t.Helper()
	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	f := analyticsFixture{
		users:    repository.NewUserRepository(adapter),
		teachers: repository.NewTeacherRepository(adapter),
		students: repository.NewStudentRepository(adapter),
		courses:  repository.NewCourseRepository(adapter),
		grades:   repository.NewGradeRepository(adapter),
	}
	f.svc = NewAnalyticsService(f.users, f.teachers, f.students, f.courses, f.grades, nil)
	return f
}

func TestOverviewAverageGrade(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	for _, score := range []float64{80, 90, 100} {
		require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: score}))
	}

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90.0, overview.AverageGrade)
}

func TestOverviewAverageRoundsToOneDecimal(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	for _, score := range []float64{85, 90, 92} {
		require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: score}))
	}

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 89.0, overview.AverageGrade)

	require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: 86}))
	overview, err = f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 88.3, overview.AverageGrade)
}

func TestOverviewEmptyCollections(t *testing.T) {
	f := newAnalyticsFixture(t)

	overview, err := f.svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.TotalUsers)
	assert.Zero(t, overview.TotalCourses)
	assert.Equal(t, 0.0, overview.AverageGrade, "no grades means zero, not NaN")
}

func TestOverviewCounts(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	_, err := f.teachers.CreateWithLogin(ctx, &models.Teacher{Name: "Jane", Email: "jane@x.com", Subject: "Physics"}, "123456")
	require.NoError(t, err)
	_, err = f.students.CreateWithLogin(ctx, &models.Student{Name: "Bob", Email: "bob@x.com"}, "123456")
	require.NoError(t, err)
	require.NoError(t, f.courses.Create(ctx, &models.Course{Title: "Physics", Instructor: "Jane", Price: "$10"}))

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalUsers, "mirrored logins count as users")
	assert.Equal(t, 1, overview.TotalTeachers)
	assert.Equal(t, 1, overview.TotalStudents)
	assert.Equal(t, 1, overview.TotalCourses)
}

func TestCourseDistribution(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	require.NoError(t, f.courses.Create(ctx, &models.Course{Title: "Algebra", Instructor: "Jane", Price: "$10"}))
	require.NoError(t, f.courses.Create(ctx, &models.Course{Title: "Physics", Instructor: "Jane", Price: "$10"}))

	for _, course := range []string{"Algebra", "Algebra", "History"} {
		_, err := f.students.CreateWithLogin(ctx, &models.Student{Name: "S", Email: course + "@x.com", Course: course}, "123456")
		require.NoError(t, err)
	}

	distribution, err := f.svc.CourseDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, distribution, 3)
	assert.Equal(t, CourseDistribution{Course: "Algebra", Students: 2}, distribution[0])
	assert.Equal(t, CourseDistribution{Course: "Physics", Students: 0}, distribution[1])
	assert.Equal(t, CourseDistribution{Course: "History", Students: 1}, distribution[2])
}

func TestGradeBuckets(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	for _, score := range []float64{45, 65, 75, 85, 90, 100} {
		require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: score}))
	}

	buckets, err := f.svc.GradeBuckets(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 5)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, 1, buckets[2].Count)
	assert.Equal(t, 1, buckets[3].Count)
	assert.Equal(t, 2, buckets[4].Count)
}

func TestAverageGradeForStudent(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: 70}))
	require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s2", CourseID: "c1", Grade: 100}))

	avg, err := f.svc.AverageGradeFor(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 70.0, avg)

	avg, err = f.svc.AverageGradeFor(ctx, "s3")
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

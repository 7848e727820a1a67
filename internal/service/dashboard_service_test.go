package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/store"
)

type dashboardFixture struct {
	svc      *DashboardService
	stop     func()
	teachers *repository.TeacherRepository
	students *repository.StudentRepository
	courses  *repository.CourseRepository
	grades   *repository.GradeRepository
	tasks    *repository.AssignmentRepository
}

func newDashboardFixture(t *testing.T) dashboardFixture {
	t.Helper()
	notifier := store.NewNotifier()
	adapter := store.NewAdapter(store.NewMemoryKV(), notifier, nil)

	f := dashboardFixture{
		teachers: repository.NewTeacherRepository(adapter),
		students: repository.NewStudentRepository(adapter),
		courses:  repository.NewCourseRepository(adapter),
		grades:   repository.NewGradeRepository(adapter),
		tasks:    repository.NewAssignmentRepository(adapter),
	}
	users := repository.NewUserRepository(adapter)
	analytics := NewAnalyticsService(users, f.teachers, f.students, f.courses, f.grades, nil)
	f.svc, f.stop = NewDashboardService(analytics, f.teachers, f.students, f.courses, f.grades, f.tasks, notifier, nil)
	t.Cleanup(f.stop)
	return f
}

func TestAdminDashboardAggregates(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	_, err := f.teachers.CreateWithLogin(ctx, &models.Teacher{Name: "Jane", Email: "jane@x.com", Subject: "Physics"}, "123456")
	require.NoError(t, err)
	require.NoError(t, f.courses.Create(ctx, &models.Course{Title: "Physics", Instructor: "Jane", Price: "$10"}))
	require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: 80}))
	require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "s1", CourseID: "c1", Grade: 90}))

	dashboard, err := f.svc.Admin(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.Overview.TotalTeachers)
	assert.Equal(t, 1, dashboard.Overview.TotalCourses)
	assert.Equal(t, 85.0, dashboard.Overview.AverageGrade)
	assert.Len(t, dashboard.RecentTeachers, 1)
}

func TestAdminDashboardCacheInvalidatesOnWrite(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	first, err := f.svc.Admin(ctx)
	require.NoError(t, err)
	assert.Zero(t, first.Overview.TotalCourses)

	require.NoError(t, f.courses.Create(ctx, &models.Course{Title: "Physics", Instructor: "Jane", Price: "$10"}))

	assert.Eventually(t, func() bool {
		dashboard, err := f.svc.Admin(ctx)
		return err == nil && dashboard.Overview.TotalCourses == 1
	}, time.Second, 10*time.Millisecond, "write should drop the cached summary")
}

func TestTeacherDashboardCounters(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	_, err := f.students.CreateWithLogin(ctx, &models.Student{Name: "Bob", Email: "bob@x.com"}, "123456")
	require.NoError(t, err)
	require.NoError(t, f.tasks.Create(ctx, &models.Assignment{Title: "Essay", Course: "History", Status: models.AssignmentActive, Submissions: 3}))
	require.NoError(t, f.tasks.Create(ctx, &models.Assignment{Title: "Draft", Course: "History", Status: models.AssignmentDraft, Submissions: 5}))

	dashboard, err := f.svc.Teacher(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.TotalStudents)
	assert.Equal(t, 2, dashboard.TotalAssignments)
	assert.Equal(t, 3, dashboard.PendingGrading, "only active assignments count")
}

func TestStudentDashboardScope(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	student := &models.Student{Name: "Bob", Email: "bob@x.com", Course: "Algebra"}
	_, err := f.students.CreateWithLogin(ctx, student, "123456")
	require.NoError(t, err)

	require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: student.ID, CourseID: "c1", Grade: 80}))
	require.NoError(t, f.grades.Create(ctx, &models.Grade{StudentID: "someone-else", CourseID: "c1", Grade: 10}))
	require.NoError(t, f.tasks.Create(ctx, &models.Assignment{Title: "Essay", Course: "Algebra", Status: models.AssignmentActive}))

	dashboard, err := f.svc.Student(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra", dashboard.EnrolledCourse)
	assert.Equal(t, 80.0, dashboard.AverageGrade)
	assert.Len(t, dashboard.Grades, 1)
	assert.Len(t, dashboard.OpenAssignments, 1)
}

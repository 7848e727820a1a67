package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

// AdminDashboard is the landing summary for administrators.
type AdminDashboard struct {
	Overview           Overview             `json:"overview"`
	CourseDistribution []CourseDistribution `json:"courseDistribution"`
	RecentTeachers     []models.Teacher     `json:"recentTeachers"`
	RecentStudents     []models.Student     `json:"recentStudents"`
}

// TeacherDashboard is the landing summary for teaching staff.
type TeacherDashboard struct {
	TotalStudents    int                 `json:"totalStudents"`
	TotalCourses     int                 `json:"totalCourses"`
	TotalAssignments int                 `json:"totalAssignments"`
	PendingGrading   int                 `json:"pendingGrading"`
	Assignments      []models.Assignment `json:"assignments"`
}

// StudentDashboard is the landing summary for an individual student.
type StudentDashboard struct {
	EnrolledCourse  string              `json:"enrolledCourse"`
	AverageGrade    float64             `json:"averageGrade"`
	Grades          []models.Grade      `json:"grades"`
	OpenAssignments []models.Assignment `json:"openAssignments"`
}

// DashboardService assembles the per-role landing summaries. The admin
// summary is cached and the cache is dropped whenever any collection write
// is announced by the store notifier.
type DashboardService struct {
	analytics   *AnalyticsService
	teachers    teacherRepository
	students    studentRepository
	courses     courseRepository
	grades      gradeRepository
	assignments assignmentRepository
	logger      *zap.Logger

	mu     sync.Mutex
	cached *AdminDashboard
}

// NewDashboardService constructs a DashboardService and, when a notifier is
// provided, subscribes to store changes to invalidate the cached admin
// summary. The returned stop function ends the subscription.
func NewDashboardService(analytics *AnalyticsService, teachers teacherRepository, students studentRepository, courses courseRepository, grades gradeRepository, assignments assignmentRepository, notifier *store.Notifier, logger *zap.Logger) (*DashboardService, func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &DashboardService{
		analytics:   analytics,
		teachers:    teachers,
		students:    students,
		courses:     courses,
		grades:      grades,
		assignments: assignments,
		logger:      logger,
	}

	stop := func() {}
	if notifier != nil {
		changes, cancel := notifier.Subscribe(16)
		stop = cancel
		go func() {
			for change := range changes {
				s.mu.Lock()
				s.cached = nil
				s.mu.Unlock()
				s.logger.Debug("dashboard cache invalidated", zap.String("key", change.Key))
			}
		}()
	}
	return s, stop
}

// Admin returns the administrator summary, serving the cached copy until a
// store write invalidates it.
func (s *DashboardService) Admin(ctx context.Context) (*AdminDashboard, error) {
	s.mu.Lock()
	if s.cached != nil {
		cached := *s.cached
		s.mu.Unlock()
		return &cached, nil
	}
	s.mu.Unlock()

	overview, err := s.analytics.Overview(ctx)
	if err != nil {
		return nil, err
	}
	distribution, err := s.analytics.CourseDistribution(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teachers")
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}

	dashboard := &AdminDashboard{
		Overview:           *overview,
		CourseDistribution: distribution,
		RecentTeachers:     lastN(teachers, 5),
		RecentStudents:     lastN(students, 5),
	}

	s.mu.Lock()
	s.cached = dashboard
	s.mu.Unlock()

	copied := *dashboard
	return &copied, nil
}

// Teacher returns the staff summary. Pending grading counts submissions on
// active assignments beyond what has been graded so far.
func (s *DashboardService) Teacher(ctx context.Context) (*TeacherDashboard, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}
	grades, err := s.grades.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	pending := 0
	for _, a := range assignments {
		if a.Status == models.AssignmentActive {
			pending += a.Submissions
		}
	}
	if pending > len(grades) {
		pending -= len(grades)
	} else {
		pending = 0
	}

	return &TeacherDashboard{
		TotalStudents:    len(students),
		TotalCourses:     len(courses),
		TotalAssignments: len(assignments),
		PendingGrading:   pending,
		Assignments:      assignments,
	}, nil
}

// Student returns the summary scoped to one student profile.
func (s *DashboardService) Student(ctx context.Context, studentID string) (*StudentDashboard, error) {
	student, found, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}
	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}

	open := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Status == models.AssignmentActive {
			open = append(open, a)
		}
	}

	return &StudentDashboard{
		EnrolledCourse:  student.Course,
		AverageGrade:    averageOf(grades),
		Grades:          grades,
		OpenAssignments: open,
	}, nil
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

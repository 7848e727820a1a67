package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/edukit/edu-console-api/internal/models"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

// Overview aggregates the headline counters shown on the admin landing page.
type Overview struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalTeachers int     `json:"totalTeachers"`
	TotalStudents int     `json:"totalStudents"`
	TotalCourses  int     `json:"totalCourses"`
	AverageGrade  float64 `json:"averageGrade"`
}

// CourseDistribution counts enrollees per course title.
type CourseDistribution struct {
	Course   string `json:"course"`
	Students int    `json:"students"`
}

// GradeBucket counts grade records falling in a score band.
type GradeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type analyticsUserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// AnalyticsService derives aggregate figures from the raw collections on
// every call; nothing is precomputed or stored.
type AnalyticsService struct {
	users    analyticsUserLister
	teachers teacherRepository
	students studentRepository
	courses  courseRepository
	grades   gradeRepository
	logger   *zap.Logger
}

// NewAnalyticsService constructs an AnalyticsService instance.
func NewAnalyticsService(users analyticsUserLister, teachers teacherRepository, students studentRepository, courses courseRepository, grades gradeRepository, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{users: users, teachers: teachers, students: students, courses: courses, grades: grades, logger: logger}
}

// averageOf returns the mean score rounded to one decimal, or 0 when there
// are no records.
func averageOf(grades []models.Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range grades {
		sum += g.Grade
	}
	return math.Round(sum/float64(len(grades))*10) / 10
}

// Overview computes the headline counters.
func (s *AnalyticsService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load users")
	}
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teachers")
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	grades, err := s.grades.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	return &Overview{
		TotalUsers:    len(users),
		TotalTeachers: len(teachers),
		TotalStudents: len(students),
		TotalCourses:  len(courses),
		AverageGrade:  averageOf(grades),
	}, nil
}

// CourseDistribution counts students grouped by the course field on their
// profile, preserving catalogue order and appending courses that appear only
// on profiles.
func (s *AnalyticsService) CourseDistribution(ctx context.Context) ([]CourseDistribution, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}

	counts := make(map[string]int)
	for _, st := range students {
		if st.Course != "" {
			counts[st.Course]++
		}
	}

	distribution := make([]CourseDistribution, 0, len(courses))
	seen := make(map[string]bool, len(courses))
	for _, course := range courses {
		distribution = append(distribution, CourseDistribution{Course: course.Title, Students: counts[course.Title]})
		seen[course.Title] = true
	}
	for _, st := range students {
		if st.Course != "" && !seen[st.Course] {
			distribution = append(distribution, CourseDistribution{Course: st.Course, Students: counts[st.Course]})
			seen[st.Course] = true
		}
	}
	return distribution, nil
}

// GradeBuckets bins all grade records into fixed score bands for the chart
// on the analytics page.
func (s *AnalyticsService) GradeBuckets(ctx context.Context) ([]GradeBucket, error) {
	grades, err := s.grades.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	buckets := []GradeBucket{
		{Label: "0-59"},
		{Label: "60-69"},
		{Label: "70-79"},
		{Label: "80-89"},
		{Label: "90-100"},
	}
	for _, g := range grades {
		switch {
		case g.Grade < 60:
			buckets[0].Count++
		case g.Grade < 70:
			buckets[1].Count++
		case g.Grade < 80:
			buckets[2].Count++
		case g.Grade < 90:
			buckets[3].Count++
		default:
			buckets[4].Count++
		}
	}
	return buckets, nil
}

// AverageGradeFor computes one student's mean score to one decimal, 0 when
// the student has no records.
func (s *AnalyticsService) AverageGradeFor(ctx context.Context, studentID string) (float64, error) {
	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}
	return averageOf(grades), nil
}

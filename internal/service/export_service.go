package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/edukit/edu-console-api/pkg/errors"
	"github.com/edukit/edu-console-api/pkg/export"
	"github.com/edukit/edu-console-api/pkg/storage"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult describes a rendered report persisted to local storage.
type ExportResult struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// ExportService renders grade reports and stores them for download.
type ExportService struct {
	grades   gradeRepository
	students studentRepository
	courses  courseRepository
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	storage  *storage.LocalStorage
	logger   *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(grades gradeRepository, students studentRepository, courses courseRepository, store *storage.LocalStorage, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		grades:   grades,
		students: students,
		courses:  courses,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		storage:  store,
		logger:   logger,
	}
}

// GradeReport renders every grade record, resolving student and course names
// where the references still exist. Dangling references render as the raw id.
func (s *ExportService) GradeReport(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	grades, err := s.grades.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}

	studentNames := make(map[string]string, len(students))
	for _, st := range students {
		studentNames[st.ID] = st.Name
	}
	courseTitles := make(map[string]string, len(courses))
	for _, c := range courses {
		courseTitles[c.ID] = c.Title
	}

	dataset := export.Dataset{
		Headers: []string{"Student", "Course", "Grade", "Remarks", "Submitted"},
		Rows:    make([]map[string]string, 0, len(grades)),
	}
	for _, g := range grades {
		student := studentNames[g.StudentID]
		if student == "" {
			student = g.StudentID
		}
		course := courseTitles[g.CourseID]
		if course == "" {
			course = g.CourseID
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student":   student,
			"Course":    course,
			"Grade":     strconv.FormatFloat(g.Grade, 'f', 1, 64),
			"Remarks":   g.Remarks,
			"Submitted": g.SubmissionDate.Format("2006-01-02"),
		})
	}

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case FormatPDF:
		payload, err = s.pdf.Render(dataset, "Grade Report")
		contentType = "application/pdf"
	case FormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	filename := fmt.Sprintf("grade-report-%s.%s", time.Now().Format("20060102-150405"), format)
	if _, err := s.storage.Save(filename, payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store report")
	}

	s.logger.Info("grade report exported", zap.String("filename", filename), zap.Int("rows", len(dataset.Rows)))
	return &ExportResult{Filename: filename, ContentType: contentType, Size: len(payload)}, nil
}

// Open returns the stored report's path for streaming to the client.
func (s *ExportService) Open(filename string) (string, error) {
	path := s.storage.Path(filename)
	if _, err := os.Stat(path); err != nil {
		return "", appErrors.Clone(appErrors.ErrNotFound, "report not found")
	}
	return path, nil
}

// Remove deletes a stored report.
func (s *ExportService) Remove(filename string) error {
	if _, err := s.Open(filename); err != nil {
		return err
	}
	if err := s.storage.Delete(filename); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete report")
	}
	s.logger.Info("grade report deleted", zap.String("filename", filename))
	return nil
}

// PruneOlderThan ages out stored reports past the retention window and
// returns how many were removed. Reports regenerate on demand, so pruning
// never loses data.
func (s *ExportService) PruneOlderThan(ttl time.Duration) int {
	removed, err := s.storage.CleanupOlderThan(ttl)
	if err != nil {
		s.logger.Warn("export cleanup failed", zap.Error(err))
		return len(removed)
	}
	if len(removed) > 0 {
		s.logger.Info("expired reports removed", zap.Int("count", len(removed)))
	}
	return len(removed)
}

package services

import (
	"fmt"
	"time"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// AssessmentRepository is the narrow persistence surface the engine needs.
// Postgres implementation in app/database; tests use an in-memory fake.
type AssessmentRepository interface {
	Insert(a *models.StudentAssessment) error
	GetByID(id string) (*models.StudentAssessment, error)
	FindAll() ([]*models.StudentAssessment, error)
	FindByStudentID(studentID string) ([]*models.StudentAssessment, error)
	FindByStatus(status models.AssessmentStatus) ([]*models.StudentAssessment, error)
	FindByBeltRank(targetBeltRank string) ([]*models.StudentAssessment, error)
	CurrentForStudent(studentID string) (*models.StudentAssessment, error)
	UpdateFields(id string, fields map[string]interface{}) (*models.StudentAssessment, error)
	Complete(id string, overallScore *float64, passed *bool, examinerNotes *string) (*models.StudentAssessment, error)
	Cancel(id string, examinerNotes string) (*models.StudentAssessment, error)
	Delete(id string) (bool, error)
}

// StudentDirectory is the read-only student lookup used to enrich summaries.
type StudentDirectory interface {
	FindByID(studentID string) (*models.Student, error)
}

// AssessmentService owns the belt-test lifecycle.
type AssessmentService struct {
	repo     AssessmentRepository
	students StudentDirectory
}

func NewAssessmentService(repo AssessmentRepository, students StudentDirectory) *AssessmentService {
	return &AssessmentService{repo: repo, students: students}
}

// assessmentMetaFields are the non-score columns a partial update may touch.
// Status is deliberately absent: lifecycle transitions go through Complete
// and Cancel only.
var assessmentMetaFields = map[string]bool{
	"instructor_id":    true,
	"assessment_date":  true,
	"target_belt_rank": true,
	"certificate_name": true,
	"belt_size":        true,
	"overall_score":    true,
	"passed":           true,
	"examiner_notes":   true,
}

// Create opens a new assessment in in_progress. A student may only have one
// open assessment at a time.
func (s *AssessmentService) Create(a *models.StudentAssessment) (*models.StudentAssessment, error) {
	if a.StudentID == "" {
		return nil, newValidationError("student_id", "student_id is required")
	}
	if student, err := s.students.FindByID(a.StudentID); err != nil {
		return nil, err
	} else if student == nil {
		return nil, newValidationError("student_id", "student does not exist")
	}

	open, err := s.repo.CurrentForStudent(a.StudentID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrAssessmentOpen
	}

	for i, f := range a.ScoreFields() {
		if *f == nil {
			continue
		}
		v := round1(**f)
		if v < 0 || v > 10 {
			return nil, newValidationError(models.ScoreColumns[i], "score must be between 0.0 and 10.0")
		}
		**f = v
	}

	a.Status = models.AssessmentInProgress
	a.OverallScore = nil
	a.Passed = nil
	if a.AssessmentDate.IsZero() {
		a.AssessmentDate = time.Now()
	}

	if err := s.repo.Insert(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) GetByID(id string) (*models.StudentAssessment, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *AssessmentService) FindAll() ([]*models.StudentAssessment, error) {
	return s.repo.FindAll()
}

func (s *AssessmentService) FindByStudentID(studentID string) ([]*models.StudentAssessment, error) {
	return s.repo.FindByStudentID(studentID)
}

// GetCurrentAssessment returns the newest open assessment, or ErrNotFound.
func (s *AssessmentService) GetCurrentAssessment(studentID string) (*models.StudentAssessment, error) {
	a, err := s.repo.CurrentForStudent(studentID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *AssessmentService) GetAssessmentsByStatus(status string) ([]*models.StudentAssessment, error) {
	if !models.ValidAssessmentStatus(status) {
		return nil, newValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.repo.FindByStatus(models.AssessmentStatus(status))
}

func (s *AssessmentService) GetAssessmentsByBeltRank(targetBeltRank string) ([]*models.StudentAssessment, error) {
	return s.repo.FindByBeltRank(targetBeltRank)
}

// Update merges a partial field update: any subset of the technique scores
// plus the metadata whitelist, applied as one atomic write. Terminal records
// are rejected.
func (s *AssessmentService) Update(id string, fields map[string]interface{}) (*models.StudentAssessment, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.Status != models.AssessmentInProgress {
		return nil, ErrTerminalState
	}

	clean := make(map[string]interface{}, len(fields))
	for name, raw := range fields {
		switch {
		case models.IsScoreColumn(name):
			v, err := toNullableScore(name, raw, 10)
			if err != nil {
				return nil, err
			}
			clean[name] = v
		case assessmentMetaFields[name]:
			v, err := coerceMetaField(name, raw)
			if err != nil {
				return nil, err
			}
			clean[name] = v
		default:
			return nil, newValidationError(name, "unknown or read-only field")
		}
	}

	updated, err := s.repo.UpdateFields(id, clean)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// CompleteInput carries the optional finalization fields.
type CompleteInput struct {
	OverallScore  *float64 `json:"overall_score"`
	Passed        *bool    `json:"passed"`
	ExaminerNotes *string  `json:"examiner_notes"`
}

// CompleteAssessment finalizes an open assessment. The write only lands if
// the record is still in_progress, so a racing cancel cannot be overwritten.
func (s *AssessmentService) CompleteAssessment(id string, in CompleteInput) (*models.StudentAssessment, error) {
	if in.OverallScore != nil {
		v := round1(*in.OverallScore)
		if v < 0 || v > 100 {
			return nil, newValidationError("overall_score", "overall score must be between 0 and 100")
		}
		in.OverallScore = &v
	}

	a, err := s.repo.Complete(id, in.OverallScore, in.Passed, in.ExaminerNotes)
	if err != nil {
		return nil, err
	}
	if a == nil {
		// Distinguish a missing record from one already finalized.
		existing, err := s.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		return nil, ErrTerminalState
	}
	return a, nil
}

// CancelAssessment cancels an open (or already cancelled) assessment. The
// examiner notes are replaced with the cancellation text; any prior notes are
// lost, which mirrors how instructors record no-shows.
func (s *AssessmentService) CancelAssessment(id string, reason string) (*models.StudentAssessment, error) {
	notes := "Assessment cancelled"
	if reason != "" {
		notes = "Cancelled: " + reason
	}

	a, err := s.repo.Cancel(id, notes)
	if err != nil {
		return nil, err
	}
	if a == nil {
		existing, err := s.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		return nil, ErrTerminalState
	}
	return a, nil
}

// Remove hard-deletes an assessment and reports whether a row was removed.
func (s *AssessmentService) Remove(id string) (bool, error) {
	return s.repo.Delete(id)
}

// GetStudentSummary aggregates a student's assessment history and attaches
// their name and current rank.
func (s *AssessmentService) GetStudentSummary(studentID string) (*models.StudentSummary, error) {
	student, err := s.students.FindByID(studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}

	assessments, err := s.repo.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}

	return &models.StudentSummary{
		StudentID:         student.ID,
		StudentName:       fmt.Sprintf("%s %s", student.DisplayName(), student.LastName),
		BeltRank:          student.BeltRank,
		AssessmentSummary: Summarize(assessments),
	}, nil
}

// toNullableScore coerces a JSON value into a rounded score or nil.
func toNullableScore(field string, raw interface{}, max float64) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	default:
		return nil, newValidationError(field, "score must be a number or null")
	}
	v = round1(v)
	if v < 0 || v > max {
		return nil, newValidationError(field, fmt.Sprintf("score must be between 0.0 and %.1f", max))
	}
	return v, nil
}

// coerceMetaField validates the non-score updatable fields.
func coerceMetaField(name string, raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	switch name {
	case "assessment_date":
		s, ok := raw.(string)
		if !ok {
			return nil, newValidationError(name, "must be an RFC 3339 timestamp")
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, newValidationError(name, "must be an RFC 3339 timestamp")
		}
		return t, nil
	case "passed":
		b, ok := raw.(bool)
		if !ok {
			return nil, newValidationError(name, "must be a boolean or null")
		}
		return b, nil
	case "overall_score":
		return toNullableScore(name, raw, 100)
	default:
		s, ok := raw.(string)
		if !ok {
			return nil, newValidationError(name, "must be a string or null")
		}
		return s, nil
	}
}

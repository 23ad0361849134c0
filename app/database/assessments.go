package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/services"
	"github.com/lib/pq"
)

// AssessmentStore is the Postgres-backed repository for belt assessments.
// It satisfies services.AssessmentRepository.
type AssessmentStore struct {
	db *sql.DB
}

func NewAssessmentStore(db *sql.DB) *AssessmentStore {
	return &AssessmentStore{db: db}
}

// assessmentMetaColumns precede the score columns in every SELECT, INSERT and
// Scan; keep the three lists in this file in step with each other.
var assessmentMetaColumns = []string{
	"id", "student_id", "instructor_id", "assessment_date", "target_belt_rank",
	"certificate_name", "belt_size", "status",
}

var assessmentTailColumns = []string{
	"overall_score", "passed", "examiner_notes", "created_at", "updated_at",
}

func assessmentSelectList() string {
	cols := append([]string{}, assessmentMetaColumns...)
	cols = append(cols, models.ScoreColumns...)
	cols = append(cols, assessmentTailColumns...)
	return strings.Join(cols, ", ")
}

func scanAssessment(row interface{ Scan(...interface{}) error }) (*models.StudentAssessment, error) {
	a := &models.StudentAssessment{}
	dest := []interface{}{
		&a.ID, &a.StudentID, &a.InstructorID, &a.AssessmentDate, &a.TargetBeltRank,
		&a.CertificateName, &a.BeltSize, &a.Status,
	}
	for _, f := range a.ScoreFields() {
		dest = append(dest, f)
	}
	dest = append(dest, &a.OverallScore, &a.Passed, &a.ExaminerNotes, &a.CreatedAt, &a.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return a, nil
}

// Insert writes a new assessment including any initially scored fields.
func (s *AssessmentStore) Insert(a *models.StudentAssessment) error {
	cols := []string{"student_id", "instructor_id", "assessment_date", "target_belt_rank",
		"certificate_name", "belt_size", "status"}
	args := []interface{}{a.StudentID, a.InstructorID, a.AssessmentDate, a.TargetBeltRank,
		a.CertificateName, a.BeltSize, a.Status}

	for i, f := range a.ScoreFields() {
		cols = append(cols, models.ScoreColumns[i])
		args = append(args, *f)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO student_assessments (%s) VALUES (%s)
						  RETURNING id, created_at, updated_at`,
		strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	err := s.db.QueryRow(query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	// uniq_assessment_open backstops the service's pre-check: a concurrent
	// create that slipped past it lands here instead of as a second open row.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "uniq_assessment_open" {
		return services.ErrAssessmentOpen
	}
	return err
}

func (s *AssessmentStore) GetByID(id string) (*models.StudentAssessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_assessments WHERE id = $1`, assessmentSelectList())
	a, err := scanAssessment(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (s *AssessmentStore) queryMany(where string, args ...interface{}) ([]*models.StudentAssessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_assessments WHERE %s ORDER BY assessment_date DESC`,
		assessmentSelectList(), where)
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []*models.StudentAssessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

func (s *AssessmentStore) FindAll() ([]*models.StudentAssessment, error) {
	return s.queryMany("TRUE")
}

func (s *AssessmentStore) FindByStudentID(studentID string) ([]*models.StudentAssessment, error) {
	return s.queryMany("student_id = $1", studentID)
}

func (s *AssessmentStore) FindByStatus(status models.AssessmentStatus) ([]*models.StudentAssessment, error) {
	return s.queryMany("status = $1", status)
}

func (s *AssessmentStore) FindByBeltRank(targetBeltRank string) ([]*models.StudentAssessment, error) {
	return s.queryMany("target_belt_rank = $1", targetBeltRank)
}

// CurrentForStudent returns the newest in-progress assessment, or nil.
func (s *AssessmentStore) CurrentForStudent(studentID string) (*models.StudentAssessment, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_assessments
						  WHERE student_id = $1 AND status = 'in_progress'
						  ORDER BY assessment_date DESC LIMIT 1`, assessmentSelectList())
	a, err := scanAssessment(s.db.QueryRow(query, studentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

// UpdateFields applies a partial update. Callers must have validated the
// column names against the whitelist; all fields land in one UPDATE so an
// in-flight score edit is atomic. Returns nil when no row matched.
func (s *AssessmentStore) UpdateFields(id string, fields map[string]interface{}) (*models.StudentAssessment, error) {
	if len(fields) == 0 {
		return s.GetByID(id)
	}

	var sets []string
	var args []interface{}
	for col, val := range fields {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE student_assessments SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), assessmentSelectList())
	a, err := scanAssessment(s.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

// Complete finalizes an assessment. The status predicate is the optimistic
// concurrency check: a record that is no longer in_progress is left alone and
// nil is returned.
func (s *AssessmentStore) Complete(id string, overallScore *float64, passed *bool, examinerNotes *string) (*models.StudentAssessment, error) {
	query := fmt.Sprintf(`
		UPDATE student_assessments
		SET status = 'completed',
			overall_score = COALESCE($2::decimal, overall_score),
			passed = COALESCE($3::boolean, passed),
			examiner_notes = COALESCE($4::text, examiner_notes),
			updated_at = NOW()
		WHERE id = $1 AND status = 'in_progress'
		RETURNING %s`, assessmentSelectList())
	a, err := scanAssessment(s.db.QueryRow(query, id, overallScore, passed, examinerNotes))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

// Cancel marks an assessment cancelled and overwrites the examiner notes with
// the cancellation text. Cancelling an already-cancelled record is permitted
// so the operation stays idempotent.
func (s *AssessmentStore) Cancel(id string, examinerNotes string) (*models.StudentAssessment, error) {
	query := fmt.Sprintf(`
		UPDATE student_assessments
		SET status = 'cancelled', examiner_notes = $2, updated_at = NOW()
		WHERE id = $1 AND status IN ('in_progress', 'cancelled')
		RETURNING %s`, assessmentSelectList())
	a, err := scanAssessment(s.db.QueryRow(query, id, examinerNotes))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (s *AssessmentStore) Delete(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM student_assessments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

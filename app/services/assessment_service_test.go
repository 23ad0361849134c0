package services

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssessmentRepo mirrors the Postgres store's observable behavior,
// including the guarded writes Complete and Cancel use.
type fakeAssessmentRepo struct {
	records map[string]*models.StudentAssessment
	nextID  int
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{records: map[string]*models.StudentAssessment{}}
}

func (r *fakeAssessmentRepo) Insert(a *models.StudentAssessment) error {
	// Same guarantee as the partial unique index on open assessments.
	if a.Status == models.AssessmentInProgress {
		for _, existing := range r.records {
			if existing.StudentID == a.StudentID && existing.Status == models.AssessmentInProgress {
				return ErrAssessmentOpen
			}
		}
	}
	r.nextID++
	a.ID = fmt.Sprintf("assessment-%d", r.nextID)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	copied := *a
	r.records[a.ID] = &copied
	return nil
}

func (r *fakeAssessmentRepo) GetByID(id string) (*models.StudentAssessment, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

// newestFirst matches the store's ORDER BY assessment_date DESC.
func newestFirst(out []*models.StudentAssessment) []*models.StudentAssessment {
	sort.Slice(out, func(i, j int) bool {
		return out[i].AssessmentDate.After(out[j].AssessmentDate)
	})
	return out
}

func (r *fakeAssessmentRepo) FindAll() ([]*models.StudentAssessment, error) {
	var out []*models.StudentAssessment
	for _, a := range r.records {
		copied := *a
		out = append(out, &copied)
	}
	return newestFirst(out), nil
}

func (r *fakeAssessmentRepo) FindByStudentID(studentID string) ([]*models.StudentAssessment, error) {
	var out []*models.StudentAssessment
	for _, a := range r.records {
		if a.StudentID == studentID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return newestFirst(out), nil
}

func (r *fakeAssessmentRepo) FindByStatus(status models.AssessmentStatus) ([]*models.StudentAssessment, error) {
	var out []*models.StudentAssessment
	for _, a := range r.records {
		if a.Status == status {
			copied := *a
			out = append(out, &copied)
		}
	}
	return newestFirst(out), nil
}

func (r *fakeAssessmentRepo) FindByBeltRank(targetBeltRank string) ([]*models.StudentAssessment, error) {
	var out []*models.StudentAssessment
	for _, a := range r.records {
		if a.TargetBeltRank != nil && *a.TargetBeltRank == targetBeltRank {
			copied := *a
			out = append(out, &copied)
		}
	}
	return newestFirst(out), nil
}

func (r *fakeAssessmentRepo) CurrentForStudent(studentID string) (*models.StudentAssessment, error) {
	for _, a := range r.records {
		if a.StudentID == studentID && a.Status == models.AssessmentInProgress {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func scoreIndex(name string) int {
	for i, col := range models.ScoreColumns {
		if col == name {
			return i
		}
	}
	return -1
}

func (r *fakeAssessmentRepo) UpdateFields(id string, fields map[string]interface{}) (*models.StudentAssessment, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	for name, raw := range fields {
		if i := scoreIndex(name); i >= 0 {
			slot := a.ScoreFields()[i]
			if raw == nil {
				*slot = nil
			} else {
				v := raw.(float64)
				*slot = &v
			}
			continue
		}
		switch name {
		case "instructor_id", "target_belt_rank", "certificate_name", "belt_size", "examiner_notes":
			var p *string
			if raw != nil {
				v := raw.(string)
				p = &v
			}
			switch name {
			case "instructor_id":
				a.InstructorID = p
			case "target_belt_rank":
				a.TargetBeltRank = p
			case "certificate_name":
				a.CertificateName = p
			case "belt_size":
				a.BeltSize = p
			case "examiner_notes":
				a.ExaminerNotes = p
			}
		case "assessment_date":
			a.AssessmentDate = raw.(time.Time)
		case "passed":
			if raw == nil {
				a.Passed = nil
			} else {
				v := raw.(bool)
				a.Passed = &v
			}
		case "overall_score":
			if raw == nil {
				a.OverallScore = nil
			} else {
				v := raw.(float64)
				a.OverallScore = &v
			}
		}
	}
	a.UpdatedAt = time.Now()
	copied := *a
	return &copied, nil
}

func (r *fakeAssessmentRepo) Complete(id string, overallScore *float64, passed *bool, examinerNotes *string) (*models.StudentAssessment, error) {
	a, ok := r.records[id]
	if !ok || a.Status != models.AssessmentInProgress {
		return nil, nil
	}
	a.Status = models.AssessmentCompleted
	if overallScore != nil {
		a.OverallScore = overallScore
	}
	a.Passed = passed
	if examinerNotes != nil {
		a.ExaminerNotes = examinerNotes
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAssessmentRepo) Cancel(id string, examinerNotes string) (*models.StudentAssessment, error) {
	a, ok := r.records[id]
	if !ok || a.Status == models.AssessmentCompleted {
		return nil, nil
	}
	a.Status = models.AssessmentCancelled
	a.ExaminerNotes = &examinerNotes
	copied := *a
	return &copied, nil
}

func (r *fakeAssessmentRepo) Delete(id string) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

type fakeStudents struct {
	students map[string]*models.Student
}

func (d *fakeStudents) FindByID(studentID string) (*models.Student, error) {
	return d.students[studentID], nil
}

func newAssessmentFixture() (*AssessmentService, *fakeAssessmentRepo) {
	repo := newFakeAssessmentRepo()
	students := &fakeStudents{students: map[string]*models.Student{
		"student-1": {ID: "student-1", FirstName: "Jane", LastName: "Kim", BeltRank: "Green"},
	}}
	return NewAssessmentService(repo, students), repo
}

func TestCreateAssessment(t *testing.T) {
	svc, _ := newAssessmentFixture()

	passed := true
	a, err := svc.Create(&models.StudentAssessment{
		StudentID:      "student-1",
		TargetBeltRank: sptr("Green"),
		OverallScore:   fptr(99), // must be ignored on create
		Passed:         &passed,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, models.AssessmentInProgress, a.Status)
	assert.Nil(t, a.OverallScore)
	assert.Nil(t, a.Passed)
	assert.False(t, a.AssessmentDate.IsZero())
}

func TestCreateAssessmentUnknownStudent(t *testing.T) {
	svc, _ := newAssessmentFixture()

	_, err := svc.Create(&models.StudentAssessment{StudentID: "nobody"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "student_id")
}

func TestCreateAssessmentSecondOpenRejected(t *testing.T) {
	svc, _ := newAssessmentFixture()

	_, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)

	_, err = svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	assert.ErrorIs(t, err, ErrAssessmentOpen)
}

// staleReadRepo simulates two concurrent creates: the open-assessment
// pre-check reads nothing while the store still holds an open row, so the
// insert must be the layer that rejects the duplicate.
type staleReadRepo struct {
	*fakeAssessmentRepo
}

func (r *staleReadRepo) CurrentForStudent(string) (*models.StudentAssessment, error) {
	return nil, nil
}

func TestCreateAssessmentConcurrentOpenRejected(t *testing.T) {
	repo := newFakeAssessmentRepo()
	students := &fakeStudents{students: map[string]*models.Student{
		"student-1": {ID: "student-1", FirstName: "Jane", LastName: "Kim", BeltRank: "Green"},
	}}
	svc := NewAssessmentService(&staleReadRepo{repo}, students)

	_, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)

	_, err = svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	assert.ErrorIs(t, err, ErrAssessmentOpen)

	open, err := repo.FindByStatus(models.AssessmentInProgress)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestCreateAssessmentScoreValidation(t *testing.T) {
	svc, _ := newAssessmentFixture()

	_, err := svc.Create(&models.StudentAssessment{
		StudentID: "student-1",
		LowBlock:  fptr(10.5),
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "low_block")

	a, err := svc.Create(&models.StudentAssessment{
		StudentID: "student-1",
		LowBlock:  fptr(7.44), // rounds to one decimal
	})
	require.NoError(t, err)
	assert.Equal(t, 7.4, *a.LowBlock)
}

func TestUpdateAssessmentPartial(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)

	_, err = svc.Update(a.ID, map[string]interface{}{"low_block": 7.5})
	require.NoError(t, err)

	// A later update of a different field must not disturb the first score
	updated, err := svc.Update(a.ID, map[string]interface{}{"high_block": 8.0})
	require.NoError(t, err)
	require.NotNil(t, updated.LowBlock)
	assert.Equal(t, 7.5, *updated.LowBlock)
	require.NotNil(t, updated.HighBlock)
	assert.Equal(t, 8.0, *updated.HighBlock)
}

func TestUpdateAssessmentClearsScoreWithNull(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1", FrontKick: fptr(6)})
	require.NoError(t, err)

	updated, err := svc.Update(a.ID, map[string]interface{}{"front_kick": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.FrontKick)
}

func TestUpdateAssessmentRejectsUnknownField(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)

	_, err = svc.Update(a.ID, map[string]interface{}{"status": "completed"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")
}

func TestUpdateAssessmentTerminalState(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)
	_, err = svc.CompleteAssessment(a.ID, CompleteInput{OverallScore: fptr(82), Passed: bptr(true)})
	require.NoError(t, err)

	_, err = svc.Update(a.ID, map[string]interface{}{"low_block": 5.0})
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestCompleteAssessment(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)

	done, err := svc.CompleteAssessment(a.ID, CompleteInput{
		OverallScore:  fptr(82.5),
		Passed:        bptr(true),
		ExaminerNotes: sptr("Strong forms"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.AssessmentCompleted, done.Status)
	assert.Equal(t, 82.5, *done.OverallScore)
	assert.True(t, *done.Passed)

	// A second completion must fail, not overwrite the result
	_, err = svc.CompleteAssessment(a.ID, CompleteInput{OverallScore: fptr(10), Passed: bptr(false)})
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestCompleteAssessmentNotFound(t *testing.T) {
	svc, _ := newAssessmentFixture()

	_, err := svc.CompleteAssessment("missing", CompleteInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteAssessmentScoreRange(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)

	_, err = svc.CompleteAssessment(a.ID, CompleteInput{OverallScore: fptr(101)})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "overall_score")
}

func TestCancelAssessment(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)
	_, err = svc.Update(a.ID, map[string]interface{}{"examiner_notes": "looking good"})
	require.NoError(t, err)

	cancelled, err := svc.CancelAssessment(a.ID, "no-show")
	require.NoError(t, err)
	assert.Equal(t, models.AssessmentCancelled, cancelled.Status)
	// Cancellation replaces whatever notes were there
	assert.Equal(t, "Cancelled: no-show", *cancelled.ExaminerNotes)

	// Cancelling again is a no-op, not an error
	again, err := svc.CancelAssessment(a.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.AssessmentCancelled, again.Status)
	assert.Equal(t, "Assessment cancelled", *again.ExaminerNotes)
}

func TestCancelCompletedAssessment(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)
	_, err = svc.CompleteAssessment(a.ID, CompleteInput{Passed: bptr(true)})
	require.NoError(t, err)

	_, err = svc.CancelAssessment(a.ID, "changed my mind")
	assert.ErrorIs(t, err, ErrTerminalState)
}

func TestCancelFreesStudentForNewAssessment(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)
	_, err = svc.CancelAssessment(a.ID, "")
	require.NoError(t, err)

	_, err = svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	assert.NoError(t, err)
}

func TestFindByStudentIDNewestFirst(t *testing.T) {
	svc, _ := newAssessmentFixture()

	dates := []time.Time{
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1", AssessmentDate: d})
		require.NoError(t, err)
		if i < len(dates)-1 {
			_, err = svc.CancelAssessment(a.ID, "")
			require.NoError(t, err)
		}
	}

	list, err := svc.FindByStudentID("student-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, dates[1], list[0].AssessmentDate)
	assert.Equal(t, dates[2], list[1].AssessmentDate)
	assert.Equal(t, dates[0], list[2].AssessmentDate)
}

func TestGetCurrentAssessment(t *testing.T) {
	svc, _ := newAssessmentFixture()

	_, err := svc.GetCurrentAssessment("student-1")
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)

	current, err := svc.GetCurrentAssessment("student-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, current.ID)
}

func TestGetAssessmentsByStatusValidation(t *testing.T) {
	svc, _ := newAssessmentFixture()

	_, err := svc.GetAssessmentsByStatus("finished")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGetStudentSummary(t *testing.T) {
	svc, _ := newAssessmentFixture()

	a, err := svc.Create(&models.StudentAssessment{StudentID: "student-1"})
	require.NoError(t, err)
	_, err = svc.CompleteAssessment(a.ID, CompleteInput{OverallScore: fptr(85), Passed: bptr(true)})
	require.NoError(t, err)

	summary, err := svc.GetStudentSummary("student-1")
	require.NoError(t, err)
	assert.Equal(t, "student-1", summary.StudentID)
	assert.Equal(t, "Jane Kim", summary.StudentName)
	assert.Equal(t, "Green", summary.BeltRank)
	assert.Equal(t, 1, summary.CompletedAssessments)
	assert.Equal(t, 85.0, summary.AverageScore)
	assert.Equal(t, 100.0, summary.PassRate)

	_, err = svc.GetStudentSummary("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

package services

import (
	"testing"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }
func sptr(v string) *string   { return &v }

func TestSummarizeMixedHistory(t *testing.T) {
	assessments := []*models.StudentAssessment{
		{Status: models.AssessmentCompleted, OverallScore: fptr(85), Passed: bptr(true)},
		{Status: models.AssessmentCompleted, OverallScore: fptr(75), Passed: bptr(false)},
		{Status: models.AssessmentInProgress},
	}

	s := Summarize(assessments)

	assert.Equal(t, 3, s.TotalAssessments)
	assert.Equal(t, 2, s.CompletedAssessments)
	assert.Equal(t, 1, s.InProgressAssessments)
	assert.Equal(t, 80.0, s.AverageScore)
	assert.Equal(t, 50.0, s.PassRate)
	assert.Len(t, s.Assessments, 3)
}

func TestSummarizeEmptyHistory(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalAssessments)
	assert.Equal(t, 0.0, s.AverageScore)
	assert.Equal(t, 0.0, s.PassRate)
	assert.NotNil(t, s.Assessments)
	assert.Empty(t, s.Assessments)
}

// Cancelled assessments count toward the total but never toward the averages.
func TestSummarizeIgnoresCancelled(t *testing.T) {
	assessments := []*models.StudentAssessment{
		{Status: models.AssessmentCompleted, OverallScore: fptr(90), Passed: bptr(true)},
		{Status: models.AssessmentCancelled},
	}

	s := Summarize(assessments)

	assert.Equal(t, 2, s.TotalAssessments)
	assert.Equal(t, 1, s.CompletedAssessments)
	assert.Equal(t, 0, s.InProgressAssessments)
	assert.Equal(t, 90.0, s.AverageScore)
	assert.Equal(t, 100.0, s.PassRate)
}

// A completed assessment without a recorded score still counts for the pass
// rate but is excluded from the average.
func TestSummarizeScorelessCompletion(t *testing.T) {
	assessments := []*models.StudentAssessment{
		{Status: models.AssessmentCompleted, OverallScore: fptr(80), Passed: bptr(true)},
		{Status: models.AssessmentCompleted, Passed: bptr(false)},
	}

	s := Summarize(assessments)

	assert.Equal(t, 80.0, s.AverageScore)
	assert.Equal(t, 50.0, s.PassRate)
}

func TestSummarizeRounding(t *testing.T) {
	assessments := []*models.StudentAssessment{
		{Status: models.AssessmentCompleted, OverallScore: fptr(80), Passed: bptr(true)},
		{Status: models.AssessmentCompleted, OverallScore: fptr(85), Passed: bptr(true)},
		{Status: models.AssessmentCompleted, OverallScore: fptr(91), Passed: bptr(false)},
	}

	s := Summarize(assessments)

	assert.Equal(t, 85.33, s.AverageScore)
	assert.Equal(t, 66.67, s.PassRate)
}

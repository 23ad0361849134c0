package services

import (
	"math"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// Summarize aggregates a student's assessment history. Pure function; the
// input order is preserved in the returned list.
//
// averageScore is the mean overall score of completed assessments that have
// one, and passRate the share of completed assessments that passed. Both are
// 0 when the relevant denominator is empty and are rounded to two decimals.
func Summarize(assessments []*models.StudentAssessment) models.AssessmentSummary {
	summary := models.AssessmentSummary{
		TotalAssessments: len(assessments),
		Assessments:      assessments,
	}
	if summary.Assessments == nil {
		summary.Assessments = []*models.StudentAssessment{}
	}

	var scoreSum float64
	var scored, passed int
	for _, a := range assessments {
		switch a.Status {
		case models.AssessmentCompleted:
			summary.CompletedAssessments++
			if a.OverallScore != nil {
				scoreSum += *a.OverallScore
				scored++
			}
			if a.Passed != nil && *a.Passed {
				passed++
			}
		case models.AssessmentInProgress:
			summary.InProgressAssessments++
		}
	}

	if scored > 0 {
		summary.AverageScore = round2(scoreSum / float64(scored))
	}
	if summary.CompletedAssessments > 0 {
		summary.PassRate = round2(float64(passed) / float64(summary.CompletedAssessments) * 100)
	}
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 clamps technique scores to the one-decimal precision the store keeps.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

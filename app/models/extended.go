package models

// AssessmentSummary aggregates a student's assessment history for display.
// Computed on demand, never persisted.
type AssessmentSummary struct {
	TotalAssessments      int                  `json:"total_assessments"`
	CompletedAssessments  int                  `json:"completed_assessments"`
	InProgressAssessments int                  `json:"in_progress_assessments"`
	AverageScore          float64              `json:"average_score"`
	PassRate              float64              `json:"pass_rate"`
	Assessments           []*StudentAssessment `json:"assessments"`
}

// StudentSummary pairs the aggregate numbers with the student they belong to.
type StudentSummary struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	BeltRank    string `json:"belt_rank"`
	AssessmentSummary
}

// DashboardStats holds the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalStudents        int                `json:"total_students"`
	TotalInstructors     int                `json:"total_instructors"`
	EligibleForTesting   int                `json:"eligible_for_testing"`
	OpenAssessments      int                `json:"open_assessments"`
	AssessmentsThisMonth int                `json:"assessments_this_month"`
	PassRate90Days       float64            `json:"pass_rate_90_days"`
	RecentPromotions     []*BeltProgression `json:"recent_promotions"`
}

package database

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// GetDashboardStats returns statistics for the admin dashboard
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	// 1. Active students
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	// 2. Instructors
	err = db.QueryRow(`
		SELECT COUNT(DISTINCT u.id)
		FROM users u
		JOIN user_roles ur ON u.id = ur.user_id
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name IN ('admin', 'head_instructor', 'instructor')
		AND u.is_active = true
	`).Scan(&stats.TotalInstructors)
	if err != nil {
		return nil, err
	}

	// 3. Students cleared to test
	err = db.QueryRow(`SELECT COUNT(*) FROM students
					   WHERE is_active = true AND eligible_for_testing = true AND deleted_at IS NULL`).
		Scan(&stats.EligibleForTesting)
	if err != nil {
		return nil, err
	}

	// 4. Assessment activity
	err = db.QueryRow(`SELECT COUNT(*) FROM student_assessments WHERE status = 'in_progress'`).
		Scan(&stats.OpenAssessments)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COUNT(*) FROM student_assessments
					   WHERE created_at >= date_trunc('month', NOW())`).
		Scan(&stats.AssessmentsThisMonth)
	if err != nil {
		return nil, err
	}

	// 5. Pass rate over the last 90 days of completed tests
	err = db.QueryRow(`
		SELECT COALESCE(ROUND(
			100.0 * COUNT(*) FILTER (WHERE passed = true) / NULLIF(COUNT(*), 0), 2), 0)
		FROM student_assessments
		WHERE status = 'completed' AND updated_at >= NOW() - INTERVAL '90 days'
	`).Scan(&stats.PassRate90Days)
	if err != nil {
		return nil, err
	}

	// 6. Recent promotions
	rows, err := db.Query(`
		SELECT ` + progressionColumns + `
		FROM belt_progression
		ORDER BY promoted_date DESC, created_at DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		rec, err := scanProgression(rows)
		if err != nil {
			return nil, err
		}
		stats.RecentPromotions = append(stats.RecentPromotions, rec)
	}
	return stats, rows.Err()
}

package services

import (
	"database/sql"
	"log"
)

// RefreshTestingEligibility recomputes students.eligible_for_testing from
// time-in-belt: a student becomes eligible once their current belt has been
// held for at least the minimum months its requirement row demands. Students
// without a current progression record or without a requirement row for
// their rank are left ineligible.
func RefreshTestingEligibility(db *sql.DB) error {
	result, err := db.Exec(`
		UPDATE students s
		SET eligible_for_testing = sub.eligible, updated_at = NOW()
		FROM (
			SELECT s.id,
				   COALESCE(
					   bp.promoted_date + (br.minimum_months * INTERVAL '1 month') <= NOW(),
					   false
				   ) AS eligible
			FROM students s
			LEFT JOIN belt_progression bp
				ON bp.student_id = s.id AND bp.is_current = true
			LEFT JOIN belt_requirements br
				ON br.belt_rank = s.belt_rank
			WHERE s.is_active = true AND s.deleted_at IS NULL
		) sub
		WHERE s.id = sub.id AND s.eligible_for_testing <> sub.eligible
	`)
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err == nil && n > 0 {
		log.Printf("Testing eligibility refreshed for %d students", n)
	}
	return nil
}

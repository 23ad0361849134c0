package database

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// ProgressionStore is the Postgres-backed repository for belt promotion
// history. It satisfies services.ProgressionRepository.
//
// The single-current-belt invariant is enforced twice: the flip-then-write
// sequence runs inside one transaction, and uniq_progression_current rejects
// a second current row even if a concurrent writer slips through.
type ProgressionStore struct {
	db *sql.DB
}

func NewProgressionStore(db *sql.DB) *ProgressionStore {
	return &ProgressionStore{db: db}
}

const progressionColumns = `id, student_id, belt_rank, promoted_date, promoted_by, test_id,
	is_current, ceremony_date, certificate_number, notes, created_at, updated_at`

func scanProgression(row interface{ Scan(...interface{}) error }) (*models.BeltProgression, error) {
	r := &models.BeltProgression{}
	err := row.Scan(
		&r.ID, &r.StudentID, &r.BeltRank, &r.PromotedDate, &r.PromotedBy, &r.TestID,
		&r.IsCurrent, &r.CeremonyDate, &r.CertificateNumber, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Insert records a promotion. When the record is current, all other current
// rows for the student are flipped off in the same transaction, and the
// student's denormalized belt rank is synced.
func (s *ProgressionStore) Insert(rec *models.BeltProgression) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if rec.IsCurrent {
		_, err = tx.Exec(`UPDATE belt_progression SET is_current = false, updated_at = NOW()
						  WHERE student_id = $1 AND is_current = true`, rec.StudentID)
		if err != nil {
			return err
		}
	}

	query := `INSERT INTO belt_progression (student_id, belt_rank, promoted_date, promoted_by, test_id,
				is_current, ceremony_date, certificate_number, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, rec.StudentID, rec.BeltRank, rec.PromotedDate, rec.PromotedBy,
		rec.TestID, rec.IsCurrent, rec.CeremonyDate, rec.CertificateNumber, rec.Notes).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return err
	}

	if rec.IsCurrent {
		_, err = tx.Exec(`UPDATE students SET belt_rank = $1, last_test_date = $2,
							eligible_for_testing = false, updated_at = NOW()
						  WHERE id = $3`, rec.BeltRank, rec.PromotedDate, rec.StudentID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Update applies a partial update. The flip runs when the patch sets
// is_current, excluding the record itself from the flip-off query.
// Returns nil when the record does not exist.
func (s *ProgressionStore) Update(id string, patch *models.BeltProgressionPatch) (*models.BeltProgression, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `SELECT ` + progressionColumns + ` FROM belt_progression WHERE id = $1 FOR UPDATE`
	rec, err := scanProgression(tx.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if patch.BeltRank != nil {
		rec.BeltRank = *patch.BeltRank
	}
	if patch.PromotedDate != nil {
		rec.PromotedDate = *patch.PromotedDate
	}
	if patch.PromotedBy != nil {
		rec.PromotedBy = patch.PromotedBy
	}
	if patch.TestID != nil {
		rec.TestID = patch.TestID
	}
	if patch.CeremonyDate != nil {
		rec.CeremonyDate = patch.CeremonyDate
	}
	if patch.CertificateNumber != nil {
		rec.CertificateNumber = patch.CertificateNumber
	}
	if patch.Notes != nil {
		rec.Notes = patch.Notes
	}
	if patch.IsCurrent != nil {
		rec.IsCurrent = *patch.IsCurrent
	}

	if patch.IsCurrent != nil && *patch.IsCurrent {
		_, err = tx.Exec(`UPDATE belt_progression SET is_current = false, updated_at = NOW()
						  WHERE student_id = $1 AND is_current = true AND id <> $2`, rec.StudentID, id)
		if err != nil {
			return nil, err
		}
	}

	update := `UPDATE belt_progression SET belt_rank = $1, promoted_date = $2, promoted_by = $3,
				test_id = $4, is_current = $5, ceremony_date = $6, certificate_number = $7,
				notes = $8, updated_at = NOW()
			   WHERE id = $9
			   RETURNING updated_at`
	err = tx.QueryRow(update, rec.BeltRank, rec.PromotedDate, rec.PromotedBy, rec.TestID,
		rec.IsCurrent, rec.CeremonyDate, rec.CertificateNumber, rec.Notes, id).
		Scan(&rec.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if rec.IsCurrent {
		_, err = tx.Exec(`UPDATE students SET belt_rank = $1, updated_at = NOW() WHERE id = $2`,
			rec.BeltRank, rec.StudentID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *ProgressionStore) GetByID(id string) (*models.BeltProgression, error) {
	query := `SELECT ` + progressionColumns + ` FROM belt_progression WHERE id = $1`
	rec, err := scanProgression(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// Current returns the student's current belt record, or nil. The partial
// unique index guarantees at most one row qualifies.
func (s *ProgressionStore) Current(studentID string) (*models.BeltProgression, error) {
	query := `SELECT ` + progressionColumns + ` FROM belt_progression
			  WHERE student_id = $1 AND is_current = true`
	rec, err := scanProgression(s.db.QueryRow(query, studentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

func (s *ProgressionStore) FindByStudentID(studentID string) ([]*models.BeltProgression, error) {
	query := `SELECT ` + progressionColumns + ` FROM belt_progression
			  WHERE student_id = $1 ORDER BY promoted_date DESC`
	rows, err := s.db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.BeltProgression
	for rows.Next() {
		rec, err := scanProgression(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete hard-deletes a promotion record. No other record is promoted to
// current; a student may be left with zero current belts.
func (s *ProgressionStore) Delete(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM belt_progression WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

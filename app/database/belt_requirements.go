package database

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/lib/pq"
)

const beltRequirementColumns = `id, belt_rank, belt_order, color, forms, one_steps_required,
	self_defense_required, breaking, minimum_classes, minimum_months, created_at, updated_at`

func scanBeltRequirement(row interface{ Scan(...interface{}) error }) (*models.BeltRequirement, error) {
	r := &models.BeltRequirement{}
	err := row.Scan(
		&r.ID, &r.BeltRank, &r.BeltOrder, &r.Color, pq.Array(&r.Forms),
		&r.OneStepsRequired, &r.SelfDefenseRequired, &r.Breaking,
		&r.MinimumClasses, &r.MinimumMonths, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func GetAllBeltRequirements(db *sql.DB) ([]*models.BeltRequirement, error) {
	query := `SELECT ` + beltRequirementColumns + ` FROM belt_requirements ORDER BY belt_order`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.BeltRequirement
	for rows.Next() {
		r, err := scanBeltRequirement(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}

func GetBeltRequirementByRank(db *sql.DB, beltRank string) (*models.BeltRequirement, error) {
	query := `SELECT ` + beltRequirementColumns + ` FROM belt_requirements WHERE belt_rank = $1`
	return scanBeltRequirement(db.QueryRow(query, beltRank))
}

// NextBeltRank returns the rank one step above the given one, or sql.ErrNoRows
// at the top of the ladder.
func NextBeltRank(db *sql.DB, beltRank string) (*models.BeltRequirement, error) {
	query := `SELECT ` + beltRequirementColumns + `
			  FROM belt_requirements
			  WHERE belt_order > (SELECT belt_order FROM belt_requirements WHERE belt_rank = $1)
			  ORDER BY belt_order LIMIT 1`
	return scanBeltRequirement(db.QueryRow(query, beltRank))
}

func CreateBeltRequirement(db *sql.DB, r *models.BeltRequirement) error {
	query := `INSERT INTO belt_requirements (belt_rank, belt_order, color, forms, one_steps_required,
				self_defense_required, breaking, minimum_classes, minimum_months, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, r.BeltRank, r.BeltOrder, r.Color, pq.Array(r.Forms),
		r.OneStepsRequired, r.SelfDefenseRequired, r.Breaking, r.MinimumClasses, r.MinimumMonths).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func UpdateBeltRequirement(db *sql.DB, r *models.BeltRequirement) error {
	query := `UPDATE belt_requirements SET belt_rank = $1, belt_order = $2, color = $3, forms = $4,
				one_steps_required = $5, self_defense_required = $6, breaking = $7,
				minimum_classes = $8, minimum_months = $9, updated_at = NOW()
			  WHERE id = $10
			  RETURNING updated_at`
	return db.QueryRow(query, r.BeltRank, r.BeltOrder, r.Color, pq.Array(r.Forms),
		r.OneStepsRequired, r.SelfDefenseRequired, r.Breaking, r.MinimumClasses, r.MinimumMonths, r.ID).
		Scan(&r.UpdatedAt)
}

func DeleteBeltRequirement(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM belt_requirements WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

const techniqueColumns = `id, category, name, korean_name, belt_rank, description, is_active, created_at, updated_at`

// GetTechniques lists reference techniques, optionally filtered by category
// and/or belt rank.
func GetTechniques(db *sql.DB, category, beltRank string) ([]*models.Technique, error) {
	var conditions []string
	var args []interface{}
	conditions = append(conditions, "deleted_at IS NULL")

	if category != "" {
		args = append(args, category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if beltRank != "" {
		args = append(args, beltRank)
		conditions = append(conditions, fmt.Sprintf("belt_rank = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM techniques WHERE %s ORDER BY category, name`,
		techniqueColumns, strings.Join(conditions, " AND "))
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var techniques []*models.Technique
	for rows.Next() {
		var t models.Technique
		if err := rows.Scan(&t.ID, &t.Category, &t.Name, &t.KoreanName, &t.BeltRank,
			&t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		techniques = append(techniques, &t)
	}
	return techniques, rows.Err()
}

func GetTechniqueByID(db *sql.DB, id string) (*models.Technique, error) {
	t := &models.Technique{}
	query := fmt.Sprintf(`SELECT %s FROM techniques WHERE id = $1 AND deleted_at IS NULL`, techniqueColumns)
	err := db.QueryRow(query, id).Scan(&t.ID, &t.Category, &t.Name, &t.KoreanName,
		&t.BeltRank, &t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateTechnique(db *sql.DB, t *models.Technique) error {
	query := `INSERT INTO techniques (category, name, korean_name, belt_rank, description, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query, t.Category, t.Name, t.KoreanName, t.BeltRank, t.Description).
		Scan(&t.ID, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
}

func UpdateTechnique(db *sql.DB, t *models.Technique) error {
	query := `UPDATE techniques SET category = $1, name = $2, korean_name = $3, belt_rank = $4,
				description = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7 AND deleted_at IS NULL
			  RETURNING updated_at`
	return db.QueryRow(query, t.Category, t.Name, t.KoreanName, t.BeltRank, t.Description, t.IsActive, t.ID).
		Scan(&t.UpdatedAt)
}

func DeleteTechnique(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`UPDATE techniques SET deleted_at = NOW(), updated_at = NOW()
						 WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

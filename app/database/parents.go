package database

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

func GetAllParents(db *sql.DB) ([]*models.Parent, error) {
	query := `SELECT id, first_name, last_name, email, phone, address, created_at, updated_at
			  FROM parents WHERE deleted_at IS NULL ORDER BY last_name, first_name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parents []*models.Parent
	for rows.Next() {
		var p models.Parent
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		parents = append(parents, &p)
	}
	return parents, rows.Err()
}

func GetParentByID(db *sql.DB, parentID string) (*models.Parent, error) {
	p := &models.Parent{}
	query := `SELECT id, first_name, last_name, email, phone, address, created_at, updated_at
			  FROM parents WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, parentID).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func CreateParent(db *sql.DB, p *models.Parent) error {
	query := `INSERT INTO parents (first_name, last_name, email, phone, address, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, p.FirstName, p.LastName, p.Email, p.Phone, p.Address).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func UpdateParent(db *sql.DB, p *models.Parent) error {
	query := `UPDATE parents SET first_name = $1, last_name = $2, email = $3, phone = $4,
				address = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL
			  RETURNING updated_at`
	return db.QueryRow(query, p.FirstName, p.LastName, p.Email, p.Phone, p.Address, p.ID).
		Scan(&p.UpdatedAt)
}

func DeleteParent(db *sql.DB, parentID string) (bool, error) {
	res, err := db.Exec(`UPDATE parents SET deleted_at = NOW(), updated_at = NOW()
						 WHERE id = $1 AND deleted_at IS NULL`, parentID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// LinkFamily attaches a parent to a student. Upserts so relationship changes
// do not need a separate endpoint.
func LinkFamily(db *sql.DB, link *models.FamilyLink) error {
	query := `INSERT INTO family_links (parent_id, student_id, relationship, is_primary, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  ON CONFLICT (parent_id, student_id)
			  DO UPDATE SET relationship = EXCLUDED.relationship, is_primary = EXCLUDED.is_primary`
	_, err := db.Exec(query, link.ParentID, link.StudentID, link.Relationship, link.IsPrimary)
	return err
}

func UnlinkFamily(db *sql.DB, parentID, studentID string) (bool, error) {
	res, err := db.Exec(`DELETE FROM family_links WHERE parent_id = $1 AND student_id = $2`, parentID, studentID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GetParentsForStudent returns a student's parents with their relationship.
func GetParentsForStudent(db *sql.DB, studentID string) ([]*models.Parent, []*models.FamilyLink, error) {
	query := `
		SELECT p.id, p.first_name, p.last_name, p.email, p.phone, p.address, p.created_at, p.updated_at,
			   fl.relationship, fl.is_primary
		FROM parents p
		JOIN family_links fl ON fl.parent_id = p.id
		WHERE fl.student_id = $1 AND p.deleted_at IS NULL
		ORDER BY fl.is_primary DESC, p.last_name
	`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var parents []*models.Parent
	var links []*models.FamilyLink
	for rows.Next() {
		var p models.Parent
		link := models.FamilyLink{StudentID: studentID}
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address,
			&p.CreatedAt, &p.UpdatedAt, &link.Relationship, &link.IsPrimary); err != nil {
			return nil, nil, err
		}
		link.ParentID = p.ID
		parents = append(parents, &p)
		links = append(links, &link)
	}
	return parents, links, rows.Err()
}

// GetStudentsForParent returns all children linked to one parent.
func GetStudentsForParent(db *sql.DB, parentID string) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_code, s.first_name, s.last_name, s.preferred_name, s.email, s.phone,
			   s.date_of_birth, s.belt_rank, s.belt_size, s.join_date, s.last_test_date,
			   s.eligible_for_testing, s.is_active, s.notes, s.created_at, s.updated_at
		FROM students s
		JOIN family_links fl ON fl.student_id = s.id
		WHERE fl.parent_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.last_name, s.first_name
	`
	rows, err := db.Query(query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

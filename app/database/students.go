package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// StudentStore adapts the student queries to the services.StudentDirectory
// interface; a missing student comes back as nil rather than an error.
type StudentStore struct {
	db *sql.DB
}

func NewStudentStore(db *sql.DB) *StudentStore {
	return &StudentStore{db: db}
}

func (s *StudentStore) FindByID(studentID string) (*models.Student, error) {
	student, err := GetStudentByID(s.db, studentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return student, err
}

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search    string
	Status    string
	BeltRank  string
	Eligible  string // "true" / "false" / ""
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

const studentColumns = `id, student_code, first_name, last_name, preferred_name, email, phone,
	date_of_birth, belt_rank, belt_size, join_date, last_test_date,
	eligible_for_testing, is_active, notes, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.PreferredName,
		&s.Email, &s.Phone, &s.DateOfBirth, &s.BeltRank, &s.BeltSize,
		&s.JoinDate, &s.LastTestDate, &s.EligibleForTesting, &s.IsActive,
		&s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1 AND deleted_at IS NULL`, studentColumns)
	return scanStudent(db.QueryRow(query, studentID))
}

// GetStudentsWithFilters builds the WHERE clause from the supplied filters
// and returns the page plus the unpaginated total.
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	var conditions []string
	var args []interface{}
	conditions = append(conditions, "deleted_at IS NULL")

	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		p := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(first_name) LIKE %s OR LOWER(last_name) LIKE %s OR LOWER(student_code) LIKE %s)", p, p, p))
	}
	if filters.Status == "active" {
		conditions = append(conditions, "is_active = true")
	} else if filters.Status == "inactive" {
		conditions = append(conditions, "is_active = false")
	}
	if filters.BeltRank != "" {
		args = append(args, filters.BeltRank)
		conditions = append(conditions, fmt.Sprintf("belt_rank = $%d", len(args)))
	}
	if filters.Eligible == "true" {
		conditions = append(conditions, "eligible_for_testing = true")
	} else if filters.Eligible == "false" {
		conditions = append(conditions, "eligible_for_testing = false")
	}

	where := strings.Join(conditions, " AND ")

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM students WHERE " + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	sortBy := "last_name"
	switch filters.SortBy {
	case "student_code", "first_name", "last_name", "belt_rank", "join_date", "created_at":
		sortBy = filters.SortBy
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM students WHERE %s ORDER BY %s %s",
		studentColumns, where, sortBy, sortOrder)
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, totalCount, rows.Err()
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_code, first_name, last_name, preferred_name, email, phone,
				date_of_birth, belt_rank, belt_size, join_date, is_active, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	s.IsActive = true
	if s.BeltRank == "" {
		s.BeltRank = "White"
	}
	return db.QueryRow(query,
		s.StudentCode, s.FirstName, s.LastName, s.PreferredName, s.Email, s.Phone,
		s.DateOfBirth, s.BeltRank, s.BeltSize, s.JoinDate, s.IsActive, s.Notes,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET
				student_code = $1, first_name = $2, last_name = $3, preferred_name = $4,
				email = $5, phone = $6, date_of_birth = $7, belt_rank = $8, belt_size = $9,
				join_date = $10, is_active = $11, notes = $12, updated_at = NOW()
			  WHERE id = $13 AND deleted_at IS NULL
			  RETURNING updated_at`
	return db.QueryRow(query,
		s.StudentCode, s.FirstName, s.LastName, s.PreferredName, s.Email, s.Phone,
		s.DateOfBirth, s.BeltRank, s.BeltSize, s.JoinDate, s.IsActive, s.Notes, s.ID,
	).Scan(&s.UpdatedAt)
}

// DeleteStudent soft-deletes; history rows stay behind their FK.
func DeleteStudent(db *sql.DB, studentID string) (bool, error) {
	res, err := db.Exec(`UPDATE students SET deleted_at = NOW(), is_active = false, updated_at = NOW()
						 WHERE id = $1 AND deleted_at IS NULL`, studentID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GetStudentsStats returns the aggregate numbers for the students page.
func GetStudentsStats(db *sql.DB) (map[string]interface{}, error) {
	var total, active, eligible int
	err := db.QueryRow(`
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE is_active),
			   COUNT(*) FILTER (WHERE is_active AND eligible_for_testing)
		FROM students WHERE deleted_at IS NULL
	`).Scan(&total, &active, &eligible)
	if err != nil {
		return nil, err
	}

	byRank := make(map[string]int)
	rows, err := db.Query(`SELECT belt_rank, COUNT(*) FROM students
						   WHERE deleted_at IS NULL AND is_active GROUP BY belt_rank`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var rank string
		var count int
		if err := rows.Scan(&rank, &count); err != nil {
			return nil, err
		}
		byRank[rank] = count
	}

	return map[string]interface{}{
		"total_students":       total,
		"active_students":      active,
		"eligible_for_testing": eligible,
		"by_belt_rank":         byRank,
	}, rows.Err()
}

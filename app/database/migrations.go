package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// RunMigrations applies the schema. Everything here is idempotent so it runs
// on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []func(*sql.DB) error{
		createAuthTables,
		createStudentTables,
		createCurriculumTables,
		createAssessmentTable,
		createProgressionTable,
		createEventTable,
		seedRoles,
		seedBeltRequirements,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createAuthTables(db *sql.DB) error {
	query := `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone VARCHAR(20),
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS roles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT UNIQUE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS user_roles (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, role_id)
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create auth tables: %v", err)
		return err
	}
	return nil
}

func createStudentTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_code TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		preferred_name TEXT,
		email TEXT,
		phone VARCHAR(20),
		date_of_birth DATE,
		belt_rank TEXT NOT NULL DEFAULT 'White',
		belt_size TEXT,
		join_date DATE,
		last_test_date DATE,
		eligible_for_testing BOOLEAN NOT NULL DEFAULT false,
		is_active BOOLEAN NOT NULL DEFAULT true,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS parents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT,
		phone VARCHAR(20),
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS family_links (
		parent_id UUID NOT NULL REFERENCES parents(id) ON DELETE CASCADE,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		relationship TEXT NOT NULL DEFAULT 'guardian',
		is_primary BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (parent_id, student_id)
	);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create student tables: %v", err)
		return err
	}
	return nil
}

func createCurriculumTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS belt_requirements (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		belt_rank TEXT UNIQUE NOT NULL,
		belt_order INT NOT NULL,
		color TEXT NOT NULL,
		forms TEXT[] NOT NULL DEFAULT '{}',
		one_steps_required INT NOT NULL DEFAULT 0,
		self_defense_required INT NOT NULL DEFAULT 0,
		breaking TEXT,
		minimum_classes INT NOT NULL DEFAULT 0,
		minimum_months INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS techniques (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		category TEXT NOT NULL,
		name TEXT NOT NULL,
		korean_name TEXT,
		belt_rank TEXT NOT NULL,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);
	CREATE INDEX IF NOT EXISTS idx_techniques_category ON techniques(category);
	CREATE INDEX IF NOT EXISTS idx_techniques_belt_rank ON techniques(belt_rank);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create curriculum tables: %v", err)
		return err
	}
	return nil
}

func createAssessmentTable(db *sql.DB) error {
	// Score columns come from the model registry so the table always matches
	// the scan order in assessments.go.
	var scores strings.Builder
	for _, col := range models.ScoreColumns {
		scores.WriteString(fmt.Sprintf("\t\t%s DECIMAL(3,1),\n", col))
	}

	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS student_assessments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		instructor_id UUID REFERENCES users(id),
		assessment_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		target_belt_rank TEXT,
		certificate_name TEXT,
		belt_size TEXT,
		status TEXT NOT NULL DEFAULT 'in_progress',
%s		overall_score DECIMAL(4,1),
		passed BOOLEAN,
		examiner_notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_assessment_status CHECK (status IN ('in_progress', 'completed', 'cancelled'))
	);
	CREATE INDEX IF NOT EXISTS idx_assessments_student ON student_assessments(student_id);
	CREATE INDEX IF NOT EXISTS idx_assessments_status ON student_assessments(status);
	CREATE INDEX IF NOT EXISTS idx_assessments_target_rank ON student_assessments(target_belt_rank);
	CREATE UNIQUE INDEX IF NOT EXISTS uniq_assessment_open
		ON student_assessments(student_id) WHERE status = 'in_progress';
	`, scores.String())

	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create student_assessments table: %v", err)
		return err
	}
	return nil
}

func createProgressionTable(db *sql.DB) error {
	// The partial unique index makes the single-current-belt invariant a
	// store-level guarantee, not just application ordering.
	query := `
	CREATE TABLE IF NOT EXISTS belt_progression (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		belt_rank TEXT NOT NULL,
		promoted_date DATE NOT NULL,
		promoted_by TEXT,
		test_id UUID REFERENCES student_assessments(id) ON DELETE SET NULL,
		is_current BOOLEAN NOT NULL DEFAULT false,
		ceremony_date DATE,
		certificate_number TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_progression_student ON belt_progression(student_id);
	CREATE UNIQUE INDEX IF NOT EXISTS uniq_progression_current
		ON belt_progression(student_id) WHERE is_current;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create belt_progression table: %v", err)
		return err
	}
	return nil
}

func createEventTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS testing_events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		event_date TIMESTAMPTZ NOT NULL,
		location TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create testing_events table: %v", err)
		return err
	}
	return nil
}

func seedRoles(db *sql.DB) error {
	query := `
	INSERT INTO roles (name) VALUES ('admin'), ('head_instructor'), ('instructor')
	ON CONFLICT (name) DO NOTHING;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to seed roles: %v", err)
		return err
	}
	return nil
}

func seedBeltRequirements(db *sql.DB) error {
	query := `
	INSERT INTO belt_requirements (belt_rank, belt_order, color, forms, one_steps_required, self_defense_required, minimum_classes, minimum_months) VALUES
		('White',        1,  'white',  '{"Geocho Hyung Il Bu"}',                      0, 0, 0,  0),
		('Orange White', 2,  'orange', '{"Geocho Hyung Il Bu"}',                      2, 0, 16, 2),
		('Orange',       3,  'orange', '{"Geocho Hyung I Bu"}',                       4, 0, 16, 2),
		('Yellow White', 4,  'yellow', '{"Geocho Hyung Sam Bu"}',                     4, 2, 16, 2),
		('Yellow',       5,  'yellow', '{"Pyong An Cho Dan"}',                        6, 2, 16, 2),
		('Green White',  6,  'green',  '{"Pyong An Cho Dan"}',                        6, 4, 20, 3),
		('Green',        7,  'green',  '{"Pyong An I Dan"}',                          8, 4, 20, 3),
		('Purple White', 8,  'purple', '{"Pyong An Sam Dan"}',                        8, 4, 20, 3),
		('Purple',       9,  'purple', '{"Pyong An Sam Dan"}',                        8, 6, 20, 3),
		('Blue White',   10, 'blue',   '{"Pyong An Sa Dan"}',                         10, 6, 24, 4),
		('Blue',         11, 'blue',   '{"Pyong An Sa Dan"}',                         10, 6, 24, 4),
		('Brown White',  12, 'brown',  '{"Pyong An O Dan"}',                          12, 8, 24, 4),
		('Brown',        13, 'brown',  '{"Pyong An O Dan"}',                          12, 8, 24, 6),
		('Red White',    14, 'red',    '{"Pyong An O Dan","Bassai Dae"}',             12, 8, 30, 6),
		('Red',          15, 'red',    '{"Bassai Dae"}',                              12, 8, 30, 6)
	ON CONFLICT (belt_rank) DO NOTHING;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to seed belt requirements: %v", err)
		return err
	}
	return nil
}

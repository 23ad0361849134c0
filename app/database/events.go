package database

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// CreateTestingEvent adds a belt-test date to the calendar
func CreateTestingEvent(db *sql.DB, event *models.TestingEvent) error {
	query := `
		INSERT INTO testing_events (title, event_date, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(query, event.Title, event.EventDate, event.Location, event.Notes).
		Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// GetTestingEvents retrieves all events ordered by event_date
func GetTestingEvents(db *sql.DB) ([]models.TestingEvent, error) {
	query := `
		SELECT id, title, event_date, location, notes, created_at, updated_at
		FROM testing_events
		ORDER BY event_date ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.TestingEvent
	for rows.Next() {
		var e models.TestingEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.EventDate, &e.Location, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetUpcomingTestingEvents returns events on or after today.
func GetUpcomingTestingEvents(db *sql.DB) ([]models.TestingEvent, error) {
	query := `
		SELECT id, title, event_date, location, notes, created_at, updated_at
		FROM testing_events
		WHERE event_date >= NOW()
		ORDER BY event_date ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.TestingEvent
	for rows.Next() {
		var e models.TestingEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.EventDate, &e.Location, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateTestingEvent rewrites an event's details
func UpdateTestingEvent(db *sql.DB, event *models.TestingEvent) error {
	query := `UPDATE testing_events SET title = $1, event_date = $2, location = $3, notes = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING updated_at`
	return db.QueryRow(query, event.Title, event.EventDate, event.Location, event.Notes, event.ID).
		Scan(&event.UpdatedAt)
}

// DeleteTestingEvent deletes an event by ID
func DeleteTestingEvent(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM testing_events WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

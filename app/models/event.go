package models

import "time"

// TestingEvent represents a scheduled belt-test date on the dojang calendar.
type TestingEvent struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Title     string    `json:"title" gorm:"not null" validate:"required"`
	EventDate time.Time `json:"event_date" gorm:"not null" validate:"required"`
	Location  *string   `json:"location,omitempty"`
	Notes     *string   `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

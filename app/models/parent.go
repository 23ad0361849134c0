package models

import "time"

// Parent represents a parent or guardian in a student's family record.
type Parent struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FirstName string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string     `json:"last_name" gorm:"not null" validate:"required"`
	Email     *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Address   *string    `json:"address,omitempty" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Students  []*Student `json:"students,omitempty" gorm:"many2many:family_links;"`
}

// FamilyLink joins a parent to a student with their relationship.
type FamilyLink struct {
	ParentID     string           `json:"parent_id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	StudentID    string           `json:"student_id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	Relationship RelationshipType `json:"relationship" gorm:"not null;default:'guardian'"`
	IsPrimary    bool             `json:"is_primary" gorm:"default:false"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

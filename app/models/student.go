package models

import "time"

// Student represents an enrolled student and their current standing in the
// curriculum. BeltRank mirrors the current belt_progression record and is
// kept in sync when a promotion is recorded.
type Student struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentCode        string     `json:"student_code" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName          string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName           string     `json:"last_name" gorm:"not null" validate:"required"`
	PreferredName      *string    `json:"preferred_name,omitempty"`
	Email              *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone              *string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	BeltRank           string     `json:"belt_rank" gorm:"not null;default:'White'" validate:"required"`
	BeltSize           *string    `json:"belt_size,omitempty"`
	JoinDate           *time.Time `json:"join_date,omitempty"`
	LastTestDate       *time.Time `json:"last_test_date,omitempty"`
	EligibleForTesting bool       `json:"eligible_for_testing" gorm:"default:false"`
	IsActive           bool       `json:"is_active" gorm:"default:true"`
	Notes              *string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Parents            []*Parent  `json:"parents,omitempty" gorm:"many2many:family_links;"`
}

// DisplayName returns the preferred name when one is set.
func (s *Student) DisplayName() string {
	if s.PreferredName != nil && *s.PreferredName != "" {
		return *s.PreferredName
	}
	return s.FirstName
}

package models

import "time"

// BeltProgression is one promotion event in a student's belt history.
// At most one record per student may have IsCurrent set; the store enforces
// this with a transaction plus a partial unique index.
type BeltProgression struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID         string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	BeltRank          string     `json:"belt_rank" gorm:"not null" validate:"required"`
	PromotedDate      time.Time  `json:"promoted_date" gorm:"not null" validate:"required"`
	PromotedBy        *string    `json:"promoted_by,omitempty"`
	TestID            *string    `json:"test_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsCurrent         bool       `json:"is_current" gorm:"default:false"`
	CeremonyDate      *time.Time `json:"ceremony_date,omitempty"`
	CertificateNumber *string    `json:"certificate_number,omitempty"`
	Notes             *string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Student           *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// BeltProgressionPatch carries a partial update; nil fields are left as-is.
type BeltProgressionPatch struct {
	BeltRank          *string    `json:"belt_rank,omitempty"`
	PromotedDate      *time.Time `json:"promoted_date,omitempty"`
	PromotedBy        *string    `json:"promoted_by,omitempty"`
	TestID            *string    `json:"test_id,omitempty"`
	IsCurrent         *bool      `json:"is_current,omitempty"`
	CeremonyDate      *time.Time `json:"ceremony_date,omitempty"`
	CertificateNumber *string    `json:"certificate_number,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

// BeltHistory is the derived promotion history for one student.
type BeltHistory struct {
	CurrentBelt       *BeltProgression   `json:"current_belt"`
	Progression       []*BeltProgression `json:"progression"`
	TotalPromotions   int                `json:"total_promotions"`
	TimeAsCurrentBelt *int               `json:"time_as_current_belt"` // days, nil when no current belt
}

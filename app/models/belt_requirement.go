package models

import (
	"time"

	"github.com/lib/pq"
)

// BeltRequirement describes the curriculum for one belt rank: the forms the
// student must perform and the minimums they must meet before testing.
type BeltRequirement struct {
	ID                  string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	BeltRank            string         `json:"belt_rank" gorm:"uniqueIndex;not null" validate:"required"`
	BeltOrder           int            `json:"belt_order" gorm:"not null" validate:"gte=0"`
	Color               string         `json:"color" gorm:"not null" validate:"required"`
	Forms               pq.StringArray `json:"forms" gorm:"type:text[]"`
	OneStepsRequired    int            `json:"one_steps_required" gorm:"default:0" validate:"gte=0"`
	SelfDefenseRequired int            `json:"self_defense_required" gorm:"default:0" validate:"gte=0"`
	Breaking            *string        `json:"breaking,omitempty"`
	MinimumClasses      int            `json:"minimum_classes" gorm:"default:0" validate:"gte=0"`
	MinimumMonths       int            `json:"minimum_months" gorm:"default:0" validate:"gte=0"`
	CreatedAt           time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

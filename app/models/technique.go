package models

import "time"

// Technique is a curriculum reference entry: a block, kick, punch, stance,
// form, one-step, self-defense set, combination or falling technique tied to
// the belt rank at which it is introduced.
type Technique struct {
	ID          string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Category    TechniqueCategory `json:"category" gorm:"not null;index" validate:"required"`
	Name        string            `json:"name" gorm:"not null" validate:"required"`
	KoreanName  *string           `json:"korean_name,omitempty"`
	BeltRank    string            `json:"belt_rank" gorm:"not null;index" validate:"required"`
	Description *string           `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool              `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time        `json:"deleted_at,omitempty" gorm:"index"`
}

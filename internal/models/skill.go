package models

import "time"

// Skill levels.
const (
	LevelBasic        = "Basic"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Skill is a technology or competence listed on the portfolio.
type Skill struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,min=2,max=50"`
	Category  string    `json:"category" gorm:"type:varchar(50);not null" validate:"required,min=2,max=50"`
	IconURL   string    `json:"iconUrl" gorm:"type:varchar(500)" validate:"omitempty,weburl"`
	Level     string    `json:"level" gorm:"type:varchar(20);not null" validate:"required,oneof=Basic Intermediate Advanced Expert"`
	Order     int       `json:"order" gorm:"column:display_order;not null" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import "time"

// DefaultOrder is the sort position given to entries created without one.
const DefaultOrder = 999

// Project is a portfolio work sample.
type Project struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title            string    `json:"title" gorm:"type:varchar(150);not null" validate:"required,min=3,max=150"`
	ShortDescription string    `json:"shortDescription" gorm:"type:varchar(300);not null" validate:"required,min=10,max=300"`
	LongDescription  string    `json:"longDescription" gorm:"type:text;not null" validate:"required,min=50,max=5000"`
	Technologies     []Skill   `json:"technologies" gorm:"many2many:project_technologies;"`
	ImageURL         string    `json:"imageUrl" gorm:"type:varchar(500);not null" validate:"required,weburl"`
	LiveDemoURL      string    `json:"liveDemoUrl" gorm:"type:varchar(500)" validate:"omitempty,weburl"`
	GithubURL        string    `json:"githubUrl" gorm:"type:varchar(500);not null" validate:"required,weburl"`
	Order            int       `json:"order" gorm:"column:display_order;not null"`
	IsFeatured       bool      `json:"isFeatured" gorm:"index;not null;default:false"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

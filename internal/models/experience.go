package models

import "time"

// ExperienceType tags an Experience entry.
type ExperienceType string

const (
	ExperienceJob           ExperienceType = "job"
	ExperienceEducation     ExperienceType = "education"
	ExperienceCertification ExperienceType = "certification"
)

// Experience is a job, education or certification entry. A nil EndDate
// means the entry is ongoing.
type Experience struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Type        ExperienceType `json:"type" gorm:"type:varchar(20);not null" validate:"required,oneof=job education certification"`
	Title       string         `json:"title" gorm:"type:varchar(200);not null" validate:"required,min=3,max=200"`
	Company     string         `json:"company" gorm:"type:varchar(200)"`
	Institution string         `json:"institution" gorm:"type:varchar(200)"`
	Location    string         `json:"location" gorm:"type:varchar(100)" validate:"max=100"`
	StartDate   time.Time      `json:"startDate" gorm:"not null;index" validate:"required"`
	EndDate     *time.Time     `json:"endDate"`
	Description string         `json:"description" gorm:"type:text" validate:"max=1000"`
	Order       int            `json:"order" gorm:"column:display_order;not null" validate:"gte=0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

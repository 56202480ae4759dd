package models

import "time"

// Message is a contact-form submission. Messages are never updated.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null" validate:"required,min=2,max=50"`
	Email     string    `json:"email" gorm:"type:varchar(254);not null" validate:"required,max=254,email_tld"`
	Message   string    `json:"message" gorm:"type:text;not null" validate:"required,min=10,max=500"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role is the permission level of an account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// SocialLink is an embedded link shown on the owner's profile.
type SocialLink struct {
	Platform string `json:"platform" validate:"required,min=2,max=30"`
	URL      string `json:"url" validate:"required,weburl"`
}

// User is both an account and the portfolio owner's public profile.
type User struct {
	ID             string                          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name           string                          `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Email          string                          `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email_tld"`
	Password       string                          `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialised
	Role           Role                            `json:"role" gorm:"type:varchar(20);not null;default:editor" validate:"required,oneof=admin editor"`
	Title          string                          `json:"title" gorm:"type:varchar(100)" validate:"required,max=100"`
	Bio            string                          `json:"bio" gorm:"type:text" validate:"required,min=50,max=1000"`
	ProfilePicture string                          `json:"profilePicture" gorm:"type:varchar(500)" validate:"omitempty,weburl"`
	SocialLinks    datatypes.JSONSlice[SocialLink] `json:"socialLinks" validate:"dive"`
	FeaturedSkills []Skill                         `json:"featuredSkills" gorm:"many2many:user_featured_skills;"`
	CreatedAt      time.Time                       `json:"createdAt"`
	UpdatedAt      time.Time                       `json:"updatedAt"`
}

package models

import "time"

// Homepage ties the owner profile to the skills and projects shown on the
// landing page.
type Homepage struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID           string    `json:"userId" gorm:"type:varchar(36);not null"`
	User             User      `json:"user" gorm:"foreignKey:UserID"`
	Skills           []Skill   `json:"skills" gorm:"many2many:homepage_skills;"`
	FeaturedProjects []Project `json:"featuredProjects" gorm:"many2many:homepage_featured_projects;"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Skill{},
		&User{},
		&Project{},
		&Experience{},
		&Message{},
		&PageContent{},
		&Homepage{},
	}
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Section is one block of a content page.
type Section struct {
	SectionTitle string `json:"sectionTitle" validate:"required"`
	Text         string `json:"text" validate:"required"`
	Image        string `json:"image,omitempty" validate:"omitempty,weburl"`
}

// PageContent is the editable copy of a static page, keyed by PageName.
type PageContent struct {
	ID           string                       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PageName     string                       `json:"pageName" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,pagename"`
	Title        string                       `json:"title" gorm:"type:varchar(200);not null" validate:"required"`
	Introduction string                       `json:"introduction" gorm:"type:text"`
	Sections     datatypes.JSONSlice[Section] `json:"sections" validate:"dive"`
	CreatedAt    time.Time                    `json:"createdAt"`
	UpdatedAt    time.Time                    `json:"updatedAt"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionModel is a named homepage grouping; a series belongs to at most
// one section via series_section_id.
type SectionModel struct {
	SectionID           uuid.UUID `gorm:"column:section_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"section_id"`
	SectionNameAr       string    `gorm:"column:section_name_ar;type:varchar(255);not null" json:"section_name_ar"`
	SectionNameEn       *string   `gorm:"column:section_name_en;type:varchar(255)" json:"section_name_en,omitempty"`
	SectionDisplayOrder int       `gorm:"column:section_display_order;not null;default:0" json:"section_display_order"`
	SectionMaxVisible   int       `gorm:"column:section_max_visible;not null;default:6" json:"section_max_visible"`

	SectionCreatedAt time.Time  `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt *time.Time `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at,omitempty"`
}

func (SectionModel) TableName() string {
	return "sections"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	sheikhModel "maktabah_backend/internals/features/sheikhs/model"
)

// SeriesModel carries no stored lecture count; visible-lecture counts are
// always computed on read.
type SeriesModel struct {
	SeriesID            uuid.UUID      `gorm:"column:series_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"series_id"`
	SeriesTitleAr       string         `gorm:"column:series_title_ar;type:varchar(255);not null" json:"series_title_ar"`
	SeriesTitleEn       *string        `gorm:"column:series_title_en;type:varchar(255)" json:"series_title_en,omitempty"`
	SeriesSlug          string         `gorm:"column:series_slug;type:varchar(120);uniqueIndex;not null" json:"series_slug"`
	SeriesDescriptionAr *string        `gorm:"column:series_description_ar;type:text" json:"series_description_ar,omitempty"`
	SeriesSheikhID      *uuid.UUID     `gorm:"column:series_sheikh_id;type:uuid;index" json:"series_sheikh_id,omitempty"`
	SeriesSectionID     *uuid.UUID     `gorm:"column:series_section_id;type:uuid;index" json:"series_section_id,omitempty"`
	SeriesIsVisible     bool           `gorm:"column:series_is_visible;not null;default:true" json:"series_is_visible"`
	SeriesTags          pq.StringArray `gorm:"column:series_tags;type:text[]" json:"series_tags,omitempty"`
	SeriesImageURL      *string        `gorm:"column:series_image_url;type:text" json:"series_image_url,omitempty"`

	SeriesCreatedAt time.Time      `gorm:"column:series_created_at;autoCreateTime" json:"series_created_at"`
	SeriesUpdatedAt *time.Time     `gorm:"column:series_updated_at;autoUpdateTime" json:"series_updated_at,omitempty"`
	SeriesDeletedAt gorm.DeletedAt `gorm:"column:series_deleted_at;index" json:"series_deleted_at,omitempty"`

	Sheikh *sheikhModel.SheikhModel `gorm:"foreignKey:SeriesSheikhID;references:SheikhID" json:"sheikh,omitempty"`
}

func (SeriesModel) TableName() string {
	return "series"
}

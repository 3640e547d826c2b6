package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SheikhModel struct {
	SheikhID       uuid.UUID `gorm:"column:sheikh_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"sheikh_id"`
	SheikhNameAr   string    `gorm:"column:sheikh_name_ar;type:varchar(255);not null" json:"sheikh_name_ar"`
	SheikhNameEn   *string   `gorm:"column:sheikh_name_en;type:varchar(255)" json:"sheikh_name_en,omitempty"`
	SheikhSlug     string    `gorm:"column:sheikh_slug;type:varchar(120);uniqueIndex;not null" json:"sheikh_slug"`
	SheikhBioAr    *string   `gorm:"column:sheikh_bio_ar;type:text" json:"sheikh_bio_ar,omitempty"`
	SheikhImageURL *string   `gorm:"column:sheikh_image_url;type:text" json:"sheikh_image_url,omitempty"`

	SheikhCreatedAt time.Time      `gorm:"column:sheikh_created_at;autoCreateTime" json:"sheikh_created_at"`
	SheikhUpdatedAt *time.Time     `gorm:"column:sheikh_updated_at;autoUpdateTime" json:"sheikh_updated_at,omitempty"`
	SheikhDeletedAt gorm.DeletedAt `gorm:"column:sheikh_deleted_at;index" json:"sheikh_deleted_at,omitempty"`
}

func (SheikhModel) TableName() string {
	return "sheikhs"
}

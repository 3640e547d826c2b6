package model

import (
	"time"

	"github.com/google/uuid"
)

// PageViewModel is a day-bucketed counter: one row per (path, date),
// incremented by upsert.
type PageViewModel struct {
	PageViewID       uuid.UUID `gorm:"column:page_view_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"page_view_id"`
	PageViewPath     string    `gorm:"column:page_view_path;type:varchar(512);not null;uniqueIndex:uq_page_views_path_date,priority:1" json:"page_view_path"`
	PageViewPageType string    `gorm:"column:page_view_page_type;type:varchar(20);not null" json:"page_view_page_type"`
	PageViewDate     time.Time `gorm:"column:page_view_date;type:date;not null;uniqueIndex:uq_page_views_path_date,priority:2" json:"page_view_date"`
	PageViewCount    int64     `gorm:"column:page_view_count;not null;default:0" json:"page_view_count"`

	PageViewCreatedAt time.Time  `gorm:"column:page_view_created_at;autoCreateTime" json:"page_view_created_at"`
	PageViewUpdatedAt *time.Time `gorm:"column:page_view_updated_at;autoUpdateTime" json:"page_view_updated_at,omitempty"`
}

func (PageViewModel) TableName() string {
	return "page_views"
}

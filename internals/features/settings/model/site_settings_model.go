package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettingsID keys the singleton row.
var SiteSettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// SiteSettingsModel holds the public-stats thresholds and the cached
// aggregate totals refreshed by the admin refresh-totals action.
type SiteSettingsModel struct {
	SiteSettingsID uuid.UUID `gorm:"column:site_settings_id;primaryKey;type:uuid" json:"site_settings_id"`

	// A lecture's play/download counts only appear publicly once they
	// clear these thresholds.
	SiteSettingsMinPlayCountPublic     int64 `gorm:"column:site_settings_min_play_count_public;not null;default:0" json:"site_settings_min_play_count_public"`
	SiteSettingsMinDownloadCountPublic int64 `gorm:"column:site_settings_min_download_count_public;not null;default:0" json:"site_settings_min_download_count_public"`
	SiteSettingsMinViewCountPublic     int64 `gorm:"column:site_settings_min_view_count_public;not null;default:0" json:"site_settings_min_view_count_public"`

	SiteSettingsTotalLectures int64 `gorm:"column:site_settings_total_lectures;not null;default:0" json:"site_settings_total_lectures"`
	SiteSettingsTotalSeries   int64 `gorm:"column:site_settings_total_series;not null;default:0" json:"site_settings_total_series"`
	SiteSettingsTotalSheikhs  int64 `gorm:"column:site_settings_total_sheikhs;not null;default:0" json:"site_settings_total_sheikhs"`
	SiteSettingsTotalPlays    int64 `gorm:"column:site_settings_total_plays;not null;default:0" json:"site_settings_total_plays"`

	SiteSettingsTotalsRefreshedAt *time.Time `gorm:"column:site_settings_totals_refreshed_at" json:"site_settings_totals_refreshed_at,omitempty"`

	SiteSettingsCreatedAt time.Time  `gorm:"column:site_settings_created_at;autoCreateTime" json:"site_settings_created_at"`
	SiteSettingsUpdatedAt *time.Time `gorm:"column:site_settings_updated_at;autoUpdateTime" json:"site_settings_updated_at,omitempty"`
}

func (SiteSettingsModel) TableName() string {
	return "site_settings"
}

package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"
	"maktabah_backend/internals/features/settings/model"
	sheikhModel "maktabah_backend/internals/features/sheikhs/model"
)

// GetOrInit returns the singleton settings row, creating it with zeroed
// thresholds on first use.
func GetOrInit(ctx context.Context, db *gorm.DB) (*model.SiteSettingsModel, error) {
	var s model.SiteSettingsModel
	err := db.WithContext(ctx).
		Where(model.SiteSettingsModel{SiteSettingsID: model.SiteSettingsID}).
		FirstOrCreate(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// RefreshTotals recomputes the cached aggregate totals from the live
// tables and stores them on the singleton.
func RefreshTotals(ctx context.Context, db *gorm.DB) (*model.SiteSettingsModel, error) {
	s, err := GetOrInit(ctx, db)
	if err != nil {
		return nil, err
	}

	var totalLectures, totalSeries, totalSheikhs int64
	if err := db.WithContext(ctx).Model(&lectureModel.LectureModel{}).
		Where("lecture_published = ?", true).Count(&totalLectures).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&seriesModel.SeriesModel{}).
		Where("series_is_visible = ?", true).Count(&totalSeries).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&sheikhModel.SheikhModel{}).
		Count(&totalSheikhs).Error; err != nil {
		return nil, err
	}

	var totalPlays int64
	if err := db.WithContext(ctx).Model(&lectureModel.LectureModel{}).
		Where("lecture_published = ?", true).
		Select("COALESCE(SUM(lecture_play_count), 0)").
		Scan(&totalPlays).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	s.SiteSettingsTotalLectures = totalLectures
	s.SiteSettingsTotalSeries = totalSeries
	s.SiteSettingsTotalSheikhs = totalSheikhs
	s.SiteSettingsTotalPlays = totalPlays
	s.SiteSettingsTotalsRefreshedAt = &now

	if err := db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

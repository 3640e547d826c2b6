package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"

	"maktabah_backend/internals/constants"
)

// LoadSeriesEntries pulls every visible series plus the published lectures
// under them and assembles classified entries. Classification and the
// zero-lecture drop happen in process, on every read.
func LoadSeriesEntries(ctx context.Context, db *gorm.DB) ([]SeriesEntry, error) {
	var series []seriesModel.SeriesModel
	if err := db.WithContext(ctx).
		Preload("Sheikh").
		Where("series_is_visible = ?", true).
		Find(&series).Error; err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return []SeriesEntry{}, nil
	}

	ids := make([]uuid.UUID, 0, len(series))
	for _, s := range series {
		ids = append(ids, s.SeriesID)
	}

	var lectures []lectureModel.LectureModel
	if err := db.WithContext(ctx).
		Where("lecture_series_id IN ? AND lecture_published = ?", ids, true).
		Find(&lectures).Error; err != nil {
		return nil, err
	}

	bySeries := make(map[uuid.UUID][]lectureModel.LectureModel, len(series))
	for _, l := range lectures {
		if l.LectureSeriesID != nil {
			bySeries[*l.LectureSeriesID] = append(bySeries[*l.LectureSeriesID], l)
		}
	}

	return BuildSeriesEntries(series, bySeries), nil
}

// LoadStandaloneLectures returns published lectures with no series, plus
// the lectures of the "miscellaneous" series when includeMisc is set.
// Misc membership is a title-substring match, not a stored flag.
func LoadStandaloneLectures(ctx context.Context, db *gorm.DB, includeMisc bool) ([]lectureModel.LectureModel, error) {
	var lectures []lectureModel.LectureModel
	if err := db.WithContext(ctx).
		Preload("Sheikh").
		Where("lecture_series_id IS NULL AND lecture_published = ?", true).
		Find(&lectures).Error; err != nil {
		return nil, err
	}

	if includeMisc {
		var miscSeries []seriesModel.SeriesModel
		if err := db.WithContext(ctx).
			Where("series_is_visible = ? AND series_title_ar LIKE ?",
				true, "%"+constants.MiscSeriesTitleMark+"%").
			Find(&miscSeries).Error; err != nil {
			return nil, err
		}
		if len(miscSeries) > 0 {
			ids := make([]uuid.UUID, 0, len(miscSeries))
			for _, s := range miscSeries {
				ids = append(ids, s.SeriesID)
			}
			var miscLectures []lectureModel.LectureModel
			if err := db.WithContext(ctx).
				Preload("Sheikh").
				Where("lecture_series_id IN ? AND lecture_published = ?", ids, true).
				Find(&miscLectures).Error; err != nil {
				return nil, err
			}
			lectures = append(lectures, miscLectures...)
		}
	}

	return lectures, nil
}

func CountPublishedLectures(ctx context.Context, db *gorm.DB, f StandaloneFilter) (int64, error) {
	q := db.WithContext(ctx).Model(&lectureModel.LectureModel{}).
		Where("lecture_published = ?", true)
	if f.Category != "" {
		q = q.Where("lecture_category = ?", f.Category)
	}
	if s := f.Search; s != "" {
		like := "%" + s + "%"
		q = q.Where("lecture_title_ar ILIKE ? OR lecture_title_en ILIKE ?", like, like)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// TabStats backs the badge counts shown before the tabs load.
type TabStats struct {
	Series        int64 `json:"series"`
	Standalone    int64 `json:"standalone"`
	Khutbas       int64 `json:"khutbas"`
	TotalLectures int64 `json:"totalLectures"`
}

// ComputeTabStats applies the same filters as the tabs themselves so the
// badges always agree with tab contents.
func ComputeTabStats(ctx context.Context, db *gorm.DB, f SeriesTabFilter) (*TabStats, error) {
	entries, err := LoadSeriesEntries(ctx, db)
	if err != nil {
		return nil, err
	}

	seriesFilter := f
	seriesFilter.ExcludeKhutbas = true
	seriesFilter.KhutbasOnly = false
	seriesCount := int64(len(FilterSeriesEntries(entries, seriesFilter)))

	khutbaFilter := SeriesTabFilter{Search: f.Search, KhutbasOnly: true}
	khutbaCount := int64(len(FilterSeriesEntries(entries, khutbaFilter)))

	standalone, err := LoadStandaloneLectures(ctx, db, true)
	if err != nil {
		return nil, err
	}
	standaloneCount := int64(len(FilterStandaloneLectures(standalone,
		StandaloneFilter{Category: f.Category, Search: f.Search})))

	total, err := CountPublishedLectures(ctx, db,
		StandaloneFilter{Category: f.Category, Search: f.Search})
	if err != nil {
		return nil, err
	}

	return &TabStats{
		Series:        seriesCount,
		Standalone:    standaloneCount,
		Khutbas:       khutbaCount,
		TotalLectures: total,
	}, nil
}

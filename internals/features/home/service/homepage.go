package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	scheduleModel "maktabah_backend/internals/features/schedules/model"
	sectionModel "maktabah_backend/internals/features/sections/model"
)

// HomepageSection is one named grouping with its series, capped at the
// section's max_visible.
type HomepageSection struct {
	Section sectionModel.SectionModel
	Entries []SeriesEntry
}

// HomepageData is the full cached assembly behind GET /api/homepage.
type HomepageData struct {
	Sections  []HomepageSection
	Latest    []SeriesEntry
	Khutbas   []SeriesEntry
	Schedules []scheduleModel.ScheduleModel
}

// LoadHomepage assembles the whole homepage in one pass over the series
// entries. Expensive and rarely fresh-critical, so callers read it
// through the TTL cache.
func LoadHomepage(ctx context.Context, db *gorm.DB) (*HomepageData, error) {
	entries, err := LoadSeriesEntries(ctx, db)
	if err != nil {
		return nil, err
	}
	SortSeriesEntries(entries, "newest")

	var sections []sectionModel.SectionModel
	if err := db.WithContext(ctx).
		Order("section_display_order ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}

	data := &HomepageData{}
	for _, sec := range sections {
		hs := HomepageSection{Section: sec}
		for _, e := range entries {
			if e.Series.SeriesSectionID != nil && *e.Series.SeriesSectionID == sec.SectionID {
				hs.Entries = append(hs.Entries, e)
			}
		}
		if sec.SectionMaxVisible > 0 && len(hs.Entries) > sec.SectionMaxVisible {
			hs.Entries = hs.Entries[:sec.SectionMaxVisible]
		}
		if len(hs.Entries) > 0 {
			data.Sections = append(data.Sections, hs)
		}
	}

	for _, e := range entries {
		if e.IsKhutba {
			if len(data.Khutbas) < 6 {
				data.Khutbas = append(data.Khutbas, e)
			}
		} else if len(data.Latest) < 6 {
			data.Latest = append(data.Latest, e)
		}
	}

	schedules, err := LoadScheduleWidget(ctx, db)
	if err != nil {
		return nil, err
	}
	data.Schedules = schedules

	return data, nil
}

// LoadScheduleWidget lists active weekly slots with their series, ordered
// by day then start time.
func LoadScheduleWidget(ctx context.Context, db *gorm.DB) ([]scheduleModel.ScheduleModel, error) {
	var schedules []scheduleModel.ScheduleModel
	if err := db.WithContext(ctx).
		Preload("Series").
		Where("schedule_is_active = ?", true).
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	// hidden series do not advertise their schedule
	kept := schedules[:0]
	for _, s := range schedules {
		if s.Series == nil || s.Series.SeriesIsVisible {
			kept = append(kept, s)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].ScheduleDayOfWeek != kept[j].ScheduleDayOfWeek {
			return kept[i].ScheduleDayOfWeek < kept[j].ScheduleDayOfWeek
		}
		return kept[i].ScheduleStartTime < kept[j].ScheduleStartTime
	})
	return kept, nil
}

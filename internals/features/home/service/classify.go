package service

import (
	"sort"
	"strings"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"

	"maktabah_backend/internals/constants"
)

// sortOrderSentinel stands in for a missing sort_order so unordered
// lectures sort after ordered ones.
const sortOrderSentinel = 999999

// IsLectureVisible: published, and when the lecture belongs to a series
// that series must not be hidden. Applied on every public read.
func IsLectureVisible(l *lectureModel.LectureModel, s *seriesModel.SeriesModel) bool {
	if l == nil || !l.LecturePublished {
		return false
	}
	if l.LectureSeriesID != nil && s != nil && !s.SeriesIsVisible {
		return false
	}
	return true
}

// ClassifySeriesType derives the series type from tags, falling back to
// Arabic title markers. Tag classification always wins. The result is
// never persisted.
func ClassifySeriesType(tags []string, titleAr string) string {
	if hasTag(tags, constants.TagOnline) {
		return constants.SeriesTypeOnline
	}
	if hasTag(tags, constants.TagArchiveRamadan) {
		return constants.SeriesTypeArchiveRamadan
	}
	if hasTag(tags, constants.TagArchive) {
		return constants.SeriesTypeArchive
	}
	switch {
	case strings.Contains(titleAr, constants.TitleMarkOnline):
		return constants.SeriesTypeOnline
	case strings.Contains(titleAr, constants.TitleMarkArchiveRamadan):
		return constants.SeriesTypeArchiveRamadan
	case strings.Contains(titleAr, constants.TitleMarkArchive):
		return constants.SeriesTypeArchive
	default:
		return constants.SeriesTypeMasjid
	}
}

// IsKhutbaSeries: khutba tag, else Arabic title containing خطب/خطبة.
func IsKhutbaSeries(tags []string, titleAr string) bool {
	if hasTag(tags, constants.TagKhutba) {
		return true
	}
	return strings.Contains(titleAr, constants.TitleMarkKhutba) ||
		strings.Contains(titleAr, constants.TitleMarkKhutbaSingular)
}

// IsMiscSeries matches the "miscellaneous lectures" series by its literal
// title substring; existing data depends on that literal, not on a flag.
func IsMiscSeries(titleAr string) bool {
	return strings.Contains(titleAr, constants.MiscSeriesTitleMark)
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), want) {
			return true
		}
	}
	return false
}

// CompareLectureOrder implements the three-level tie-break used for every
// lectures-within-series listing: sort_order asc (nil -> sentinel),
// lecture_number asc (nil last), creation time asc.
func CompareLectureOrder(a, b *lectureModel.LectureModel) int {
	ao, bo := sortOrderSentinel, sortOrderSentinel
	if a.LectureSortOrder != nil {
		ao = *a.LectureSortOrder
	}
	if b.LectureSortOrder != nil {
		bo = *b.LectureSortOrder
	}
	if ao != bo {
		if ao < bo {
			return -1
		}
		return 1
	}

	an, bn := sortOrderSentinel, sortOrderSentinel
	if a.LectureNumber != nil {
		an = *a.LectureNumber
	}
	if b.LectureNumber != nil {
		bn = *b.LectureNumber
	}
	if an != bn {
		if an < bn {
			return -1
		}
		return 1
	}

	switch {
	case a.LectureCreatedAt.Before(b.LectureCreatedAt):
		return -1
	case a.LectureCreatedAt.After(b.LectureCreatedAt):
		return 1
	default:
		return 0
	}
}

// SortLecturesInSeries orders a slice in place, stably, by
// CompareLectureOrder.
func SortLecturesInSeries(ls []lectureModel.LectureModel) {
	sort.SliceStable(ls, func(i, j int) bool {
		return CompareLectureOrder(&ls[i], &ls[j]) < 0
	})
}

package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"
	helper "maktabah_backend/internals/helpers"
)

// SeriesEntry is one homepage-tab row: a visible series with its ordered
// visible lectures and its derived (never stored) classification.
type SeriesEntry struct {
	Series   seriesModel.SeriesModel
	Lectures []lectureModel.LectureModel
	Type     string
	IsKhutba bool
	LatestAt time.Time
}

// VisibleLectureCount is computed, never read from a stored counter.
func (e *SeriesEntry) VisibleLectureCount() int { return len(e.Lectures) }

// BuildSeriesEntries applies the visibility invariants: hidden series are
// skipped, unpublished lectures are dropped, lectures are ordered by the
// series tie-break, and series left with zero visible lectures are
// removed entirely.
func BuildSeriesEntries(series []seriesModel.SeriesModel, lecturesBySeries map[uuid.UUID][]lectureModel.LectureModel) []SeriesEntry {
	entries := make([]SeriesEntry, 0, len(series))
	for i := range series {
		s := series[i]
		if !s.SeriesIsVisible {
			continue
		}

		var visible []lectureModel.LectureModel
		for _, l := range lecturesBySeries[s.SeriesID] {
			if IsLectureVisible(&l, &s) {
				visible = append(visible, l)
			}
		}
		if len(visible) == 0 {
			continue
		}
		SortLecturesInSeries(visible)

		latest := visible[0].EffectiveDate()
		for _, l := range visible[1:] {
			if d := l.EffectiveDate(); d.After(latest) {
				latest = d
			}
		}

		entries = append(entries, SeriesEntry{
			Series:   s,
			Lectures: visible,
			Type:     ClassifySeriesType(s.SeriesTags, s.SeriesTitleAr),
			IsKhutba: IsKhutbaSeries(s.SeriesTags, s.SeriesTitleAr),
			LatestAt: latest,
		})
	}
	return entries
}

type SeriesTabFilter struct {
	Category       string
	Type           string
	Search         string
	ExcludeKhutbas bool
	KhutbasOnly    bool
}

func FilterSeriesEntries(entries []SeriesEntry, f SeriesTabFilter) []SeriesEntry {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]SeriesEntry, 0, len(entries))
	for _, e := range entries {
		if f.KhutbasOnly && !e.IsKhutba {
			continue
		}
		if !f.KhutbasOnly && f.ExcludeKhutbas && e.IsKhutba {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.Category != "" && !hasCategory(e.Lectures, f.Category) {
			continue
		}
		if search != "" && !seriesMatches(&e.Series, search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func hasCategory(ls []lectureModel.LectureModel, category string) bool {
	for _, l := range ls {
		if strings.EqualFold(l.LectureCategory, category) {
			return true
		}
	}
	return false
}

func seriesMatches(s *seriesModel.SeriesModel, loweredSearch string) bool {
	if strings.Contains(strings.ToLower(s.SeriesTitleAr), loweredSearch) {
		return true
	}
	return s.SeriesTitleEn != nil &&
		strings.Contains(strings.ToLower(*s.SeriesTitleEn), loweredSearch)
}

// SortSeriesEntries orders by most-recent-lecture date; ties fall back to
// series creation time then slug so repeated calls paginate identically.
func SortSeriesEntries(entries []SeriesEntry, order string) {
	asc := order == "oldest"
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.LatestAt.Equal(b.LatestAt) {
			if asc {
				return a.LatestAt.Before(b.LatestAt)
			}
			return a.LatestAt.After(b.LatestAt)
		}
		if !a.Series.SeriesCreatedAt.Equal(b.Series.SeriesCreatedAt) {
			if asc {
				return a.Series.SeriesCreatedAt.Before(b.Series.SeriesCreatedAt)
			}
			return a.Series.SeriesCreatedAt.After(b.Series.SeriesCreatedAt)
		}
		return a.Series.SeriesSlug < b.Series.SeriesSlug
	})
}

type StandaloneFilter struct {
	Category string
	Search   string
}

// FilterStandaloneLectures keeps published lectures matching the category
// and title search.
func FilterStandaloneLectures(ls []lectureModel.LectureModel, f StandaloneFilter) []lectureModel.LectureModel {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]lectureModel.LectureModel, 0, len(ls))
	for _, l := range ls {
		if !l.LecturePublished {
			continue
		}
		if f.Category != "" && !strings.EqualFold(l.LectureCategory, f.Category) {
			continue
		}
		if search != "" && !lectureMatches(&l, search) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func lectureMatches(l *lectureModel.LectureModel, loweredSearch string) bool {
	if strings.Contains(strings.ToLower(l.LectureTitleAr), loweredSearch) {
		return true
	}
	return l.LectureTitleEn != nil &&
		strings.Contains(strings.ToLower(*l.LectureTitleEn), loweredSearch)
}

// SortLecturesByDate orders by dateRecorded ?? createdAt, tie-breaking on
// creation time then slug.
func SortLecturesByDate(ls []lectureModel.LectureModel, order string) {
	asc := order == "oldest"
	sort.SliceStable(ls, func(i, j int) bool {
		a, b := ls[i], ls[j]
		ad, bd := a.EffectiveDate(), b.EffectiveDate()
		if !ad.Equal(bd) {
			if asc {
				return ad.Before(bd)
			}
			return ad.After(bd)
		}
		if !a.LectureCreatedAt.Equal(b.LectureCreatedAt) {
			if asc {
				return a.LectureCreatedAt.Before(b.LectureCreatedAt)
			}
			return a.LectureCreatedAt.After(b.LectureCreatedAt)
		}
		return a.LectureSlug < b.LectureSlug
	})
}

// Paginate slices [skip, skip+limit) out of the already filtered, sorted
// list. Total always reflects the pre-slice count.
func Paginate[T any](items []T, p helper.Params) ([]T, helper.Meta) {
	total := int64(len(items))
	meta := helper.BuildMeta(total, p)

	skip := p.Offset()
	if skip >= len(items) {
		return []T{}, meta
	}
	end := skip + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end], meta
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"maktabah_backend/internals/features/home/service"
	lectureModel "maktabah_backend/internals/features/lectures/model"
	helper "maktabah_backend/internals/helpers"
)

// StatThresholds gates public play/download counters: counts below the
// SiteSettings thresholds are simply omitted from the payload.
type StatThresholds struct {
	MinPlays     int64
	MinDownloads int64
}

type LectureItem struct {
	LectureID     uuid.UUID  `json:"lecture_id"`
	Slug          string     `json:"slug"`
	TitleAr       string     `json:"title_ar"`
	TitleEn       *string    `json:"title_en,omitempty"`
	LectureNumber *int       `json:"lecture_number,omitempty"`
	SortOrder     *int       `json:"sort_order,omitempty"`
	DateRecorded  *time.Time `json:"date_recorded,omitempty"`
	DateHijri     *string    `json:"date_hijri,omitempty"`
	Duration      *int       `json:"duration,omitempty"`
	AudioURL      *string    `json:"audio_url,omitempty"`
	Category      string     `json:"category"`
	PlayCount     *int64     `json:"play_count,omitempty"`
	DownloadCount *int64     `json:"download_count,omitempty"`
	SheikhName    *string    `json:"sheikh_name,omitempty"`
}

type SeriesItem struct {
	SeriesID     uuid.UUID     `json:"series_id"`
	Slug         string        `json:"slug"`
	TitleAr      string        `json:"title_ar"`
	TitleEn      *string       `json:"title_en,omitempty"`
	Type         string        `json:"type"`
	IsKhutba     bool          `json:"is_khutba"`
	ImageURL     *string       `json:"image_url,omitempty"`
	SheikhName   *string       `json:"sheikh_name,omitempty"`
	LectureCount int           `json:"lecture_count"`
	LatestAt     time.Time     `json:"latest_at"`
	Lectures     []LectureItem `json:"lectures"`
}

type SeriesListResponse struct {
	Success    bool         `json:"success"`
	Series     []SeriesItem `json:"series"`
	Pagination helper.Meta  `json:"pagination"`
}

type LectureListResponse struct {
	Success    bool          `json:"success"`
	Lectures   []LectureItem `json:"lectures"`
	Pagination helper.Meta   `json:"pagination"`
}

type StatsResponse struct {
	Success bool              `json:"success"`
	Stats   *service.TabStats `json:"stats"`
}

func ToLectureItem(l *lectureModel.LectureModel, th StatThresholds) LectureItem {
	item := LectureItem{
		LectureID:     l.LectureID,
		Slug:          l.LectureSlug,
		TitleAr:       l.LectureTitleAr,
		TitleEn:       l.LectureTitleEn,
		LectureNumber: l.LectureNumber,
		SortOrder:     l.LectureSortOrder,
		DateRecorded:  l.LectureDateRecorded,
		DateHijri:     l.LectureDateHijri,
		Duration:      l.LectureDuration,
		AudioURL:      l.LectureAudioURL,
		Category:      l.LectureCategory,
	}
	if l.LecturePlayCount >= th.MinPlays {
		pc := l.LecturePlayCount
		item.PlayCount = &pc
	}
	if l.LectureDownloadCount >= th.MinDownloads {
		dc := l.LectureDownloadCount
		item.DownloadCount = &dc
	}
	if l.Sheikh != nil {
		name := l.Sheikh.SheikhNameAr
		item.SheikhName = &name
	}
	return item
}

func ToLectureItems(ls []lectureModel.LectureModel, th StatThresholds) []LectureItem {
	out := make([]LectureItem, 0, len(ls))
	for i := range ls {
		out = append(out, ToLectureItem(&ls[i], th))
	}
	return out
}

func ToSeriesItem(e *service.SeriesEntry, th StatThresholds) SeriesItem {
	item := SeriesItem{
		SeriesID:     e.Series.SeriesID,
		Slug:         e.Series.SeriesSlug,
		TitleAr:      e.Series.SeriesTitleAr,
		TitleEn:      e.Series.SeriesTitleEn,
		Type:         e.Type,
		IsKhutba:     e.IsKhutba,
		ImageURL:     e.Series.SeriesImageURL,
		LectureCount: e.VisibleLectureCount(),
		LatestAt:     e.LatestAt,
		Lectures:     ToLectureItems(e.Lectures, th),
	}
	if e.Series.Sheikh != nil {
		name := e.Series.Sheikh.SheikhNameAr
		item.SheikhName = &name
	}
	return item
}

func ToSeriesItems(entries []service.SeriesEntry, th StatThresholds) []SeriesItem {
	out := make([]SeriesItem, 0, len(entries))
	for i := range entries {
		out = append(out, ToSeriesItem(&entries[i], th))
	}
	return out
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	seriesModel "maktabah_backend/internals/features/series/model"
	sheikhModel "maktabah_backend/internals/features/sheikhs/model"
)

// LectureImportMeta is the typed slice of the old free-form import
// bookkeeping. Only the consumed keys are modeled; anything else from the
// import scripts is dropped at write time.
type LectureImportMeta struct {
	ExcelFilename     string `json:"excel_filename,omitempty"`
	ImportBatch       string `json:"import_batch,omitempty"`
	SerialNo          int    `json:"serial_no,omitempty"`
	SuggestedFilename string `json:"suggested_filename,omitempty"`
}

type LectureModel struct {
	LectureID      uuid.UUID  `gorm:"column:lecture_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"lecture_id"`
	LectureTitleAr string     `gorm:"column:lecture_title_ar;type:varchar(255);not null" json:"lecture_title_ar"`
	LectureTitleEn *string    `gorm:"column:lecture_title_en;type:varchar(255)" json:"lecture_title_en,omitempty"`
	LectureSlug    string     `gorm:"column:lecture_slug;type:varchar(120);uniqueIndex;not null" json:"lecture_slug"`
	LectureSeriesID *uuid.UUID `gorm:"column:lecture_series_id;type:uuid;index" json:"lecture_series_id,omitempty"`
	LectureSheikhID *uuid.UUID `gorm:"column:lecture_sheikh_id;type:uuid;index" json:"lecture_sheikh_id,omitempty"`

	// Ordering within a series: sort_order wins, then lecture_number,
	// then created_at. Nulls sort last.
	LectureNumber    *int `gorm:"column:lecture_number" json:"lecture_number,omitempty"`
	LectureSortOrder *int `gorm:"column:lecture_sort_order" json:"lecture_sort_order,omitempty"`

	LectureDateRecorded *time.Time `gorm:"column:lecture_date_recorded" json:"lecture_date_recorded,omitempty"`
	LectureDateHijri    *string    `gorm:"column:lecture_date_hijri;type:varchar(40)" json:"lecture_date_hijri,omitempty"`

	LecturePublished     bool  `gorm:"column:lecture_published;not null;default:false;index" json:"lecture_published"`
	LecturePlayCount     int64 `gorm:"column:lecture_play_count;not null;default:0" json:"lecture_play_count"`
	LectureDownloadCount int64 `gorm:"column:lecture_download_count;not null;default:0" json:"lecture_download_count"`
	LectureDuration      *int  `gorm:"column:lecture_duration" json:"lecture_duration,omitempty"`

	LectureAudioURL       *string `gorm:"column:lecture_audio_url;type:text" json:"lecture_audio_url,omitempty"`
	LectureAudioObjectKey *string `gorm:"column:lecture_audio_object_key;type:text" json:"lecture_audio_object_key,omitempty"`
	LectureAudioSize      *int64  `gorm:"column:lecture_audio_size" json:"lecture_audio_size,omitempty"`

	LectureTags     pq.StringArray                         `gorm:"column:lecture_tags;type:text[]" json:"lecture_tags,omitempty"`
	LectureCategory string                                 `gorm:"column:lecture_category;type:varchar(20);not null;default:'other'" json:"lecture_category"`
	LectureMetadata *datatypes.JSONType[LectureImportMeta] `gorm:"column:lecture_metadata;type:jsonb" json:"lecture_metadata,omitempty"`

	LectureCreatedAt time.Time      `gorm:"column:lecture_created_at;autoCreateTime" json:"lecture_created_at"`
	LectureUpdatedAt *time.Time     `gorm:"column:lecture_updated_at;autoUpdateTime" json:"lecture_updated_at,omitempty"`
	LectureDeletedAt gorm.DeletedAt `gorm:"column:lecture_deleted_at;index" json:"lecture_deleted_at,omitempty"`

	Series *seriesModel.SeriesModel `gorm:"foreignKey:LectureSeriesID;references:SeriesID" json:"series,omitempty"`
	Sheikh *sheikhModel.SheikhModel `gorm:"foreignKey:LectureSheikhID;references:SheikhID" json:"sheikh,omitempty"`
}

func (LectureModel) TableName() string {
	return "lectures"
}

// EffectiveDate is what recency sorting uses: dateRecorded when present,
// else creation time.
func (l *LectureModel) EffectiveDate() time.Time {
	if l.LectureDateRecorded != nil {
		return *l.LectureDateRecorded
	}
	return l.LectureCreatedAt
}

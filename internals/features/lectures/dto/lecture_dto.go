package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"maktabah_backend/internals/constants"
	"maktabah_backend/internals/features/lectures/model"
)

type LectureRequest struct {
	TitleAr       string     `json:"title_ar" validate:"required,max=255"`
	TitleEn       *string    `json:"title_en" validate:"omitempty,max=255"`
	SeriesID      *uuid.UUID `json:"series_id"`
	SheikhID      *uuid.UUID `json:"sheikh_id"`
	LectureNumber *int       `json:"lecture_number" validate:"omitempty,min=0"`
	SortOrder     *int       `json:"sort_order" validate:"omitempty,min=0"`
	DateRecorded  *time.Time `json:"date_recorded"`
	DateHijri     *string    `json:"date_hijri" validate:"omitempty,max=40"`
	Published     bool       `json:"published"`
	Duration      *int       `json:"duration" validate:"omitempty,min=1,max=86400"`
	Tags          []string   `json:"tags"`
	Category      string     `json:"category" validate:"omitempty,oneof=aqeedah fiqh tafsir hadith seerah akhlaq other"`

	Metadata *model.LectureImportMeta `json:"metadata"`
}

func (r *LectureRequest) ToModel() *model.LectureModel {
	category := r.Category
	if category == "" {
		category = constants.CategoryOther
	}
	m := &model.LectureModel{
		LectureTitleAr:      r.TitleAr,
		LectureTitleEn:      r.TitleEn,
		LectureSeriesID:     r.SeriesID,
		LectureSheikhID:     r.SheikhID,
		LectureNumber:       r.LectureNumber,
		LectureSortOrder:    r.SortOrder,
		LectureDateRecorded: r.DateRecorded,
		LectureDateHijri:    r.DateHijri,
		LecturePublished:    r.Published,
		LectureDuration:     r.Duration,
		LectureTags:         r.Tags,
		LectureCategory:     category,
	}
	if r.Metadata != nil {
		meta := datatypes.NewJSONType(*r.Metadata)
		m.LectureMetadata = &meta
	}
	return m
}

// ReorderRequest bulk-updates sort_order within a series.
type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type ReorderItem struct {
	LectureID uuid.UUID `json:"lecture_id" validate:"required"`
	SortOrder int       `json:"sort_order" validate:"min=0"`
}

type VerifyDurationRequest struct {
	Duration int `json:"duration" validate:"required,min=1,max=86400"`
}

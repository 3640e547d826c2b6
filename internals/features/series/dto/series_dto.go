package dto

import (
	"github.com/google/uuid"

	"maktabah_backend/internals/features/series/model"
)

type SeriesRequest struct {
	TitleAr       string     `json:"title_ar" validate:"required,max=255"`
	TitleEn       *string    `json:"title_en" validate:"omitempty,max=255"`
	DescriptionAr *string    `json:"description_ar"`
	SheikhID      *uuid.UUID `json:"sheikh_id"`
	SectionID     *uuid.UUID `json:"section_id"`
	IsVisible     *bool      `json:"is_visible"`
	Tags          []string   `json:"tags"`
}

func (r *SeriesRequest) ToModel() *model.SeriesModel {
	visible := true
	if r.IsVisible != nil {
		visible = *r.IsVisible
	}
	return &model.SeriesModel{
		SeriesTitleAr:       r.TitleAr,
		SeriesTitleEn:       r.TitleEn,
		SeriesDescriptionAr: r.DescriptionAr,
		SeriesSheikhID:      r.SheikhID,
		SeriesSectionID:     r.SectionID,
		SeriesIsVisible:     visible,
		SeriesTags:          r.Tags,
	}
}

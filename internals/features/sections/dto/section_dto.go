package dto

import (
	"maktabah_backend/internals/features/sections/model"
)

type SectionRequest struct {
	NameAr       string  `json:"name_ar" validate:"required,max=255"`
	NameEn       *string `json:"name_en" validate:"omitempty,max=255"`
	DisplayOrder int     `json:"display_order" validate:"min=0"`
	MaxVisible   int     `json:"max_visible" validate:"min=1,max=50"`
}

func (r *SectionRequest) ToModel() *model.SectionModel {
	return &model.SectionModel{
		SectionNameAr:       r.NameAr,
		SectionNameEn:       r.NameEn,
		SectionDisplayOrder: r.DisplayOrder,
		SectionMaxVisible:   r.MaxVisible,
	}
}

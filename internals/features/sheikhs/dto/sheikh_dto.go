package dto

import (
	"maktabah_backend/internals/features/sheikhs/model"
)

type SheikhRequest struct {
	NameAr string  `json:"name_ar" validate:"required,max=255"`
	NameEn *string `json:"name_en" validate:"omitempty,max=255"`
	BioAr  *string `json:"bio_ar"`
}

func (r *SheikhRequest) ToModel() *model.SheikhModel {
	return &model.SheikhModel{
		SheikhNameAr: r.NameAr,
		SheikhNameEn: r.NameEn,
		SheikhBioAr:  r.BioAr,
	}
}

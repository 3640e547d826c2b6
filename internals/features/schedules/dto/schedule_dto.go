package dto

import (
	"github.com/google/uuid"

	"maktabah_backend/internals/features/schedules/model"
)

type ScheduleRequest struct {
	SeriesID  uuid.UUID `json:"series_id" validate:"required"`
	DayOfWeek int       `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string    `json:"start_time" validate:"required,len=5"`
	EndTime   *string   `json:"end_time" validate:"omitempty,len=5"`
	IsActive  *bool     `json:"is_active"`
	NotesAr   *string   `json:"notes_ar"`
}

func (r *ScheduleRequest) ToModel() *model.ScheduleModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.ScheduleModel{
		ScheduleSeriesID:  r.SeriesID,
		ScheduleDayOfWeek: r.DayOfWeek,
		ScheduleStartTime: r.StartTime,
		ScheduleEndTime:   r.EndTime,
		ScheduleIsActive:  active,
		ScheduleNotesAr:   r.NotesAr,
	}
}

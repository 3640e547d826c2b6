package model

import (
	"time"

	"github.com/google/uuid"

	seriesModel "maktabah_backend/internals/features/series/model"
)

// ScheduleModel is a weekly recurring slot for a series lesson.
type ScheduleModel struct {
	ScheduleID        uuid.UUID `gorm:"column:schedule_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"schedule_id"`
	ScheduleSeriesID  uuid.UUID `gorm:"column:schedule_series_id;type:uuid;not null;index" json:"schedule_series_id"`
	ScheduleDayOfWeek int       `gorm:"column:schedule_day_of_week;not null" json:"schedule_day_of_week"` // 0=Sunday .. 6=Saturday
	ScheduleStartTime string    `gorm:"column:schedule_start_time;type:varchar(5);not null" json:"schedule_start_time"` // "HH:MM"
	ScheduleEndTime   *string   `gorm:"column:schedule_end_time;type:varchar(5)" json:"schedule_end_time,omitempty"`
	ScheduleIsActive  bool      `gorm:"column:schedule_is_active;not null;default:true" json:"schedule_is_active"`
	ScheduleNotesAr   *string   `gorm:"column:schedule_notes_ar;type:text" json:"schedule_notes_ar,omitempty"`

	ScheduleCreatedAt time.Time  `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt *time.Time `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at,omitempty"`

	Series *seriesModel.SeriesModel `gorm:"foreignKey:ScheduleSeriesID;references:SeriesID" json:"series,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

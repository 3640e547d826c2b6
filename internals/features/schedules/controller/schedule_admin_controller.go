package controller

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/schedules/dto"
	"maktabah_backend/internals/features/schedules/model"
	helper "maktabah_backend/internals/helpers"
)

var validate = validator.New()

var timeOfDayRx = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type ScheduleAdminController struct {
	DB *gorm.DB
}

func NewScheduleAdminController(db *gorm.DB) *ScheduleAdminController {
	return &ScheduleAdminController{DB: db}
}

func validateTimes(req *dto.ScheduleRequest) error {
	if !timeOfDayRx.MatchString(req.StartTime) {
		return fiber.NewError(fiber.StatusBadRequest, "start_time must be HH:MM")
	}
	if req.EndTime != nil && !timeOfDayRx.MatchString(*req.EndTime) {
		return fiber.NewError(fiber.StatusBadRequest, "end_time must be HH:MM")
	}
	return nil
}

// GET /api/a/schedules
func (ctrl *ScheduleAdminController) List(c *fiber.Ctx) error {
	var schedules []model.ScheduleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Series").
		Order("schedule_day_of_week ASC, schedule_start_time ASC").
		Find(&schedules).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to list schedules", err)
	}
	return c.JSON(fiber.Map{"success": true, "schedules": schedules})
}

// POST /api/a/schedules
func (ctrl *ScheduleAdminController) Create(c *fiber.Ctx) error {
	var req dto.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validateTimes(&req); err != nil {
		return helper.FromError(c, err, "invalid schedule time")
	}

	schedule := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(schedule).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to create schedule", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "schedule created", schedule)
}

// PUT /api/a/schedules/:id
func (ctrl *ScheduleAdminController) Update(c *fiber.Ctx) error {
	var schedule model.ScheduleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&schedule, "schedule_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "schedule not found")
	}

	var req dto.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := validateTimes(&req); err != nil {
		return helper.FromError(c, err, "invalid schedule time")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&schedule).
		Select("schedule_series_id", "schedule_day_of_week", "schedule_start_time",
			"schedule_end_time", "schedule_is_active", "schedule_notes_ar").
		Updates(req.ToModel()).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to update schedule", err)
	}
	return helper.Success(c, "schedule updated", schedule)
}

// DELETE /api/a/schedules/:id
func (ctrl *ScheduleAdminController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.ScheduleModel{}, "schedule_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to delete schedule", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "schedule not found")
	}
	return helper.Success(c, "schedule deleted", nil)
}

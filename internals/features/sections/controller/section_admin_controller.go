package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/sections/dto"
	"maktabah_backend/internals/features/sections/model"
	seriesModel "maktabah_backend/internals/features/series/model"
	helper "maktabah_backend/internals/helpers"
)

var validate = validator.New()

type SectionAdminController struct {
	DB *gorm.DB
}

func NewSectionAdminController(db *gorm.DB) *SectionAdminController {
	return &SectionAdminController{DB: db}
}

// GET /api/a/sections — small table, no pagination.
func (ctrl *SectionAdminController) List(c *fiber.Ctx) error {
	var sections []model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("section_display_order ASC, section_created_at ASC").
		Find(&sections).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to list sections", err)
	}
	return c.JSON(fiber.Map{"success": true, "sections": sections})
}

// POST /api/a/sections
func (ctrl *SectionAdminController) Create(c *fiber.Ctx) error {
	var req dto.SectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	section := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(section).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to create section", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "section created", section)
}

// PUT /api/a/sections/:id
func (ctrl *SectionAdminController) Update(c *fiber.Ctx) error {
	var section model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&section, "section_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "section not found")
	}

	var req dto.SectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&section).
		Select("section_name_ar", "section_name_en", "section_display_order", "section_max_visible").
		Updates(req.ToModel()).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to update section", err)
	}
	return helper.Success(c, "section updated", section)
}

// DELETE /api/a/sections/:id — member series detach rather than delete.
func (ctrl *SectionAdminController) Delete(c *fiber.Ctx) error {
	var section model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&section, "section_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "section not found")
	}

	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&seriesModel.SeriesModel{}).
			Where("series_section_id = ?", section.SectionID).
			UpdateColumn("series_section_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SectionModel{}, "section_id = ?", section.SectionID).Error
	})
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to delete section", err)
	}
	return helper.Success(c, "section deleted", nil)
}

package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/cache"
	"maktabah_backend/internals/features/settings/dto"
	"maktabah_backend/internals/features/settings/service"
	helper "maktabah_backend/internals/helpers"
)

var validate = validator.New()

type SettingsAdminController struct {
	DB    *gorm.DB
	Cache *cache.Service
}

func NewSettingsAdminController(db *gorm.DB, c *cache.Service) *SettingsAdminController {
	return &SettingsAdminController{DB: db, Cache: c}
}

// GET /api/a/settings
func (ctrl *SettingsAdminController) Get(c *fiber.Ctx) error {
	s, err := service.GetOrInit(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load settings", err)
	}
	return helper.Success(c, "settings", s)
}

// PUT /api/a/settings — only the provided thresholds change.
func (ctrl *SettingsAdminController) Update(c *fiber.Ctx) error {
	var req dto.SettingsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	s, err := service.GetOrInit(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load settings", err)
	}

	updates := map[string]interface{}{}
	if req.MinPlayCountPublic != nil {
		updates["site_settings_min_play_count_public"] = *req.MinPlayCountPublic
	}
	if req.MinDownloadCountPublic != nil {
		updates["site_settings_min_download_count_public"] = *req.MinDownloadCountPublic
	}
	if req.MinViewCountPublic != nil {
		updates["site_settings_min_view_count_public"] = *req.MinViewCountPublic
	}
	if len(updates) == 0 {
		return helper.Success(c, "nothing to update", s)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(s).
		Updates(updates).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to update settings", err)
	}
	return helper.Success(c, "settings updated", s)
}

// POST /api/a/settings/refresh-totals
func (ctrl *SettingsAdminController) RefreshTotals(c *fiber.Ctx) error {
	s, err := service.RefreshTotals(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to refresh totals", err)
	}
	return helper.Success(c, "totals refreshed", s)
}

// GET /api/a/cache — hit/miss counters and live keys for debugging.
func (ctrl *SettingsAdminController) CacheStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   ctrl.Cache.GetStats(),
		"keys":    ctrl.Cache.Keys(),
	})
}

// DELETE /api/a/cache — manual flush; pattern defaults to everything.
func (ctrl *SettingsAdminController) CacheFlush(c *fiber.Ctx) error {
	pattern := c.Query("pattern")
	if pattern == "" {
		ctrl.Cache.Clear()
		return helper.Success(c, "cache cleared", nil)
	}
	n := ctrl.Cache.InvalidatePattern(pattern)
	return helper.Success(c, "cache invalidated", fiber.Map{"removed": n})
}

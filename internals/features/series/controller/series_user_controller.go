package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	homeDto "maktabah_backend/internals/features/home/dto"
	homeService "maktabah_backend/internals/features/home/service"
	lectureModel "maktabah_backend/internals/features/lectures/model"
	"maktabah_backend/internals/features/series/model"
	settingsService "maktabah_backend/internals/features/settings/service"
	helper "maktabah_backend/internals/helpers"
)

type SeriesUserController struct {
	DB *gorm.DB
}

func NewSeriesUserController(db *gorm.DB) *SeriesUserController {
	return &SeriesUserController{DB: db}
}

func (ctrl *SeriesUserController) thresholds(c *fiber.Ctx) homeDto.StatThresholds {
	th := homeDto.StatThresholds{}
	if s, err := settingsService.GetOrInit(c.UserContext(), ctrl.DB); err == nil {
		th.MinPlays = s.SiteSettingsMinPlayCountPublic
		th.MinDownloads = s.SiteSettingsMinDownloadCountPublic
	}
	return th
}

// GET /api/series — the browse listing, same entry pipeline as the
// homepage tabs.
func (ctrl *SeriesUserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.PublicOpts)
	filter := homeService.SeriesTabFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Search:   c.Query("search"),
	}

	entries, err := homeService.LoadSeriesEntries(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load series", err)
	}

	entries = homeService.FilterSeriesEntries(entries, filter)
	homeService.SortSeriesEntries(entries, p.Sort)
	pageItems, meta := homeService.Paginate(entries, p)

	return c.JSON(homeDto.SeriesListResponse{
		Success:    true,
		Series:     homeDto.ToSeriesItems(pageItems, ctrl.thresholds(c)),
		Pagination: meta,
	})
}

// GET /api/series/:slug — detail with the full ordered visible lecture
// list and the derived classification.
func (ctrl *SeriesUserController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !helper.IsValidSlug(slug) {
		return helper.Error(c, fiber.StatusBadRequest, "invalid series slug")
	}

	var series model.SeriesModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Sheikh").
		Where("series_slug = ? AND series_is_visible = ?", slug, true).
		First(&series).Error; err != nil {
		return helper.FromError(c, err, "series not found")
	}

	var lectures []lectureModel.LectureModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Sheikh").
		Where("lecture_series_id = ? AND lecture_published = ?", series.SeriesID, true).
		Find(&lectures).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load lectures", err)
	}

	entries := homeService.BuildSeriesEntries(
		[]model.SeriesModel{series},
		map[uuid.UUID][]lectureModel.LectureModel{series.SeriesID: lectures},
	)
	if len(entries) == 0 {
		// visible series but every lecture unpublished: not publicly listed
		return helper.Error(c, fiber.StatusNotFound, "series not found")
	}

	item := homeDto.ToSeriesItem(&entries[0], ctrl.thresholds(c))
	return c.JSON(fiber.Map{
		"success":     true,
		"series":      item,
		"description": series.SeriesDescriptionAr,
	})
}

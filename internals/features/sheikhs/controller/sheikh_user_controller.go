package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	homeDto "maktabah_backend/internals/features/home/dto"
	homeService "maktabah_backend/internals/features/home/service"
	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"
	settingsService "maktabah_backend/internals/features/settings/service"
	"maktabah_backend/internals/features/sheikhs/model"
	helper "maktabah_backend/internals/helpers"
)

type SheikhUserController struct {
	DB *gorm.DB
}

func NewSheikhUserController(db *gorm.DB) *SheikhUserController {
	return &SheikhUserController{DB: db}
}

// GET /api/sheikhs
func (ctrl *SheikhUserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.PublicOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SheikhModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to count sheikhs", err)
	}

	var sheikhs []model.SheikhModel
	if err := q.Order("sheikh_name_ar ASC").
		Limit(p.Limit).Offset(p.Offset()).
		Find(&sheikhs).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to list sheikhs", err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"sheikhs":    sheikhs,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/sheikhs/:slug — profile plus the sheikh's publicly listed
// series, built through the same visibility pipeline as the tabs.
func (ctrl *SheikhUserController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if !helper.IsValidSlug(slug) {
		return helper.Error(c, fiber.StatusBadRequest, "invalid sheikh slug")
	}

	var sheikh model.SheikhModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("sheikh_slug = ?", slug).
		First(&sheikh).Error; err != nil {
		return helper.FromError(c, err, "sheikh not found")
	}

	var series []seriesModel.SeriesModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Sheikh").
		Where("series_sheikh_id = ? AND series_is_visible = ?", sheikh.SheikhID, true).
		Find(&series).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load series", err)
	}

	ids := make([]uuid.UUID, 0, len(series))
	for _, s := range series {
		ids = append(ids, s.SeriesID)
	}

	bySeries := map[uuid.UUID][]lectureModel.LectureModel{}
	if len(ids) > 0 {
		var lectures []lectureModel.LectureModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Where("lecture_series_id IN ? AND lecture_published = ?", ids, true).
			Find(&lectures).Error; err != nil {
			return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load lectures", err)
		}
		for _, l := range lectures {
			bySeries[*l.LectureSeriesID] = append(bySeries[*l.LectureSeriesID], l)
		}
	}

	entries := homeService.BuildSeriesEntries(series, bySeries)
	homeService.SortSeriesEntries(entries, "newest")

	th := homeDto.StatThresholds{}
	if s, err := settingsService.GetOrInit(c.UserContext(), ctrl.DB); err == nil {
		th.MinPlays = s.SiteSettingsMinPlayCountPublic
		th.MinDownloads = s.SiteSettingsMinDownloadCountPublic
	}

	return c.JSON(fiber.Map{
		"success": true,
		"sheikh":  sheikh,
		"series":  homeDto.ToSeriesItems(entries, th),
	})
}

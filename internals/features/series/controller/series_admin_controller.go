package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	"maktabah_backend/internals/features/series/dto"
	"maktabah_backend/internals/features/series/model"
	helper "maktabah_backend/internals/helpers"
	"maktabah_backend/internals/helpers/oss"
)

var validate = validator.New()

type SeriesAdminController struct {
	DB  *gorm.DB
	OSS *oss.OSSService
}

func NewSeriesAdminController(db *gorm.DB, storage *oss.OSSService) *SeriesAdminController {
	return &SeriesAdminController{DB: db, OSS: storage}
}

// POST /api/a/series
func (ctrl *SeriesAdminController) Create(c *fiber.Ctx) error {
	var req dto.SeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	series := req.ToModel()
	base := helper.Slugify(req.TitleAr, 100)
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "series", "series_slug")
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to generate slug", err)
	}
	series.SeriesSlug = slug

	if err := ctrl.DB.WithContext(c.UserContext()).Create(series).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to create series", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "series created", series)
}

// GET /api/a/series — includes hidden series, unlike the public listing.
func (ctrl *SeriesAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.AdminOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SeriesModel{}).Preload("Sheikh")
	if sid := c.Query("sheikh_id"); sid != "" {
		q = q.Where("series_sheikh_id = ?", sid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to count series", err)
	}

	order := "series_created_at DESC"
	if p.Sort == "oldest" {
		order = "series_created_at ASC"
	}
	var series []model.SeriesModel
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&series).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to list series", err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"series":     series,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/a/series/:id
func (ctrl *SeriesAdminController) GetByID(c *fiber.Ctx) error {
	var series model.SeriesModel
	if err := ctrl.DB.WithContext(c.UserContext()).Preload("Sheikh").
		First(&series, "series_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "series not found")
	}

	var lectureCount int64
	ctrl.DB.WithContext(c.UserContext()).Model(&lectureModel.LectureModel{}).
		Where("lecture_series_id = ?", series.SeriesID).Count(&lectureCount)

	return c.JSON(fiber.Map{
		"success":       true,
		"series":        series,
		"lecture_count": lectureCount,
	})
}

// PUT /api/a/series/:id
func (ctrl *SeriesAdminController) Update(c *fiber.Ctx) error {
	var series model.SeriesModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&series, "series_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "series not found")
	}

	var req dto.SeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&series).
		Select("series_title_ar", "series_title_en", "series_description_ar",
			"series_sheikh_id", "series_section_id", "series_is_visible", "series_tags").
		Updates(updated).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to update series", err)
	}
	return helper.Success(c, "series updated", series)
}

// DELETE /api/a/series/:id — lectures keep their rows; they detach and
// become standalone.
func (ctrl *SeriesAdminController) Delete(c *fiber.Ctx) error {
	var series model.SeriesModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&series, "series_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "series not found")
	}

	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&lectureModel.LectureModel{}).
			Where("lecture_series_id = ?", series.SeriesID).
			UpdateColumn("lecture_series_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SeriesModel{}, "series_id = ?", series.SeriesID).Error
	})
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to delete series", err)
	}
	return helper.Success(c, "series deleted", nil)
}

// POST /api/a/series/:id/image — cover upload, re-encoded to webp.
func (ctrl *SeriesAdminController) UploadImage(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "object storage not configured")
	}

	var series model.SeriesModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&series, "series_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "series not found")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "image file missing")
	}

	url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), "series/"+series.SeriesSlug, fh)
	if err != nil {
		return helper.FromError(c, err, "upload failed")
	}

	if series.SeriesImageURL != nil && *series.SeriesImageURL != url {
		_ = ctrl.OSS.DeleteByPublicURL(c.UserContext(), *series.SeriesImageURL)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&series).
		UpdateColumn("series_image_url", url).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to store image url", err)
	}
	return helper.Success(c, "image uploaded", fiber.Map{"image_url": url})
}

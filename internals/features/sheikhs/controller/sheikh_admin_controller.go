package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	seriesModel "maktabah_backend/internals/features/series/model"
	"maktabah_backend/internals/features/sheikhs/dto"
	"maktabah_backend/internals/features/sheikhs/model"
	helper "maktabah_backend/internals/helpers"
	"maktabah_backend/internals/helpers/oss"
)

var validate = validator.New()

type SheikhAdminController struct {
	DB  *gorm.DB
	OSS *oss.OSSService
}

func NewSheikhAdminController(db *gorm.DB, storage *oss.OSSService) *SheikhAdminController {
	return &SheikhAdminController{DB: db, OSS: storage}
}

// POST /api/a/sheikhs
func (ctrl *SheikhAdminController) Create(c *fiber.Ctx) error {
	var req dto.SheikhRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sheikh := req.ToModel()
	base := helper.Slugify(req.NameAr, 100)
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "sheikhs", "sheikh_slug")
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to generate slug", err)
	}
	sheikh.SheikhSlug = slug

	if err := ctrl.DB.WithContext(c.UserContext()).Create(sheikh).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to create sheikh", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "sheikh created", sheikh)
}

// GET /api/a/sheikhs
func (ctrl *SheikhAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.AdminOpts)

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

// PUT /api/a/sheikhs/:id
func (ctrl *SheikhAdminController) Update(c *fiber.Ctx) error {
	var sheikh model.SheikhModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sheikh, "sheikh_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "sheikh not found")
	}

	var req dto.SheikhRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&sheikh).
		Select("sheikh_name_ar", "sheikh_name_en", "sheikh_bio_ar").
		Updates(req.ToModel()).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to update sheikh", err)
	}
	return helper.Success(c, "sheikh updated", sheikh)
}

// DELETE /api/a/sheikhs/:id — refused while series still reference the
// sheikh.
func (ctrl *SheikhAdminController) Delete(c *fiber.Ctx) error {
	var sheikh model.SheikhModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sheikh, "sheikh_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "sheikh not found")
	}

	var inUse int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&seriesModel.SeriesModel{}).
		Where("series_sheikh_id = ?", sheikh.SheikhID).Count(&inUse).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to check series", err)
	}
	if inUse > 0 {
		return helper.Error(c, fiber.StatusConflict, "sheikh still has series attached")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.SheikhModel{}, "sheikh_id = ?", sheikh.SheikhID).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to delete sheikh", err)
	}
	return helper.Success(c, "sheikh deleted", nil)
}

// POST /api/a/sheikhs/:id/image
func (ctrl *SheikhAdminController) UploadImage(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "object storage not configured")
	}

	var sheikh model.SheikhModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&sheikh, "sheikh_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "sheikh not found")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "image file missing")
	}

	url, err := ctrl.OSS.UploadImageAsWebP(c.UserContext(), "sheikhs/"+sheikh.SheikhSlug, fh)
	if err != nil {
		return helper.FromError(c, err, "upload failed")
	}

	if sheikh.SheikhImageURL != nil && *sheikh.SheikhImageURL != url {
		_ = ctrl.OSS.DeleteByPublicURL(c.UserContext(), *sheikh.SheikhImageURL)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&sheikh).
		UpdateColumn("sheikh_image_url", url).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to store image url", err)
	}
	return helper.Success(c, "image uploaded", fiber.Map{"image_url": url})
}

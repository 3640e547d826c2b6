package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/lectures/dto"
	"maktabah_backend/internals/features/lectures/model"
	helper "maktabah_backend/internals/helpers"
	"maktabah_backend/internals/helpers/oss"
)

var validate = validator.New()

type LectureAdminController struct {
	DB  *gorm.DB
	OSS *oss.OSSService
}

func NewLectureAdminController(db *gorm.DB, storage *oss.OSSService) *LectureAdminController {
	return &LectureAdminController{DB: db, OSS: storage}
}

// POST /api/a/lectures
func (ctrl *LectureAdminController) Create(c *fiber.Ctx) error {
	var req dto.LectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	lecture := req.ToModel()
	base := helper.Slugify(req.TitleAr, 100)
	slug, err := helper.EnsureUniqueSlug(ctrl.DB, base, "lectures", "lecture_slug")
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to generate slug", err)
	}
	lecture.LectureSlug = slug

	if err := ctrl.DB.WithContext(c.UserContext()).Create(lecture).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to create lecture", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "lecture created", lecture)
}

// GET /api/a/lectures — admin table, filterable by series/published.
func (ctrl *LectureAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.AdminOpts)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.LectureModel{}).
		Preload("Series").Preload("Sheikh")
	if sid := c.Query("series_id"); sid != "" {
		q = q.Where("lecture_series_id = ?", sid)
	}
	if pub := c.Query("published"); pub != "" {
		q = q.Where("lecture_published = ?", pub == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to count lectures", err)
	}

	order := "lecture_created_at DESC"
	if p.Sort == "oldest" {
		order = "lecture_created_at ASC"
	}
	var lectures []model.LectureModel
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset()).Find(&lectures).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to list lectures", err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"lectures":   lectures,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/a/lectures/:id
func (ctrl *LectureAdminController) GetByID(c *fiber.Ctx) error {
	var lecture model.LectureModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Series").Preload("Sheikh").
		First(&lecture, "lecture_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "lecture not found")
	}
	return helper.Success(c, "lecture found", lecture)
}

// PUT /api/a/lectures/:id
func (ctrl *LectureAdminController) Update(c *fiber.Ctx) error {
	var lecture model.LectureModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&lecture, "lecture_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "lecture not found")
	}

	var req dto.LectureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := req.ToModel()
	updated.LectureID = lecture.LectureID
	updated.LectureSlug = lecture.LectureSlug // slugs are stable once issued

	// Select lists the mutable columns so false/null values overwrite.
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&lecture).
		Select("lecture_title_ar", "lecture_title_en", "lecture_series_id",
			"lecture_sheikh_id", "lecture_number", "lecture_sort_order",
			"lecture_date_recorded", "lecture_date_hijri", "lecture_published",
			"lecture_duration", "lecture_tags", "lecture_category", "lecture_metadata").
		Updates(updated).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to update lecture", err)
	}
	return helper.Success(c, "lecture updated", lecture)
}

// DELETE /api/a/lectures/:id — removes the OSS audio object as well.
func (ctrl *LectureAdminController) Delete(c *fiber.Ctx) error {
	var lecture model.LectureModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&lecture, "lecture_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "lecture not found")
	}

	if ctrl.OSS != nil && lecture.LectureAudioObjectKey != nil {
		if err := ctrl.OSS.DeleteObject(c.UserContext(), *lecture.LectureAudioObjectKey); err != nil {
			return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to delete audio object", err)
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.LectureModel{}, "lecture_id = ?", lecture.LectureID).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to delete lecture", err)
	}
	return helper.Success(c, "lecture deleted", nil)
}

// POST /api/a/lectures/:id/audio — multipart upload, stores URL/key/size.
func (ctrl *LectureAdminController) UploadAudio(c *fiber.Ctx) error {
	if ctrl.OSS == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "object storage not configured")
	}

	var lecture model.LectureModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&lecture, "lecture_id = ?", c.Params("id")).Error; err != nil {
		return helper.FromError(c, err, "lecture not found")
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "audio file missing")
	}

	res, err := ctrl.OSS.UploadAudio(c.UserContext(), lecture.LectureSlug, fh)
	if err != nil {
		return helper.FromError(c, err, "upload failed")
	}

	// replacing audio deletes the previous object
	if lecture.LectureAudioObjectKey != nil && *lecture.LectureAudioObjectKey != res.ObjectKey {
		_ = ctrl.OSS.DeleteObject(c.UserContext(), *lecture.LectureAudioObjectKey)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&lecture).
		Updates(map[string]interface{}{
			"lecture_audio_url":        res.URL,
			"lecture_audio_object_key": res.ObjectKey,
			"lecture_audio_size":       res.Size,
		}).Error; err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to store audio info", err)
	}
	return helper.Success(c, "audio uploaded", res)
}

// POST /api/a/lectures/reorder — bulk sort_order rewrite in one tx.
func (ctrl *LectureAdminController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			if err := tx.Model(&model.LectureModel{}).
				Where("lecture_id = ?", item.LectureID).
				UpdateColumn("lecture_sort_order", item.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to reorder lectures", err)
	}
	return helper.Success(c, "lectures reordered", fiber.Map{"updated": len(req.Items)})
}

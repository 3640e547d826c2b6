package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/features/lectures/dto"
	"maktabah_backend/internals/features/lectures/model"
	helper "maktabah_backend/internals/helpers"
	"maktabah_backend/internals/helpers/oss"

	homeDto "maktabah_backend/internals/features/home/dto"
	homeService "maktabah_backend/internals/features/home/service"
	settingsService "maktabah_backend/internals/features/settings/service"
)

type LectureUserController struct {
	DB  *gorm.DB
	OSS *oss.OSSService
}

func NewLectureUserController(db *gorm.DB, storage *oss.OSSService) *LectureUserController {
	return &LectureUserController{DB: db, OSS: storage}
}

// findVisibleBySlug enforces the public visibility invariant: published,
// and the parent series (when any) not hidden.
func (ctrl *LectureUserController) findVisibleBySlug(c *fiber.Ctx) (*model.LectureModel, error) {
	slug := c.Params("slug")
	if !helper.IsValidSlug(slug) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid lecture slug")
	}

	var lecture model.LectureModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Series").
		Preload("Sheikh").
		Where("lecture_slug = ?", slug).
		First(&lecture).Error; err != nil {
		return nil, err
	}
	if !homeService.IsLectureVisible(&lecture, lecture.Series) {
		return nil, gorm.ErrRecordNotFound
	}
	return &lecture, nil
}

// GET /api/lectures/:slug
func (ctrl *LectureUserController) GetBySlug(c *fiber.Ctx) error {
	lecture, err := ctrl.findVisibleBySlug(c)
	if err != nil {
		return helper.FromError(c, err, "lecture not found")
	}

	th := homeDto.StatThresholds{}
	if s, err := settingsService.GetOrInit(c.UserContext(), ctrl.DB); err == nil {
		th.MinPlays = s.SiteSettingsMinPlayCountPublic
		th.MinDownloads = s.SiteSettingsMinDownloadCountPublic
	}

	item := homeDto.ToLectureItem(lecture, th)
	resp := fiber.Map{"success": true, "lecture": item}
	if lecture.Series != nil {
		resp["series"] = fiber.Map{
			"series_id": lecture.Series.SeriesID,
			"slug":      lecture.Series.SeriesSlug,
			"title_ar":  lecture.Series.SeriesTitleAr,
			"title_en":  lecture.Series.SeriesTitleEn,
		}
	}
	return c.JSON(resp)
}

// GET /stream/:slug — bump the play counter and bounce to the audio URL.
// The increment is a single atomic UPDATE expression.
func (ctrl *LectureUserController) Stream(c *fiber.Ctx) error {
	lecture, err := ctrl.findVisibleBySlug(c)
	if err != nil {
		return helper.FromError(c, err, "lecture not found")
	}
	if lecture.LectureAudioURL == nil || *lecture.LectureAudioURL == "" {
		return helper.Error(c, fiber.StatusNotFound, "lecture has no audio")
	}

	ctrl.DB.Model(&model.LectureModel{}).
		Where("lecture_id = ?", lecture.LectureID).
		UpdateColumn("lecture_play_count", gorm.Expr("lecture_play_count + 1"))

	return c.Redirect(*lecture.LectureAudioURL, fiber.StatusFound)
}

// GET /download/:slug — signed attachment URL when the object key is
// known, else the public URL.
func (ctrl *LectureUserController) Download(c *fiber.Ctx) error {
	lecture, err := ctrl.findVisibleBySlug(c)
	if err != nil {
		return helper.FromError(c, err, "lecture not found")
	}
	if lecture.LectureAudioURL == nil || *lecture.LectureAudioURL == "" {
		return helper.Error(c, fiber.StatusNotFound, "lecture has no audio")
	}

	target := *lecture.LectureAudioURL
	if ctrl.OSS != nil && lecture.LectureAudioObjectKey != nil {
		if signed, err := ctrl.OSS.SignedURL(*lecture.LectureAudioObjectKey,
			15*time.Minute, lecture.LectureSlug+".mp3"); err == nil {
			target = signed
		}
	}

	ctrl.DB.Model(&model.LectureModel{}).
		Where("lecture_id = ?", lecture.LectureID).
		UpdateColumn("lecture_download_count", gorm.Expr("lecture_download_count + 1"))

	return c.Redirect(target, fiber.StatusFound)
}

// POST /api/lectures/:slug/verify-duration — client-reported duration
// correction after playback metadata loads.
func (ctrl *LectureUserController) VerifyDuration(c *fiber.Ctx) error {
	lecture, err := ctrl.findVisibleBySlug(c)
	if err != nil {
		return helper.FromError(c, err, "lecture not found")
	}

	var req dto.VerifyDurationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Duration < 1 || req.Duration > 86400 {
		return helper.Error(c, fiber.StatusBadRequest, "duration out of range")
	}

	if lecture.LectureDuration == nil || *lecture.LectureDuration != req.Duration {
		if err := ctrl.DB.Model(&model.LectureModel{}).
			Where("lecture_id = ?", lecture.LectureID).
			UpdateColumn("lecture_duration", req.Duration).Error; err != nil {
			return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to update duration", err)
		}
	}
	return helper.Success(c, "duration verified", fiber.Map{"duration": req.Duration})
}

package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"maktabah_backend/internals/cache"
	"maktabah_backend/internals/constants"
	"maktabah_backend/internals/features/home/dto"
	"maktabah_backend/internals/features/home/service"
	settingsService "maktabah_backend/internals/features/settings/service"
	helper "maktabah_backend/internals/helpers"

	"maktabah_backend/internals/configs"
)

type HomeController struct {
	DB    *gorm.DB
	Cache *cache.Service
}

func NewHomeController(db *gorm.DB, c *cache.Service) *HomeController {
	return &HomeController{DB: db, Cache: c}
}

func (ctrl *HomeController) thresholds(ctx context.Context) dto.StatThresholds {
	s, err := settingsService.GetOrInit(ctx, ctrl.DB)
	if err != nil {
		// thresholds default to "hide nothing below zero", i.e. show all
		return dto.StatThresholds{}
	}
	return dto.StatThresholds{
		MinPlays:     s.SiteSettingsMinPlayCountPublic,
		MinDownloads: s.SiteSettingsMinDownloadCountPublic,
	}
}

// GET /api/homepage/series
// Request-scoped and filterable, so it bypasses the cache by design.
func (ctrl *HomeController) GetSeriesTab(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.PublicOpts)
	filter := service.SeriesTabFilter{
		Category:       c.Query("category"),
		Type:           c.Query("type"),
		Search:         c.Query("search"),
		ExcludeKhutbas: c.QueryBool("excludeKhutbas", true),
	}

	entries, err := service.LoadSeriesEntries(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load series", err)
	}

	entries = service.FilterSeriesEntries(entries, filter)
	service.SortSeriesEntries(entries, p.Sort)
	pageItems, meta := service.Paginate(entries, p)

	return c.JSON(dto.SeriesListResponse{
		Success:    true,
		Series:     dto.ToSeriesItems(pageItems, ctrl.thresholds(c.UserContext())),
		Pagination: meta,
	})
}

// GET /api/homepage/standalone
func (ctrl *HomeController) GetStandaloneTab(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.PublicOpts)
	filter := service.StandaloneFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	includeMisc := c.QueryBool("includeMisc", false)

	lectures, err := service.LoadStandaloneLectures(c.UserContext(), ctrl.DB, includeMisc)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load lectures", err)
	}

	lectures = service.FilterStandaloneLectures(lectures, filter)
	service.SortLecturesByDate(lectures, p.Sort)
	pageItems, meta := service.Paginate(lectures, p)

	return c.JSON(dto.LectureListResponse{
		Success:    true,
		Lectures:   dto.ToLectureItems(pageItems, ctrl.thresholds(c.UserContext())),
		Pagination: meta,
	})
}

// GET /api/homepage/khutbas
func (ctrl *HomeController) GetKhutbasTab(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest", helper.PublicOpts)
	filter := service.SeriesTabFilter{
		Search:      c.Query("search"),
		KhutbasOnly: true,
	}

	entries, err := service.LoadSeriesEntries(c.UserContext(), ctrl.DB)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load khutbas", err)
	}

	entries = service.FilterSeriesEntries(entries, filter)
	service.SortSeriesEntries(entries, p.Sort)
	pageItems, meta := service.Paginate(entries, p)

	return c.JSON(dto.SeriesListResponse{
		Success:    true,
		Series:     dto.ToSeriesItems(pageItems, ctrl.thresholds(c.UserContext())),
		Pagination: meta,
	})
}

// GET /api/homepage/stats — tab badge counts under the same filters.
func (ctrl *HomeController) GetStats(c *fiber.Ctx) error {
	stats, err := service.ComputeTabStats(c.UserContext(), ctrl.DB, service.SeriesTabFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to compute stats", err)
	}
	return c.JSON(dto.StatsResponse{Success: true, Stats: stats})
}

// GET /api/homepage — the full assembly, read through the cache.
func (ctrl *HomeController) GetHomepage(c *fiber.Ctx) error {
	v, err := ctrl.Cache.GetOrSet(c.UserContext(), constants.CacheKeyHomepage,
		func(ctx context.Context) (interface{}, error) {
			data, err := service.LoadHomepage(ctx, ctrl.DB)
			if err != nil {
				return nil, err
			}
			return ctrl.renderHomepage(ctx, data), nil
		}, constants.CacheTTLHomepage)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to build homepage", err)
	}
	return c.JSON(v)
}

func (ctrl *HomeController) renderHomepage(ctx context.Context, data *service.HomepageData) fiber.Map {
	th := ctrl.thresholds(ctx)

	sections := make([]fiber.Map, 0, len(data.Sections))
	for _, hs := range data.Sections {
		sections = append(sections, fiber.Map{
			"section_id":      hs.Section.SectionID,
			"section_name_ar": hs.Section.SectionNameAr,
			"section_name_en": hs.Section.SectionNameEn,
			"series":          dto.ToSeriesItems(hs.Entries, th),
		})
	}

	return fiber.Map{
		"success":   true,
		"sections":  sections,
		"latest":    dto.ToSeriesItems(data.Latest, th),
		"khutbas":   dto.ToSeriesItems(data.Khutbas, th),
		"schedules": data.Schedules,
	}
}

// GET /api/schedule — upcoming-lesson widget, cached.
func (ctrl *HomeController) GetSchedule(c *fiber.Ctx) error {
	v, err := ctrl.Cache.GetOrSet(c.UserContext(), constants.CacheKeySchedule,
		func(ctx context.Context) (interface{}, error) {
			return service.LoadScheduleWidget(ctx, ctrl.DB)
		}, constants.CacheTTLSchedule)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to load schedule", err)
	}
	return c.JSON(fiber.Map{"success": true, "schedules": v})
}

// GET /sitemap.xml — expensive and rarely fresh-critical: 1h TTL plus a
// browser cache header.
func (ctrl *HomeController) GetSitemap(c *fiber.Ctx) error {
	v, err := ctrl.Cache.GetOrSet(c.UserContext(), constants.CacheKeySitemap,
		func(ctx context.Context) (interface{}, error) {
			entries, err := service.LoadSitemapEntries(ctx, ctrl.DB)
			if err != nil {
				return nil, err
			}
			return service.BuildSitemapXML(configs.SiteBaseURL, entries)
		}, constants.CacheTTLSitemap)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to build sitemap", err)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(v.([]byte))
}

// GET /robots.txt
func (ctrl *HomeController) GetRobots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString("User-agent: *\nAllow: /\nDisallow: /api/a/\nSitemap: " +
		configs.SiteBaseURL + "/sitemap.xml\n")
}

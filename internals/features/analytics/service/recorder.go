package service

import (
	"log"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maktabah_backend/internals/constants"
	"maktabah_backend/internals/features/analytics/model"
)

var botUA = regexp.MustCompile(`(?i)bot|crawl|spider|slurp|curl|wget|python-requests|facebookexternalhit|headless`)

var skipPrefixes = []string{
	"/api", "/auth", "/static", "/stream", "/download",
	"/favicon", "/robots.txt", "/sitemap", "/health",
}

// ShouldTrack filters out everything that is not an organic page view.
func ShouldTrack(method, path, userAgent string) bool {
	if method != "GET" {
		return false
	}
	for _, p := range skipPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	if userAgent == "" || botUA.MatchString(userAgent) {
		return false
	}
	return true
}

// ClassifyPath maps a public path onto its page-type bucket.
func ClassifyPath(path string) string {
	path = strings.TrimSuffix(path, "/")
	switch {
	case path == "":
		return constants.PageTypeHomepage
	case strings.HasPrefix(path, "/lectures/"):
		return constants.PageTypeLecture
	case strings.HasPrefix(path, "/series/"):
		return constants.PageTypeSeries
	case strings.HasPrefix(path, "/sheikhs/"):
		return constants.PageTypeSheikh
	case path == "/lectures" || path == "/series" || path == "/sheikhs" || path == "/browse":
		return constants.PageTypeBrowse
	default:
		return constants.PageTypeOther
	}
}

// Record upsert-increments today's counter for path. Errors are logged
// and swallowed; this runs detached from any request.
func Record(db *gorm.DB, path string) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	row := model.PageViewModel{
		PageViewPath:     truncate(path, 512),
		PageViewPageType: ClassifyPath(path),
		PageViewDate:     day,
		PageViewCount:    1,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page_view_path"}, {Name: "page_view_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"page_view_count":      gorm.Expr("page_views.page_view_count + 1"),
			"page_view_updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		log.Printf("[WARN] page view record failed path=%s: %v", path, err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

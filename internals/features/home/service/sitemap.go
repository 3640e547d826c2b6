package service

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"
	sheikhModel "maktabah_backend/internals/features/sheikhs/model"
)

type SitemapEntry struct {
	Path    string
	LastMod time.Time
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemapXML renders entries as a sitemap document.
func BuildSitemapXML(baseURL string, entries []SitemapEntry) ([]byte, error) {
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, sitemapURL{Loc: baseURL + "/"})
	for _, e := range entries {
		u := sitemapURL{Loc: baseURL + e.Path}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// LoadSitemapEntries builds the full unpaginated listing: published
// lectures (respecting series visibility), visible series, and sheikhs.
func LoadSitemapEntries(ctx context.Context, db *gorm.DB) ([]SitemapEntry, error) {
	var series []seriesModel.SeriesModel
	if err := db.WithContext(ctx).Find(&series).Error; err != nil {
		return nil, err
	}
	visible := make(map[uuid.UUID]*seriesModel.SeriesModel, len(series))
	var entries []SitemapEntry
	for i := range series {
		s := &series[i]
		visible[s.SeriesID] = s
		if s.SeriesIsVisible {
			entries = append(entries, SitemapEntry{
				Path:    "/series/" + s.SeriesSlug,
				LastMod: lastTouched(s.SeriesCreatedAt, s.SeriesUpdatedAt),
			})
		}
	}

	var lectures []lectureModel.LectureModel
	if err := db.WithContext(ctx).
		Where("lecture_published = ?", true).
		Find(&lectures).Error; err != nil {
		return nil, err
	}
	for i := range lectures {
		l := &lectures[i]
		var parent *seriesModel.SeriesModel
		if l.LectureSeriesID != nil {
			parent = visible[*l.LectureSeriesID]
		}
		if !IsLectureVisible(l, parent) {
			continue
		}
		entries = append(entries, SitemapEntry{
			Path:    "/lectures/" + l.LectureSlug,
			LastMod: lastTouched(l.LectureCreatedAt, l.LectureUpdatedAt),
		})
	}

	var sheikhs []sheikhModel.SheikhModel
	if err := db.WithContext(ctx).Find(&sheikhs).Error; err != nil {
		return nil, err
	}
	for i := range sheikhs {
		s := &sheikhs[i]
		entries = append(entries, SitemapEntry{
			Path:    "/sheikhs/" + s.SheikhSlug,
			LastMod: lastTouched(s.SheikhCreatedAt, s.SheikhUpdatedAt),
		})
	}

	return entries, nil
}

func lastTouched(created time.Time, updated *time.Time) time.Time {
	if updated != nil && updated.After(created) {
		return *updated
	}
	return created
}

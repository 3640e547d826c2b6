package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSitemapXML(t *testing.T) {
	entries := []SitemapEntry{
		{Path: "/series/sharh-kitab", LastMod: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
		{Path: "/lectures/dars-1"},
	}

	out, err := BuildSitemapXML("https://example.org", entries)
	require.NoError(t, err)
	body := string(out)

	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	// the homepage entry always comes first
	assert.Contains(t, body, "<loc>https://example.org/</loc>")
	assert.Contains(t, body, "<loc>https://example.org/series/sharh-kitab</loc>")
	assert.Contains(t, body, "<lastmod>2024-03-15</lastmod>")

	// entries without lastmod omit the element entirely
	idx := strings.Index(body, "dars-1")
	require.Greater(t, idx, 0)
	assert.NotContains(t, body[idx:], "<lastmod>")
}

func TestBuildSitemapXMLEmpty(t *testing.T) {
	out, err := BuildSitemapXML("https://example.org", nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<loc>https://example.org/</loc>")
}

func TestLastTouched(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)
	earlier := created.Add(-time.Hour)

	assert.Equal(t, created, lastTouched(created, nil))
	assert.Equal(t, later, lastTouched(created, &later))
	assert.Equal(t, created, lastTouched(created, &earlier))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		ua     string
		want   bool
	}{
		{"organic page view", "GET", "/series/sharh-kitab", browserUA, true},
		{"homepage", "GET", "/", browserUA, true},
		{"post request", "POST", "/series/sharh-kitab", browserUA, false},
		{"api path", "GET", "/api/homepage/series", browserUA, false},
		{"auth path", "GET", "/auth/login", browserUA, false},
		{"stream path", "GET", "/stream/dars-1", browserUA, false},
		{"download path", "GET", "/download/dars-1", browserUA, false},
		{"sitemap", "GET", "/sitemap.xml", browserUA, false},
		{"health check", "GET", "/health", browserUA, false},
		{"googlebot", "GET", "/series/sharh-kitab", "Mozilla/5.0 (compatible; Googlebot/2.1)", false},
		{"curl", "GET", "/series/sharh-kitab", "curl/8.4.0", false},
		{"python requests", "GET", "/", "python-requests/2.31", false},
		{"empty user agent", "GET", "/", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldTrack(tt.method, tt.path, tt.ua))
		})
	}
}

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "homepage"},
		{"", "homepage"},
		{"/lectures/dars-1", "lecture"},
		{"/series/sharh-kitab", "series"},
		{"/sheikhs/fulan", "sheikh"},
		{"/lectures", "browse"},
		{"/series", "browse"},
		{"/sheikhs", "browse"},
		{"/browse", "browse"},
		{"/series/", "browse"}, // trailing slash folds into the listing
		{"/about", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPath(tt.path))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 512))
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, truncate(string(long), 512), 512)
}

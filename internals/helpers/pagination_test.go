package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, query string, opt Options) Params {
	t.Helper()

	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "newest", opt)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseQuery(t, "", PublicOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 12, p.Limit)
	assert.Equal(t, "newest", p.Sort)
}

func TestParseFiberClamps(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"limit above max clamps to 50", "limit=999", 1, 50},
		{"limit at max passes", "limit=50", 1, 50},
		{"zero limit falls back", "limit=0", 1, 12},
		{"negative page falls back", "page=-3", 1, 12},
		{"malformed values fall back", "page=abc&limit=xyz", 1, 12},
		{"valid values pass through", "page=3&limit=20", 3, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parseQuery(t, tt.query, PublicOpts)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestParseFiberSort(t *testing.T) {
	assert.Equal(t, "oldest", parseQuery(t, "sort=oldest", PublicOpts).Sort)
	assert.Equal(t, "oldest", parseQuery(t, "sort=OLDEST", PublicOpts).Sort)
	assert.Equal(t, "newest", parseQuery(t, "sort=garbage", PublicOpts).Sort)
}

func TestBuildMeta(t *testing.T) {
	t.Run("hasMore true before the last page", func(t *testing.T) {
		m := BuildMeta(25, Params{Page: 2, Limit: 10})
		assert.Equal(t, int64(25), m.Total)
		assert.Equal(t, 3, m.Pages)
		assert.True(t, m.HasMore)
	})

	t.Run("hasMore false on the last page", func(t *testing.T) {
		m := BuildMeta(25, Params{Page: 3, Limit: 10})
		assert.False(t, m.HasMore)
	})

	t.Run("exact multiple", func(t *testing.T) {
		m := BuildMeta(20, Params{Page: 2, Limit: 10})
		assert.Equal(t, 2, m.Pages)
		assert.False(t, m.HasMore)
	})

	t.Run("empty result", func(t *testing.T) {
		m := BuildMeta(0, Params{Page: 1, Limit: 10})
		assert.Equal(t, 0, m.Pages)
		assert.False(t, m.HasMore)
	})
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 5, Limit: 10}.Offset())
}

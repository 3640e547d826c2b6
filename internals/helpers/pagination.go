package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// Presets. Public listing endpoints clamp to 50 per the API contract;
// admin tables may page wider.
var (
	PublicOpts = Options{DefaultPerPage: 12, MaxPerPage: 50}
	AdminOpts  = Options{DefaultPerPage: 50, MaxPerPage: 200}
)

type Params struct {
	Page      int
	Limit     int
	Sort      string // newest|oldest
}

func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// ParseFiber reads page/limit/sort from the query string, clamping
// malformed values instead of rejecting them.
func ParseFiber(c *fiber.Ctx, defaultSort string, opt Options) Params {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := opt.DefaultPerPage
	if n, err := strconv.Atoi(strings.TrimSpace(c.Query("limit"))); err == nil && n > 0 {
		limit = n
	}
	if limit > opt.MaxPerPage {
		limit = opt.MaxPerPage
	}
	if limit < 1 {
		limit = opt.DefaultPerPage
	}

	sort := strings.ToLower(strings.TrimSpace(c.Query("sort")))
	if sort != "newest" && sort != "oldest" {
		sort = defaultSort
	}

	return Params{Page: page, Limit: limit, Sort: sort}
}

// Meta is the pagination block of every public list response.
// Total reflects the count after filtering/classification, before slicing.
type Meta struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasMore bool  `json:"hasMore"`
}

func BuildMeta(total int64, p Params) Meta {
	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Meta{
		Page:    p.Page,
		Limit:   p.Limit,
		Total:   total,
		Pages:   pages,
		HasMore: int64(p.Page*p.Limit) < total,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

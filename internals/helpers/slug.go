package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	// Arabic letters are kept as-is so Arabic-only titles still produce a
	// usable slug instead of collapsing to the fallback.
	reNonSlug  = regexp.MustCompile(`[^a-z0-9\p{Arabic}]+`)
	reHyphen   = regexp.MustCompile(`-+`)
	reSlugging = regexp.MustCompile(`^[a-z0-9\p{Arabic}]+(-[a-z0-9\p{Arabic}]+)*$`)
)

// Slugify turns free text into a slug of [a-z0-9-] plus Arabic letters,
// stripping diacritics, compressing hyphens and enforcing maxLen
// (default 100). Falls back to "item" when nothing survives.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonSlug.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = string(rs[:maxLen])
		s = strings.Trim(s, "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// IsValidSlug reports whether s looks like something Slugify produced.
func IsValidSlug(s string) bool {
	return s != "" && utf8.RuneCountInString(s) <= 100 && reSlugging.MatchString(s)
}

// EnsureUniqueSlug finds a free slug on table.column, suffixing -2, -3, ...
// past the highest existing suffix.
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	slug := base

	var count int64
	if err := db.Table(table).
		Where(fmt.Sprintf("%s = ?", column), slug).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return slug, nil
	}

	type row struct{ Slug string }
	var rows []row
	like := base + "%"
	if err := db.Table(table).
		Select(column + " as slug").
		Where(fmt.Sprintf("%s = ? OR %s LIKE ?", column, column), base, like).
		Find(&rows).Error; err != nil {
		return "", err
	}

	maxN := 1
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `-(\d+)$`)
	for _, r := range rows {
		m := re.FindStringSubmatch(r.Slug)
		if len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}

	return fmt.Sprintf("%s-%d", base, maxN+1), nil
}

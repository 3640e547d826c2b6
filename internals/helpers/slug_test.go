package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin text", "Sharh Kitab at-Tawhid", "sharh-kitab-at-tawhid"},
		{"arabic kept", "شرح كتاب التوحيد", "شرح-كتاب-التوحيد"},
		{"arabic diacritics stripped", "شَرْح", "شرح"},
		{"punctuation collapses", "a  --  b!!c", "a-b-c"},
		{"leading trailing junk", "  ---hello---  ", "hello"},
		{"empty falls back", "", "item"},
		{"symbols only fall back", "!!!", "item"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in, 100))
		})
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	long := strings.Repeat("abc-", 50)
	got := Slugify(long, 10)
	assert.LessOrEqual(t, len([]rune(got)), 10)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("sharh-kitab"))
	assert.True(t, IsValidSlug("شرح-كتاب"))
	assert.True(t, IsValidSlug("dars-12"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug("no spaces"))
	assert.False(t, IsValidSlug("UPPER"))
	assert.False(t, IsValidSlug("semi;colon"))
	assert.False(t, IsValidSlug(strings.Repeat("a", 101)))
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"
)

func TestClassifySeriesType(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		titleAr string
		want    string
	}{
		{"online tag", []string{"online"}, "شرح كتاب التوحيد", "online"},
		{"archive-ramadan tag", []string{"archive-ramadan"}, "دروس", "archive-ramadan"},
		{"archive tag", []string{"archive"}, "دروس", "archive"},
		{"online beats archive-ramadan", []string{"archive-ramadan", "online"}, "دروس", "online"},
		{"archive-ramadan beats archive", []string{"archive", "archive-ramadan"}, "دروس", "archive-ramadan"},
		{"tag wins over title marker", []string{"archive"}, "دروس عن بعد", "archive"},
		{"tags case-insensitive and trimmed", []string{"  Online  "}, "دروس", "online"},
		{"title online fallback", nil, "شرح صحيح مسلم عن بعد", "online"},
		{"title ramadan fallback", nil, "أرشيف رمضان ١٤٤٣", "archive-ramadan"},
		{"title archive fallback", nil, "أرشيف الدروس القديمة", "archive"},
		{"no markers defaults to masjid", nil, "شرح الأصول الثلاثة", "masjid"},
		{"unrelated tags fall through to title", []string{"featured"}, "دورة عن بعد", "online"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeriesType(tt.tags, tt.titleAr))
		})
	}
}

func TestIsKhutbaSeries(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		titleAr string
		want    bool
	}{
		{"khutba tag", []string{"khutba"}, "دروس", true},
		{"plural title marker", nil, "خطب الجمعة", true},
		{"singular title marker", nil, "خطبة عيد الفطر", true},
		{"neither", []string{"archive"}, "شرح كتاب", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKhutbaSeries(tt.tags, tt.titleAr))
		})
	}
}

func TestIsLectureVisible(t *testing.T) {
	sid := uuid.New()
	visibleSeries := &seriesModel.SeriesModel{SeriesID: sid, SeriesIsVisible: true}
	hiddenSeries := &seriesModel.SeriesModel{SeriesID: sid, SeriesIsVisible: false}

	t.Run("unpublished never visible", func(t *testing.T) {
		l := &lectureModel.LectureModel{LecturePublished: false}
		assert.False(t, IsLectureVisible(l, nil))
		assert.False(t, IsLectureVisible(l, visibleSeries))
	})

	t.Run("published standalone visible", func(t *testing.T) {
		l := &lectureModel.LectureModel{LecturePublished: true}
		assert.True(t, IsLectureVisible(l, nil))
	})

	t.Run("hidden series hides its lectures", func(t *testing.T) {
		l := &lectureModel.LectureModel{LecturePublished: true, LectureSeriesID: &sid}
		assert.False(t, IsLectureVisible(l, hiddenSeries))
		assert.True(t, IsLectureVisible(l, visibleSeries))
	})

	t.Run("nil lecture", func(t *testing.T) {
		assert.False(t, IsLectureVisible(nil, visibleSeries))
	})
}

func intp(n int) *int { return &n }

func TestCompareLectureOrder(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sort_order wins", func(t *testing.T) {
		a := &lectureModel.LectureModel{LectureSortOrder: intp(1), LectureNumber: intp(9)}
		b := &lectureModel.LectureModel{LectureSortOrder: intp(2), LectureNumber: intp(1)}
		assert.Equal(t, -1, CompareLectureOrder(a, b))
		assert.Equal(t, 1, CompareLectureOrder(b, a))
	})

	t.Run("missing sort_order sorts last", func(t *testing.T) {
		ordered := &lectureModel.LectureModel{LectureSortOrder: intp(500)}
		unordered := &lectureModel.LectureModel{LectureNumber: intp(1)}
		assert.Equal(t, -1, CompareLectureOrder(ordered, unordered))
	})

	t.Run("lecture_number breaks sort_order ties", func(t *testing.T) {
		a := &lectureModel.LectureModel{LectureNumber: intp(3)}
		b := &lectureModel.LectureModel{LectureNumber: intp(7)}
		assert.Equal(t, -1, CompareLectureOrder(a, b))
	})

	t.Run("created_at is the final tiebreak", func(t *testing.T) {
		a := &lectureModel.LectureModel{LectureCreatedAt: base}
		b := &lectureModel.LectureModel{LectureCreatedAt: base.Add(time.Hour)}
		assert.Equal(t, -1, CompareLectureOrder(a, b))
		assert.Equal(t, 0, CompareLectureOrder(a, a))
	})
}

func TestSortLecturesInSeries(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ls := []lectureModel.LectureModel{
		{LectureSlug: "c", LectureCreatedAt: base.Add(2 * time.Hour)},
		{LectureSlug: "b", LectureNumber: intp(2), LectureCreatedAt: base},
		{LectureSlug: "a", LectureSortOrder: intp(1), LectureCreatedAt: base.Add(3 * time.Hour)},
		{LectureSlug: "d", LectureNumber: intp(1), LectureCreatedAt: base},
	}
	SortLecturesInSeries(ls)

	got := make([]string, 0, len(ls))
	for _, l := range ls {
		got = append(got, l.LectureSlug)
	}
	assert.Equal(t, []string{"a", "d", "b", "c"}, got)
}

func TestIsMiscSeries(t *testing.T) {
	assert.True(t, IsMiscSeries("محاضرات متفرقة"))
	assert.True(t, IsMiscSeries("سلسلة محاضرات متفرقة للشيخ"))
	assert.False(t, IsMiscSeries("شرح كتاب التوحيد"))
}

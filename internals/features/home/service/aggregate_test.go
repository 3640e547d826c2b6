package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lectureModel "maktabah_backend/internals/features/lectures/model"
	seriesModel "maktabah_backend/internals/features/series/model"
	helper "maktabah_backend/internals/helpers"
)

var testBase = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testSeries(titleAr string, visible bool, tags ...string) seriesModel.SeriesModel {
	return seriesModel.SeriesModel{
		SeriesID:        uuid.New(),
		SeriesTitleAr:   titleAr,
		SeriesSlug:      uuid.NewString()[:8],
		SeriesIsVisible: visible,
		SeriesTags:      tags,
		SeriesCreatedAt: testBase,
	}
}

func testLecture(seriesID uuid.UUID, published bool, createdOffset time.Duration) lectureModel.LectureModel {
	l := lectureModel.LectureModel{
		LectureID:        uuid.New(),
		LectureTitleAr:   "درس",
		LectureSlug:      uuid.NewString()[:8],
		LecturePublished: published,
		LectureCategory:  "other",
		LectureCreatedAt: testBase.Add(createdOffset),
	}
	if seriesID != uuid.Nil {
		l.LectureSeriesID = &seriesID
	}
	return l
}

func TestBuildSeriesEntries(t *testing.T) {
	shown := testSeries("شرح كتاب", true)
	hidden := testSeries("سلسلة مخفية", true)
	hidden.SeriesIsVisible = false
	empty := testSeries("سلسلة فارغة", true)

	bySeries := map[uuid.UUID][]lectureModel.LectureModel{
		shown.SeriesID: {
			testLecture(shown.SeriesID, true, time.Hour),
			testLecture(shown.SeriesID, false, 2*time.Hour), // unpublished, dropped
			testLecture(shown.SeriesID, true, 0),
		},
		hidden.SeriesID: {testLecture(hidden.SeriesID, true, 0)},
		empty.SeriesID:  {testLecture(empty.SeriesID, false, 0)},
	}

	entries := BuildSeriesEntries(
		[]seriesModel.SeriesModel{shown, hidden, empty}, bySeries)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, shown.SeriesID, e.Series.SeriesID)

	// the count is computed from the surviving lectures, never stored
	assert.Equal(t, 2, e.VisibleLectureCount())
	assert.Equal(t, testBase.Add(time.Hour), e.LatestAt)
	assert.Equal(t, "masjid", e.Type)
	assert.False(t, e.IsKhutba)
}

func TestBuildSeriesEntriesCountDropsWithUnpublish(t *testing.T) {
	s := testSeries("شرح كتاب", true)
	ls := []lectureModel.LectureModel{
		testLecture(s.SeriesID, true, 0),
		testLecture(s.SeriesID, true, time.Hour),
		testLecture(s.SeriesID, true, 2*time.Hour),
	}

	entries := BuildSeriesEntries([]seriesModel.SeriesModel{s},
		map[uuid.UUID][]lectureModel.LectureModel{s.SeriesID: ls})
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].VisibleLectureCount())

	// unpublish one and rebuild: the count follows immediately
	ls[1].LecturePublished = false
	entries = BuildSeriesEntries([]seriesModel.SeriesModel{s},
		map[uuid.UUID][]lectureModel.LectureModel{s.SeriesID: ls})
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].VisibleLectureCount())
}

func khutbaFixtures() []SeriesEntry {
	khutba := testSeries("خطب الجمعة", true, "khutba")
	lessons := testSeries("شرح الأصول", true)
	online := testSeries("دورة عن بعد", true, "online")

	out := make([]SeriesEntry, 0, 3)
	for _, s := range []seriesModel.SeriesModel{khutba, lessons, online} {
		out = append(out, SeriesEntry{
			Series:   s,
			Lectures: []lectureModel.LectureModel{testLecture(s.SeriesID, true, 0)},
			Type:     ClassifySeriesType(s.SeriesTags, s.SeriesTitleAr),
			IsKhutba: IsKhutbaSeries(s.SeriesTags, s.SeriesTitleAr),
			LatestAt: testBase,
		})
	}
	return out
}

func TestFilterSeriesEntriesKhutbaHandling(t *testing.T) {
	entries := khutbaFixtures()

	t.Run("series tab excludes khutbas", func(t *testing.T) {
		got := FilterSeriesEntries(entries, SeriesTabFilter{ExcludeKhutbas: true})
		require.Len(t, got, 2)
		for _, e := range got {
			assert.False(t, e.IsKhutba)
		}
	})

	t.Run("khutbas tab keeps only khutbas", func(t *testing.T) {
		got := FilterSeriesEntries(entries, SeriesTabFilter{KhutbasOnly: true})
		require.Len(t, got, 1)
		assert.Equal(t, "خطب الجمعة", got[0].Series.SeriesTitleAr)
	})

	t.Run("type filter", func(t *testing.T) {
		got := FilterSeriesEntries(entries, SeriesTabFilter{Type: "online"})
		require.Len(t, got, 1)
		assert.Equal(t, "دورة عن بعد", got[0].Series.SeriesTitleAr)
	})

	t.Run("search matches arabic title substring", func(t *testing.T) {
		got := FilterSeriesEntries(entries, SeriesTabFilter{Search: "الأصول"})
		require.Len(t, got, 1)
		assert.Equal(t, "شرح الأصول", got[0].Series.SeriesTitleAr)
	})
}

func TestFilterSeriesEntriesByCategory(t *testing.T) {
	s := testSeries("شرح كتاب", true)
	fiqh := testLecture(s.SeriesID, true, 0)
	fiqh.LectureCategory = "fiqh"
	entry := SeriesEntry{
		Series:   s,
		Lectures: []lectureModel.LectureModel{fiqh},
		LatestAt: testBase,
	}

	assert.Len(t, FilterSeriesEntries([]SeriesEntry{entry}, SeriesTabFilter{Category: "fiqh"}), 1)
	assert.Empty(t, FilterSeriesEntries([]SeriesEntry{entry}, SeriesTabFilter{Category: "tafsir"}))
}

func TestSortSeriesEntriesDeterministic(t *testing.T) {
	a := testSeries("أ", true)
	b := testSeries("ب", true)
	c := testSeries("ج", true)
	entries := []SeriesEntry{
		{Series: a, LatestAt: testBase},
		{Series: b, LatestAt: testBase.Add(2 * time.Hour)},
		{Series: c, LatestAt: testBase.Add(time.Hour)},
	}

	SortSeriesEntries(entries, "newest")
	assert.Equal(t, b.SeriesID, entries[0].Series.SeriesID)
	assert.Equal(t, a.SeriesID, entries[2].Series.SeriesID)

	SortSeriesEntries(entries, "oldest")
	assert.Equal(t, a.SeriesID, entries[0].Series.SeriesID)
	assert.Equal(t, b.SeriesID, entries[2].Series.SeriesID)
}

func TestFilterStandaloneLectures(t *testing.T) {
	pub := testLecture(uuid.Nil, true, 0)
	pub.LectureTitleAr = "محاضرة في العقيدة"
	pub.LectureCategory = "aqeedah"
	unpub := testLecture(uuid.Nil, false, 0)

	t.Run("unpublished dropped", func(t *testing.T) {
		got := FilterStandaloneLectures(
			[]lectureModel.LectureModel{pub, unpub}, StandaloneFilter{})
		require.Len(t, got, 1)
		assert.Equal(t, pub.LectureID, got[0].LectureID)
	})

	t.Run("category filter", func(t *testing.T) {
		assert.Len(t, FilterStandaloneLectures(
			[]lectureModel.LectureModel{pub}, StandaloneFilter{Category: "aqeedah"}), 1)
		assert.Empty(t, FilterStandaloneLectures(
			[]lectureModel.LectureModel{pub}, StandaloneFilter{Category: "fiqh"}))
	})

	t.Run("search filter", func(t *testing.T) {
		assert.Len(t, FilterStandaloneLectures(
			[]lectureModel.LectureModel{pub}, StandaloneFilter{Search: "العقيدة"}), 1)
		assert.Empty(t, FilterStandaloneLectures(
			[]lectureModel.LectureModel{pub}, StandaloneFilter{Search: "الفقه"}))
	})
}

func TestSortLecturesByDateUsesRecordedOverCreated(t *testing.T) {
	recorded := testBase.Add(-30 * 24 * time.Hour)
	old := testLecture(uuid.Nil, true, time.Hour)
	old.LectureDateRecorded = &recorded // recorded long ago, created recently
	recent := testLecture(uuid.Nil, true, 0)

	ls := []lectureModel.LectureModel{old, recent}
	SortLecturesByDate(ls, "newest")
	assert.Equal(t, recent.LectureID, ls[0].LectureID)

	SortLecturesByDate(ls, "oldest")
	assert.Equal(t, old.LectureID, ls[0].LectureID)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("middle page", func(t *testing.T) {
		page, meta := Paginate(items, helper.Params{Page: 2, Limit: 10})
		assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, page)
		assert.Equal(t, int64(25), meta.Total)
		assert.Equal(t, 3, meta.Pages)
		assert.True(t, meta.HasMore)
	})

	t.Run("last page is partial", func(t *testing.T) {
		page, meta := Paginate(items, helper.Params{Page: 3, Limit: 10})
		assert.Len(t, page, 5)
		assert.False(t, meta.HasMore)
	})

	t.Run("page past the end", func(t *testing.T) {
		page, meta := Paginate(items, helper.Params{Page: 9, Limit: 10})
		assert.Empty(t, page)
		// total still reflects the pre-slice count
		assert.Equal(t, int64(25), meta.Total)
		assert.False(t, meta.HasMore)
	})

	t.Run("empty input", func(t *testing.T) {
		page, meta := Paginate([]int{}, helper.Params{Page: 1, Limit: 10})
		assert.Empty(t, page)
		assert.Equal(t, int64(0), meta.Total)
		assert.Equal(t, 0, meta.Pages)
		assert.False(t, meta.HasMore)
	})

	t.Run("exact page boundary", func(t *testing.T) {
		_, meta := Paginate(items[:20], helper.Params{Page: 2, Limit: 10})
		assert.Equal(t, 2, meta.Pages)
		assert.False(t, meta.HasMore)
	})
}

func TestPaginateStableAcrossCalls(t *testing.T) {
	entries := make([]SeriesEntry, 0, 8)
	for i := 0; i < 8; i++ {
		s := testSeries(fmt.Sprintf("سلسلة %d", i), true)
		entries = append(entries, SeriesEntry{Series: s, LatestAt: testBase})
	}
	SortSeriesEntries(entries, "newest")

	first, _ := Paginate(entries, helper.Params{Page: 1, Limit: 4})
	second, _ := Paginate(entries, helper.Params{Page: 2, Limit: 4})

	seen := map[uuid.UUID]bool{}
	for _, e := range append(first, second...) {
		assert.False(t, seen[e.Series.SeriesID], "series appeared twice across pages")
		seen[e.Series.SeriesID] = true
	}
	assert.Len(t, seen, 8)
}

package constants

// Lecture categories (fixed enum, stored lowercase).
const (
	CategoryAqeedah = "aqeedah"
	CategoryFiqh    = "fiqh"
	CategoryTafsir  = "tafsir"
	CategoryHadith  = "hadith"
	CategorySeerah  = "seerah"
	CategoryAkhlaq  = "akhlaq"
	CategoryOther   = "other"
)

var LectureCategories = []string{
	CategoryAqeedah, CategoryFiqh, CategoryTafsir,
	CategoryHadith, CategorySeerah, CategoryAkhlaq, CategoryOther,
}

func IsValidCategory(c string) bool {
	for _, v := range LectureCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Derived series types. Never persisted; recomputed from tags/title on
// every read.
const (
	SeriesTypeMasjid         = "masjid"
	SeriesTypeOnline         = "online"
	SeriesTypeArchive        = "archive"
	SeriesTypeArchiveRamadan = "archive-ramadan"
)

// Classification tags.
const (
	TagOnline         = "online"
	TagArchive        = "archive"
	TagArchiveRamadan = "archive-ramadan"
	TagKhutba         = "khutba"
)

// Arabic title markers, the fallback when no classifying tag is present.
const (
	TitleMarkOnline         = "عن بعد"
	TitleMarkArchiveRamadan = "أرشيف رمضان"
	TitleMarkArchive        = "أرشيف"
	TitleMarkKhutba         = "خطب"
	TitleMarkKhutbaSingular = "خطبة"
)

// The "miscellaneous lectures" series is matched by this literal title
// substring, not a stored flag. Existing data depends on the literal.
const MiscSeriesTitleMark = "محاضرات متفرقة"

// Page types recorded by the analytics middleware.
const (
	PageTypeHomepage = "homepage"
	PageTypeLecture  = "lecture"
	PageTypeSeries   = "series"
	PageTypeSheikh   = "sheikh"
	PageTypeBrowse   = "browse"
	PageTypeOther    = "other"
)

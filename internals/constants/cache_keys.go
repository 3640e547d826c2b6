package constants

import "time"

// Cache keys and TTLs. Writes never invalidate these; entries go stale
// until the TTL runs out (bounded-staleness model).
const (
	CacheKeyHomepage     = "homepage:full"
	CacheKeySitemap      = "sitemap:xml"
	CacheKeySchedule     = "schedule:widget"
	CacheKeyTotals       = "stats:totals"
	CacheKeyHomePrefix   = "homepage:"
	CacheTTLHomepage     = 300 * time.Second
	CacheTTLSchedule     = 300 * time.Second
	CacheTTLSitemap      = time.Hour
)

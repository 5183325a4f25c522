package config

import "time"

// Pagination Constants
const (
	// DefaultPage is used when the caller omits or mangles the page parameter
	DefaultPage = 1

	// DefaultPageLimit is the page size used when the caller omits the limit parameter
	DefaultPageLimit = 10

	// OverfetchMargin is the fixed number of extra items requested upstream on
	// top of the caller's read count, to compensate for post-fetch filtering
	OverfetchMargin = 20

	// FeaturedWindow is the number of recent items scanned for an unread featured pick
	FeaturedWindow = 10
)

// Transform Constants
const (
	// WordsPerMinute drives read-time estimation
	WordsPerMinute = 200

	// DescriptionLimit caps the derived plain-text description length
	DescriptionLimit = 200

	// DefaultCategory is assigned when the upstream item carries none
	DefaultCategory = "General"

	// ListImagePlaceholder is used when no inline image can be extracted
	ListImagePlaceholder = "/placeholder.svg?height=400&width=600"

	// FeaturedImagePlaceholder is the larger placeholder for the featured slot
	FeaturedImagePlaceholder = "/placeholder.svg?height=500&width=800"
)

// Upstream Constants
const (
	// DefaultUpstreamURL is the upstream store base URL when UPSTREAM_URL is unset
	DefaultUpstreamURL = "http://localhost:8000"

	// UpstreamTimeout bounds every upstream call so one slow request cannot
	// stall aggregation indefinitely
	UpstreamTimeout = 10 * time.Second

	// FeedCacheTTL bounds staleness of cached raw feed windows
	FeedCacheTTL = 60 * time.Second
)

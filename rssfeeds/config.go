package rssfeeds

// Default configuration values
const (
	DefaultCount = 10
)

// FeedPresets maps friendly names to syndication feed URLs
var FeedPresets = map[string]string{
	"bbc":   "https://feeds.bbci.co.uk/news/world/rss.xml",
	"hn":    "https://hnrss.org/newest",
	"verge": "https://www.theverge.com/rss/index.xml",
	"tr":    "https://www.technologyreview.com/feed/",
}

// ResolveFeedURL resolves a feed identifier to a URL
// If the input is a preset name, returns the corresponding URL
// Otherwise, returns the input as-is (assuming it's a direct URL)
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

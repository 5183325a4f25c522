package types

import (
	"strconv"
	"strings"
	"time"
)

// FeedItem is a raw content record as returned by the upstream store. It is
// read-only to this service; the upstream store owns it.
type FeedItem struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Content     string     `json:"content"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Published   *time.Time `json:"published,omitempty"`
}

// Article is the transformed, caller-facing content record. It is created
// fresh per request and never persisted here.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadTime    string    `json:"readTime"`
	Trending    bool      `json:"trending"`
	Featured    bool      `json:"featured"`
	Link        string    `json:"link"`
}

// NewsPage is one page of aggregated articles. HasMore is an approximation:
// true iff the page came back full, since the upstream store exposes no
// authoritative total.
type NewsPage struct {
	Articles    []Article `json:"articles"`
	TotalCount  int       `json:"totalCount"`
	HasMore     bool      `json:"hasMore"`
	CurrentPage int       `json:"currentPage"`
}

// MarkReadRequest records one (user, article) consumed fact with the
// upstream store.
type MarkReadRequest struct {
	ArticleID    string `json:"article_id"`
	ArticleTitle string `json:"article_title"`
	ArticleLink  string `json:"article_link"`
}

// DeriveID creates a short, stable identifier for items the upstream store
// has not assigned one, by folding title+link through a wrapping 32-bit
// rolling hash. The same pair always yields the same 8-character base-36 id.
// Collisions are possible; ids derived here are best-effort, not globally
// unique.
func DeriveID(title, link string) string {
	var h int32
	for _, r := range title + link {
		h = h*31 + r
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	s := strconv.FormatInt(v, 36)
	if len(s) > 8 {
		return s[:8]
	}
	return strings.Repeat("0", 8-len(s)) + s
}

package news

import (
	"context"
	"log"
	"time"

	"newsdesk/config"
	"newsdesk/types"
	"newsdesk/upstream"
)

// GetFeatured returns the single most relevant unread article: the first
// unread item in a small recent window, or the first item overall when the
// caller has read the whole window. The featured slot is decorative, so any
// upstream failure yields a static placeholder instead of an error.
func (s *Service) GetFeatured(ctx context.Context, auth string) types.Article {
	readIDs := s.readSet(ctx, auth)

	items, err := s.fetchWindow(ctx, upstream.ItemQuery{Limit: config.FeaturedWindow})
	if err != nil || len(items) == 0 {
		if err != nil {
			log.Printf("Featured selection degraded: %v", err)
		}
		return PlaceholderFeatured()
	}

	// Items arrive most-recent-first; the fallback pick is the newest item
	// regardless of read state, so the slot is never empty just because the
	// caller read everything.
	pick := items[0]
	for _, item := range items {
		id := item.ID
		if id == "" {
			id = types.DeriveID(item.Title, item.Link)
		}
		if _, read := readIDs[id]; !read {
			pick = item
			break
		}
	}

	article, err := transform(pick, config.FeaturedImagePlaceholder)
	if err != nil {
		log.Printf("Featured selection degraded: %v", err)
		return PlaceholderFeatured()
	}
	article.Featured = true
	return article
}

// PlaceholderFeatured is the terminal fallback for the featured slot,
// directing the caller to configure content sources.
func PlaceholderFeatured() types.Article {
	return types.Article{
		ID:          "no-featured",
		Title:       "No Featured Article Available",
		Description: "Connect RSS feeds to see featured articles here. Go to Settings to add RSS feeds.",
		Content:     "To see featured articles, please add RSS feeds in the Settings page. The most recent article from your feeds will appear here.",
		ImageURL:    config.FeaturedImagePlaceholder,
		Category:    "System",
		Source:      "Dashboard",
		PublishedAt: time.Now(),
		ReadTime:    "1 min read",
		Featured:    true,
		Link:        "/settings",
	}
}

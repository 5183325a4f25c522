package rssfeeds

import (
	"context"
	"fmt"
	"time"

	"newsdesk/types"

	"github.com/mmcdole/gofeed"
)

// FetchFeed retrieves and parses an RSS/Atom feed directly from its source.
// Items fetched this way carry no persisted upstream id; the transformer
// derives one from title and link.
func FetchFeed(ctx context.Context, feedURL string, maxCount int) ([]types.FeedItem, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if maxCount > 0 && count > maxCount {
		count = maxCount
	}

	items := make([]types.FeedItem, 0, count)
	for i := 0; i < count; i++ {
		entry := feed.Items[i]

		// Parse published date
		var published *time.Time
		if entry.PublishedParsed != nil {
			published = entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = entry.UpdatedParsed
		}

		category := ""
		if len(entry.Categories) > 0 {
			category = entry.Categories[0]
		}

		content := entry.Content
		if content == "" {
			content = entry.Description
		}

		items = append(items, types.FeedItem{
			Title:       entry.Title,
			Link:        entry.Link,
			Content:     content,
			Description: entry.Description,
			Category:    category,
			Published:   published,
		})
	}

	return items, nil
}

package news

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"newsdesk/config"
	"newsdesk/types"
)

var imgSrcRe = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)

// Transform maps one raw feed item into the public Article shape. It fails
// only when the item's link is not a well-formed URL; callers should skip
// such items rather than abort the page.
func Transform(item types.FeedItem) (types.Article, error) {
	return transform(item, config.ListImagePlaceholder)
}

func transform(item types.FeedItem, placeholder string) (types.Article, error) {
	source, err := sourceFromLink(item.Link)
	if err != nil {
		return types.Article{}, err
	}

	id := item.ID
	if id == "" {
		id = types.DeriveID(item.Title, item.Link)
	}

	description := item.Description
	if description == "" {
		description = truncate(item.Content, config.DescriptionLimit) + "..."
	}

	category := item.Category
	if category == "" {
		category = config.DefaultCategory
	}

	publishedAt := time.Now()
	if item.Published != nil {
		publishedAt = *item.Published
	}

	return types.Article{
		ID:          id,
		Title:       item.Title,
		Description: description,
		Content:     item.Content,
		ImageURL:    extractImage(item.Description, placeholder),
		Category:    category,
		Source:      source,
		PublishedAt: publishedAt,
		ReadTime:    readTime(item.Content),
		Trending:    false,
		Link:        item.Link,
	}, nil
}

// extractImage returns the first inline <img> source found in the raw HTML
// description, or the placeholder.
func extractImage(description, placeholder string) string {
	if m := imgSrcRe.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	return placeholder
}

// sourceFromLink derives the canonical source name: the link's hostname with
// a leading "www." stripped.
func sourceFromLink(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("malformed item link %q: %w", link, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("malformed item link %q: no host", link)
	}
	return strings.TrimPrefix(host, "www."), nil
}

// readTime estimates reading time from whitespace-separated word count, with
// a one minute floor.
func readTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + config.WordsPerMinute - 1) / config.WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

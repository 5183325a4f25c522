// Package news implements the aggregation pipeline: it coordinates the
// upstream feed and read-state calls, assigns stable identities, compensates
// pagination for server-side filtering, and degrades instead of failing on
// the content-read paths.
package news

import (
	"context"
	"fmt"
	"log"
	"time"

	"newsdesk/cache"
	"newsdesk/config"
	"newsdesk/types"
	"newsdesk/upstream"
)

// Service orchestrates the read pipeline. It keeps no state across requests;
// every call is independent of every other in-flight call.
type Service struct {
	store     *upstream.Client
	feedCache *cache.Cache // nil when REDIS_URL is not configured
}

// NewService creates the aggregation service.
func NewService(store *upstream.Client, feedCache *cache.Cache) *Service {
	return &Service{store: store, feedCache: feedCache}
}

// PageRequest selects one page of aggregated articles.
type PageRequest struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// GetNews returns one filtered, paginated window of articles. The upstream
// store has no notion of per-user read state, so filtering happens here,
// after the fetch.
func (s *Service) GetNews(ctx context.Context, req PageRequest, auth string) (types.NewsPage, error) {
	if req.Page < 1 {
		req.Page = config.DefaultPage
	}
	if req.Limit < 1 {
		req.Limit = config.DefaultPageLimit
	}

	readIDs := s.readSet(ctx, auth)

	// Request enough extra items to still fill a page after read filtering.
	// The margin is a heuristic: when a caller has read deep into the window
	// the page comes back short and hasMore under-reports, which beats an
	// unbounded retry loop.
	fetchLimit := req.Limit + len(readIDs) + config.OverfetchMargin

	items, err := s.fetchWindow(ctx, upstream.ItemQuery{
		Category: req.Category,
		Search:   req.Search,
		Skip:     (req.Page - 1) * req.Limit,
		Limit:    fetchLimit,
	})
	if err != nil {
		return types.NewsPage{}, err
	}

	articles := make([]types.Article, 0, req.Limit)
	for _, item := range items {
		article, err := Transform(item)
		if err != nil {
			log.Printf("Skipping malformed item %q: %v", item.Title, err)
			continue
		}
		if auth != "" {
			if _, read := readIDs[article.ID]; read {
				continue
			}
		}
		articles = append(articles, article)
		if len(articles) == req.Limit {
			break
		}
	}

	return types.NewsPage{
		Articles:    articles,
		TotalCount:  len(articles),
		HasMore:     len(articles) == req.Limit,
		CurrentPage: req.Page,
	}, nil
}

// readSet fetches the caller's read-article ids and degrades silently: an
// absent credential, a rejected one, or an unreachable upstream all mean
// "nothing is read". Worst case the caller re-sees an already-read item.
func (s *Service) readSet(ctx context.Context, auth string) map[string]struct{} {
	if auth == "" {
		return nil
	}
	ids, err := s.store.ReadArticles(ctx, auth)
	if err != nil {
		log.Printf("Could not fetch read articles: %v", err)
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// fetchWindow consults the feed-window cache before going upstream. Keys are
// user-independent; read filtering always happens after this point, so a
// cached window never leaks one caller's read state into another's page.
func (s *Service) fetchWindow(ctx context.Context, q upstream.ItemQuery) ([]types.FeedItem, error) {
	key := fmt.Sprintf("feed:items:%s:%s:%d:%d", q.Category, q.Search, q.Skip, q.Limit)

	var items []types.FeedItem
	if s.feedCache.Get(ctx, key, &items) {
		return items, nil
	}

	items, err := s.store.ListItems(ctx, q)
	if err != nil {
		return nil, err
	}
	s.feedCache.Set(ctx, key, items, config.FeedCacheTTL)
	return items, nil
}

// FallbackPage is served when the upstream store is unreachable, so the UI
// never sees a hard error for content listing.
func FallbackPage() types.NewsPage {
	article := types.Article{
		ID:          "1",
		Title:       "Backend Connection Error - Using Mock Data",
		Description: "Could not connect to the content backend. Please check if the upstream store is running.",
		Content:     "To resolve this issue, ensure the upstream feed store is reachable at its configured URL.",
		ImageURL:    config.ListImagePlaceholder,
		Category:    "System",
		Source:      "Gateway",
		PublishedAt: time.Now(),
		ReadTime:    "1 min read",
		Featured:    true,
	}
	return types.NewsPage{
		Articles:    []types.Article{article},
		TotalCount:  1,
		HasMore:     false,
		CurrentPage: 1,
	}
}

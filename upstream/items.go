package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"newsdesk/types"
)

// ItemQuery selects a window of raw feed items from the upstream store.
type ItemQuery struct {
	Category string
	Search   string
	Skip     int
	Limit    int
}

// ListItems fetches one window of raw items from the upstream store's
// item-listing capability. No retries are performed.
func (c *Client) ListItems(ctx context.Context, q ItemQuery) ([]types.FeedItem, error) {
	params := url.Values{}
	params.Set("skip", strconv.Itoa(q.Skip))
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var items []types.FeedItem
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/rss/items?"+params.Encode(), "", nil, &items); err != nil {
		return nil, fmt.Errorf("failed to list feed items: %w", err)
	}
	return items, nil
}

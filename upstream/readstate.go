package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"newsdesk/types"
)

// ReadArticles fetches the article ids already marked read by the caller.
// The upstream status survives in the returned error (as a StatusError) so
// the public read-articles endpoint can relay 401s; the aggregator instead
// treats any failure as an empty set.
func (c *Client) ReadArticles(ctx context.Context, auth string) ([]string, error) {
	var ids []string
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/articles/read-articles", auth, nil, &ids); err != nil {
		return nil, fmt.Errorf("failed to fetch read articles: %w", err)
	}
	return ids, nil
}

// MarkRead persists one consumed (caller, article) fact upstream and returns
// the upstream acknowledgement verbatim. Marking an already-read article is
// a no-op upstream, observable as success.
func (c *Client) MarkRead(ctx context.Context, auth string, mark types.MarkReadRequest) (json.RawMessage, error) {
	var ack json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/articles/mark-read", auth, mark, &ack); err != nil {
		return nil, fmt.Errorf("failed to mark article as read: %w", err)
	}
	return ack, nil
}

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"newsdesk/types"
)

// GetNews fetches one page of aggregated articles from the gateway
func (c *Client) GetNews(ctx context.Context, page, limit int, category string) (*types.NewsPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if category != "" {
		params.Set("category", category)
	}

	var result types.NewsPage
	if err := c.doJSONRequest(ctx, http.MethodGet, "/news?"+params.Encode(), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	return &result, nil
}

// GetFeatured fetches the featured article from the gateway
func (c *Client) GetFeatured(ctx context.Context) (*types.Article, error) {
	var article types.Article
	if err := c.doJSONRequest(ctx, http.MethodGet, "/news/featured", nil, &article); err != nil {
		return nil, fmt.Errorf("failed to fetch featured article: %w", err)
	}
	return &article, nil
}

// MarkRead marks an article as read for the configured user
func (c *Client) MarkRead(ctx context.Context, article types.Article) error {
	payload := types.MarkReadRequest{
		ArticleID:    article.ID,
		ArticleTitle: article.Title,
		ArticleLink:  article.Link,
	}
	return c.doJSONRequest(ctx, http.MethodPost, "/articles/mark-read", payload, nil)
}

package api

import (
	"log"
	"net/http"
	"strconv"

	"newsdesk/config"
	"newsdesk/news"
	"newsdesk/rssfeeds"
	"newsdesk/types"

	"github.com/gin-gonic/gin"
)

// RegisterNewsRoutes registers the aggregated news endpoints.
func RegisterNewsRoutes(r *gin.Engine, svc *news.Service) {
	g := r.Group("/news")
	g.GET("", handleGetNews(svc))
	g.GET("/featured", handleGetFeatured(svc))
	g.GET("/preview", handlePreview)
}

// handleGetNews serves one filtered, paginated window of articles. Upstream
// unreachability is recovered into a mock page so the UI never sees a hard
// error for content listing.
func handleGetNews(svc *news.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := news.PageRequest{
			Category: c.Query("category"),
			Search:   c.Query("search"),
			Page:     intQuery(c, "page", config.DefaultPage),
			Limit:    intQuery(c, "limit", config.DefaultPageLimit),
		}
		if req.Category == "all" {
			req.Category = ""
		}

		page, err := svc.GetNews(c.Request.Context(), req, c.GetHeader("Authorization"))
		if err != nil {
			log.Printf("Error fetching news from upstream: %v", err)
			c.JSON(http.StatusOK, news.FallbackPage())
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// handleGetFeatured never fails: the selector falls back to a static
// placeholder article on any upstream trouble.
func handleGetFeatured(svc *news.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.GetFeatured(c.Request.Context(), c.GetHeader("Authorization")))
	}
}

// handlePreview fetches a syndication URL directly and runs its items
// through the standard transformer. Unlike the render paths this is a tool
// endpoint, so failures are reported instead of masked.
func handlePreview(c *gin.Context) {
	feedInput := c.Query("feed_url")
	if feedInput == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feed_url is required"})
		return
	}

	feedURL := rssfeeds.ResolveFeedURL(feedInput)
	count := intQuery(c, "count", rssfeeds.DefaultCount)

	items, err := rssfeeds.FetchFeed(c.Request.Context(), feedURL, count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch feed: " + err.Error()})
		return
	}

	if c.Query("extract") == "true" {
		rssfeeds.ExtractAllContent(items)
	}

	articles := make([]types.Article, 0, len(items))
	for _, item := range items {
		article, err := news.Transform(item)
		if err != nil {
			log.Printf("Skipping malformed preview item %q: %v", item.Title, err)
			continue
		}
		articles = append(articles, article)
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":   articles,
		"totalCount": len(articles),
	})
}

// intQuery parses a positive integer query parameter, falling back to def
// when absent or mangled.
func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}

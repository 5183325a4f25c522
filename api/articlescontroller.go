package api

import (
	"errors"
	"net/http"

	"newsdesk/types"
	"newsdesk/upstream"

	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes registers the read-state endpoints. Both require a
// bearer credential; unlike the news endpoints they relay upstream failures,
// since silently dropping a write would corrupt read-state.
func RegisterArticleRoutes(r *gin.Engine, store *upstream.Client) {
	g := r.Group("/articles")
	g.POST("/mark-read", handleMarkRead(store))
	g.GET("/read-articles", handleReadArticles(store))
}

// handleMarkRead persists one consumed (caller, article) fact upstream and
// relays the upstream acknowledgement verbatim.
func handleMarkRead(store *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		var mark types.MarkReadRequest
		if err := c.ShouldBindJSON(&mark); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if mark.ArticleID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "article_id is required"})
			return
		}

		ack, err := store.MarkRead(c.Request.Context(), auth, mark)
		if err != nil {
			relayUpstreamError(c, err, "failed to mark article as read")
			return
		}
		c.Data(http.StatusOK, "application/json", ack)
	}
}

// handleReadArticles returns the ids already read by the caller.
func handleReadArticles(store *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		ids, err := store.ReadArticles(c.Request.Context(), auth)
		if err != nil {
			relayUpstreamError(c, err, "failed to fetch read articles")
			return
		}
		if ids == nil {
			ids = []string{}
		}
		c.JSON(http.StatusOK, ids)
	}
}

// relayUpstreamError surfaces the upstream status (typically 401 for a
// rejected credential, so the caller can clear a stale token); transport
// failures become a 502.
func relayUpstreamError(c *gin.Context, err error, message string) {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.StatusCode, gin.H{"error": string(statusErr.Body)})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": message})
}

package api

import (
	"github.com/gin-gonic/gin"

	"newsdesk/news"
	"newsdesk/upstream"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(svc *news.Service, store *upstream.Client) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterNewsRoutes(r, svc)
	RegisterArticleRoutes(r, store)
	RegisterHealthRoutes(r)
	return r
}

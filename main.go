package main

import (
	"log"
	"net/http"
	"os"

	"newsdesk/api"
	"newsdesk/cache"
	"newsdesk/config"
	"newsdesk/news"
	"newsdesk/upstream"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	upstreamURL := os.Getenv("UPSTREAM_URL")
	if upstreamURL == "" {
		upstreamURL = config.DefaultUpstreamURL
	}
	store := upstream.NewClient(upstreamURL)

	feedCache := cache.New(os.Getenv("REDIS_URL"))
	if feedCache != nil {
		defer feedCache.Close()
		log.Println("Feed window cache enabled")
	}

	svc := news.NewService(store, feedCache)

	r := api.NewRouter(svc, store)
	log.Printf("Starting API server on %s (upstream: %s)", addr, upstreamURL)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /news")
	log.Println("  GET  /news/featured")
	log.Println("  GET  /news/preview")
	log.Println("  POST /articles/mark-read")
	log.Println("  GET  /articles/read-articles")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

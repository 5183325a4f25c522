package rssfeeds

import (
	"fmt"
	"log"
	"sync"
	"time"

	"newsdesk/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	WorkerCount      = 5
	extractorTimeout = 30 * time.Second
)

// ExtractAllContent fetches readable full text for items that came out of
// the feed without content, using a worker pool. Extraction failures leave
// the item untouched; they never fail the preview.
func ExtractAllContent(items []types.FeedItem) {
	var wg sync.WaitGroup
	indexChan := make(chan int, len(items))

	// Start worker pool
	for i := 0; i < WorkerCount; i++ {
		go func(workerID int) {
			for idx := range indexChan {
				if err := extractContent(&items[idx]); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, items[idx].Link, err)
				}
				wg.Done()
			}
		}(i)
	}

	// Queue items that need extraction
	for i := range items {
		if items[i].Content != "" || items[i].Link == "" {
			continue
		}
		wg.Add(1)
		indexChan <- i
	}

	wg.Wait()
	close(indexChan)
}

// extractContent fetches and extracts readable content for a single item
func extractContent(item *types.FeedItem) error {
	extracted, err := readability.FromURL(item.Link, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	item.Content = extracted.TextContent
	if item.Description == "" {
		item.Description = extracted.Excerpt
	}
	return nil
}

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"newsdesk/types"
	"newsdesk/upstream"
)

// fakeUpstream is a stand-in for the external feed/read-state store.
type fakeUpstream struct {
	items          []types.FeedItem
	readIDs        []string
	readStatus     int // non-zero forces that status on read-articles
	lastItemsQuery map[string]string
	itemsCalls     int
	readStateCalls int
}

func (f *fakeUpstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/rss/items", func(w http.ResponseWriter, r *http.Request) {
		f.itemsCalls++
		q := r.URL.Query()
		f.lastItemsQuery = map[string]string{
			"skip":     q.Get("skip"),
			"limit":    q.Get("limit"),
			"category": q.Get("category"),
			"search":   q.Get("search"),
		}

		skip, _ := strconv.Atoi(q.Get("skip"))
		limit, _ := strconv.Atoi(q.Get("limit"))
		window := f.items
		if skip < len(window) {
			window = window[skip:]
		} else {
			window = nil
		}
		if limit > 0 && len(window) > limit {
			window = window[:limit]
		}
		json.NewEncoder(w).Encode(window)
	})
	mux.HandleFunc("/api/v1/articles/read-articles", func(w http.ResponseWriter, r *http.Request) {
		f.readStateCalls++
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if f.readStatus != 0 {
			w.WriteHeader(f.readStatus)
			return
		}
		json.NewEncoder(w).Encode(f.readIDs)
	})
	return mux
}

func newTestService(t *testing.T, f *fakeUpstream) *Service {
	t.Helper()
	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)
	return NewService(upstream.NewClient(server.URL), nil)
}

func makeItems(n int) []types.FeedItem {
	items := make([]types.FeedItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, types.FeedItem{
			ID:      fmt.Sprintf("item-%d", i),
			Title:   fmt.Sprintf("Story %d", i),
			Link:    fmt.Sprintf("https://www.example.com/story/%d", i),
			Content: "some words for the reader",
		})
	}
	return items
}

func TestGetNewsFullPage(t *testing.T) {
	f := &fakeUpstream{items: makeItems(10)}
	svc := newTestService(t, f)

	page, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 10}, "")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(page.Articles) != 10 {
		t.Fatalf("got %d articles; want 10", len(page.Articles))
	}
	if !page.HasMore {
		t.Fatal("hasMore = false; want true for a full page")
	}
	if page.TotalCount != 10 || page.CurrentPage != 1 {
		t.Fatalf("totalCount=%d currentPage=%d", page.TotalCount, page.CurrentPage)
	}
	if f.readStateCalls != 0 {
		t.Fatalf("read-state called %d times without a credential", f.readStateCalls)
	}
}

func TestGetNewsShortPage(t *testing.T) {
	f := &fakeUpstream{items: makeItems(7)}
	svc := newTestService(t, f)

	page, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 10}, "")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(page.Articles) != 7 {
		t.Fatalf("got %d articles; want 7", len(page.Articles))
	}
	if page.HasMore {
		t.Fatal("hasMore = true at end of data; want false")
	}
}

func TestGetNewsReadFiltering(t *testing.T) {
	f := &fakeUpstream{
		items:   makeItems(40),
		readIDs: []string{"item-0", "item-1", "item-2", "item-3", "item-4"},
	}
	svc := newTestService(t, f)

	page, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 10}, "Bearer token")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}

	// 10 requested + 5 read + 20 margin
	if got := f.lastItemsQuery["limit"]; got != "35" {
		t.Fatalf("upstream fetch limit = %s; want 35", got)
	}
	if got := f.lastItemsQuery["skip"]; got != "0" {
		t.Fatalf("upstream skip = %s; want 0", got)
	}

	if len(page.Articles) != 10 {
		t.Fatalf("got %d articles; want 10", len(page.Articles))
	}
	read := map[string]bool{}
	for _, id := range f.readIDs {
		read[id] = true
	}
	for _, a := range page.Articles {
		if read[a.ID] {
			t.Fatalf("read article %s leaked into the page", a.ID)
		}
	}
}

func TestGetNewsMarkThenFilter(t *testing.T) {
	f := &fakeUpstream{items: makeItems(20)}
	svc := newTestService(t, f)

	before, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 20}, "Bearer token")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	target := before.Articles[3].ID

	// Simulate the upstream write landing, then re-request.
	f.readIDs = append(f.readIDs, target)

	after, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 20}, "Bearer token")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	for _, a := range after.Articles {
		if a.ID == target {
			t.Fatalf("article %s still present after being marked read", target)
		}
	}
	if len(after.Articles) != len(before.Articles)-1 {
		t.Fatalf("got %d articles after marking one read; want %d", len(after.Articles), len(before.Articles)-1)
	}
}

func TestGetNewsSkipsMalformedItems(t *testing.T) {
	items := makeItems(5)
	items[2].Link = "not a url"
	f := &fakeUpstream{items: items}
	svc := newTestService(t, f)

	page, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 10}, "")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(page.Articles) != 4 {
		t.Fatalf("got %d articles; want 4 (malformed item skipped)", len(page.Articles))
	}
	for _, a := range page.Articles {
		if a.ID == "item-2" {
			t.Fatal("malformed item survived the transform")
		}
	}
}

func TestGetNewsPaginationSkip(t *testing.T) {
	f := &fakeUpstream{items: makeItems(50)}
	svc := newTestService(t, f)

	page, err := svc.GetNews(context.Background(), PageRequest{Page: 3, Limit: 10}, "")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if got := f.lastItemsQuery["skip"]; got != "20" {
		t.Fatalf("upstream skip = %s; want 20 for page 3", got)
	}
	if page.CurrentPage != 3 {
		t.Fatalf("currentPage = %d; want 3", page.CurrentPage)
	}
	if page.Articles[0].ID != "item-20" {
		t.Fatalf("first article = %s; want item-20", page.Articles[0].ID)
	}
}

func TestGetNewsCategoryAndSearchForwarded(t *testing.T) {
	f := &fakeUpstream{items: makeItems(3)}
	svc := newTestService(t, f)

	if _, err := svc.GetNews(context.Background(), PageRequest{Category: "Science", Search: "rockets", Page: 1, Limit: 10}, ""); err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if f.lastItemsQuery["category"] != "Science" || f.lastItemsQuery["search"] != "rockets" {
		t.Fatalf("upstream query = %v; category/search not forwarded", f.lastItemsQuery)
	}
}

func TestGetNewsReadStateDegradesSilently(t *testing.T) {
	f := &fakeUpstream{items: makeItems(10), readStatus: http.StatusInternalServerError}
	svc := newTestService(t, f)

	page, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 10}, "Bearer token")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(page.Articles) != 10 {
		t.Fatalf("got %d articles; want 10 (read-state failure means nothing is read)", len(page.Articles))
	}
}

func TestGetNewsUpstreamUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // dead endpoint
	svc := NewService(upstream.NewClient(server.URL), nil)

	if _, err := svc.GetNews(context.Background(), PageRequest{Page: 1, Limit: 10}, ""); err == nil {
		t.Fatal("GetNews succeeded against a dead upstream; want error")
	}
}

func TestGetNewsDefaultsBadParams(t *testing.T) {
	f := &fakeUpstream{items: makeItems(5)}
	svc := newTestService(t, f)

	page, err := svc.GetNews(context.Background(), PageRequest{Page: 0, Limit: -3}, "")
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if page.CurrentPage != 1 {
		t.Fatalf("currentPage = %d; want defaulted 1", page.CurrentPage)
	}
	if got := f.lastItemsQuery["limit"]; got != "30" {
		t.Fatalf("upstream limit = %s; want 30 (default 10 + margin)", got)
	}
}

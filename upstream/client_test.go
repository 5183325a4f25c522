package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdesk/types"
)

func TestListItemsQueryEncoding(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/rss/items" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"skip":     q.Get("skip"),
			"limit":    q.Get("limit"),
			"category": q.Get("category"),
			"search":   q.Get("search"),
		}
		json.NewEncoder(w).Encode([]types.FeedItem{
			{ID: "a", Title: "A", Link: "https://example.com/a", Content: "x"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	items, err := c.ListItems(context.Background(), ItemQuery{
		Category: "Tech",
		Search:   "go & json",
		Skip:     20,
		Limit:    35,
	})
	if err != nil {
		t.Fatalf("ListItems error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("items = %+v", items)
	}
	want := map[string]string{"skip": "20", "limit": "35", "category": "Tech", "search": "go & json"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Fatalf("query %s = %q; want %q", k, gotQuery[k], v)
		}
	}
}

func TestListItemsOmitsEmptyFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Has("category") || q.Has("search") {
			t.Errorf("empty filters must be omitted, got %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]types.FeedItem{})
	}))
	defer server.Close()

	if _, err := NewClient(server.URL).ListItems(context.Background(), ItemQuery{Limit: 10}); err != nil {
		t.Fatalf("ListItems error: %v", err)
	}
}

func TestReadArticlesAuthHeaderForwarded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]string{"x", "y"})
	}))
	defer server.Close()

	ids, err := NewClient(server.URL).ReadArticles(context.Background(), "Bearer tok")
	if err != nil {
		t.Fatalf("ReadArticles error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "x" {
		t.Fatalf("ids = %v", ids)
	}
}

func TestReadArticlesStatusPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ReadArticles(context.Background(), "Bearer stale")
	if err == nil {
		t.Fatal("ReadArticles succeeded; want 401 error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %v does not carry the upstream status", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", statusErr.StatusCode)
	}
}

func TestMarkReadRelaysAck(t *testing.T) {
	ack := `{"user_id":7,"article_id":"abc12345","article_title":"T"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/articles/mark-read" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var mark types.MarkReadRequest
		if err := json.NewDecoder(r.Body).Decode(&mark); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if mark.ArticleID != "abc12345" {
			t.Errorf("article_id = %q", mark.ArticleID)
		}
		w.Write([]byte(ack))
	}))
	defer server.Close()

	got, err := NewClient(server.URL).MarkRead(context.Background(), "Bearer tok", types.MarkReadRequest{
		ArticleID:    "abc12345",
		ArticleTitle: "T",
		ArticleLink:  "https://example.com/t",
	})
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if string(got) != ack {
		t.Fatalf("ack = %s; want upstream body verbatim", got)
	}
}

func TestTransportErrorWrapsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := NewClient(server.URL).ListItems(context.Background(), ItemQuery{Limit: 1})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v; want ErrUnavailable", err)
	}
}

func TestMalformedBodyWrapsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListItems(context.Background(), ItemQuery{Limit: 1})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v; want ErrUnavailable", err)
	}
}

package scraper

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClient_Healthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, testLogger())
	assert.True(t, c.Healthy(context.Background()))
}

func TestClient_Healthy_Down(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, testLogger())
	assert.False(t, c.Healthy(context.Background()))

	server.Close()
	assert.False(t, c.Healthy(context.Background()))
}

func TestClient_ScrapeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/scrape", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://x.com/blog/post", body["url"])

		json.NewEncoder(w).Encode(ScrapeResult{
			Success:    true,
			URL:        "https://x.com/blog/post",
			Title:      "Post",
			Markdown:   "# Post\n\nBody text.",
			HTMLLength: 1000,
			LinksCount: 12,
		})
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, testLogger())
	result, err := c.ScrapeURL(context.Background(), "https://x.com/blog/post")
	require.NoError(t, err)
	assert.Equal(t, "Post", result.Title)
	assert.Contains(t, result.Markdown, "Body text.")
}

func TestClient_ScrapeURL_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ScrapeResult{Success: false, Error: "blocked"})
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, testLogger())
	_, err := c.ScrapeURL(context.Background(), "https://x.com/blog/post")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}

func TestClient_ScrapeArticles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/scrape/articles", r.URL.Path)
		json.NewEncoder(w).Encode(ArticlesResult{
			Success:   true,
			SourceURL: "https://x.com",
			Articles: []ArticleInfo{
				{URL: "https://x.com/blog/a", Title: "A"},
				{URL: "https://x.com/blog/b", Title: "B"},
			},
		})
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL}, testLogger())
	result, err := c.ScrapeArticles(context.Background(), "https://x.com", 20)
	require.NoError(t, err)
	require.Len(t, result.Articles, 2)
	assert.Equal(t, "A", result.Articles[0].Title)
}

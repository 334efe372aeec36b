// Package scraper wraps the generic scraping microservice. Pattern filtering
// of the returned article lists happens in the core, not in the service.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/domain"
)

// ScrapeResult is the /scrape response: markdown content for one page.
type ScrapeResult struct {
	Success    bool   `json:"success"`
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Markdown   string `json:"markdown,omitempty"`
	HTMLLength int    `json:"html_length"`
	LinksCount int    `json:"links_count"`
	Error      string `json:"error,omitempty"`
}

// ArticleInfo is one article discovered on a listing page.
type ArticleInfo struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Date   string `json:"date,omitempty"`
	Author string `json:"author,omitempty"`
}

// ArticlesResult is the /scrape/articles response.
type ArticlesResult struct {
	Success   bool          `json:"success"`
	SourceURL string        `json:"source_url"`
	Articles  []ArticleInfo `json:"articles"`
	Error     string        `json:"error,omitempty"`
}

// Config holds scraper client configuration.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	HealthTimeout time.Duration
}

// Client talks to the scraping microservice over HTTP.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	healthTimeout time.Duration
	logger        *slog.Logger
}

// New creates a scraper client.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	healthTimeout := cfg.HealthTimeout
	if healthTimeout == 0 {
		healthTimeout = 5 * time.Second
	}
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       cfg.BaseURL,
		healthTimeout: healthTimeout,
		logger:        logger.With("component", "scraper"),
	}
}

// Healthy probes GET /health. A failed probe means web-source syncs must
// abort with domain.ErrScraperUnavailable before touching any source state.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ScrapeURL fetches a single page as markdown.
func (c *Client) ScrapeURL(ctx context.Context, pageURL string) (*ScrapeResult, error) {
	var result ScrapeResult
	err := c.post(ctx, "/scrape", map[string]any{
		"url":     pageURL,
		"timeout": int(c.httpClient.Timeout / time.Millisecond),
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("scrape %s: %s", pageURL, result.Error)
	}
	return &result, nil
}

// ScrapeArticles fetches the article list of a site. The caller applies
// pattern filtering to the returned list.
func (c *Client) ScrapeArticles(ctx context.Context, siteURL string, maxArticles int) (*ArticlesResult, error) {
	var result ArticlesResult
	err := c.post(ctx, "/scrape/articles", map[string]any{
		"url":          siteURL,
		"max_articles": maxArticles,
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("scrape articles %s: %s", siteURL, result.Error)
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrScraperUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scraper returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

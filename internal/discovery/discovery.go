// Package discovery crawls a source homepage and collects candidate article
// links for the pattern configuration flow.
package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsdesk/internal/domain"
)

const maxLinks = 200

// Crawler fetches pages and extracts same-host links.
type Crawler struct {
	client *http.Client
	logger *slog.Logger
}

// NewCrawler wires an HTTP client; timeout defaults to 20 seconds.
func NewCrawler(client *http.Client, logger *slog.Logger) *Crawler {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Crawler{client: client, logger: logger.With("component", "discovery")}
}

// DiscoverLinks fetches pageURL and returns the unique same-host links found
// on it, in document order. Fragments and query strings are stripped so that
// the same article is not reported twice.
func (c *Crawler) DiscoverLinks(ctx context.Context, pageURL string) ([]domain.DiscoveredLink, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url %s: %w", pageURL, err)
	}

	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	links := make([]domain.DiscoveredLink, 0)
	seen := map[string]struct{}{}

	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		if len(links) >= maxLinks {
			return
		}

		href, _ := sel.Attr("href")
		resolved := resolveLink(base, href)
		if resolved == nil {
			return
		}

		key := resolved.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}

		links = append(links, domain.DiscoveredLink{
			URL:   key,
			Title: strings.TrimSpace(sel.Text()),
			Path:  resolved.Path,
		})
	})

	c.logger.Debug("discovered links", "page", pageURL, "count", len(links))
	return links, nil
}

func (c *Crawler) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "newsdesk/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// resolveLink turns an anchor href into an absolute same-host URL, or nil
// when the link points elsewhere or is not a page link at all.
func resolveLink(base *url.URL, href string) *url.URL {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") {
		return nil
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return nil
	}

	resolved := base.ResolveReference(parsed)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return nil
	}
	if !strings.EqualFold(resolved.Host, base.Host) {
		return nil
	}
	if resolved.Path == "" || resolved.Path == "/" {
		return nil
	}

	resolved.Fragment = ""
	resolved.RawQuery = ""
	return resolved
}

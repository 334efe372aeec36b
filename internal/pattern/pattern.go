// Package pattern infers URL path-prefix patterns from a human-curated sample
// of article URLs, and matches candidate URLs against configured patterns.
// It is pure: no I/O, deterministic output.
package pattern

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"newsdesk/internal/domain"
)

// ExtractedPattern is one inferred path prefix with its coverage stats.
type ExtractedPattern struct {
	Pattern          string   `json:"pattern"`
	MatchCount       int      `json:"matchCount"`
	PotentialMatches int      `json:"potentialMatches"`
	SampleURLs       []string `json:"sampleUrls"`
	Depth            int      `json:"depth"`
}

// SourceConfig is the generic-web source configuration persisted once the
// user confirms a pattern subset.
type SourceConfig struct {
	IncludePatterns  []string  `json:"includePatterns"`
	ExcludePatterns  []string  `json:"excludePatterns,omitempty"`
	SampleURLs       []string  `json:"sampleUrls,omitempty"`
	PatternVersion   int       `json:"patternVersion"`
	LastConfiguredAt time.Time `json:"lastConfiguredAt"`
}

// DefaultExcludePatterns lists well-known non-article path prefixes offered
// to the user during onboarding.
var DefaultExcludePatterns = []string{
	"/about",
	"/contact",
	"/terms",
	"/privacy",
	"/tag/",
	"/tags/",
	"/category/",
	"/categories/",
	"/author/",
	"/search",
	"/login",
	"/register",
	"/rss",
	"/feed",
	"/sitemap",
}

var (
	yearSegment = regexp.MustCompile(`^\d{4}$`)
	dateSegment = regexp.MustCompile(`^\d{8}$`)
)

const maxSampleURLs = 3

// ExtractPatterns infers a minimal covering set of path-prefix patterns from
// the user-selected article URLs. discovered, when non-empty, is the full set
// of URLs found on the site and is used to compute PotentialMatches, the
// number of URLs a pattern would pull in production.
//
// Candidates are generated at every path depth, skipping date-like segments
// (4-digit years, 8-digit dates) and post slugs (more than two hyphens beyond
// depth 1). Candidates are then kept shortest-first, only when they cover a
// selected URL no shorter kept pattern already covers. Output is sorted by
// MatchCount descending.
func ExtractPatterns(selected []string, discovered []string) []ExtractedPattern {
	if len(selected) == 0 {
		return nil
	}

	type parsedURL struct {
		url      string
		path     string
		segments []string
	}

	parsed := make([]parsedURL, 0, len(selected))
	for _, raw := range selected {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, parsedURL{
			url:      raw,
			path:     u.Path,
			segments: splitPath(u.Path),
		})
	}

	// pattern -> selected URLs that generated it, in input order.
	candidates := make(map[string][]string)
	var order []string

	for _, p := range parsed {
		for depth := 1; depth <= len(p.segments); depth++ {
			last := p.segments[depth-1]
			if yearSegment.MatchString(last) || dateSegment.MatchString(last) {
				continue
			}
			if depth > 1 && strings.Count(last, "-") > 2 {
				continue
			}

			candidate := "/" + strings.Join(p.segments[:depth], "/") + "/"
			if _, seen := candidates[candidate]; !seen {
				order = append(order, candidate)
			}
			candidates[candidate] = append(candidates[candidate], p.url)
		}
	}

	// Shortest (least specific) first; insertion order breaks length ties so
	// the result is deterministic.
	rank := make(map[string]int, len(order))
	for i, c := range order {
		rank[c] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if len(order[i]) != len(order[j]) {
			return len(order[i]) < len(order[j])
		}
		return rank[order[i]] < rank[order[j]]
	})

	covered := make(map[string]bool)
	var out []ExtractedPattern

	for _, candidate := range order {
		var fresh []string
		for _, u := range candidates[candidate] {
			if !covered[u] {
				fresh = append(fresh, u)
			}
		}
		if len(fresh) == 0 {
			continue
		}

		matchCount := 0
		for _, p := range parsed {
			if underPrefix(p.path, candidate) {
				matchCount++
			}
		}

		potential := matchCount
		if discovered != nil {
			potential = 0
			for _, raw := range discovered {
				u, err := url.Parse(raw)
				if err != nil {
					continue
				}
				if underPrefix(u.Path, candidate) {
					potential++
				}
			}
		}

		samples := fresh
		if len(samples) > maxSampleURLs {
			samples = samples[:maxSampleURLs]
		}

		out = append(out, ExtractedPattern{
			Pattern:          candidate,
			MatchCount:       matchCount,
			PotentialMatches: potential,
			SampleURLs:       samples,
			Depth:            len(splitPath(candidate)),
		})

		for _, u := range fresh {
			covered[u] = true
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchCount > out[j].MatchCount
	})
	return out
}

// Matches reports whether a URL passes the include/exclude pattern filter.
// A URL is accepted iff its path falls under at least one include pattern
// (an empty include list accepts everything) and under no exclude pattern;
// exclude wins regardless of include. Unparseable URLs never match.
func Matches(rawURL string, include, exclude []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := u.Path

	for _, p := range exclude {
		if underPrefix(path, p) {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for _, p := range include {
		if underPrefix(path, p) {
			return true
		}
	}
	return false
}

// underPrefix reports whether path falls under pattern at a segment
// boundary, so "/tag/" covers "/tag" and "/tag/go" but not "/tagline".
// A bare "/" or empty pattern covers every path.
func underPrefix(path, pattern string) bool {
	prefix := strings.TrimSuffix(pattern, "/")
	if prefix == "" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// FilterLinks keeps the discovered links whose URL passes the pattern filter.
func FilterLinks(links []domain.DiscoveredLink, include, exclude []string) []domain.DiscoveredLink {
	var out []domain.DiscoveredLink
	for _, link := range links {
		if Matches(link.URL, include, exclude) {
			out = append(out, link)
		}
	}
	return out
}

// SuggestExcludePatterns proposes well-known boilerplate patterns found among
// the discovered links, matched case-insensitively, deduplicated, in
// discovery order.
func SuggestExcludePatterns(links []domain.DiscoveredLink) []string {
	seen := make(map[string]bool)
	var out []string

	for _, link := range links {
		path := strings.ToLower(link.Path)
		for _, exclude := range DefaultExcludePatterns {
			if seen[exclude] {
				continue
			}
			if strings.Contains(path, exclude) {
				seen[exclude] = true
				out = append(out, exclude)
			}
		}
	}
	return out
}

// NewSourceConfig assembles the persisted config from a confirmed pattern
// subset.
func NewSourceConfig(include, sampleURLs, exclude []string) SourceConfig {
	if exclude == nil {
		exclude = DefaultExcludePatterns
	}
	return SourceConfig{
		IncludePatterns:  include,
		ExcludePatterns:  exclude,
		SampleURLs:       sampleURLs,
		PatternVersion:   1,
		LastConfiguredAt: time.Now().UTC(),
	}
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

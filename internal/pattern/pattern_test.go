package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
)

func patternsOf(extracted []ExtractedPattern) []string {
	out := make([]string, 0, len(extracted))
	for _, p := range extracted {
		out = append(out, p.Pattern)
	}
	return out
}

func TestExtractPatterns_Empty(t *testing.T) {
	assert.Nil(t, ExtractPatterns(nil, nil))
	assert.Nil(t, ExtractPatterns([]string{}, nil))
}

func TestExtractPatterns_SingleSection(t *testing.T) {
	got := ExtractPatterns([]string{
		"https://x.com/blog/a",
		"https://x.com/blog/b",
	}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "/blog/", got[0].Pattern)
	assert.Equal(t, 2, got[0].MatchCount)
	assert.Equal(t, 1, got[0].Depth)
	assert.Len(t, got[0].SampleURLs, 2)
}

func TestExtractPatterns_DeeperPatternsRedundant(t *testing.T) {
	got := ExtractPatterns([]string{"https://x.com/a/b/c/slug"}, nil)

	patterns := patternsOf(got)
	assert.Equal(t, []string{"/a/"}, patterns)
}

func TestExtractPatterns_DistinctSections(t *testing.T) {
	got := ExtractPatterns([]string{
		"https://x.com/a/b/post",
		"https://x.com/x/y/post",
	}, nil)

	patterns := patternsOf(got)
	assert.Contains(t, patterns, "/a/")
	assert.Contains(t, patterns, "/x/")
	assert.NotContains(t, patterns, "/a/b/")
	assert.NotContains(t, patterns, "/x/y/")
}

func TestExtractPatterns_SkipsDateSegments(t *testing.T) {
	got := ExtractPatterns([]string{
		"https://x.com/blog/2024/my-post",
		"https://x.com/blog/20240115/other-post",
	}, nil)

	patterns := patternsOf(got)
	assert.Contains(t, patterns, "/blog/")
	assert.NotContains(t, patterns, "/blog/2024/")
	assert.NotContains(t, patterns, "/blog/20240115/")
}

func TestExtractPatterns_SkipsSlugSegmentsBeyondDepthOne(t *testing.T) {
	got := ExtractPatterns([]string{
		"https://x.com/news/some-very-long-article-slug",
	}, nil)

	patterns := patternsOf(got)
	assert.Contains(t, patterns, "/news/")
	assert.NotContains(t, patterns, "/news/some-very-long-article-slug/")
}

func TestExtractPatterns_PotentialMatches(t *testing.T) {
	selected := []string{"https://x.com/blog/a"}
	discovered := []string{
		"https://x.com/blog/a",
		"https://x.com/blog/b",
		"https://x.com/blog/c",
		"https://x.com/about",
	}

	got := ExtractPatterns(selected, discovered)
	require.Len(t, got, 1)
	assert.Equal(t, "/blog/", got[0].Pattern)
	assert.Equal(t, 1, got[0].MatchCount)
	assert.Equal(t, 3, got[0].PotentialMatches)
}

func TestExtractPatterns_SortedByMatchCount(t *testing.T) {
	got := ExtractPatterns([]string{
		"https://x.com/analysis/a",
		"https://x.com/analysis/b",
		"https://x.com/analysis/c",
		"https://x.com/opinion/a",
	}, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "/analysis/", got[0].Pattern)
	assert.Equal(t, 3, got[0].MatchCount)
	assert.Equal(t, "/opinion/", got[1].Pattern)
}

func TestExtractPatterns_SampleURLsCapped(t *testing.T) {
	got := ExtractPatterns([]string{
		"https://x.com/blog/a",
		"https://x.com/blog/b",
		"https://x.com/blog/c",
		"https://x.com/blog/d",
		"https://x.com/blog/e",
	}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].MatchCount)
	assert.Len(t, got[0].SampleURLs, 3)
}

func TestExtractPatterns_NoRedundantPrefixPairs(t *testing.T) {
	// Coverage minimality: no returned pattern may be a strict prefix of
	// another when the shorter one already covers everything.
	urls := []string{
		"https://x.com/blog/tech/post-one",
		"https://x.com/blog/tech/post-two",
		"https://x.com/blog/life/post-three",
	}
	got := ExtractPatterns(urls, nil)
	patterns := patternsOf(got)

	for i, a := range patterns {
		for j, b := range patterns {
			if i == j {
				continue
			}
			assert.Falsef(t, strings.HasPrefix(b, a),
				"%q is redundant given shorter pattern %q", b, a)
		}
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		include []string
		exclude []string
		want    bool
	}{
		{"include hit", "https://x.com/blog/post", []string{"/blog/"}, nil, true},
		{"include miss", "https://x.com/news/post", []string{"/blog/"}, nil, false},
		{"no include accepts", "https://x.com/anything", nil, nil, true},
		{"exclude wins over include", "https://x.com/blog/post", []string{"/blog/"}, []string{"/blog/"}, false},
		{"exclude without include", "https://x.com/tag/go", nil, []string{"/tag/"}, false},
		{"exclude other path", "https://x.com/blog/post", []string{"/blog/"}, []string{"/tag/"}, true},
		{"unparseable url", "http://%zz/blog/post", []string{"/blog/"}, nil, false},
		{"bare segment matches", "https://x.com/blog", []string{"/blog/"}, nil, true},
		{"exclude stops at segment boundary", "https://x.com/tagline", nil, []string{"/tag/"}, true},
		{"include stops at segment boundary", "https://x.com/newsletter/a", []string{"/news/"}, nil, false},
		{"root exclude rejects everything", "https://x.com/blog/post", []string{"/blog/"}, []string{"/"}, false},
		{"empty exclude pattern rejects everything", "https://x.com/blog/post", []string{"/blog/"}, []string{""}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Matches(tc.url, tc.include, tc.exclude))
		})
	}
}

func TestFilterLinks(t *testing.T) {
	links := []domain.DiscoveredLink{
		{URL: "https://x.com/blog/a", Path: "/blog/a"},
		{URL: "https://x.com/about", Path: "/about"},
		{URL: "https://x.com/blog/b", Path: "/blog/b"},
	}

	got := FilterLinks(links, []string{"/blog/"}, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "https://x.com/blog/a", got[0].URL)
	assert.Equal(t, "https://x.com/blog/b", got[1].URL)
}

func TestSuggestExcludePatterns(t *testing.T) {
	links := []domain.DiscoveredLink{
		{URL: "https://x.com/About", Path: "/About"},
		{URL: "https://x.com/blog/a", Path: "/blog/a"},
		{URL: "https://x.com/tag/go", Path: "/tag/go"},
		{URL: "https://x.com/about-us", Path: "/about-us"},
	}

	got := SuggestExcludePatterns(links)
	assert.Equal(t, []string{"/about", "/tag/"}, got)
}

func TestNewSourceConfig_DefaultsExcludes(t *testing.T) {
	cfg := NewSourceConfig([]string{"/blog/"}, []string{"https://x.com/blog/a"}, nil)

	assert.Equal(t, []string{"/blog/"}, cfg.IncludePatterns)
	assert.Equal(t, DefaultExcludePatterns, cfg.ExcludePatterns)
	assert.Equal(t, 1, cfg.PatternVersion)
	assert.False(t, cfg.LastConfiguredAt.IsZero())
}

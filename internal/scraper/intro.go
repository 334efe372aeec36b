package scraper

import (
	"regexp"
	"strings"
)

// introBlacklist filters out social widgets, sharing buttons and other
// boilerplate paragraphs when extracting an intro.
var introBlacklist = []string{
	"thanks for sharing",
	"share on",
	"share this",
	"follow us",
	"subscribe",
	"click here",
	"read more",
	"sign up",
	"join our",
	"newsletter",
	"get updates",
	"skip to content",
	"skip to main",
	"cookie",
	"privacy policy",
	"terms of service",
}

var (
	mdHeader   = regexp.MustCompile(`(?m)^#+\s+.+$`)
	mdImage    = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLink     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdBold     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic   = regexp.MustCompile(`\*([^*]+)\*`)
	mdBoldU    = regexp.MustCompile(`__([^_]+)__`)
	mdItalicU  = regexp.MustCompile(`_([^_]+)_`)
	paragraphs = regexp.MustCompile(`\n\n+`)
	sentences  = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

const (
	minParagraphLen = 50
	maxIntroLen     = 300
)

// ExtractIntro derives a short two-sentence intro from markdown content.
// It is the fallback when text generation is unavailable: first meaningful
// paragraph, boilerplate filtered, trimmed to two sentences.
func ExtractIntro(markdown string) string {
	if markdown == "" {
		return ""
	}

	text := mdHeader.ReplaceAllString(markdown, "")
	text = mdImage.ReplaceAllString(text, "")
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdBold.ReplaceAllString(text, "$1")
	text = mdItalic.ReplaceAllString(text, "$1")
	text = mdBoldU.ReplaceAllString(text, "$1")
	text = mdItalicU.ReplaceAllString(text, "$1")

	var first string
	for _, p := range paragraphs.Split(text, -1) {
		p = strings.TrimSpace(p)
		if len(p) <= minParagraphLen {
			continue
		}
		if containsBlacklisted(p) {
			continue
		}
		first = p
		break
	}
	if first == "" {
		return ""
	}

	parts := sentences.FindAllString(first, -1)
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0] + parts[1])
	}
	if len(first) > maxIntroLen {
		return first[:maxIntroLen]
	}
	return first
}

func containsBlacklisted(paragraph string) bool {
	lower := strings.ToLower(paragraph)
	for _, phrase := range introBlacklist {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

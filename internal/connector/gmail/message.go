package gmail

import (
	"encoding/base64"
	"regexp"
	"strings"
	"time"

	gmailapi "google.golang.org/api/gmail/v1"

	"newsdesk/internal/domain"
)

const mailURLPrefix = "https://mail.google.com/mail/u/0/#inbox/"

var htmlTagExpr = regexp.MustCompile(`<[^>]*>`)

// messageToItem normalizes a Gmail message into a connector item. The item
// URL points back at the thread in the Gmail web UI.
func messageToItem(msg *gmailapi.Message) domain.ConnectorItem {
	item := domain.ConnectorItem{
		ExternalID: msg.Id,
		URL:        mailURLPrefix + msg.ThreadId,
	}

	if msg.Payload != nil {
		item.Title = header(msg.Payload, "Subject")
		item.Author = parseFromHeader(header(msg.Payload, "From"))
		item.Content = extractBody(msg.Payload)
	}
	if item.Title == "" {
		item.Title = "(no subject)"
	}
	if msg.InternalDate > 0 {
		ts := time.UnixMilli(msg.InternalDate).UTC()
		item.PublishedAt = &ts
	}
	if item.Content == "" && msg.Snippet != "" {
		item.Content = msg.Snippet
	}

	return item
}

func header(payload *gmailapi.MessagePart, name string) string {
	for _, h := range payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// parseFromHeader extracts the display name from `Name <addr>`, falling back
// to the bare address.
func parseFromHeader(from string) string {
	if idx := strings.Index(from, "<"); idx > 0 {
		name := strings.TrimSpace(from[:idx])
		name = strings.Trim(name, `"`)
		if name != "" {
			return name
		}
	}
	return strings.Trim(strings.TrimSpace(from), "<>")
}

// extractBody walks the MIME tree and returns the first text/plain part,
// falling back to tag-stripped text/html.
func extractBody(payload *gmailapi.MessagePart) string {
	if plain := findPart(payload, "text/plain"); plain != "" {
		return plain
	}
	if html := findPart(payload, "text/html"); html != "" {
		return strings.TrimSpace(htmlTagExpr.ReplaceAllString(html, " "))
	}
	return ""
}

func findPart(part *gmailapi.MessagePart, mimeType string) string {
	if part == nil {
		return ""
	}
	if strings.HasPrefix(part.MimeType, mimeType) && part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}
	for _, child := range part.Parts {
		if body := findPart(child, mimeType); body != "" {
			return body
		}
	}
	return ""
}

// decodeBody handles both padded and raw base64url, which Gmail mixes.
func decodeBody(data string) string {
	if decoded, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	return ""
}

package gmail

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"newsdesk/internal/domain"
)

// SenderInfo summarizes one newsletter sender found in a mailbox.
type SenderInfo struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	MessageCount int    `json:"messageCount"`
	Frequency    string `json:"frequency"`
}

const (
	frequencyDaily      = "daily"
	frequencyWeekly     = "weekly"
	frequencyOccasional = "occasional"

	senderScanWindow = "30d"
	senderScanLimit  = 500
)

// ListSenders scans the last 30 days of mail and aggregates senders by
// address, most frequent first. It backs the sender-picker in the source
// configuration flow.
func (c *Connector) ListSenders(ctx context.Context, src *domain.Source) ([]SenderInfo, error) {
	return c.scanSenders(ctx, src, "newer_than:"+senderScanWindow)
}

// SearchSender looks for messages from addresses matching the query.
func (c *Connector) SearchSender(ctx context.Context, src *domain.Source, query string) ([]SenderInfo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty sender query", domain.ErrInvalidConfig)
	}
	return c.scanSenders(ctx, src, fmt.Sprintf("from:%s newer_than:%s", query, senderScanWindow))
}

func (c *Connector) scanSenders(ctx context.Context, src *domain.Source, query string) ([]SenderInfo, error) {
	svc, err := c.serviceForSource(ctx, src)
	if err != nil {
		return nil, err
	}

	counts := map[string]*SenderInfo{}
	scanned := 0
	pageToken := ""
	for scanned < senderScanLimit {
		call := svc.Users.Messages.List("me").Q(query).MaxResults(100).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return nil, classifyErr(err)
		}

		for _, ref := range page.Messages {
			msg, err := svc.Users.Messages.Get("me", ref.Id).
				Format("metadata").MetadataHeaders("From").Context(ctx).Do()
			if err != nil {
				continue
			}
			scanned++

			from := header(msg.Payload, "From")
			email := extractAddress(from)
			if email == "" {
				continue
			}
			info, ok := counts[email]
			if !ok {
				info = &SenderInfo{Email: email, Name: parseFromHeader(from)}
				counts[email] = info
			}
			info.MessageCount++
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	senders := make([]SenderInfo, 0, len(counts))
	for _, info := range counts {
		info.Frequency = classifyFrequency(info.MessageCount)
		senders = append(senders, *info)
	}
	sort.Slice(senders, func(i, j int) bool {
		if senders[i].MessageCount != senders[j].MessageCount {
			return senders[i].MessageCount > senders[j].MessageCount
		}
		return senders[i].Email < senders[j].Email
	})
	return senders, nil
}

// classifyFrequency buckets a 30-day message count. 25+ reads as daily,
// 4+ as weekly.
func classifyFrequency(count int) string {
	switch {
	case count >= 25:
		return frequencyDaily
	case count >= 4:
		return frequencyWeekly
	default:
		return frequencyOccasional
	}
}

// extractAddress pulls the bare address out of `Name <addr>`.
func extractAddress(from string) string {
	if start := strings.Index(from, "<"); start >= 0 {
		if end := strings.Index(from[start:], ">"); end > 0 {
			return strings.ToLower(strings.TrimSpace(from[start+1 : start+end]))
		}
	}
	from = strings.TrimSpace(from)
	if strings.Contains(from, "@") {
		return strings.ToLower(from)
	}
	return ""
}

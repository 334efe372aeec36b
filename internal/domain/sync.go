package domain

import "time"

// SyncStats holds the outcome of one source's sync.
type SyncStats struct {
	SourceID string
	Fetched  int
	New      int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// BulkStats aggregates counters across one bulk run.
type BulkStats struct {
	Sources  int
	New      int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// ProgressEventType enumerates the events emitted by the bulk coordinator.
type ProgressEventType string

const (
	EventTypeStart        ProgressEventType = "start"
	EventTypeSourceStart  ProgressEventType = "source_start"
	EventTypeArticleCheck ProgressEventType = "article_check"
	EventTypeArticleNew   ProgressEventType = "article_new"
	EventTypeArticleSkip  ProgressEventType = "article_skip"
	EventTypeArticleError ProgressEventType = "article_error"
	EventTypeSourceDone   ProgressEventType = "source_done"
	EventTypeDone         ProgressEventType = "done"
	EventTypeError        ProgressEventType = "error"
)

// ProgressEvent is one step of a bulk sync, serialized as newline-delimited
// JSON for consumers. Each event carries enough identifying fields to
// reconstruct progress without querying the database.
type ProgressEvent struct {
	Type          ProgressEventType `json:"type"`
	SourceID      string            `json:"sourceId,omitempty"`
	SourceName    string            `json:"sourceName,omitempty"`
	SourceIndex   int               `json:"sourceIndex,omitempty"`
	TotalSources  int               `json:"totalSources,omitempty"`
	ArticleURL    string            `json:"articleUrl,omitempty"`
	ArticleTitle  string            `json:"articleTitle,omitempty"`
	ArticleIndex  int               `json:"articleIndex,omitempty"`
	TotalArticles int               `json:"totalArticles,omitempty"`
	NewCount      int               `json:"newCount,omitempty"`
	SkipCount     int               `json:"skipCount,omitempty"`
	ErrorCount    int               `json:"errorCount,omitempty"`
	Message       string            `json:"message,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// ProgressSink receives bulk-sync progress events. A nil sink is allowed and
// drops events.
type ProgressSink func(ProgressEvent)

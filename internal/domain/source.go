package domain

import (
	"encoding/json"
	"time"
)

// SourceKind identifies how a source is ingested.
type SourceKind string

const (
	KindGenericWeb SourceKind = "GENERIC_WEB"
	KindGmail      SourceKind = "GMAIL"
	KindLinkedIn   SourceKind = "LINKEDIN"
	KindTwitter    SourceKind = "TWITTER"
)

// ConnectorKinds lists the kinds served by the connector pipeline rather
// than the generic scraper.
var ConnectorKinds = map[SourceKind]bool{
	KindGmail:    true,
	KindLinkedIn: true,
	KindTwitter:  true,
}

// IsConnector reports whether the kind syncs through a platform connector.
func (k SourceKind) IsConnector() bool {
	return ConnectorKinds[k]
}

// Source is a configured ingestion endpoint owned by one user.
type Source struct {
	ID     string     `db:"id"`
	UserID string     `db:"user_id"`
	Kind   SourceKind `db:"kind"`
	Name   string     `db:"name"`
	URL    string     `db:"url"`

	// Credentials is the encrypted blob produced by the credential codec.
	// Empty means the source is disconnected.
	Credentials string `db:"credentials"`

	// Config is kind-specific; each connector parses and validates its own
	// shape, the generic web path uses pattern.SourceConfig.
	Config json.RawMessage `db:"config"`

	Status        SourceStatus `db:"status"`
	IsActive      bool         `db:"is_active"`
	LastSyncAt    *time.Time   `db:"last_sync_at"`
	LastSyncError *string      `db:"last_sync_error"`

	// SyncCursor is the last-seen external id, in the platform's own
	// ordering. Empty until the first successful connector sync.
	SyncCursor string `db:"sync_cursor"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SourcePatch carries the mutable sync-owned fields of a source. Nil fields
// are left untouched by the store.
type SourcePatch struct {
	Status        *SourceStatus
	Credentials   *string
	LastSyncAt    *time.Time
	LastSyncError *string
	SyncCursor    *string
}

// ConnectorItem is a normalized unit of ingested content. It is never
// persisted directly; the orchestrator turns new items into Articles.
type ConnectorItem struct {
	ExternalID  string
	Title       string
	Content     string
	URL         string
	Author      string
	PublishedAt *time.Time
}

// AuthResult is the outcome of a successful connector authentication.
// Credentials, when set, is the re-encrypted blob to persist (platforms that
// issue a session token additive to the raw login return it here).
type AuthResult struct {
	ProfileName string
	Credentials string
}

// ConnectionStatus is a lightweight connection-health snapshot.
type ConnectionStatus struct {
	Status      SourceStatus
	ProfileName string
	LastSyncAt  *time.Time
	Error       string
}

// SyncPhase enumerates the coarse stages a connector fetch moves through.
type SyncPhase string

const (
	PhaseSenders    SyncPhase = "senders"
	PhaseMessages   SyncPhase = "messages"
	PhaseProcessing SyncPhase = "processing"
)

// SyncProgress is reported by connectors during fetchItems so callers can
// stream status without polling connector internals.
type SyncProgress struct {
	Phase   SyncPhase
	Current int
	Total   int
	Label   string
}

// DiscoveredLink is produced during interactive source configuration and
// consumed only by the pattern inference engine. Never persisted.
type DiscoveredLink struct {
	URL   string
	Title string
	Path  string
}

package domain

import "errors"

// Error taxonomy for the ingestion core. Connectors and clients wrap these so
// the orchestrator can classify failures with errors.Is without knowing
// platform specifics.
var (
	// ErrAuthExpired means the platform rejected stored credentials. The
	// source resolves to EXPIRED and requires user re-authentication.
	ErrAuthExpired = errors.New("stored credentials rejected by platform")

	// ErrAuthFailed means an initial authenticate call failed. Surfaced to
	// the caller; source state is untouched.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotConnected means a sync was requested for a source without
	// credentials.
	ErrNotConnected = errors.New("source is not connected")

	// ErrSyncInProgress means a sync was requested while one is already
	// running for the same source. Rejected, never queued.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrInvalidConfig means a config payload failed structural validation.
	ErrInvalidConfig = errors.New("invalid source config")

	// ErrScraperUnavailable means the scraping microservice health check
	// failed. Web-source syncs abort before touching any source state.
	ErrScraperUnavailable = errors.New("scraping service unavailable")

	// ErrSourceNotFound is returned by stores when a source id is unknown.
	ErrSourceNotFound = errors.New("source not found")
)

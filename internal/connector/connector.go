// Package connector defines the contract every platform integration
// (Gmail, LinkedIn, X/Twitter) implements, plus the registry that maps
// source kinds to implementations.
package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"newsdesk/internal/domain"
)

// ProgressFunc receives coarse sync progress updates. Implementations call
// it from the goroutine running the fetch; a nil func is valid and ignored.
type ProgressFunc func(progress domain.SyncProgress)

// Connector is a platform integration. Implementations are stateless with
// respect to individual sources: everything per-source travels through the
// arguments, so one instance serves all sources of its kind.
type Connector interface {
	// Kind reports which source kind this connector serves.
	Kind() domain.SourceKind

	// Authenticate exchanges raw platform credentials for a profile name
	// and the credential blob to persist. It returns domain.ErrAuthFailed
	// when the platform rejects the credentials.
	Authenticate(ctx context.Context, raw json.RawMessage) (domain.AuthResult, error)

	// FetchItems returns items newer than the source's sync cursor, oldest
	// first where the platform allows it. It returns domain.ErrAuthExpired
	// when stored credentials are no longer valid. Implementations may
	// re-authenticate from stored login material when no session is cached,
	// refreshing src.Credentials in place; the caller persists the updated
	// blob.
	FetchItems(ctx context.Context, src *domain.Source, progress ProgressFunc) ([]domain.ConnectorItem, error)

	// ValidateConfig checks a source configuration blob before it is saved,
	// wrapping domain.ErrInvalidConfig on failure.
	ValidateConfig(raw json.RawMessage) error

	// ConnectionStatus probes whether the stored credentials still work.
	ConnectionStatus(ctx context.Context, src *domain.Source) (domain.ConnectionStatus, error)

	// Disconnect revokes or tears down platform-side session state.
	// Platform failures are not fatal; the source is disconnected locally
	// regardless.
	Disconnect(ctx context.Context, src *domain.Source) error

	// CompareIDs orders two external item ids in the platform's native
	// ordering. It returns a negative value when a is older than b, zero
	// when equal, positive when newer.
	CompareIDs(a, b string) int
}

// Factory builds a connector. The registry calls it at most once per kind.
type Factory func() Connector

// Registry maps source kinds to connector implementations. Construction is
// lazy: a factory runs on first Resolve of its kind and the instance is
// cached for all later calls.
type Registry struct {
	mu        sync.Mutex
	factories map[domain.SourceKind]Factory
	instances map[domain.SourceKind]Connector
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: map[domain.SourceKind]Factory{},
		instances: map[domain.SourceKind]Connector{},
	}
}

// Register adds or replaces the factory for a kind. Replacing a factory
// drops any cached instance of that kind.
func (r *Registry) Register(kind domain.SourceKind, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
	delete(r.instances, kind)
}

// Resolve returns the connector for a kind, building it on first use.
func (r *Registry) Resolve(kind domain.SourceKind) (Connector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.instances[kind]; ok {
		return c, nil
	}
	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("no connector registered for kind %s", kind)
	}
	c := f()
	r.instances[kind] = c
	return c, nil
}

// Kinds lists the registered source kinds.
func (r *Registry) Kinds() []domain.SourceKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]domain.SourceKind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	return kinds
}

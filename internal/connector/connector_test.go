package connector

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
)

type stubConnector struct {
	kind domain.SourceKind
}

func (s *stubConnector) Kind() domain.SourceKind { return s.kind }

func (s *stubConnector) Authenticate(context.Context, json.RawMessage) (domain.AuthResult, error) {
	return domain.AuthResult{}, nil
}

func (s *stubConnector) FetchItems(context.Context, *domain.Source, ProgressFunc) ([]domain.ConnectorItem, error) {
	return nil, nil
}

func (s *stubConnector) ValidateConfig(json.RawMessage) error { return nil }

func (s *stubConnector) ConnectionStatus(context.Context, *domain.Source) (domain.ConnectionStatus, error) {
	return domain.ConnectionStatus{}, nil
}

func (s *stubConnector) Disconnect(context.Context, *domain.Source) error { return nil }

func (s *stubConnector) CompareIDs(a, b string) int { return 0 }

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry()
	built := 0
	registry.Register(domain.KindGmail, func() Connector {
		built++
		return &stubConnector{kind: domain.KindGmail}
	})

	first, err := registry.Resolve(domain.KindGmail)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Lazy: one instance per kind, built on first use.
	second, err := registry.Resolve(domain.KindGmail)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, built)
}

func TestRegistryResolveUnknown(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Resolve(domain.KindTwitter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TWITTER")
}

func TestRegistryReplace(t *testing.T) {
	registry := NewRegistry()
	first := &stubConnector{kind: domain.KindLinkedIn}
	second := &stubConnector{kind: domain.KindLinkedIn}
	registry.Register(domain.KindLinkedIn, func() Connector { return first })

	resolved, err := registry.Resolve(domain.KindLinkedIn)
	require.NoError(t, err)
	assert.Same(t, first, resolved)

	// Replacing the factory drops the cached instance.
	registry.Register(domain.KindLinkedIn, func() Connector { return second })
	resolved, err = registry.Resolve(domain.KindLinkedIn)
	require.NoError(t, err)
	assert.Same(t, second, resolved)
}

func TestRegistryKinds(t *testing.T) {
	registry := NewRegistry()
	registry.Register(domain.KindGmail, func() Connector {
		return &stubConnector{kind: domain.KindGmail}
	})
	registry.Register(domain.KindTwitter, func() Connector {
		return &stubConnector{kind: domain.KindTwitter}
	})

	assert.ElementsMatch(t, []domain.SourceKind{domain.KindGmail, domain.KindTwitter}, registry.Kinds())
}

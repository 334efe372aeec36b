package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"newsdesk/internal/domain"
	"newsdesk/internal/pattern"
)

// SourceService handles source lifecycle operations: connecting platform
// credentials, probing connection health, disconnecting, and building the
// URL pattern configuration for generic web sources.
type SourceService struct {
	sources    SourceStore
	connectors Connectors
	discoverer LinkDiscoverer
	logger     *slog.Logger
}

func NewSourceService(sources SourceStore, connectors Connectors, discoverer LinkDiscoverer, logger *slog.Logger) *SourceService {
	return &SourceService{
		sources:    sources,
		connectors: connectors,
		discoverer: discoverer,
		logger:     logger.With("component", "sources"),
	}
}

// Connect authenticates a connector source and persists the encrypted
// credentials. The raw payload is platform-specific and never stored as-is.
func (s *SourceService) Connect(ctx context.Context, sourceID string, raw json.RawMessage) (string, error) {
	src, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return "", fmt.Errorf("load source: %w", err)
	}
	if !src.Kind.IsConnector() {
		return "", fmt.Errorf("%w: kind %s does not authenticate", domain.ErrInvalidConfig, src.Kind)
	}

	conn, err := s.connectors.Resolve(src.Kind)
	if err != nil {
		return "", err
	}

	result, err := conn.Authenticate(ctx, raw)
	if err != nil {
		return "", err
	}

	status := domain.Transition(src.Status, domain.EventAuthSuccess)
	patch := domain.SourcePatch{
		Status:        &status,
		Credentials:   &result.Credentials,
		LastSyncError: nilString(),
	}
	if err := s.sources.Update(ctx, src.ID, patch); err != nil {
		return "", fmt.Errorf("store credentials: %w", err)
	}

	s.logger.Info("source connected", "source_id", src.ID, "kind", src.Kind, "profile", result.ProfileName)
	return result.ProfileName, nil
}

// Disconnect revokes platform-side state where possible and always clears
// local credentials and the sync cursor.
func (s *SourceService) Disconnect(ctx context.Context, sourceID string) error {
	src, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	if src.Kind.IsConnector() && src.Credentials != "" {
		conn, err := s.connectors.Resolve(src.Kind)
		if err == nil {
			if err := conn.Disconnect(ctx, src); err != nil {
				s.logger.Warn("platform disconnect failed", "source_id", src.ID, "error", err)
			}
		}
	}

	status := domain.Transition(src.Status, domain.EventDisconnect)
	patch := domain.SourcePatch{
		Status:      &status,
		Credentials: nilString(),
		SyncCursor:  nilString(),
	}
	if err := s.sources.Update(ctx, src.ID, patch); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	s.logger.Info("source disconnected", "source_id", src.ID, "kind", src.Kind)
	return nil
}

// ConnectionStatus probes a source's connection health. A probe that finds
// expired credentials persists the EXPIRED status so later reads agree.
func (s *SourceService) ConnectionStatus(ctx context.Context, sourceID string) (domain.ConnectionStatus, error) {
	src, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return domain.ConnectionStatus{}, fmt.Errorf("load source: %w", err)
	}

	if !src.Kind.IsConnector() {
		return domain.ConnectionStatus{Status: src.Status, LastSyncAt: src.LastSyncAt}, nil
	}
	if src.Credentials == "" {
		return domain.ConnectionStatus{Status: domain.StatusDisconnected}, nil
	}

	conn, err := s.connectors.Resolve(src.Kind)
	if err != nil {
		return domain.ConnectionStatus{}, err
	}

	status, err := conn.ConnectionStatus(ctx, src)
	if err != nil {
		return domain.ConnectionStatus{}, err
	}

	if status.Status == domain.StatusExpired && src.Status != domain.StatusExpired {
		expired := domain.StatusExpired
		if err := s.sources.Update(ctx, src.ID, domain.SourcePatch{Status: &expired}); err != nil {
			s.logger.Warn("failed to persist expired status", "source_id", src.ID, "error", err)
		}
	}
	return status, nil
}

// ValidateConfig validates a kind-specific config payload without saving it.
func (s *SourceService) ValidateConfig(kind domain.SourceKind, raw json.RawMessage) error {
	if kind.IsConnector() {
		conn, err := s.connectors.Resolve(kind)
		if err != nil {
			return err
		}
		return conn.ValidateConfig(raw)
	}
	return validateWebConfig(raw)
}

func validateWebConfig(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var cfg pattern.SourceConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	for _, p := range append(cfg.IncludePatterns, cfg.ExcludePatterns...) {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: pattern %q must start with /", domain.ErrInvalidConfig, p)
		}
	}
	return nil
}

// PatternSuggestion is the outcome of a pattern discovery pass.
type PatternSuggestion struct {
	Patterns        []pattern.ExtractedPattern `json:"patterns"`
	ExcludePatterns []string                   `json:"excludePatterns"`
	DiscoveredLinks []domain.DiscoveredLink    `json:"discoveredLinks"`
}

// SuggestPatterns crawls the site, infers include patterns from the user's
// selected article URLs, and suggests exclude patterns from the boilerplate
// links found on the page.
func (s *SourceService) SuggestPatterns(ctx context.Context, siteURL string, selectedURLs []string) (*PatternSuggestion, error) {
	links, err := s.discoverer.DiscoverLinks(ctx, siteURL)
	if err != nil {
		return nil, fmt.Errorf("discover links: %w", err)
	}

	discovered := make([]string, 0, len(links))
	for _, link := range links {
		discovered = append(discovered, link.URL)
	}

	return &PatternSuggestion{
		Patterns:        pattern.ExtractPatterns(selectedURLs, discovered),
		ExcludePatterns: pattern.SuggestExcludePatterns(links),
		DiscoveredLinks: links,
	}, nil
}

// Package linkedin syncs posts from configured public profiles through the
// browser-automation service. Credentials hold both the login secrets and
// the current session id, so an expired session can be re-established
// without user interaction.
package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsdesk/internal/automation"
	"newsdesk/internal/connector"
	"newsdesk/internal/crypto"
	"newsdesk/internal/domain"
)

const (
	defaultMaxPosts = 10
	maxProfiles     = 20
)

// Connector implements the LinkedIn integration.
type Connector struct {
	client *automation.Client
	codec  *crypto.Codec
	logger *slog.Logger
}

var _ connector.Connector = (*Connector)(nil)

// New builds the LinkedIn connector.
func New(client *automation.Client, codec *crypto.Codec, logger *slog.Logger) *Connector {
	return &Connector{
		client: client,
		codec:  codec,
		logger: logger.With("connector", "linkedin"),
	}
}

// Kind implements connector.Connector.
func (c *Connector) Kind() domain.SourceKind { return domain.KindLinkedIn }

type credentials struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	LiAtCookie string `json:"li_at_cookie"`
	SessionID  string `json:"session_id"`
}

type sourceConfig struct {
	Profiles           []string `json:"profiles"`
	MaxPostsPerProfile int      `json:"maxPostsPerProfile"`
}

// Authenticate logs in through the automation service and returns the
// credential blob with the fresh session id folded in.
func (c *Connector) Authenticate(ctx context.Context, raw json.RawMessage) (domain.AuthResult, error) {
	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return domain.AuthResult{}, fmt.Errorf("%w: parse credentials: %v", domain.ErrAuthFailed, err)
	}
	if creds.LiAtCookie == "" && (creds.Email == "" || creds.Password == "") {
		return domain.AuthResult{}, fmt.Errorf("%w: either li_at cookie or email and password are required", domain.ErrAuthFailed)
	}

	result, err := c.client.LinkedInAuth(ctx, creds.Email, creds.Password, creds.LiAtCookie)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("automation auth: %w", err)
	}
	if !result.Success {
		return domain.AuthResult{}, fmt.Errorf("%w: %s", domain.ErrAuthFailed, result.Error)
	}

	creds.SessionID = result.SessionID
	blob, err := c.encryptCredentials(creds)
	if err != nil {
		return domain.AuthResult{}, err
	}

	return domain.AuthResult{
		ProfileName: result.ProfileName,
		Credentials: blob,
	}, nil
}

// ValidateConfig checks the profile list.
func (c *Connector) ValidateConfig(raw json.RawMessage) error {
	var cfg sourceConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if len(cfg.Profiles) == 0 {
		return fmt.Errorf("%w: at least one profile is required", domain.ErrInvalidConfig)
	}
	if len(cfg.Profiles) > maxProfiles {
		return fmt.Errorf("%w: at most %d profiles are supported", domain.ErrInvalidConfig, maxProfiles)
	}
	for _, profile := range cfg.Profiles {
		if strings.TrimSpace(profile) == "" {
			return fmt.Errorf("%w: empty profile id", domain.ErrInvalidConfig)
		}
	}
	if cfg.MaxPostsPerProfile < 0 {
		return fmt.Errorf("%w: maxPostsPerProfile must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

// FetchItems pulls recent posts from every configured profile and returns
// the ones newer than the cursor.
func (c *Connector) FetchItems(ctx context.Context, src *domain.Source, progress connector.ProgressFunc) ([]domain.ConnectorItem, error) {
	creds, err := c.decryptCredentials(src)
	if err != nil {
		return nil, err
	}
	if err := c.ensureSession(ctx, src, &creds); err != nil {
		return nil, err
	}

	var cfg sourceConfig
	if err := json.Unmarshal(src.Config, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if len(cfg.Profiles) == 0 {
		return nil, fmt.Errorf("%w: no profiles configured", domain.ErrInvalidConfig)
	}
	maxPosts := cfg.MaxPostsPerProfile
	if maxPosts <= 0 {
		maxPosts = defaultMaxPosts
	}

	var items []domain.ConnectorItem
	for i, profile := range cfg.Profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report(progress, domain.SyncProgress{
			Phase:   domain.PhaseMessages,
			Current: i + 1,
			Total:   len(cfg.Profiles),
			Label:   profile,
		})

		result, err := c.client.LinkedInProfilePosts(ctx, creds.SessionID, profile, maxPosts)
		if err != nil {
			return nil, fmt.Errorf("fetch posts for %s: %w", profile, err)
		}
		if !result.Success {
			if isSessionError(result.Error) {
				return nil, fmt.Errorf("%w: %s", domain.ErrAuthExpired, result.Error)
			}
			c.logger.Warn("profile fetch failed", "profile", profile, "error", result.Error)
			continue
		}

		for _, post := range result.Posts {
			if src.SyncCursor != "" && c.CompareIDs(post.ExternalID, src.SyncCursor) <= 0 {
				continue
			}
			items = append(items, postToItem(post, profile))
		}
	}

	report(progress, domain.SyncProgress{Phase: domain.PhaseProcessing, Current: len(items), Total: len(items)})
	return items, nil
}

// ConnectionStatus probes the stored session.
func (c *Connector) ConnectionStatus(ctx context.Context, src *domain.Source) (domain.ConnectionStatus, error) {
	creds, err := c.decryptCredentials(src)
	if err != nil {
		return domain.ConnectionStatus{Status: domain.StatusDisconnected, Error: err.Error()}, err
	}
	if err := c.ensureSession(ctx, src, &creds); err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			return domain.ConnectionStatus{Status: domain.StatusExpired, Error: err.Error()}, nil
		}
		return domain.ConnectionStatus{}, err
	}

	result, err := c.client.LinkedInTest(ctx, creds.SessionID)
	if err != nil {
		return domain.ConnectionStatus{}, fmt.Errorf("session probe: %w", err)
	}
	if !result.Success {
		return domain.ConnectionStatus{Status: domain.StatusExpired, Error: result.Error}, nil
	}

	return domain.ConnectionStatus{
		Status:      domain.StatusConnected,
		ProfileName: result.ProfileName,
		LastSyncAt:  src.LastSyncAt,
	}, nil
}

// Disconnect tears down the automation-side session. Failures are logged
// and swallowed so a local disconnect always succeeds.
func (c *Connector) Disconnect(ctx context.Context, src *domain.Source) error {
	creds, err := c.decryptCredentials(src)
	if err != nil || creds.SessionID == "" {
		return nil
	}
	if err := c.client.LinkedInDisconnect(ctx, creds.SessionID); err != nil {
		c.logger.Warn("session teardown failed", "error", err)
	}
	return nil
}

// CompareIDs orders activity ids numerically.
func (c *Connector) CompareIDs(a, b string) int {
	return connector.CompareNumericIDs(a, b)
}

// SearchProfiles finds public profiles by keyword, for the source
// configuration flow.
func (c *Connector) SearchProfiles(ctx context.Context, src *domain.Source, keywords string, limit int) ([]automation.ProfileInfo, error) {
	creds, err := c.decryptCredentials(src)
	if err != nil {
		return nil, err
	}
	if err := c.ensureSession(ctx, src, &creds); err != nil {
		return nil, err
	}

	result, err := c.client.LinkedInSearchProfiles(ctx, creds.SessionID, keywords, limit)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	if !result.Success {
		if isSessionError(result.Error) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAuthExpired, result.Error)
		}
		return nil, fmt.Errorf("search profiles: %s", result.Error)
	}
	return result.Profiles, nil
}

func (c *Connector) encryptCredentials(creds credentials) (string, error) {
	data, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("marshal credentials: %w", err)
	}
	blob, err := c.codec.Encrypt(string(data))
	if err != nil {
		return "", fmt.Errorf("encrypt credentials: %w", err)
	}
	return blob, nil
}

func (c *Connector) decryptCredentials(src *domain.Source) (credentials, error) {
	if src.Credentials == "" {
		return credentials{}, domain.ErrNotConnected
	}
	plain, err := c.codec.Decrypt(src.Credentials)
	if err != nil {
		return credentials{}, fmt.Errorf("decrypt credentials: %w", err)
	}
	var creds credentials
	if err := json.Unmarshal([]byte(plain), &creds); err != nil {
		return credentials{}, fmt.Errorf("parse credentials: %w", err)
	}
	if creds.SessionID == "" && creds.LiAtCookie == "" && (creds.Email == "" || creds.Password == "") {
		return credentials{}, domain.ErrNotConnected
	}
	return creds, nil
}

// ensureSession re-authenticates with the stored login when no session id
// is cached. The fresh session is folded back into src.Credentials so the
// caller can persist the updated blob.
func (c *Connector) ensureSession(ctx context.Context, src *domain.Source, creds *credentials) error {
	if creds.SessionID != "" {
		return nil
	}

	result, err := c.client.LinkedInAuth(ctx, creds.Email, creds.Password, creds.LiAtCookie)
	if err != nil {
		return fmt.Errorf("automation auth: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", domain.ErrAuthExpired, result.Error)
	}

	creds.SessionID = result.SessionID
	blob, err := c.encryptCredentials(*creds)
	if err != nil {
		return err
	}
	src.Credentials = blob
	c.logger.Info("session re-established", "source_id", src.ID)
	return nil
}

func postToItem(post automation.PostItem, profile string) domain.ConnectorItem {
	item := domain.ConnectorItem{
		ExternalID: post.ExternalID,
		Title:      post.Title,
		Content:    post.Content,
		URL:        post.URL,
		Author:     post.Author,
	}
	if item.Author == "" {
		item.Author = profile
	}
	if item.Title == "" {
		item.Title = firstLine(post.Content)
	}
	if post.PublishedAt != "" {
		if ts, err := time.Parse(time.RFC3339, post.PublishedAt); err == nil {
			utc := ts.UTC()
			item.PublishedAt = &utc
		}
	}
	return item
}

func firstLine(content string) string {
	content = strings.TrimSpace(content)
	if idx := strings.IndexByte(content, '\n'); idx > 0 {
		content = content[:idx]
	}
	if len(content) > 120 {
		content = content[:120]
	}
	return strings.TrimSpace(content)
}

func isSessionError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "session") || strings.Contains(lower, "expired") ||
		strings.Contains(lower, "not logged in") || strings.Contains(lower, "unauthorized")
}

func report(progress connector.ProgressFunc, p domain.SyncProgress) {
	if progress != nil {
		progress(p)
	}
}

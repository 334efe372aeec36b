// Package twitter syncs the home timeline through the browser-automation
// service. Tweet ids are snowflakes, so the sync cursor is compared
// numerically.
package twitter

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
	defaultMaxTweets = 50
	maxTweetsCeiling = 200
)

// Connector implements the X/Twitter integration.
type Connector struct {
	client *automation.Client
	codec  *crypto.Codec
	logger *slog.Logger
}

var _ connector.Connector = (*Connector)(nil)

// New builds the Twitter connector.
func New(client *automation.Client, codec *crypto.Codec, logger *slog.Logger) *Connector {
	return &Connector{
		client: client,
		codec:  codec,
		logger: logger.With("connector", "twitter"),
	}
}

// Kind implements connector.Connector.
func (c *Connector) Kind() domain.SourceKind { return domain.KindTwitter }

type credentials struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AuthToken string `json:"auth_token"`
	SessionID string `json:"session_id"`
}

type sourceConfig struct {
	MaxTweets int `json:"maxTweets"`
}

// Authenticate logs in through the automation service.
func (c *Connector) Authenticate(ctx context.Context, raw json.RawMessage) (domain.AuthResult, error) {
	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return domain.AuthResult{}, fmt.Errorf("%w: parse credentials: %v", domain.ErrAuthFailed, err)
	}
	if creds.AuthToken == "" && (creds.Username == "" || creds.Password == "") {
		return domain.AuthResult{}, fmt.Errorf("%w: either auth token or username and password are required", domain.ErrAuthFailed)
	}

	result, err := c.client.TwitterAuth(ctx, creds.Username, creds.Password, creds.AuthToken)
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

	name := result.ProfileName
	if name == "" {
		name = result.Username
	}
	return domain.AuthResult{ProfileName: name, Credentials: blob}, nil
}

// ValidateConfig checks the timeline fetch limit.
func (c *Connector) ValidateConfig(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var cfg sourceConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if cfg.MaxTweets < 0 || cfg.MaxTweets > maxTweetsCeiling {
		return fmt.Errorf("%w: maxTweets must be between 0 and %d", domain.ErrInvalidConfig, maxTweetsCeiling)
	}
	return nil
}

// FetchItems pulls the home timeline and returns tweets newer than the
// cursor, oldest first.
func (c *Connector) FetchItems(ctx context.Context, src *domain.Source, progress connector.ProgressFunc) ([]domain.ConnectorItem, error) {
	creds, err := c.decryptCredentials(src)
	if err != nil {
		return nil, err
	}
	if err := c.ensureSession(ctx, src, &creds); err != nil {
		return nil, err
	}

	maxTweets := defaultMaxTweets
	if len(src.Config) > 0 {
		var cfg sourceConfig
		if err := json.Unmarshal(src.Config, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
		}
		if cfg.MaxTweets > 0 {
			maxTweets = cfg.MaxTweets
		}
	}

	report(progress, domain.SyncProgress{Phase: domain.PhaseMessages, Total: maxTweets})

	result, err := c.client.TwitterTimeline(ctx, creds.SessionID, maxTweets)
	if err != nil {
		return nil, fmt.Errorf("fetch timeline: %w", err)
	}
	if !result.Success {
		if isSessionError(result.Error) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAuthExpired, result.Error)
		}
		return nil, fmt.Errorf("fetch timeline: %s", result.Error)
	}

	items := make([]domain.ConnectorItem, 0, len(result.Tweets))
	for i := len(result.Tweets) - 1; i >= 0; i-- {
		tweet := result.Tweets[i]
		if src.SyncCursor != "" && c.CompareIDs(tweet.ExternalID, src.SyncCursor) <= 0 {
			continue
		}
		items = append(items, tweetToItem(tweet))
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

	result, err := c.client.TwitterTest(ctx, creds.SessionID)
	if err != nil {
		return domain.ConnectionStatus{}, fmt.Errorf("session probe: %w", err)
	}
	if !result.Success {
		return domain.ConnectionStatus{Status: domain.StatusExpired, Error: result.Error}, nil
	}

	name := result.ProfileName
	if name == "" {
		name = result.Username
	}
	return domain.ConnectionStatus{
		Status:      domain.StatusConnected,
		ProfileName: name,
		LastSyncAt:  src.LastSyncAt,
	}, nil
}

// Disconnect tears down the automation-side session. Best effort.
func (c *Connector) Disconnect(ctx context.Context, src *domain.Source) error {
	creds, err := c.decryptCredentials(src)
	if err != nil || creds.SessionID == "" {
		return nil
	}
	if err := c.client.TwitterDisconnect(ctx, creds.SessionID); err != nil {
		c.logger.Warn("session teardown failed", "error", err)
	}
	return nil
}

// CompareIDs orders snowflake ids numerically.
func (c *Connector) CompareIDs(a, b string) int {
	return connector.CompareNumericIDs(a, b)
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
	if creds.SessionID == "" && creds.AuthToken == "" && (creds.Username == "" || creds.Password == "") {
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

	result, err := c.client.TwitterAuth(ctx, creds.Username, creds.Password, creds.AuthToken)
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

func tweetToItem(tweet automation.PostItem) domain.ConnectorItem {
	item := domain.ConnectorItem{
		ExternalID: tweet.ExternalID,
		Title:      tweet.Title,
		Content:    tweet.Content,
		URL:        tweet.URL,
		Author:     tweet.Author,
	}
	if item.Title == "" {
		item.Title = truncate(tweet.Content, 120)
	}
	if tweet.PublishedAt != "" {
		if ts, err := time.Parse(time.RFC3339, tweet.PublishedAt); err == nil {
			utc := ts.UTC()
			item.PublishedAt = &utc
		}
	}
	return item
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return strings.TrimSpace(s[:limit])
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

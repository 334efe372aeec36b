// Package gmail syncs newsletter mail through the Gmail API. Credentials
// are an OAuth refresh token stored encrypted on the source; message ids
// are hex strings whose lexical order matches Gmail's internal order, so
// the sync cursor is compared lexically.
package gmail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"newsdesk/internal/connector"
	"newsdesk/internal/crypto"
	"newsdesk/internal/domain"
)

const (
	revokeURL = "https://oauth2.googleapis.com/revoke"

	// firstSyncWindow bounds the initial backfill; incrementalWindow bounds
	// follow-up syncs, where the cursor does the real filtering.
	firstSyncWindow   = "30d"
	incrementalWindow = "7d"

	maxMessagesPerSync = 200
)

// Config carries the OAuth application credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Connector implements the Gmail integration.
type Connector struct {
	oauth      *oauth2.Config
	codec      *crypto.Codec
	httpClient *http.Client
	logger     *slog.Logger
}

var _ connector.Connector = (*Connector)(nil)

// New builds the Gmail connector.
func New(cfg Config, codec *crypto.Codec, logger *slog.Logger) *Connector {
	return &Connector{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmailapi.GmailReadonlyScope},
		},
		codec:      codec,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("connector", "gmail"),
	}
}

// Kind implements connector.Connector.
func (c *Connector) Kind() domain.SourceKind { return domain.KindGmail }

type credentials struct {
	RefreshToken string `json:"refresh_token"`
}

type sourceConfig struct {
	Senders []string `json:"senders"`
}

// Authenticate verifies a refresh token by fetching the account profile and
// returns the encrypted credential blob to persist.
func (c *Connector) Authenticate(ctx context.Context, raw json.RawMessage) (domain.AuthResult, error) {
	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return domain.AuthResult{}, fmt.Errorf("%w: parse credentials: %v", domain.ErrAuthFailed, err)
	}
	if creds.RefreshToken == "" {
		return domain.AuthResult{}, fmt.Errorf("%w: refresh token is required", domain.ErrAuthFailed)
	}

	svc, err := c.service(ctx, creds.RefreshToken)
	if err != nil {
		return domain.AuthResult{}, err
	}

	profile, err := svc.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		if errors.Is(classifyErr(err), domain.ErrAuthExpired) {
			return domain.AuthResult{}, fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
		}
		return domain.AuthResult{}, fmt.Errorf("fetch profile: %w", err)
	}

	blob, err := c.codec.Encrypt(string(mustMarshal(creds)))
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("encrypt credentials: %w", err)
	}

	return domain.AuthResult{
		ProfileName: profile.EmailAddress,
		Credentials: blob,
	}, nil
}

// ValidateConfig checks that the source names at least one sender address.
func (c *Connector) ValidateConfig(raw json.RawMessage) error {
	var cfg sourceConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if len(cfg.Senders) == 0 {
		return fmt.Errorf("%w: at least one sender is required", domain.ErrInvalidConfig)
	}
	for _, sender := range cfg.Senders {
		if !strings.Contains(sender, "@") {
			return fmt.Errorf("%w: %q is not an email address", domain.ErrInvalidConfig, sender)
		}
	}
	return nil
}

// FetchItems lists messages from the configured senders and returns the ones
// newer than the source's cursor.
func (c *Connector) FetchItems(ctx context.Context, src *domain.Source, progress connector.ProgressFunc) ([]domain.ConnectorItem, error) {
	svc, err := c.serviceForSource(ctx, src)
	if err != nil {
		return nil, err
	}

	var cfg sourceConfig
	if err := json.Unmarshal(src.Config, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if len(cfg.Senders) == 0 {
		return nil, fmt.Errorf("%w: no senders configured", domain.ErrInvalidConfig)
	}

	report(progress, domain.SyncProgress{Phase: domain.PhaseSenders, Total: len(cfg.Senders)})

	query := buildQuery(cfg.Senders, src.SyncCursor, src.LastSyncAt)
	ids, err := c.listMessageIDs(ctx, svc, query, src.SyncCursor, progress)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ConnectorItem, 0, len(ids))
	for i, id := range ids {
		report(progress, domain.SyncProgress{Phase: domain.PhaseProcessing, Current: i + 1, Total: len(ids)})

		msg, err := svc.Users.Messages.Get("me", id).Format("full").Context(ctx).Do()
		if err != nil {
			if classified := classifyErr(err); errors.Is(classified, domain.ErrAuthExpired) {
				return nil, classified
			}
			c.logger.Warn("skipping unreadable message", "id", id, "error", err)
			continue
		}
		items = append(items, messageToItem(msg))
	}

	return items, nil
}

// listMessageIDs pages through the query results and keeps ids lexically
// greater than the cursor, oldest first.
func (c *Connector) listMessageIDs(ctx context.Context, svc *gmailapi.Service, query, cursor string, progress connector.ProgressFunc) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		call := svc.Users.Messages.List("me").Q(query).MaxResults(100).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return nil, classifyErr(err)
		}

		for _, msg := range page.Messages {
			if cursor != "" && strings.Compare(msg.Id, cursor) <= 0 {
				continue
			}
			ids = append(ids, msg.Id)
		}

		report(progress, domain.SyncProgress{Phase: domain.PhaseMessages, Current: len(ids)})

		pageToken = page.NextPageToken
		if pageToken == "" || len(ids) >= maxMessagesPerSync {
			break
		}
	}

	if len(ids) > maxMessagesPerSync {
		ids = ids[:maxMessagesPerSync]
	}

	// Gmail lists newest first; the orchestrator wants oldest first so the
	// cursor advances monotonically even on partial failures.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids, nil
}

// ConnectionStatus probes the stored refresh token.
func (c *Connector) ConnectionStatus(ctx context.Context, src *domain.Source) (domain.ConnectionStatus, error) {
	svc, err := c.serviceForSource(ctx, src)
	if err != nil {
		return domain.ConnectionStatus{Status: domain.StatusDisconnected, Error: err.Error()}, err
	}

	profile, err := svc.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		classified := classifyErr(err)
		if errors.Is(classified, domain.ErrAuthExpired) {
			return domain.ConnectionStatus{Status: domain.StatusExpired, Error: classified.Error()}, nil
		}
		return domain.ConnectionStatus{}, classified
	}

	return domain.ConnectionStatus{
		Status:      domain.StatusConnected,
		ProfileName: profile.EmailAddress,
		LastSyncAt:  src.LastSyncAt,
	}, nil
}

// Disconnect revokes the refresh token with Google. Revocation failures are
// logged and swallowed so a local disconnect always succeeds.
func (c *Connector) Disconnect(ctx context.Context, src *domain.Source) error {
	creds, err := c.decryptCredentials(src)
	if err != nil {
		return nil
	}

	form := url.Values{"token": {creds.RefreshToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("token revocation failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("token revocation rejected", "status", resp.StatusCode)
	}
	return nil
}

// CompareIDs orders Gmail message ids. They are fixed-width hex strings, so
// lexical order is chronological order.
func (c *Connector) CompareIDs(a, b string) int {
	return strings.Compare(a, b)
}

func (c *Connector) serviceForSource(ctx context.Context, src *domain.Source) (*gmailapi.Service, error) {
	creds, err := c.decryptCredentials(src)
	if err != nil {
		return nil, err
	}
	return c.service(ctx, creds.RefreshToken)
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
	if creds.RefreshToken == "" {
		return credentials{}, domain.ErrNotConnected
	}
	return creds, nil
}

func (c *Connector) service(ctx context.Context, refreshToken string) (*gmailapi.Service, error) {
	source := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return svc, nil
}

// buildQuery builds the Gmail search query. The narrow incremental window
// needs a cursor and a recent successful sync; a stale cursor falls back to
// the wide window so messages older than seven days are not lost. The
// cursor keeps the fetch exact either way.
func buildQuery(senders []string, cursor string, lastSyncAt *time.Time) string {
	clauses := make([]string, 0, len(senders))
	for _, sender := range senders {
		clauses = append(clauses, "from:"+sender)
	}

	window := firstSyncWindow
	if cursor != "" && lastSyncAt != nil && time.Since(*lastSyncAt) < 7*24*time.Hour {
		window = incrementalWindow
	}

	return fmt.Sprintf("(%s) newer_than:%s", strings.Join(clauses, " OR "), window)
}

// classifyErr maps Google API failures onto domain sentinels. invalid_grant
// and 401 both mean the refresh token is dead.
func classifyErr(err error) error {
	if err == nil {
		return nil
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.ErrorCode == "invalid_grant" || retrieveErr.Response != nil && retrieveErr.Response.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %v", domain.ErrAuthExpired, err)
		}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: %v", domain.ErrAuthExpired, err)
	}

	if strings.Contains(err.Error(), "invalid_grant") {
		return fmt.Errorf("%w: %v", domain.ErrAuthExpired, err)
	}

	return err
}

func report(progress connector.ProgressFunc, p domain.SyncProgress) {
	if progress != nil {
		progress(p)
	}
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

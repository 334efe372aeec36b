package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

func (s *SourceStore) GetByID(ctx context.Context, id string) (*domain.Source, error) {
	var src domain.Source
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &src,
		`SELECT id, user_id, kind, name, url,
		        COALESCE(credentials, '') AS credentials,
		        config, status, is_active, last_sync_at, last_sync_error,
		        COALESCE(sync_cursor, '') AS sync_cursor,
		        created_at, updated_at
		   FROM sources WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceStore) ListActiveByUser(ctx context.Context, userID string) ([]domain.Source, error) {
	var sources []domain.Source
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sources,
		`SELECT id, user_id, kind, name, url,
		        COALESCE(credentials, '') AS credentials,
		        config, status, is_active, last_sync_at, last_sync_error,
		        COALESCE(sync_cursor, '') AS sync_cursor,
		        created_at, updated_at
		   FROM sources
		  WHERE user_id = $1 AND is_active = TRUE
		  ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	return sources, nil
}

func (s *SourceStore) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	var userIDs []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &userIDs,
		`SELECT DISTINCT user_id FROM sources WHERE is_active = TRUE ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

func (s *SourceStore) Create(ctx context.Context, src *domain.Source) error {
	query := `
		INSERT INTO sources (id, user_id, kind, name, url, config, status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		src.ID, src.UserID, src.Kind, src.Name, src.URL, src.Config, src.Status, src.IsActive)
	return err
}

// Update applies a partial patch. Nil fields are untouched; empty strings in
// credentials, last_sync_error and sync_cursor are stored as NULL.
func (s *SourceStore) Update(ctx context.Context, id string, patch domain.SourcePatch) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	next := 1

	appendSet := func(clause string, value any) {
		sets = append(sets, fmt.Sprintf(clause, next))
		args = append(args, value)
		next++
	}

	if patch.Status != nil {
		appendSet("status = $%d", *patch.Status)
	}
	if patch.Credentials != nil {
		appendSet("credentials = NULLIF($%d, '')", *patch.Credentials)
	}
	if patch.LastSyncAt != nil {
		appendSet("last_sync_at = $%d", *patch.LastSyncAt)
	}
	if patch.LastSyncError != nil {
		appendSet("last_sync_error = NULLIF($%d, '')", *patch.LastSyncError)
	}
	if patch.SyncCursor != nil {
		appendSet("sync_cursor = NULLIF($%d, '')", *patch.SyncCursor)
	}

	query := fmt.Sprintf("UPDATE sources SET %s WHERE id = $%d", strings.Join(sets, ", "), next)
	args = append(args, id)

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSourceNotFound
	}
	return nil
}

func (s *SourceStore) UpdateConfig(ctx context.Context, id string, config []byte) error {
	result, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET config = $1, updated_at = NOW() WHERE id = $2`, config, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSourceNotFound
	}
	return nil
}

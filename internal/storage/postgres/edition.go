package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

type EditionStore struct {
	db *sqlx.DB
}

func NewEditionStore(db *sqlx.DB) *EditionStore {
	return &EditionStore{db: db}
}

// AttachArticle links an article into the user's edition for the given day,
// creating the edition on first use. Attaching the same article twice is a
// no-op.
func (s *EditionStore) AttachArticle(ctx context.Context, userID, articleID string, day time.Time) error {
	ex := GetExecutor(ctx, s.db)

	var editionID string
	err := sqlx.GetContext(ctx, ex, &editionID,
		`INSERT INTO editions (id, user_id, day)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, day) DO UPDATE SET day = EXCLUDED.day
		 RETURNING id`,
		uuid.NewString(), userID, day)
	if err != nil {
		return err
	}

	_, err = ex.ExecContext(ctx,
		`INSERT INTO edition_articles (edition_id, article_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		editionID, articleID)
	return err
}

// GetByDay returns the user's edition for one day, or nil when none exists.
func (s *EditionStore) GetByDay(ctx context.Context, userID string, day time.Time) (*domain.Edition, error) {
	var edition domain.Edition
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &edition,
		`SELECT id, user_id, day, created_at FROM editions WHERE user_id = $1 AND day = $2`,
		userID, day)
	if err != nil {
		return nil, err
	}
	return &edition, nil
}

// ListArticles returns the articles attached to an edition, newest first.
func (s *EditionStore) ListArticles(ctx context.Context, editionID string) ([]domain.Article, error) {
	var articles []domain.Article
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles,
		`SELECT a.id, a.source_id, a.external_id, a.url, a.title, a.intro,
		        a.summary, a.content, a.author, a.published_at, a.created_at
		   FROM articles a
		   JOIN edition_articles ea ON ea.article_id = a.id
		  WHERE ea.edition_id = $1
		  ORDER BY a.created_at DESC`, editionID)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

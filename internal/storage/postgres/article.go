package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (
			id, source_id, external_id, url, title, intro, summary, content,
			author, published_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		article.ID,
		article.SourceID,
		article.ExternalID,
		article.URL,
		article.Title,
		article.Intro,
		article.Summary,
		article.Content,
		article.Author,
		article.PublishedAt,
	)
	return err
}

// ExistsByURL checks across all sources: an article URL is persisted at most
// once no matter how many sources list it.
func (s *ArticleStore) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE url = $1)`,
		url,
	)
	return exists, err
}

func (s *ArticleStore) ExistsByExternalID(ctx context.Context, sourceID, externalID string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE source_id = $1 AND external_id = $2)`,
		sourceID, externalID,
	)
	return exists, err
}

func (s *ArticleStore) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var article domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article,
		`SELECT * FROM articles WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleStore) CountBySource(ctx context.Context, sourceID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		`SELECT COUNT(*) FROM articles WHERE source_id = $1`, sourceID)
	return count, err
}

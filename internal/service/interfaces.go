package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
//go:generate mockgen -destination=mocks/connector_mocks.go -package=mocks newsdesk/internal/connector Connector

import (
	"context"
	"time"

	"newsdesk/internal/connector"
	"newsdesk/internal/domain"
	"newsdesk/internal/scraper"
)

type SourceStore interface {
	GetByID(ctx context.Context, id string) (*domain.Source, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Source, error)
	ListActiveUserIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, patch domain.SourcePatch) error
}

type ArticleStore interface {
	Create(ctx context.Context, article *domain.Article) error
	ExistsByURL(ctx context.Context, url string) (bool, error)
	ExistsByExternalID(ctx context.Context, sourceID, externalID string) (bool, error)
}

type EditionStore interface {
	AttachArticle(ctx context.Context, userID, articleID string, day time.Time) error
}

type Connectors interface {
	Resolve(kind domain.SourceKind) (connector.Connector, error)
}

type Scraper interface {
	Healthy(ctx context.Context) bool
	ScrapeURL(ctx context.Context, pageURL string) (*scraper.ScrapeResult, error)
	ScrapeArticles(ctx context.Context, siteURL string, maxArticles int) (*scraper.ArticlesResult, error)
}

type IntroGenerator interface {
	GenerateIntro(ctx context.Context, title, markdown string) (string, error)
}

type LinkDiscoverer interface {
	DiscoverLinks(ctx context.Context, pageURL string) ([]domain.DiscoveredLink, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article) error
	Close() error
}

type Syncer interface {
	SyncSource(ctx context.Context, sourceID string, sink domain.ProgressSink) (*domain.SyncStats, error)
}

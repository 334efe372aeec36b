package domain

import "time"

// Article is the canonical persisted record, created at most once per unique
// URL. Ingestion must check-then-insert; the store also carries a unique
// index on url as a backstop.
type Article struct {
	ID          string     `db:"id"`
	SourceID    string     `db:"source_id"`
	ExternalID  *string    `db:"external_id"`
	URL         string     `db:"url"`
	Title       string     `db:"title"`
	Intro       *string    `db:"intro"`
	Summary     *string    `db:"summary"`
	Content     *string    `db:"content"`
	Author      *string    `db:"author"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Edition groups the articles ingested for one user on one day.
type Edition struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Day       time.Time `db:"day"`
	CreatedAt time.Time `db:"created_at"`
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsgraph/pkg/domain"
)

// FeedRepository handles feed and publisher database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed joined with its publisher for SQL operations
type feedSQL struct {
	ID          int64      `db:"id"`
	URL         string     `db:"url"`
	Title       string     `db:"title"`
	PublisherID int64      `db:"publisher_id"`
	Publisher   string     `db:"publisher"`
	IsVN        bool       `db:"is_vn"`
	Enabled     bool       `db:"enabled"`
	LastFetched *time.Time `db:"last_fetched"`
	ErrorCount  int        `db:"error_count"`
	LastError   string     `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
}

const feedColumns = `f.id, f.url, f.title, f.publisher_id, p.name AS publisher, p.is_vn,
	f.enabled, f.last_fetched, f.error_count, f.last_error, f.created_at`

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// UpsertPublisher creates a publisher or updates its language flag, returns publisher id
func (r *FeedRepository) UpsertPublisher(ctx context.Context, pub domain.Publisher) (int64, error) {
	var id int64
	err := withRetry(ctx, func() error {
		query := `
			INSERT INTO publishers (name, is_vn) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET is_vn = excluded.is_vn
			RETURNING id
		`
		if err := r.db.GetContext(ctx, &id, query, pub.Name, pub.IsVN); err != nil {
			return fmt.Errorf("upsert publisher %s: %w", pub.Name, err)
		}
		return nil
	})
	return id, err
}

// UpsertFeed creates a feed or updates title and publisher of the existing one with the same url
func (r *FeedRepository) UpsertFeed(ctx context.Context, feed *domain.Feed) error {
	return withRetry(ctx, func() error {
		query := `
			INSERT INTO feeds (url, title, publisher_id, enabled) VALUES (?, ?, ?, ?)
			ON CONFLICT(url) DO UPDATE SET title = excluded.title, publisher_id = excluded.publisher_id,
				enabled = excluded.enabled
			RETURNING id
		`
		if err := r.db.GetContext(ctx, &feed.ID, query, feed.URL, feed.Title, feed.PublisherID, feed.Enabled); err != nil {
			return fmt.Errorf("upsert feed %s: %w", feed.URL, err)
		}
		return nil
	})
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var f feedSQL
	query := "SELECT " + feedColumns + " FROM feeds f JOIN publishers p ON p.id = f.publisher_id WHERE f.id = ?"
	if err := r.db.GetContext(ctx, &f, query, id); err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return r.toDomainFeed(&f), nil
}

// GetFeeds retrieves feeds with their publishers, optionally enabled only
func (r *FeedRepository) GetFeeds(ctx context.Context, enabledOnly bool) ([]domain.Feed, error) {
	query := "SELECT " + feedColumns + " FROM feeds f JOIN publishers p ON p.id = f.publisher_id"
	if enabledOnly {
		query += " WHERE f.enabled = 1"
	}
	query += " ORDER BY f.id"

	var rows []feedSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(rows))
	for i := range rows {
		feeds[i] = *r.toDomainFeed(&rows[i])
	}
	return feeds, nil
}

// UpdateFeedFetched marks successful fetch and resets error state
func (r *FeedRepository) UpdateFeedFetched(ctx context.Context, feedID int64) error {
	return withRetry(ctx, func() error {
		query := `
			UPDATE feeds
			SET last_fetched = datetime('now'),
			    error_count = 0,
			    last_error = ''
			WHERE id = ?
		`
		if _, err := r.db.ExecContext(ctx, query, feedID); err != nil {
			return fmt.Errorf("update feed fetched: %w", err)
		}
		return nil
	})
}

// UpdateFeedError records a fetch failure
func (r *FeedRepository) UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error {
	return withRetry(ctx, func() error {
		query := `
			UPDATE feeds
			SET error_count = error_count + 1,
			    last_error = ?
			WHERE id = ?
		`
		if _, err := r.db.ExecContext(ctx, query, errMsg, feedID); err != nil {
			return fmt.Errorf("update feed error: %w", err)
		}
		return nil
	})
}

// toDomainFeed converts feedSQL to domain.Feed
func (r *FeedRepository) toDomainFeed(f *feedSQL) *domain.Feed {
	return &domain.Feed{
		ID:          f.ID,
		URL:         f.URL,
		Title:       f.Title,
		PublisherID: f.PublisherID,
		Publisher:   f.Publisher,
		IsVN:        f.IsVN,
		Enabled:     f.Enabled,
		LastFetched: f.LastFetched,
		ErrorCount:  f.ErrorCount,
		LastError:   f.LastError,
		CreatedAt:   f.CreatedAt,
	}
}

package server

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/umputun/newsgraph/pkg/domain"
	"github.com/umputun/newsgraph/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Store interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetFeeds returns feeds, feeds without title get a name derived from their url
func (r *RepositoryAdapter) GetFeeds(ctx context.Context, enabledOnly bool) ([]domain.Feed, error) {
	feeds, err := r.repos.Feed.GetFeeds(ctx, enabledOnly)
	if err != nil {
		return nil, err
	}
	for i := range feeds {
		feeds[i].Title = getFeedDisplayName(feeds[i].Title, feeds[i].URL)
	}
	return feeds, nil
}

// LatestByKeyword returns the most recent articles linked to the keyword
func (r *RepositoryAdapter) LatestByKeyword(ctx context.Context, name string, limit int) ([]domain.Article, error) {
	return r.repos.Article.LatestByKeyword(ctx, name, limit)
}

// KeywordNames returns keyword names per article id, articles without keywords are left out
func (r *RepositoryAdapter) KeywordNames(ctx context.Context, articleIDs []int64) (map[int64][]string, error) {
	res := make(map[int64][]string, len(articleIDs))
	for _, id := range articleIDs {
		kws, err := r.repos.Keyword.KeywordsByArticle(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("keywords of article %d: %w", id, err)
		}
		if len(kws) == 0 {
			continue
		}
		names := make([]string, len(kws))
		for i, k := range kws {
			names[i] = k.Name
		}
		res[id] = names
	}
	return res, nil
}

// Ping verifies the database connection
func (r *RepositoryAdapter) Ping(ctx context.Context) error {
	return r.repos.Ping(ctx)
}

// getFeedDisplayName returns the feed title if available, otherwise extracts hostname from URL
func getFeedDisplayName(title, feedURL string) string {
	if title != "" {
		return title
	}

	if u, err := url.Parse(feedURL); err == nil && u.Hostname() != "" {
		return strings.TrimPrefix(u.Hostname(), "www.")
	}
	return feedURL
}

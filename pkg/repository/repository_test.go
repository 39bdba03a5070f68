package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgraph/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, repos.Ping(ctx))

	pubID, err := repos.Feed.UpsertPublisher(ctx, domain.Publisher{Name: "VnExpress", IsVN: true})
	require.NoError(t, err)
	feed := &domain.Feed{URL: "https://vnexpress.net/rss/tin-moi-nhat.rss", Title: "Latest", PublisherID: pubID, Enabled: true}
	require.NoError(t, repos.Feed.UpsertFeed(ctx, feed))

	art := &domain.Article{Title: "Giá vàng tăng mạnh", Link: "https://vnexpress.net/a1", ImageURL: "https://i.vnecdn.net/a1.jpg",
		Description: "giá vàng hôm nay", PubDate: time.Now().Add(-time.Hour), FeedID: feed.ID}
	inserted, err := repos.Article.UpsertArticle(ctx, art)
	require.NoError(t, err)
	require.True(t, inserted)

	kwID, err := repos.Keyword.UpsertKeyword(ctx, "Giá Vàng")
	require.NoError(t, err)
	require.NoError(t, repos.Keyword.LinkArticleKeyword(ctx, art.ID, kwID))

	sources, err := repos.Article.ArticlesAfter(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, domain.ArticleSource{ID: art.ID, Title: "Giá vàng tăng mạnh", IsVN: true}, sources[0])

	latest, err := repos.Article.LatestByKeyword(ctx, "giá vàng", 10)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, art.ID, latest[0].ID)
}

func TestNewRepositories_InvalidDSN(t *testing.T) {
	_, err := NewRepositories(context.Background(), Config{DSN: "file:/non/existent/dir/db.sqlite?mode=ro"})
	require.Error(t, err)
}

func TestRepositories_Close(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, repos.Close())
	assert.Error(t, repos.Ping(context.Background()))
}

func TestIsLockError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "busy", err: errors.New("SQLITE_BUSY: database is busy"), want: true},
		{name: "locked", err: errors.New("database is locked"), want: true},
		{name: "table locked", err: errors.New("database table is locked"), want: true},
		{name: "other", err: errors.New("no such table"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockError(tt.err))
		})
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return errors.New("constraint failed")
		})
		require.EqualError(t, err, "constraint failed")
		assert.Equal(t, 1, calls)
	})
}

func TestChunks(t *testing.T) {
	assert.Empty(t, chunks(nil, 2))
	assert.Equal(t, [][]int64{{1, 2}, {3, 4}, {5}}, chunks([]int64{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int64{{1, 2}}, chunks([]int64{1, 2}, 2))
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	v, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v1"))
	require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v2"))
	v, err = repos.Setting.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	n, err := repos.Setting.GetInt64(ctx, domain.SettingKeywordCursor)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, repos.Setting.SetInt64(ctx, domain.SettingKeywordCursor, 42))
	n, err = repos.Setting.GetInt64(ctx, domain.SettingKeywordCursor)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	require.NoError(t, repos.Setting.SetSetting(ctx, "bad", "not-a-number"))
	_, err = repos.Setting.GetInt64(ctx, "bad")
	require.Error(t, err)
}

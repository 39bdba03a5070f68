package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgraph/pkg/domain"
)

func addArticle(t *testing.T, repos *Repositories, title, desc string, pub time.Time) domain.Article {
	t.Helper()
	art := domain.Article{Title: title, Link: "https://example.com/" + title, ImageURL: "https://example.com/i.jpg",
		Description: desc, PubDate: pub}
	inserted, err := repos.Article.UpsertArticle(context.Background(), &art)
	require.NoError(t, err)
	require.True(t, inserted)
	return art
}

func TestArticleRepository_UpsertArticle(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	art := &domain.Article{Title: "t1", Link: "https://example.com/x", Description: "d", ImageURL: "https://example.com/x.png",
		PubDate: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	inserted, err := repos.Article.UpsertArticle(ctx, art)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotZero(t, art.ID)
	assert.Equal(t, domain.LinkHash("https://example.com/x"), art.Hash)

	dup := &domain.Article{Title: "other title", Link: " https://example.com/x ", Description: "d2", PubDate: time.Now()}
	inserted, err = repos.Article.UpsertArticle(ctx, dup)
	require.NoError(t, err)
	assert.False(t, inserted, "same link hash is a no-op")
	assert.Zero(t, dup.ID)

	got, err := repos.Article.GetArticle(ctx, art.ID)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Title)
	assert.Equal(t, "https://example.com/x.png", got.ImageURL)
	assert.True(t, got.PubDate.Equal(art.PubDate))
}

func TestArticleRepository_UpsertArticleConcurrent(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	insertedCount := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			art := &domain.Article{Title: "same", Link: "https://example.com/same", Description: "d", PubDate: time.Now()}
			inserted, err := repos.Article.UpsertArticle(ctx, art)
			assert.NoError(t, err)
			if inserted {
				mu.Lock()
				insertedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, insertedCount)

	var n int
	require.NoError(t, repos.DB.Get(&n, "SELECT COUNT(*) FROM articles"))
	assert.Equal(t, 1, n)
}

func TestArticleRepository_HotArticles(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	a1 := addArticle(t, repos, "a1", "d", base.Add(-3*time.Hour))
	a2 := addArticle(t, repos, "a2", "d", base.Add(-1*time.Hour))
	a3 := addArticle(t, repos, "a3", "d", base.Add(-1*time.Hour)) // same date as a2, higher id
	addArticle(t, repos, "future", "d", base.Add(48*time.Hour))

	res, total, err := repos.Article.HotArticles(ctx, base, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total, "future article excluded")
	require.Len(t, res, 2)
	assert.Equal(t, a3.ID, res[0].ID)
	assert.Equal(t, a2.ID, res[1].ID)

	res, total, err = repos.Article.HotArticles(ctx, base, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, res, 1)
	assert.Equal(t, a1.ID, res[0].ID)

	res, total, err = repos.Article.HotArticles(ctx, base, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, res)

	res, total, err = repos.Article.HotArticles(ctx, base.Add(-100*time.Hour), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestArticleRepository_SearchArticles(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	addArticle(t, repos, "Giá Vàng tăng", "thị trường", base.Add(-3*time.Hour))
	addArticle(t, repos, "Bóng đá", "đội tuyển và GIÁ VÀNG", base.Add(-2*time.Hour))
	addArticle(t, repos, "100% discount_sale", "wildcards", base.Add(-1*time.Hour))
	addArticle(t, repos, "Thời tiết", "mưa", base)

	res, total, err := repos.Article.SearchArticles(ctx, "giá vàng", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total, "title or description, unicode case-insensitive")
	require.Len(t, res, 2)
	assert.Equal(t, "Bóng đá", res[0].Title, "newest first")

	res, total, err = repos.Article.SearchArticles(ctx, "GIÁ", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, res, 1)
	assert.Equal(t, "Giá Vàng tăng", res[0].Title)

	_, total, err = repos.Article.SearchArticles(ctx, "%", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total, "percent is literal")

	_, total, err = repos.Article.SearchArticles(ctx, "a_e", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total, "underscore is literal")

	res, total, err = repos.Article.SearchArticles(ctx, "nothing here", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, res)
}

func TestArticleRepository_ArticlesByIDs(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	var ids []int64
	for i := 0; i < 5; i++ {
		a := addArticle(t, repos, fmt.Sprintf("a%d", i), "d", base.Add(time.Duration(i)*time.Hour))
		ids = append(ids, a.ID)
	}

	res, err := repos.Article.ArticlesByIDs(ctx, []int64{ids[0], ids[3], ids[1], 9999})
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, []int64{ids[3], ids[1], ids[0]}, []int64{res[0].ID, res[1].ID, res[2].ID})

	res, err = repos.Article.ArticlesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestArticleRepository_ArticlesAfter(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	pubID, err := repos.Feed.UpsertPublisher(ctx, domain.Publisher{Name: "Reuters", IsVN: false})
	require.NoError(t, err)
	feed := &domain.Feed{URL: "https://reuters.example/rss", PublisherID: pubID, Enabled: true}
	require.NoError(t, repos.Feed.UpsertFeed(ctx, feed))

	a1 := addArticle(t, repos, "native", "d", time.Now())
	a2 := domain.Article{Title: "Gold prices surge", Link: "https://reuters.example/1", Description: "d", PubDate: time.Now(), FeedID: feed.ID}
	_, err = repos.Article.UpsertArticle(ctx, &a2)
	require.NoError(t, err)

	res, err := repos.Article.ArticlesAfter(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.True(t, res[0].IsVN, "unknown feed treated as native")
	assert.False(t, res[1].IsVN)

	res, err = repos.Article.ArticlesAfter(ctx, a1.ID, 10)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, a2.ID, res[0].ID)

	res, err = repos.Article.ArticlesAfter(ctx, a2.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, res)
}

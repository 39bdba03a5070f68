package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgraph/pkg/cache"
	"github.com/umputun/newsgraph/pkg/domain"
	"github.com/umputun/newsgraph/pkg/recommend/mocks"
	"github.com/umputun/newsgraph/pkg/repository"
)

var testNow = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

// setupGraph builds A1[kinh tế, giá vàng], A2[giá vàng, thị trường], A3[kinh tế] plus a future article
func setupGraph(t *testing.T) (*Engine, []domain.Article, *repository.Repositories) {
	t.Helper()
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	add := func(title string, pub time.Time, keywords ...string) domain.Article {
		a := domain.Article{Title: title, Link: "https://example.com/" + title, ImageURL: "https://example.com/i.jpg",
			Description: "mô tả " + title, PubDate: pub}
		inserted, err := repos.Article.UpsertArticle(ctx, &a)
		require.NoError(t, err)
		require.True(t, inserted)
		for _, k := range keywords {
			id, err := repos.Keyword.UpsertKeyword(ctx, k)
			require.NoError(t, err)
			require.NoError(t, repos.Keyword.LinkArticleKeyword(ctx, a.ID, id))
		}
		got, err := repos.Article.GetArticle(ctx, a.ID)
		require.NoError(t, err)
		return *got
	}

	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	a1 := add("A1", base.Add(-3*time.Hour), "kinh tế", "giá vàng")
	a2 := add("A2", base.Add(-2*time.Hour), "giá vàng", "thị trường")
	a3 := add("A3", base.Add(-1*time.Hour), "kinh tế")
	future := add("F1", base.Add(48*time.Hour), "tương lai xa")

	eng := NewEngine(Params{
		Articles: repos.Article,
		Keywords: repos.Keyword,
		Cache:    cache.NewLayer(cache.NewMemoryStore(1000), time.Second),
		TTL:      TTL{HotArticles: time.Minute, HotKeywords: time.Minute, Related: time.Minute},
		Now:      func() time.Time { return testNow },
	})
	return eng, []domain.Article{a1, a2, a3, future}, repos
}

func articleIDs(items []domain.Article) []int64 {
	res := make([]int64, len(items))
	for i, a := range items {
		res[i] = a.ID
	}
	return res
}

func TestEngine_RelatedArticlesByArticle(t *testing.T) {
	eng, arts, _ := setupGraph(t)
	a1, a2, a3 := arts[0], arts[1], arts[2]

	page, err := eng.RelatedArticlesByArticle(context.Background(), a1.ID, domain.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, []int64{a3.ID, a2.ID}, articleIDs(page.Items), "newest first, self excluded")
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)

	t.Run("second page", func(t *testing.T) {
		page, err := eng.RelatedArticlesByArticle(context.Background(), a1.ID, domain.PageRequest{Page: 2, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, []int64{a2.ID}, articleIDs(page.Items))
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := eng.RelatedArticlesByArticle(context.Background(), a1.ID, domain.PageRequest{Page: 5, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
		assert.Empty(t, page.Items)
	})

	t.Run("article without keywords", func(t *testing.T) {
		page, err := eng.RelatedArticlesByArticle(context.Background(), 9999, domain.PageRequest{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})
}

func TestEngine_ArticlesByKeywords(t *testing.T) {
	eng, arts, _ := setupGraph(t)
	a1, a2, a3 := arts[0], arts[1], arts[2]
	ctx := context.Background()

	page, err := eng.ArticlesByKeywords(ctx, []string{" Kinh Tế ", "thị trường"}, domain.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total, "union over keywords")
	assert.Equal(t, []int64{a3.ID, a2.ID, a1.ID}, articleIDs(page.Items))

	page, err = eng.ArticlesByKeywords(ctx, []string{"giá vàng", "không tồn tại"}, domain.PageRequest{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, []int64{a2.ID}, articleIDs(page.Items))

	page, err = eng.ArticlesByKeywords(ctx, []string{"không tồn tại"}, domain.PageRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
}

func TestEngine_RelatedKeywordsByName(t *testing.T) {
	eng, _, repos := setupGraph(t)
	ctx := context.Background()

	// one more article with both keywords to make counts differ
	a := domain.Article{Title: "A4", Link: "https://example.com/A4", ImageURL: "https://example.com/i.jpg", Description: "d",
		PubDate: testNow.Add(-time.Hour)}
	_, err := repos.Article.UpsertArticle(ctx, &a)
	require.NoError(t, err)
	for _, k := range []string{"giá vàng", "thị trường"} {
		id, err := repos.Keyword.UpsertKeyword(ctx, k)
		require.NoError(t, err)
		require.NoError(t, repos.Keyword.LinkArticleKeyword(ctx, a.ID, id))
	}

	res, err := eng.RelatedKeywordsByName(ctx, "Giá Vàng", 10)
	require.NoError(t, err)
	assert.Equal(t, "giá vàng", res.Keyword)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "thị trường", res.Items[0].Name)
	assert.Equal(t, 2, res.Items[0].Count)
	assert.Equal(t, "kinh tế", res.Items[1].Name)
	assert.Equal(t, 1, res.Items[1].Count)
	for _, it := range res.Items {
		assert.NotEqual(t, "giá vàng", it.Name)
	}

	res, err = eng.RelatedKeywordsByName(ctx, "giá vàng", 1)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "thị trường", res.Items[0].Name)

	res, err = eng.RelatedKeywordsByName(ctx, "không tồn tại", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Items)
}

func TestEngine_KeywordsByArticle(t *testing.T) {
	eng, arts, _ := setupGraph(t)

	res, err := eng.KeywordsByArticle(context.Background(), arts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, arts[0].ID, res.ArticleID)
	assert.Equal(t, 2, res.Total)
	names := []string{res.Items[0].Name, res.Items[1].Name}
	assert.ElementsMatch(t, []string{"kinh tế", "giá vàng"}, names)

	res, err = eng.KeywordsByArticle(context.Background(), 9999)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Items)
}

func TestEngine_HotArticles(t *testing.T) {
	eng, arts, _ := setupGraph(t)

	page, err := eng.HotArticles(context.Background(), domain.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total, "future article is not hot yet")
	assert.Equal(t, []int64{arts[2].ID, arts[1].ID}, articleIDs(page.Items))

	page, err = eng.HotArticles(context.Background(), domain.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{arts[0].ID}, articleIDs(page.Items))
}

func TestEngine_HotKeywords(t *testing.T) {
	eng, _, _ := setupGraph(t)

	res, err := eng.HotKeywords(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, res.Approximate)
	assert.Equal(t, 2, res.Limit)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.Items[0].Count)
	assert.Equal(t, 2, res.Items[1].Count)
	assert.ElementsMatch(t, []string{"kinh tế", "giá vàng"}, []string{res.Items[0].Name, res.Items[1].Name})
	assert.Less(t, res.Items[0].ID, res.Items[1].ID, "ties ordered by id")
}

func TestEngine_HotKeywordsFallback(t *testing.T) {
	edges := []domain.ArticleKeyword{
		{ArticleID: 3, KeywordID: 1}, {ArticleID: 2, KeywordID: 2}, {ArticleID: 2, KeywordID: 3},
		{ArticleID: 1, KeywordID: 1}, {ArticleID: 1, KeywordID: 2},
	}
	kwStore := &mocks.KeywordStoreMock{
		HotKeywordsFunc: func(ctx context.Context, limit int) ([]domain.KeywordCount, error) {
			return nil, errors.New("aggregate not supported")
		},
		ScanEdgesFunc: func(ctx context.Context, limit int) ([]domain.ArticleKeyword, error) {
			if limit < len(edges) {
				return edges[:limit], nil
			}
			return edges, nil
		},
		KeywordsByIDsFunc: func(ctx context.Context, ids []int64) ([]domain.Keyword, error) {
			all := map[int64]string{1: "kinh tế", 2: "giá vàng", 3: "thị trường"}
			res := []domain.Keyword{}
			for _, id := range ids {
				res = append(res, domain.Keyword{ID: id, Name: all[id]})
			}
			return res, nil
		},
	}
	eng := NewEngine(Params{Articles: &mocks.ArticleStoreMock{}, Keywords: kwStore})

	res, err := eng.HotKeywords(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, res.Approximate)
	assert.Equal(t, []domain.KeywordCount{
		{ID: 1, Name: "kinh tế", Count: 2},
		{ID: 2, Name: "giá vàng", Count: 2},
		{ID: 3, Name: "thị trường", Count: 1},
	}, res.Items)
	require.Len(t, kwStore.ScanEdgesCalls(), 1)
	assert.Equal(t, 5, kwStore.ScanEdgesCalls()[0].Limit)

	t.Run("empty aggregate falls back too", func(t *testing.T) {
		kwStore.HotKeywordsFunc = func(ctx context.Context, limit int) ([]domain.KeywordCount, error) {
			return []domain.KeywordCount{}, nil
		}
		res, err := eng.HotKeywords(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, res.Approximate)
		assert.Equal(t, []domain.KeywordCount{{ID: 1, Name: "kinh tế", Count: 1}}, res.Items)
	})

	t.Run("scan failure is an error", func(t *testing.T) {
		kwStore.ScanEdgesFunc = func(ctx context.Context, limit int) ([]domain.ArticleKeyword, error) {
			return nil, errors.New("db down")
		}
		_, err := eng.HotKeywords(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestEngine_CacheTransparency(t *testing.T) {
	kwStore := &mocks.KeywordStoreMock{
		HotKeywordsFunc: func(ctx context.Context, limit int) ([]domain.KeywordCount, error) {
			return []domain.KeywordCount{{ID: 1, Name: "kinh tế", Count: 7}, {ID: 2, Name: "giá vàng", Count: 3}}, nil
		},
	}
	layer := cache.NewLayer(cache.NewMemoryStore(100), time.Second)
	eng := NewEngine(Params{Articles: &mocks.ArticleStoreMock{}, Keywords: kwStore, Cache: layer,
		TTL: TTL{HotKeywords: time.Minute}})
	ctx := context.Background()

	first, err := eng.HotKeywords(ctx, 50)
	require.NoError(t, err)
	second, err := eng.HotKeywords(ctx, 50)
	require.NoError(t, err)

	b1, err := json.Marshal(first)
	require.NoError(t, err)
	b2, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))
	assert.Len(t, kwStore.HotKeywordsCalls(), 1, "second call served from cache")

	n, err := eng.ResetCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	_, err = eng.HotKeywords(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, kwStore.HotKeywordsCalls(), 2, "store queried again after reset")
}

func TestEngine_ResetCacheWithoutLayer(t *testing.T) {
	eng := NewEngine(Params{Articles: &mocks.ArticleStoreMock{}, Keywords: &mocks.KeywordStoreMock{}})
	n, err := eng.ResetCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEngine_Validation(t *testing.T) {
	// mocks without functions panic on any store access
	eng := NewEngine(Params{Articles: &mocks.ArticleStoreMock{}, Keywords: &mocks.KeywordStoreMock{},
		Limits: Limits{MaxPageSize: 50, MaxKeywords: 3, MaxHotKeywords: 100}})
	ctx := context.Background()
	var verr *domain.ValidationError

	tests := []struct {
		name  string
		call  func() error
		field string
	}{
		{"hot articles page 0", func() error {
			_, err := eng.HotArticles(ctx, domain.PageRequest{Page: 0, PageSize: 10})
			return err
		}, "page"},
		{"hot articles page size too big", func() error {
			_, err := eng.HotArticles(ctx, domain.PageRequest{Page: 1, PageSize: 51})
			return err
		}, "page_size"},
		{"hot keywords limit 0", func() error {
			_, err := eng.HotKeywords(ctx, 0)
			return err
		}, "limit"},
		{"hot keywords limit too big", func() error {
			_, err := eng.HotKeywords(ctx, 101)
			return err
		}, "limit"},
		{"no keywords", func() error {
			_, err := eng.ArticlesByKeywords(ctx, nil, domain.PageRequest{Page: 1, PageSize: 10})
			return err
		}, "keywords"},
		{"too many keywords", func() error {
			_, err := eng.ArticlesByKeywords(ctx, []string{"aaa bbb", "ccc ddd", "eee fff", "ggg hhh"}, domain.PageRequest{Page: 1, PageSize: 10})
			return err
		}, "keywords"},
		{"blank keyword", func() error {
			_, err := eng.ArticlesByKeywords(ctx, []string{"aaa bbb", "  "}, domain.PageRequest{Page: 1, PageSize: 10})
			return err
		}, "keywords"},
		{"keywords bad page size", func() error {
			_, err := eng.ArticlesByKeywords(ctx, []string{"aaa bbb"}, domain.PageRequest{Page: 1, PageSize: 0})
			return err
		}, "page_size"},
		{"related keywords empty name", func() error {
			_, err := eng.RelatedKeywordsByName(ctx, " ", 10)
			return err
		}, "name"},
		{"related keywords bad limit", func() error {
			_, err := eng.RelatedKeywordsByName(ctx, "giá vàng", -1)
			return err
		}, "limit"},
		{"keywords by article bad id", func() error {
			_, err := eng.KeywordsByArticle(ctx, 0)
			return err
		}, "article_id"},
		{"related articles bad page", func() error {
			_, err := eng.RelatedArticlesByArticle(ctx, 1, domain.PageRequest{Page: -1, PageSize: 10})
			return err
		}, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	t.Run("duplicate keywords count once", func(t *testing.T) {
		names, err := eng.normalizeKeywords([]string{"AAA bbb", "aaa bbb ", "ccc ddd", "eee fff"})
		require.NoError(t, err)
		assert.Equal(t, []string{"aaa bbb", "ccc ddd", "eee fff"}, names)
	})
}

func TestEngine_StoreErrors(t *testing.T) {
	artStore := &mocks.ArticleStoreMock{
		HotArticlesFunc: func(ctx context.Context, before time.Time, limit, offset int) ([]domain.Article, int, error) {
			return nil, 0, errors.New("disk I/O error")
		},
		ArticlesByIDsFunc: func(ctx context.Context, ids []int64) ([]domain.Article, error) {
			return nil, errors.New("disk I/O error")
		},
	}
	kwStore := &mocks.KeywordStoreMock{
		KeywordsByArticleFunc: func(ctx context.Context, articleID int64) ([]domain.Keyword, error) {
			return []domain.Keyword{{ID: 1, Name: "kinh tế"}}, nil
		},
		ArticleIDsByKeywordsFunc: func(ctx context.Context, keywordIDs []int64, excludeID int64, limit, offset int) ([]int64, int, error) {
			assert.Equal(t, int64(7), excludeID)
			assert.Equal(t, 10, offset)
			return []int64{3}, 11, nil
		},
	}
	store := &cacheStoreRecorder{}
	eng := NewEngine(Params{Articles: artStore, Keywords: kwStore, Cache: cache.NewLayer(store, time.Second),
		Now: func() time.Time { return testNow }})
	ctx := context.Background()

	_, err := eng.HotArticles(ctx, domain.PageRequest{Page: 1, PageSize: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hot articles")
	require.Len(t, artStore.HotArticlesCalls(), 1)
	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC), artStore.HotArticlesCalls()[0].Before)

	_, err = eng.RelatedArticlesByArticle(ctx, 7, domain.PageRequest{Page: 2, PageSize: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")

	assert.Empty(t, store.sets, "errors are never cached")
}

// cacheStoreRecorder is an always-missing cache store recording writes
type cacheStoreRecorder struct {
	sets []string
}

func (s *cacheStoreRecorder) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (s *cacheStoreRecorder) Set(_ context.Context, key string, _ []byte, _ time.Duration) error {
	s.sets = append(s.sets, key)
	return nil
}

func (s *cacheStoreRecorder) Delete(context.Context, ...string) error { return nil }

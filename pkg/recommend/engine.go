// Package recommend answers graph queries over articles and keywords: hot articles, hot keywords,
// articles by keywords, keyword co-occurrence and related articles. Results are cached.
package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsgraph/pkg/cache"
	"github.com/umputun/newsgraph/pkg/domain"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/keyword_store.go -pkg mocks -skip-ensure -fmt goimports . KeywordStore

// ArticleStore provides article reads
type ArticleStore interface {
	HotArticles(ctx context.Context, before time.Time, limit, offset int) ([]domain.Article, int, error)
	ArticlesByIDs(ctx context.Context, ids []int64) ([]domain.Article, error)
}

// KeywordStore provides reads of the article-keyword graph
type KeywordStore interface {
	KeywordByName(ctx context.Context, name string) (domain.Keyword, bool, error)
	KeywordIDsByNames(ctx context.Context, names []string) ([]int64, error)
	KeywordsByArticle(ctx context.Context, articleID int64) ([]domain.Keyword, error)
	KeywordsByIDs(ctx context.Context, ids []int64) ([]domain.Keyword, error)
	ArticleIDsByKeywords(ctx context.Context, keywordIDs []int64, excludeID int64, limit, offset int) ([]int64, int, error)
	HotKeywords(ctx context.Context, limit int) ([]domain.KeywordCount, error)
	ScanEdges(ctx context.Context, limit int) ([]domain.ArticleKeyword, error)
	CooccurringKeywords(ctx context.Context, keywordID int64, limit int) ([]domain.KeywordCount, error)
}

// TTL defines how long query results stay cached
type TTL struct {
	HotArticles time.Duration
	HotKeywords time.Duration
	Related     time.Duration
}

// Limits bound request parameters
type Limits struct {
	MaxPageSize    int
	MaxKeywords    int
	MaxHotKeywords int
}

// Params defines engine dependencies. Cache may be nil, then every query goes to the stores.
type Params struct {
	Articles ArticleStore
	Keywords KeywordStore
	Cache    *cache.Layer
	TTL      TTL
	Limits   Limits
	Now      func() time.Time
}

// Engine answers recommendation queries
type Engine struct {
	Params
}

// NewEngine makes an engine, zero limits are replaced by defaults
func NewEngine(p Params) *Engine {
	if p.Limits.MaxPageSize <= 0 {
		p.Limits.MaxPageSize = 100
	}
	if p.Limits.MaxKeywords <= 0 {
		p.Limits.MaxKeywords = 25
	}
	if p.Limits.MaxHotKeywords <= 0 {
		p.Limits.MaxHotKeywords = 200
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Engine{Params: p}
}

// HotArticles returns articles published up to the end of today, newest first
func (e *Engine) HotArticles(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Article], error) {
	if err := req.Validate(e.Limits.MaxPageSize); err != nil {
		return domain.Page[domain.Article]{}, err
	}
	key := cache.HotArticlesKey(req.Page, req.PageSize)
	return cache.Fetch(ctx, e.Cache, key, e.TTL.HotArticles, func(ctx context.Context) (domain.Page[domain.Article], error) {
		items, total, err := e.Articles.HotArticles(ctx, endOfDay(e.Now()), req.PageSize, req.Offset())
		if err != nil {
			return domain.Page[domain.Article]{}, fmt.Errorf("hot articles: %w", err)
		}
		return domain.Page[domain.Article]{Items: items, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
	})
}

// HotKeywords returns keywords linked to the largest number of articles. The aggregate query is
// preferred, if it fails or returns nothing counts are approximated from a scan of limit edges.
func (e *Engine) HotKeywords(ctx context.Context, limit int) (domain.KeywordList, error) {
	if err := e.validateLimit(limit); err != nil {
		return domain.KeywordList{}, err
	}
	return cache.Fetch(ctx, e.Cache, cache.HotKeywordsKey(limit), e.TTL.HotKeywords,
		func(ctx context.Context) (domain.KeywordList, error) {
			items, err := e.Keywords.HotKeywords(ctx, limit)
			if err == nil && len(items) > 0 {
				return domain.KeywordList{Items: items, Total: len(items), Limit: limit}, nil
			}
			if err != nil {
				lgr.Printf("[WARN] hot keywords aggregate failed, falling back to edge scan: %v", err)
			}
			items, err = e.scanHotKeywords(ctx, limit)
			if err != nil {
				return domain.KeywordList{}, fmt.Errorf("hot keywords: %w", err)
			}
			return domain.KeywordList{Items: items, Total: len(items), Limit: limit, Approximate: true}, nil
		})
}

// scanHotKeywords counts distinct articles per keyword over at most limit edges
func (e *Engine) scanHotKeywords(ctx context.Context, limit int) ([]domain.KeywordCount, error) {
	edges, err := e.Keywords.ScanEdges(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("scan edges: %w", err)
	}

	articles := map[int64]map[int64]struct{}{}
	for _, edge := range edges {
		if articles[edge.KeywordID] == nil {
			articles[edge.KeywordID] = map[int64]struct{}{}
		}
		articles[edge.KeywordID][edge.ArticleID] = struct{}{}
	}
	if len(articles) == 0 {
		return []domain.KeywordCount{}, nil
	}

	counts := make([]domain.KeywordCount, 0, len(articles))
	for id, arts := range articles {
		counts = append(counts, domain.KeywordCount{ID: id, Count: len(arts)})
	}
	sortCounts(counts)
	if len(counts) > limit {
		counts = counts[:limit]
	}

	ids := make([]int64, len(counts))
	for i, c := range counts {
		ids[i] = c.ID
	}
	kws, err := e.Keywords.KeywordsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("keywords by ids: %w", err)
	}
	names := make(map[int64]string, len(kws))
	for _, k := range kws {
		names[k.ID] = k.Name
	}

	res := make([]domain.KeywordCount, 0, len(counts))
	for _, c := range counts {
		if name, ok := names[c.ID]; ok {
			c.Name = name
			res = append(res, c)
		}
	}
	return res, nil
}

// ResetCache removes cached hot articles and hot keywords for the common pages and limits,
// other entries expire by ttl. Returns the number of keys removed.
func (e *Engine) ResetCache(ctx context.Context) (int, error) {
	if e.Cache == nil {
		return 0, nil
	}
	keys := cache.ResetKeys()
	if err := e.Cache.Delete(ctx, keys...); err != nil {
		return 0, fmt.Errorf("reset cache: %w", err)
	}
	lgr.Printf("[INFO] cache reset, %d keys removed", len(keys))
	return len(keys), nil
}

// ArticlesByKeywords returns articles linked to any of the keywords, newest first.
// Names are trimmed and lower-cased, unknown names are ignored.
func (e *Engine) ArticlesByKeywords(ctx context.Context, keywords []string, req domain.PageRequest) (domain.Page[domain.Article], error) {
	names, err := e.normalizeKeywords(keywords)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}
	if err := req.Validate(e.Limits.MaxPageSize); err != nil {
		return domain.Page[domain.Article]{}, err
	}

	key := cache.ArticlesByKeywordsKey(names, req.Page, req.PageSize)
	return cache.Fetch(ctx, e.Cache, key, e.TTL.Related, func(ctx context.Context) (domain.Page[domain.Article], error) {
		ids, err := e.Keywords.KeywordIDsByNames(ctx, names)
		if err != nil {
			return domain.Page[domain.Article]{}, fmt.Errorf("articles by keywords: %w", err)
		}
		if len(ids) == 0 {
			return domain.EmptyPage[domain.Article](req), nil
		}
		return e.articlesPage(ctx, ids, 0, req)
	})
}

// RelatedKeywordsByName returns keywords sharing articles with the named keyword, most shared first.
// The keyword itself is never included, unknown name gives an empty list.
func (e *Engine) RelatedKeywordsByName(ctx context.Context, name string, limit int) (domain.KeywordList, error) {
	name = domain.NormalizeKeyword(name)
	if name == "" {
		return domain.KeywordList{}, &domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if err := e.validateLimit(limit); err != nil {
		return domain.KeywordList{}, err
	}

	key := cache.RelatedKeywordsKey(name, limit)
	return cache.Fetch(ctx, e.Cache, key, e.TTL.Related, func(ctx context.Context) (domain.KeywordList, error) {
		res := domain.KeywordList{Items: []domain.KeywordCount{}, Limit: limit, Keyword: name}
		kw, found, err := e.Keywords.KeywordByName(ctx, name)
		if err != nil {
			return domain.KeywordList{}, fmt.Errorf("related keywords: %w", err)
		}
		if !found {
			return res, nil
		}
		items, err := e.Keywords.CooccurringKeywords(ctx, kw.ID, limit)
		if err != nil {
			return domain.KeywordList{}, fmt.Errorf("related keywords: %w", err)
		}
		res.Items, res.Total = items, len(items)
		return res, nil
	})
}

// KeywordsByArticle returns keywords linked to the article
func (e *Engine) KeywordsByArticle(ctx context.Context, articleID int64) (domain.ArticleKeywords, error) {
	if articleID < 1 {
		return domain.ArticleKeywords{}, &domain.ValidationError{Field: "article_id", Msg: "must be positive"}
	}
	key := cache.ArticleKeywordsKey(articleID)
	return cache.Fetch(ctx, e.Cache, key, e.TTL.Related, func(ctx context.Context) (domain.ArticleKeywords, error) {
		kws, err := e.Keywords.KeywordsByArticle(ctx, articleID)
		if err != nil {
			return domain.ArticleKeywords{}, fmt.Errorf("keywords by article: %w", err)
		}
		if kws == nil {
			kws = []domain.Keyword{}
		}
		return domain.ArticleKeywords{ArticleID: articleID, Items: kws, Total: len(kws)}, nil
	})
}

// RelatedArticlesByArticle returns other articles sharing at least one keyword with the article,
// newest first. Ranking is by date only, the number of shared keywords is not considered.
func (e *Engine) RelatedArticlesByArticle(ctx context.Context, articleID int64, req domain.PageRequest) (domain.Page[domain.Article], error) {
	if articleID < 1 {
		return domain.Page[domain.Article]{}, &domain.ValidationError{Field: "article_id", Msg: "must be positive"}
	}
	if err := req.Validate(e.Limits.MaxPageSize); err != nil {
		return domain.Page[domain.Article]{}, err
	}

	key := cache.RelatedArticlesKey(articleID, req.Page, req.PageSize)
	return cache.Fetch(ctx, e.Cache, key, e.TTL.Related, func(ctx context.Context) (domain.Page[domain.Article], error) {
		kws, err := e.Keywords.KeywordsByArticle(ctx, articleID)
		if err != nil {
			return domain.Page[domain.Article]{}, fmt.Errorf("related articles: %w", err)
		}
		if len(kws) == 0 {
			return domain.EmptyPage[domain.Article](req), nil
		}
		ids := make([]int64, len(kws))
		for i, k := range kws {
			ids[i] = k.ID
		}
		return e.articlesPage(ctx, ids, articleID, req)
	})
}

// articlesPage loads a page of articles linked to any of keywordIDs, excluding excludeID
func (e *Engine) articlesPage(ctx context.Context, keywordIDs []int64, excludeID int64, req domain.PageRequest) (domain.Page[domain.Article], error) {
	ids, total, err := e.Keywords.ArticleIDsByKeywords(ctx, keywordIDs, excludeID, req.PageSize, req.Offset())
	if err != nil {
		return domain.Page[domain.Article]{}, fmt.Errorf("article ids by keywords: %w", err)
	}
	if total == 0 {
		return domain.EmptyPage[domain.Article](req), nil
	}
	items := []domain.Article{}
	if len(ids) > 0 {
		if items, err = e.Articles.ArticlesByIDs(ctx, ids); err != nil {
			return domain.Page[domain.Article]{}, fmt.Errorf("articles by ids: %w", err)
		}
	}
	return domain.Page[domain.Article]{Items: items, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

// normalizeKeywords trims, lower-cases and deduplicates names, keeping order
func (e *Engine) normalizeKeywords(keywords []string) ([]string, error) {
	res := make([]string, 0, len(keywords))
	seen := map[string]bool{}
	for _, k := range keywords {
		n := domain.NormalizeKeyword(k)
		if n == "" {
			return nil, &domain.ValidationError{Field: "keywords", Msg: "must not contain empty names"}
		}
		if !seen[n] {
			seen[n] = true
			res = append(res, n)
		}
	}
	if len(res) == 0 || len(res) > e.Limits.MaxKeywords {
		return nil, &domain.ValidationError{Field: "keywords", Msg: fmt.Sprintf("must have between 1 and %d names", e.Limits.MaxKeywords)}
	}
	return res, nil
}

func (e *Engine) validateLimit(limit int) error {
	if limit < 1 || limit > e.Limits.MaxHotKeywords {
		return &domain.ValidationError{Field: "limit", Msg: fmt.Sprintf("must be between 1 and %d", e.Limits.MaxHotKeywords)}
	}
	return nil
}

// endOfDay returns the last second of t's day in UTC
func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}

// sortCounts orders by count descending, id ascending
func sortCounts(counts []domain.KeywordCount) {
	slices.SortFunc(counts, func(a, b domain.KeywordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

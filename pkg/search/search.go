// Package search implements substring search over article titles and descriptions.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/newsgraph/pkg/cache"
	"github.com/umputun/newsgraph/pkg/domain"
)

//go:generate moq -out mocks/article_searcher.go -pkg mocks -skip-ensure -fmt goimports . ArticleSearcher

// ArticleSearcher finds articles containing a literal substring, case-insensitive
type ArticleSearcher interface {
	SearchArticles(ctx context.Context, query string, limit, offset int) ([]domain.Article, int, error)
}

// Engine runs cached article searches
type Engine struct {
	store       ArticleSearcher
	cache       *cache.Layer
	ttl         time.Duration
	maxPageSize int
}

// NewEngine makes search engine, layer may be nil to disable caching
func NewEngine(store ArticleSearcher, layer *cache.Layer, ttl time.Duration, maxPageSize int) *Engine {
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &Engine{store: store, cache: layer, ttl: ttl, maxPageSize: maxPageSize}
}

// Search returns articles with title or description containing the query, newest first.
// Blank query gives an empty page without touching the store.
func (e *Engine) Search(ctx context.Context, query string, req domain.PageRequest) (domain.Page[domain.Article], error) {
	if err := req.Validate(e.maxPageSize); err != nil {
		return domain.Page[domain.Article]{}, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.EmptyPage[domain.Article](req), nil
	}
	q := strings.ToLower(query)

	key := cache.SearchKey(q, req.Page, req.PageSize)
	return cache.Fetch(ctx, e.cache, key, e.ttl, func(ctx context.Context) (domain.Page[domain.Article], error) {
		items, total, err := e.store.SearchArticles(ctx, q, req.PageSize, req.Offset())
		if err != nil {
			return domain.Page[domain.Article]{}, fmt.Errorf("search articles: %w", err)
		}
		return domain.Page[domain.Article]{Items: items, Total: total, Page: req.Page, PageSize: req.PageSize, Query: query}, nil
	})
}

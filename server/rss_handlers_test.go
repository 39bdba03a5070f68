package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgraph/pkg/domain"
)

func TestServer_RSS(t *testing.T) {
	pub := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)

	t.Run("keyword feed", func(t *testing.T) {
		srv, deps := testServer(t)
		deps.store.LatestByKeywordFunc = func(ctx context.Context, name string, limit int) ([]domain.Article, error) {
			return []domain.Article{
				{ID: 1, Title: "Giá vàng tăng mạnh", Link: "https://example.com/1", Hash: "h1", PubDate: pub,
					ImageURL: "https://example.com/1.jpg", Description: "Giá vàng hôm nay"},
				{ID: 2, Title: "Vàng & USD", Link: "https://example.com/2", Hash: "h2", PubDate: pub},
			}, nil
		}
		deps.store.KeywordNamesFunc = func(ctx context.Context, articleIDs []int64) (map[int64][]string, error) {
			assert.Equal(t, []int64{1, 2}, articleIDs)
			return map[int64][]string{1: {"giá vàng", "thị trường"}}, nil
		}

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/Gi%C3%A1%20V%C3%A0ng", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))

		call := deps.store.LatestByKeywordCalls()[0]
		assert.Equal(t, "giá vàng", call.Name)
		assert.Equal(t, defaultRSSLimit, call.Limit)

		body := w.Body.String()
		assert.Contains(t, body, "<title>Newsgraph - giá vàng</title>")
		assert.Contains(t, body, "<title>Giá vàng tăng mạnh</title>")
		assert.Contains(t, body, "<title>Vàng &amp; USD</title>")
		assert.Contains(t, body, "<category>thị trường</category>")
		assert.Contains(t, body, `href="http://news.example.com/rss/gi%C3%A1%20v%C3%A0ng"`)
		assert.Contains(t, body, `url="https://example.com/1.jpg"`)
	})

	t.Run("keyword names failure keeps feed", func(t *testing.T) {
		srv, deps := testServer(t)
		deps.store.LatestByKeywordFunc = func(ctx context.Context, name string, limit int) ([]domain.Article, error) {
			return []domain.Article{{ID: 1, Title: "Giá vàng", Link: "https://example.com/1", PubDate: pub}}, nil
		}
		deps.store.KeywordNamesFunc = func(ctx context.Context, articleIDs []int64) (map[int64][]string, error) {
			return nil, errors.New("locked")
		}
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/vang", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Giá vàng</title>")
		assert.NotContains(t, w.Body.String(), "<category>")
	})

	t.Run("blank keyword", func(t *testing.T) {
		srv, deps := testServer(t)
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/%20%20", http.NoBody))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, deps.store.LatestByKeywordCalls())
	})

	t.Run("store error", func(t *testing.T) {
		srv, deps := testServer(t)
		deps.store.LatestByKeywordFunc = func(ctx context.Context, name string, limit int) ([]domain.Article, error) {
			return nil, errors.New("no such table")
		}
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/rss/vang", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to generate RSS feed")
		assert.NotContains(t, w.Body.String(), "no such table")
	})
}

func TestServer_OPML(t *testing.T) {
	srv, deps := testServer(t)
	deps.store.GetFeedsFunc = func(ctx context.Context, enabledOnly bool) ([]domain.Feed, error) {
		assert.True(t, enabledOnly)
		return []domain.Feed{
			{ID: 1, URL: "https://vnexpress.net/rss/kinh-doanh.rss", Title: "Kinh doanh", Publisher: "vnexpress", Enabled: true},
			{ID: 2, URL: "https://vnexpress.net/rss/the-gioi.rss", Title: "Thế giới", Publisher: "vnexpress", Enabled: true},
		}, nil
	}

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/opml", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-opml; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `text="vnexpress"`)
	assert.Contains(t, body, `xmlUrl="https://vnexpress.net/rss/kinh-doanh.rss"`)
	assert.Contains(t, body, `title="Thế giới"`)

	deps.store.GetFeedsFunc = func(ctx context.Context, enabledOnly bool) ([]domain.Feed, error) {
		return nil, errors.New("closed")
	}
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/opml", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

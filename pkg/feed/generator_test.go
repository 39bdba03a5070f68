package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsgraph/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")
	pubTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	articles := []domain.Article{
		{ID: 1, Title: "Giá vàng tăng", Link: "https://example.com/a1", Hash: "h1", Description: "mô tả 1",
			ImageURL: "https://example.com/a1.png", PubDate: pubTime},
		{ID: 2, Title: "Kinh tế & thị trường", Link: "https://example.com/a2", Hash: "h2", Description: "mô tả 2",
			PubDate: pubTime.Add(-time.Hour)},
	}
	keywords := map[int64][]string{1: {"giá vàng", "kinh tế"}}

	rss, err := generator.GenerateRSS("giá vàng", articles, keywords)
	require.NoError(t, err)

	assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, rss, `<title>Newsgraph - giá vàng</title>`)
	assert.Contains(t, rss, `<link>https://example.com/</link>`)
	assert.Contains(t, rss, `href="https://example.com/rss/gi%C3%A1%20v%C3%A0ng"`)

	assert.Contains(t, rss, `<title>Giá vàng tăng</title>`)
	assert.Contains(t, rss, `<guid>h1</guid>`)
	assert.Contains(t, rss, `<enclosure url="https://example.com/a1.png" type="image/png" length="0"></enclosure>`)
	assert.Contains(t, rss, `<category>giá vàng</category>`)
	assert.Contains(t, rss, `<category>kinh tế</category>`)
	assert.Contains(t, rss, `<pubDate>Mon, 01 Jan 2024 12:00:00 +0000</pubDate>`)
	assert.Contains(t, rss, `<title>Kinh tế &amp; thị trường</title>`)

	t.Run("empty", func(t *testing.T) {
		rss, err := generator.GenerateRSS("none", nil, nil)
		require.NoError(t, err)
		assert.Contains(t, rss, `<title>Newsgraph - none</title>`)
		assert.NotContains(t, rss, "<item>")
	})
}

func TestGenerator_GenerateOPML(t *testing.T) {
	generator := NewGenerator("https://example.com")
	feeds := []domain.Feed{
		{URL: "https://vnexpress.net/rss/kinh-doanh.rss", Title: "Kinh doanh", Publisher: "vnexpress", Enabled: true},
		{URL: "https://tuoitre.vn/rss/tin-moi-nhat.rss", Title: "Tin mới", Publisher: "tuoitre", Enabled: true},
		{URL: "https://vnexpress.net/rss/the-gioi.rss", Title: "Thế giới", Publisher: "vnexpress", Enabled: true},
		{URL: "https://disabled.com/rss", Title: "Disabled", Publisher: "x", Enabled: false},
	}

	opml, err := generator.GenerateOPML(feeds)
	require.NoError(t, err)

	assert.Contains(t, opml, `<opml version="2.0">`)
	assert.Contains(t, opml, `<title>Newsgraph Feed Subscriptions</title>`)
	assert.Contains(t, opml, `<outline text="vnexpress" title="vnexpress">`)
	assert.Contains(t, opml, `<outline text="tuoitre" title="tuoitre">`)
	assert.Contains(t, opml, `xmlUrl="https://vnexpress.net/rss/kinh-doanh.rss"`)
	assert.Contains(t, opml, `xmlUrl="https://vnexpress.net/rss/the-gioi.rss"`)
	assert.NotContains(t, opml, "disabled.com")
}

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "hot_articles:1:20", HotArticlesKey(1, 20))
	assert.Equal(t, "hot_keywords:50", HotKeywordsKey(50))
	assert.Equal(t, "search:giá vàng:2:10", SearchKey("  Giá VÀNG ", 2, 10))
	assert.Equal(t, SearchKey("abc", 1, 10), SearchKey("ABC ", 1, 10))
	assert.NotEqual(t, SearchKey("abc", 1, 10), SearchKey("abc", 2, 10))
	assert.Equal(t, "related_keywords:giá vàng:10", RelatedKeywordsKey("giá vàng", 10))
	assert.Equal(t, "article_keywords:42", ArticleKeywordsKey(42))
	assert.Equal(t, "related_articles:42:1:10", RelatedArticlesKey(42, 1, 10))
}

func TestArticlesByKeywordsKey(t *testing.T) {
	k1 := ArticlesByKeywordsKey([]string{"b", "a"}, 1, 20)
	k2 := ArticlesByKeywordsKey([]string{"a", "b"}, 1, 20)
	assert.Equal(t, k1, k2, "order independent")
	assert.Contains(t, k1, "articles_by_keywords:")
	assert.NotEqual(t, k1, ArticlesByKeywordsKey([]string{"a", "b"}, 2, 20))
	assert.NotEqual(t, k1, ArticlesByKeywordsKey([]string{"ab"}, 1, 20))

	names := []string{"z", "y"}
	ArticlesByKeywordsKey(names, 1, 1)
	assert.Equal(t, []string{"z", "y"}, names, "input not modified")
}

func TestResetKeys(t *testing.T) {
	keys := ResetKeys()
	assert.Len(t, keys, 5*4+5)
	assert.Contains(t, keys, "hot_articles:1:10")
	assert.Contains(t, keys, "hot_articles:5:100")
	assert.Contains(t, keys, "hot_keywords:50")
	assert.Contains(t, keys, "hot_keywords:200")
	assert.NotContains(t, keys, "hot_articles:6:10")
	assert.NotContains(t, keys, "hot_keywords:30")
}

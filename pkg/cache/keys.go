package cache

import (
	"crypto/md5" //nolint:gosec // key shortening only
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// reset enumeration, common page/size/limit combinations requested by clients
var (
	resetPages     = []int{1, 2, 3, 4, 5}
	resetPageSizes = []int{10, 20, 50, 100}
	resetLimits    = []int{10, 20, 50, 100, 200}
)

// HotArticlesKey makes key of hot articles page
func HotArticlesKey(page, pageSize int) string {
	return fmt.Sprintf("hot_articles:%d:%d", page, pageSize)
}

// HotKeywordsKey makes key of hot keywords list
func HotKeywordsKey(limit int) string {
	return fmt.Sprintf("hot_keywords:%d", limit)
}

// SearchKey makes key of search page, query is trimmed and lower-cased
func SearchKey(query string, page, pageSize int) string {
	return fmt.Sprintf("search:%s:%d:%d", strings.ToLower(strings.TrimSpace(query)), page, pageSize)
}

// ArticlesByKeywordsKey makes key of articles-by-keywords page. Names are expected normalized,
// key doesn't depend on their order.
func ArticlesByKeywordsKey(names []string, page, pageSize int) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sum := md5.Sum([]byte(strings.Join(sorted, "\x00"))) //nolint:gosec // key shortening only
	return fmt.Sprintf("articles_by_keywords:%s:%d:%d", hex.EncodeToString(sum[:]), page, pageSize)
}

// RelatedKeywordsKey makes key of keywords co-occurring with the named keyword
func RelatedKeywordsKey(name string, limit int) string {
	return fmt.Sprintf("related_keywords:%s:%d", name, limit)
}

// ArticleKeywordsKey makes key of keywords linked to the article
func ArticleKeywordsKey(articleID int64) string {
	return fmt.Sprintf("article_keywords:%d", articleID)
}

// RelatedArticlesKey makes key of articles related to the article
func RelatedArticlesKey(articleID int64, page, pageSize int) string {
	return fmt.Sprintf("related_articles:%d:%d:%d", articleID, page, pageSize)
}

// ResetKeys returns the fixed set of keys removed by cache reset: hot articles for the common
// pages and page sizes, and hot keywords for the common limits. Other keys expire by ttl.
func ResetKeys() []string {
	keys := make([]string, 0, len(resetPages)*len(resetPageSizes)+len(resetLimits))
	for _, p := range resetPages {
		for _, s := range resetPageSizes {
			keys = append(keys, HotArticlesKey(p, s))
		}
	}
	for _, l := range resetLimits {
		keys = append(keys, HotKeywordsKey(l))
	}
	return keys
}

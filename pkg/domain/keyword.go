package domain

// Keyword is a lower-cased noun phrase extracted from article titles
type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Hash string `json:"hash"`
}

// KeywordCount is a keyword annotated with the number of distinct articles it appears in,
// either overall (hot keywords) or together with another keyword (co-occurrence)
type KeywordCount struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ArticleKeyword is an edge of the article-keyword graph
type ArticleKeyword struct {
	ArticleID int64 `json:"article_id"`
	KeywordID int64 `json:"keyword_id"`
}

// KeywordList is a ranked list of keywords. Keyword is set for co-occurrence lists and names
// the keyword the list is related to. Approximate marks counts derived from a bounded edge scan.
type KeywordList struct {
	Items       []KeywordCount `json:"items"`
	Total       int            `json:"total"`
	Limit       int            `json:"limit"`
	Keyword     string         `json:"keyword,omitempty"`
	Approximate bool           `json:"approximate,omitempty"`
}

// ArticleKeywords lists keywords directly linked to an article
type ArticleKeywords struct {
	ArticleID int64     `json:"article_id"`
	Items     []Keyword `json:"items"`
	Total     int       `json:"total"`
}

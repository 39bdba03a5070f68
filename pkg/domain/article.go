package domain

import "time"

// Article represents a normalized news entry, stored once per link hash
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pub_date"`
	FeedID      int64     `json:"feed_id"`
	Hash        string    `json:"hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArticleSource is an article joined with its publisher language flag, used by keyword extraction
type ArticleSource struct {
	ID    int64
	Title string
	IsVN  bool
}

// ExtractedContent represents full-text content extracted from an article page
type ExtractedContent struct {
	URL     string     `json:"url"`
	Title   string     `json:"title"`
	Text    string     `json:"text"`
	Images  []string   `json:"images"`
	PubDate *time.Time `json:"pub_date,omitempty"`
	Author  string     `json:"author,omitempty"`
}

// TranslatedArticle is an extracted article with its text translated into TargetLang
type TranslatedArticle struct {
	URL            string     `json:"url"`
	OriginalTitle  string     `json:"original_title"`
	OriginalText   string     `json:"original_text"`
	TranslatedText string     `json:"translated_text"`
	TargetLang     string     `json:"target_lang"`
	WordCount      int        `json:"word_count"`
	Author         string     `json:"author,omitempty"`
	PubDate        *time.Time `json:"pub_date,omitempty"`
}

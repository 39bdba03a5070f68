package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsgraph/pkg/domain"
)

// Extractor extracts article content from a page
type Extractor interface {
	Extract(ctx context.Context, url string) (*domain.ExtractedContent, error)
}

// TextTranslator translates full article text
type TextTranslator interface {
	TranslateArticle(ctx context.Context, text, lang string) (string, error)
}

// Translator extracts an article and translates its text. Articles longer than maxWords are rejected
// before any translation request.
type Translator struct {
	extractor  Extractor
	translator TextTranslator
	maxWords   int
	lang       string
}

// NewTranslator makes article translator, lang is the target used when a call passes none
func NewTranslator(extractor Extractor, translator TextTranslator, maxWords int, lang string) *Translator {
	if maxWords <= 0 {
		maxWords = 1500
	}
	if lang == "" {
		lang = "vi"
	}
	return &Translator{extractor: extractor, translator: translator, maxWords: maxWords, lang: lang}
}

// Translate extracts the article at url and translates its text into lang.
// Too long article is reported as *domain.ValidationError.
func (t *Translator) Translate(ctx context.Context, url, lang string) (*domain.TranslatedArticle, error) {
	if lang = strings.TrimSpace(lang); lang == "" {
		lang = t.lang
	}

	article, err := t.extractor.Extract(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}

	words := len(strings.Fields(article.Text))
	if words > t.maxWords {
		return nil, &domain.ValidationError{Field: "url", Msg: fmt.Sprintf("article is too long, %d words, max %d", words, t.maxWords)}
	}

	translated, err := t.translator.TranslateArticle(ctx, article.Text, lang)
	if err != nil {
		return nil, fmt.Errorf("translate %s: %w", url, err)
	}
	lgr.Printf("[DEBUG] translated %s into %s, %d words", url, lang, words)

	return &domain.TranslatedArticle{
		URL:            article.URL,
		OriginalTitle:  article.Title,
		OriginalText:   article.Text,
		TranslatedText: translated,
		TargetLang:     lang,
		WordCount:      words,
		Author:         article.Author,
		PubDate:        article.PubDate,
	}, nil
}

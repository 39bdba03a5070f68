// Package keyword turns article titles into keyword phrases. Titles of foreign publishers are
// translated first, then tagged, and noun phrases passing validation and stopword filters are kept.
package keyword

import (
	"context"
	"fmt"
	"strings"
)

//go:generate moq -out mocks/tagger.go -pkg mocks -skip-ensure -fmt goimports . Tagger
//go:generate moq -out mocks/translator.go -pkg mocks -skip-ensure -fmt goimports . Translator

// Token is a word or a multi-word phrase with its part-of-speech tag
type Token struct {
	Word string
	Tag  string
}

// Tagger splits text into part-of-speech tagged tokens
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}

// Translator translates text into the target language
type Translator interface {
	Translate(ctx context.Context, text, lang string) (string, error)
}

// Extractor derives keyword phrases from article titles
type Extractor struct {
	tagger     Tagger
	translator *RetryTranslator
	stopwords  Stopwords
	lang       string
}

// NewExtractor makes an extractor. Translator may be nil, in this case titles are tagged as is.
func NewExtractor(tagger Tagger, translator *RetryTranslator, stopwords Stopwords, lang string) *Extractor {
	if stopwords == nil {
		stopwords = Stopwords{}
	}
	return &Extractor{tagger: tagger, translator: translator, stopwords: stopwords, lang: lang}
}

// Extract returns unique lower-cased keywords of the title in order of appearance.
// Non-native titles are translated on a best-effort basis, tagging errors are returned.
func (e *Extractor) Extract(ctx context.Context, title string, native bool) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return []string{}, nil
	}

	if !native && e.translator != nil {
		title = e.translator.Translate(ctx, title, e.lang)
	}

	tokens, err := e.tagger.Tag(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("tag title: %w", err)
	}
	return e.Filter(tokens), nil
}

// Filter keeps valid noun phrases without stopwords, lower-cased and deduplicated
func (e *Extractor) Filter(tokens []Token) []string {
	res := []string{}
	seen := map[string]bool{}
	for _, t := range tokens {
		if !strings.HasPrefix(t.Tag, "N") {
			continue
		}
		if !IsValid(t.Word) || e.stopwords.Contains(t.Word) {
			continue
		}
		kw := strings.Join(strings.Fields(strings.ToLower(t.Word)), " ")
		if seen[kw] {
			continue
		}
		seen[kw] = true
		res = append(res, kw)
	}
	return res
}

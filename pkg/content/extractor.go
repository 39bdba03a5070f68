// Package content downloads article pages and extracts their main text and metadata.
package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"

	"github.com/umputun/newsgraph/pkg/domain"
)

// Opts defines extractor parameters
type Opts struct {
	Timeout       time.Duration
	UserAgent     string
	MinTextLength int  // extracted text shorter than this, in runes, is rejected
	IncludeImages bool // collect images of the main content
}

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	opts   Opts
	client *http.Client
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(opts Opts) *HTTPExtractor {
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; Newsgraph/1.0)"
	}
	return &HTTPExtractor{opts: opts, client: &http.Client{Timeout: opts.Timeout}}
}

// Extract retrieves the page and extracts its text, title, images, publish date and author
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*domain.ExtractedContent, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.opts.UserAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   e.opts.IncludeImages,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return nil, fmt.Errorf("no content extracted from %s", urlStr)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return nil, fmt.Errorf("no text content extracted from %s", urlStr)
	}
	if e.opts.MinTextLength > 0 && utf8.RuneCountInString(text) < e.opts.MinTextLength {
		return nil, fmt.Errorf("text content of %s is too short, %d runes", urlStr, utf8.RuneCountInString(text))
	}

	res := &domain.ExtractedContent{
		URL:    urlStr,
		Title:  strings.TrimSpace(result.Metadata.Title),
		Text:   text,
		Author: strings.TrimSpace(result.Metadata.Author),
		Images: []string{},
	}
	if !result.Metadata.Date.IsZero() {
		d := result.Metadata.Date.UTC()
		res.PubDate = &d
	}
	if e.opts.IncludeImages {
		res.Images = collectImages(result, parsedURL)
	}
	return res, nil
}

// collectImages returns unique absolute image urls, the metadata image goes first
func collectImages(result *trafilatura.ExtractResult, base *url.URL) []string {
	res := []string{}
	seen := map[string]bool{}
	add := func(src string) {
		src = strings.TrimSpace(src)
		if src == "" {
			return
		}
		if u, err := base.Parse(src); err == nil {
			src = u.String()
		}
		if !seen[src] {
			seen[src] = true
			res = append(res, src)
		}
	}

	add(result.Metadata.Image)
	if result.ContentNode != nil {
		goquery.NewDocumentFromNode(result.ContentNode).Find("img").Each(func(_ int, s *goquery.Selection) {
			src, _ := s.Attr("src")
			add(src)
		})
	}
	return res
}

package feed

import (
	"errors"
	"maps"
	"net/url"
	"path"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"golang.org/x/net/html"

	"github.com/umputun/newsgraph/pkg/domain"
)

// skip reasons returned by Normalize
var (
	ErrNoLink        = errors.New("entry has no link")
	ErrNoDescription = errors.New("entry has no description")
	ErrNoImage       = errors.New("entry has no image")
)

var (
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
	imageURLRe      = regexp.MustCompile(`(?i)https?://[^\s"'<>()]+?\.(?:jpe?g|png|webp|gif)(?:\?[^\s"'<>()]*)?`)
	spacesRe        = regexp.MustCompile(`\s+`)
)

// Normalizer converts raw feed entries into articles
type Normalizer struct {
	policy *bluemonday.Policy
}

// NewNormalizer makes a normalizer stripping all markup from titles
func NewNormalizer() *Normalizer {
	return &Normalizer{policy: bluemonday.StrictPolicy()}
}

// Normalize builds an article from a feed entry. Entries without link, description or image
// are rejected with one of ErrNoLink, ErrNoDescription or ErrNoImage. Publish date falls back
// to the updated date and then to now.
func (n *Normalizer) Normalize(item *gofeed.Item, feedID int64, now time.Time) (domain.Article, error) {
	if item == nil {
		return domain.Article{}, ErrNoLink
	}
	link := strings.TrimSpace(item.Link)
	if link == "" {
		return domain.Article{}, ErrNoLink
	}

	// some publishers escape markup twice, decode it before parsing
	rawDesc := item.Description
	if strings.TrimSpace(rawDesc) == "" {
		rawDesc = item.Content
	}
	markup := decodeEntities(rawDesc)
	if strings.TrimSpace(markup) == "" {
		return domain.Article{}, ErrNoDescription
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return domain.Article{}, ErrNoDescription
	}

	image := imageFromEntry(item)
	if image == "" {
		image = imageFromMarkup(doc, markup)
	}
	if image == "" {
		return domain.Article{}, ErrNoImage
	}

	doc.Find("img").First().Remove()
	desc := collapseSpaces(doc.Text())
	if desc == "" {
		return domain.Article{}, ErrNoDescription
	}

	return domain.Article{
		Title:       n.cleanTitle(item.Title),
		Link:        link,
		ImageURL:    image,
		Description: desc,
		PubDate:     entryDate(item, now),
		FeedID:      feedID,
		Hash:        domain.LinkHash(link),
	}, nil
}

func (n *Normalizer) cleanTitle(title string) string {
	return collapseSpaces(decodeEntities(n.policy.Sanitize(title)))
}

// decodeEntities decodes html entities twice, "&amp;quot;" becomes a plain quote
func decodeEntities(s string) string {
	return html.UnescapeString(html.UnescapeString(s))
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

func entryDate(item *gofeed.Item, now time.Time) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC()
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC()
	default:
		return now.UTC()
	}
}

// imageFromEntry looks for an image in structured entry fields: media content, media thumbnail,
// image enclosures and finally any nested extension field named url
func imageFromEntry(item *gofeed.Item) string {
	media := item.Extensions["media"]
	for _, name := range []string{"content", "thumbnail"} {
		for _, e := range media[name] {
			if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
				return u
			}
		}
	}

	for _, enc := range item.Enclosures {
		if enc != nil && hasImageExtension(enc.URL) {
			return strings.TrimSpace(enc.URL)
		}
	}

	// sorted walk keeps the pick stable across runs
	for _, ns := range slices.Sorted(maps.Keys(item.Extensions)) {
		byName := item.Extensions[ns]
		for _, name := range slices.Sorted(maps.Keys(byName)) {
			if u := nestedURL(byName[name]); u != "" {
				return u
			}
		}
	}
	return ""
}

// nestedURL walks extension elements depth first and returns the first url attribute or
// url element value with an image extension
func nestedURL(exts []ext.Extension) string {
	for _, e := range exts {
		if u := strings.TrimSpace(e.Attrs["url"]); hasImageExtension(u) {
			return u
		}
		if e.Name == "url" {
			if u := strings.TrimSpace(e.Value); hasImageExtension(u) {
				return u
			}
		}
		for _, name := range slices.Sorted(maps.Keys(e.Children)) {
			if u := nestedURL(e.Children[name]); u != "" {
				return u
			}
		}
	}
	return ""
}

// imageFromMarkup returns src of the first image tag with an image extension,
// or the first image-looking url in the raw markup
func imageFromMarkup(doc *goquery.Document, markup string) string {
	var res string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, attr := range []string{"src", "data-src"} {
			if src, ok := s.Attr(attr); ok && hasImageExtension(src) {
				res = strings.TrimSpace(src)
				return false
			}
		}
		return true
	})
	if res != "" {
		return res
	}
	return imageURLRe.FindString(markup)
}

func hasImageExtension(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return false
	}
	p := link
	if u, err := url.Parse(link); err == nil && u.Path != "" {
		p = u.Path
	}
	e := strings.ToLower(path.Ext(p))
	for _, ie := range imageExtensions {
		if e == ie {
			return true
		}
	}
	return false
}

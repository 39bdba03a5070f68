package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/newsgraph/pkg/domain"
)

// Generator creates RSS feeds of keyword articles and OPML lists of ingested feeds
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed with articles linked to the keyword
func (g *Generator) GenerateRSS(keyword string, articles []domain.Article, keywords map[int64][]string) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, url.PathEscape(keyword))

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a, keywords[a.ID]))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Newsgraph - " + keyword,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Latest articles about %q", keyword),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(a domain.Article, keywords []string) *RSSItem {
	item := &RSSItem{
		Title:       a.Title,
		Link:        a.Link,
		GUID:        a.Hash,
		Description: a.Description,
		PubDate:     a.PubDate.Format(time.RFC1123Z),
		Categories:  keywords,
	}
	if a.ImageURL != "" {
		item.Enclosure = &RSSEnclosure{URL: a.ImageURL, Type: imageMIME(a.ImageURL)}
	}
	return item
}

// GenerateOPML creates an OPML file with enabled feed subscriptions grouped by publisher
func (g *Generator) GenerateOPML(feeds []domain.Feed) (string, error) {
	type outline struct {
		XMLName  xml.Name  `xml:"outline"`
		Text     string    `xml:"text,attr"`
		Title    string    `xml:"title,attr,omitempty"`
		Type     string    `xml:"type,attr,omitempty"`
		XMLUrl   string    `xml:"xmlUrl,attr,omitempty"`
		Outlines []outline `xml:"outline"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	groups := []outline{}
	index := map[string]int{}
	for _, f := range feeds {
		if !f.Enabled {
			continue
		}
		publisher := f.Publisher
		if publisher == "" {
			publisher = "other"
		}
		i, ok := index[publisher]
		if !ok {
			groups = append(groups, outline{Text: publisher, Title: publisher})
			i = len(groups) - 1
			index[publisher] = i
		}
		groups[i].Outlines = append(groups[i].Outlines, outline{Text: f.Title, Title: f.Title, Type: "rss", XMLUrl: f.URL})
	}

	doc := opml{
		Version: "2.0",
		Head:    head{Title: "Newsgraph Feed Subscriptions", DateCreated: time.Now().Format(time.RFC1123Z)},
		Body:    body{Outlines: groups},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}

func imageMIME(link string) string {
	p := strings.ToLower(link)
	if u, err := url.Parse(link); err == nil {
		p = strings.ToLower(u.Path)
	}
	switch {
	case strings.HasSuffix(p, ".png"):
		return "image/png"
	case strings.HasSuffix(p, ".gif"):
		return "image/gif"
	case strings.HasSuffix(p, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

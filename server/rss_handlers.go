package server

import (
	"errors"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsgraph/pkg/domain"
	"github.com/umputun/newsgraph/pkg/feed"
)

const defaultRSSLimit = 50

// rssHandler serves RSS feed of the most recent articles of a keyword
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	keyword := domain.NormalizeKeyword(r.PathValue("keyword"))
	if keyword == "" {
		renderError(w, r, errors.New("keyword is required"), http.StatusBadRequest)
		return
	}

	articles, err := s.store.LatestByKeyword(ctx, keyword, defaultRSSLimit)
	if err != nil {
		lgr.Printf("[ERROR] failed to get articles for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	ids := make([]int64, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}
	keywords, err := s.store.KeywordNames(ctx, ids)
	if err != nil {
		// categories are optional, serve the feed without them
		lgr.Printf("[WARN] failed to get keywords for RSS: %v", err)
		keywords = map[int64][]string{}
	}

	generator := feed.NewGenerator(s.config.GetFullConfig().Server.BaseURL)
	rss, err := generator.GenerateRSS(keyword, articles, keywords)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// opmlHandler serves OPML subscription list of enabled feeds
func (s *Server) opmlHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.store.GetFeeds(r.Context(), true)
	if err != nil {
		lgr.Printf("[ERROR] failed to get feeds for OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	generator := feed.NewGenerator(s.config.GetFullConfig().Server.BaseURL)
	opml, err := generator.GenerateOPML(feeds)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	if _, err := w.Write([]byte(opml)); err != nil {
		lgr.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}

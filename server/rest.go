package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/newsgraph/pkg/domain"
)

// statusHandler returns server status with database health and last job runs
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}

	if err := s.store.Ping(r.Context()); err != nil {
		lgr.Printf("[WARN] database ping failed: %v", err)
		status["status"] = "degraded"
		status["database"] = "unavailable"
	} else {
		status["database"] = "ok"
	}

	if s.jobs != nil {
		crawl, keywords := s.jobs.LastRuns()
		status["crawl"] = crawl
		status["keywords"] = keywords
	}
	renderJSON(w, r, http.StatusOK, status)
}

// hotArticlesHandler returns a page of the most recent articles
func (s *Server) hotArticlesHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.pageRequest(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	page, err := s.recommend.HotArticles(r.Context(), req)
	if err != nil {
		handleError(w, r, err, "failed to get hot articles")
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// hotKeywordsHandler returns keywords linked to the most articles
func (s *Server) hotKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := s.intParam(r, "limit", s.config.GetFullConfig().Pagination.DefaultHotKeywords)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	list, err := s.recommend.HotKeywords(r.Context(), limit)
	if err != nil {
		handleError(w, r, err, "failed to get hot keywords")
		return
	}
	renderJSON(w, r, http.StatusOK, list)
}

// resetCacheHandler drops cached hot lists
func (s *Server) resetCacheHandler(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.recommend.ResetCache(r.Context())
	if err != nil {
		handleError(w, r, err, "failed to reset cache")
		return
	}
	lgr.Printf("[INFO] cache reset, %d keys deleted", deleted)
	renderJSON(w, r, http.StatusOK, rest.JSON{"deleted": deleted})
}

// articlesByKeywordsRequest is the body of articles-by-keywords, absent page fields take defaults
type articlesByKeywordsRequest struct {
	Keywords []string `json:"keywords"`
	Page     *int     `json:"page"`
	PageSize *int     `json:"page_size"`
}

// articlesByKeywordsHandler returns articles linked to any of the keywords
func (s *Server) articlesByKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	var body articlesByKeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}

	req := domain.PageRequest{Page: 1, PageSize: s.config.GetFullConfig().Pagination.DefaultPageSize}
	if body.Page != nil {
		req.Page = *body.Page
	}
	if body.PageSize != nil {
		req.PageSize = *body.PageSize
	}

	page, err := s.recommend.ArticlesByKeywords(r.Context(), body.Keywords, req)
	if err != nil {
		handleError(w, r, err, "failed to get articles by keywords")
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// relatedKeywordsHandler returns keywords co-occurring with the named keyword
func (s *Server) relatedKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := s.intParam(r, "limit", s.config.GetFullConfig().Pagination.DefaultPageSize)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	list, err := s.recommend.RelatedKeywordsByName(r.Context(), r.URL.Query().Get("name"), limit)
	if err != nil {
		handleError(w, r, err, "failed to get related keywords")
		return
	}
	renderJSON(w, r, http.StatusOK, list)
}

// articleKeywordsHandler returns keywords of an article
func (s *Server) articleKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	res, err := s.recommend.KeywordsByArticle(r.Context(), id)
	if err != nil {
		handleError(w, r, err, "failed to get article keywords")
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// relatedArticlesHandler returns articles sharing keywords with an article
func (s *Server) relatedArticlesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	req, err := s.pageRequest(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	page, err := s.recommend.RelatedArticlesByArticle(r.Context(), id, req)
	if err != nil {
		handleError(w, r, err, "failed to get related articles")
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// searchHandler returns articles containing the query in title or description
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.pageRequest(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	page, err := s.search.Search(r.Context(), r.URL.Query().Get("q"), req)
	if err != nil {
		handleError(w, r, err, "failed to search articles")
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// extractHandler returns full content of the page at url
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		renderError(w, r, errors.New("content extraction is disabled"), http.StatusNotFound)
		return
	}

	link, err := urlParam(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.extractor.Extract(r.Context(), link)
	if err != nil {
		lgr.Printf("[WARN] failed to extract content from %s: %v", link, err)
		renderError(w, r, errors.New("failed to extract content"), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// translateArticleHandler extracts the article at url and returns it with the text translated into target_lang
func (s *Server) translateArticleHandler(w http.ResponseWriter, r *http.Request) {
	if s.translator == nil {
		renderError(w, r, errors.New("article translation is disabled"), http.StatusNotFound)
		return
	}

	link, err := urlParam(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.translator.Translate(r.Context(), link, r.URL.Query().Get("target_lang"))
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			renderError(w, r, verr, http.StatusBadRequest)
			return
		}
		lgr.Printf("[WARN] failed to translate article %s: %v", link, err)
		renderError(w, r, errors.New("failed to translate article"), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// urlParam returns the url query param if it is an absolute http(s) url
func urlParam(r *http.Request) (string, error) {
	link := strings.TrimSpace(r.URL.Query().Get("url"))
	u, err := url.Parse(link)
	if link == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &domain.ValidationError{Field: "url", Msg: "must be an absolute http(s) url"}
	}
	return link, nil
}

// pageRequest parses page and page_size query params, page defaults to 1 and page size to the configured default.
// Range checks are left to the engines.
func (s *Server) pageRequest(r *http.Request) (domain.PageRequest, error) {
	page, err := s.intParam(r, "page", 1)
	if err != nil {
		return domain.PageRequest{}, err
	}
	size, err := s.intParam(r, "page_size", s.config.GetFullConfig().Pagination.DefaultPageSize)
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.PageRequest{Page: page, PageSize: size}, nil
}

func (s *Server) intParam(r *http.Request, name string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &domain.ValidationError{Field: name, Msg: "must be an integer"}
	}
	return n, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: "article_id", Msg: "must be an integer"}
	}
	return id, nil
}

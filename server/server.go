package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsgraph/pkg/config"
	"github.com/umputun/newsgraph/pkg/domain"
	"github.com/umputun/newsgraph/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . ContentExtractor
//go:generate moq -out mocks/jobs.go -pkg mocks -skip-ensure -fmt goimports . Jobs
//go:generate moq -out mocks/translator.go -pkg mocks -skip-ensure -fmt goimports . ArticleTranslator

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	store      Store
	recommend  Recommender
	search     Searcher
	extractor  ContentExtractor
	translator ArticleTranslator
	jobs       Jobs
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params contains server dependencies, Extractor, Translator and Jobs are optional
type Params struct {
	Config     ConfigProvider
	Store      Store
	Recommend  Recommender
	Search     Searcher
	Extractor  ContentExtractor
	Translator ArticleTranslator
	Jobs       Jobs
	Version    string
	Debug      bool
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetFullConfig() *config.Config
}

// Store provides feeds and articles for RSS and OPML
type Store interface {
	GetFeeds(ctx context.Context, enabledOnly bool) ([]domain.Feed, error)
	LatestByKeyword(ctx context.Context, name string, limit int) ([]domain.Article, error)
	KeywordNames(ctx context.Context, articleIDs []int64) (map[int64][]string, error)
	Ping(ctx context.Context) error
}

// Recommender serves graph-derived queries
type Recommender interface {
	HotArticles(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Article], error)
	HotKeywords(ctx context.Context, limit int) (domain.KeywordList, error)
	ResetCache(ctx context.Context) (int, error)
	ArticlesByKeywords(ctx context.Context, keywords []string, req domain.PageRequest) (domain.Page[domain.Article], error)
	RelatedKeywordsByName(ctx context.Context, name string, limit int) (domain.KeywordList, error)
	KeywordsByArticle(ctx context.Context, articleID int64) (domain.ArticleKeywords, error)
	RelatedArticlesByArticle(ctx context.Context, articleID int64, req domain.PageRequest) (domain.Page[domain.Article], error)
}

// Searcher finds articles by substring
type Searcher interface {
	Search(ctx context.Context, query string, req domain.PageRequest) (domain.Page[domain.Article], error)
}

// ContentExtractor extracts full article content by url
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (*domain.ExtractedContent, error)
}

// ArticleTranslator extracts an article by url and translates it
type ArticleTranslator interface {
	Translate(ctx context.Context, url, lang string) (*domain.TranslatedArticle, error)
}

// Jobs reports ingestion job runs
type Jobs interface {
	LastRuns() (crawl, keywords scheduler.Status)
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:     p.Config,
		store:      p.Store,
		recommend:  p.Recommend,
		search:     p.Search,
		extractor:  p.Extractor,
		translator: p.Translator,
		jobs:       p.Jobs,
		version:    p.Version,
		debug:      p.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsgraph", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /recommend/hot-articles", s.hotArticlesHandler)
		r.HandleFunc("GET /recommend/hot-keywords", s.hotKeywordsHandler)
		r.HandleFunc("POST /recommend/reset-cache", s.resetCacheHandler)
		r.HandleFunc("POST /recommend/articles-by-keywords", s.articlesByKeywordsHandler)
		r.HandleFunc("GET /recommend/related-keywords", s.relatedKeywordsHandler)
		r.HandleFunc("GET /recommend/articles/{id}/keywords", s.articleKeywordsHandler)
		r.HandleFunc("GET /recommend/articles/{id}/related", s.relatedArticlesHandler)

		r.HandleFunc("GET /search/articles", s.searchHandler)
		r.HandleFunc("GET /extract", s.extractHandler)
		r.HandleFunc("POST /ai/translate-article", s.translateArticleHandler)
	})

	s.router.HandleFunc("GET /rss/{keyword}", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}

// handleError renders validation errors as 400 with their message, anything else is logged
// and rendered as 500 with the generic message
func handleError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		renderError(w, r, verr, http.StatusBadRequest)
		return
	}
	lgr.Printf("[ERROR] %s: %v", msg, err)
	renderError(w, r, errors.New(msg), http.StatusInternalServerError)
}

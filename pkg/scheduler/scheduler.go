// Package scheduler runs the recurring ingestion jobs: feed crawling and keyword indexing.
// Each job runs at its own interval with a single active run, a trigger arriving while the job
// is running is skipped.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsgraph/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/keyword_graph.go -pkg mocks -skip-ensure -fmt goimports . KeywordGraph
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/normalizer.go -pkg mocks -skip-ensure -fmt goimports . Normalizer
//go:generate moq -out mocks/keyword_extractor.go -pkg mocks -skip-ensure -fmt goimports . KeywordExtractor

// ErrRunInProgress is returned when a job is triggered while its previous run is still active
var ErrRunInProgress = errors.New("run in progress")

// FeedStore provides enabled feeds and records fetch results
type FeedStore interface {
	GetFeeds(ctx context.Context, enabledOnly bool) ([]domain.Feed, error)
	UpdateFeedFetched(ctx context.Context, feedID int64) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string) error
}

// ArticleStore stores crawled articles and lists articles for keyword indexing
type ArticleStore interface {
	UpsertArticle(ctx context.Context, article *domain.Article) (bool, error)
	ArticlesAfter(ctx context.Context, afterID int64, limit int) ([]domain.ArticleSource, error)
}

// KeywordGraph writes keywords and article-keyword edges
type KeywordGraph interface {
	UpsertKeyword(ctx context.Context, name string) (int64, error)
	LinkArticleKeyword(ctx context.Context, articleID, keywordID int64) error
}

// SettingStore keeps numeric job state
type SettingStore interface {
	GetInt64(ctx context.Context, key string) (int64, error)
	SetInt64(ctx context.Context, key string, value int64) error
}

// Parser fetches feed entries
type Parser interface {
	Parse(ctx context.Context, url string) ([]*gofeed.Item, error)
}

// Normalizer converts a feed entry to an article
type Normalizer interface {
	Normalize(item *gofeed.Item, feedID int64, now time.Time) (domain.Article, error)
}

// KeywordExtractor derives keywords from a title
type KeywordExtractor interface {
	Extract(ctx context.Context, title string, native bool) ([]string, error)
}

// Scheduler runs crawl and keyword jobs periodically
type Scheduler struct {
	feedProcessor    *FeedProcessor
	keywordIndexer   *KeywordIndexer
	crawlInterval    time.Duration
	keywordsInterval time.Duration

	crawlMu   sync.Mutex
	keywordMu sync.Mutex

	statusMu  sync.RWMutex
	lastCrawl Status
	lastIndex Status

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params contains all dependencies and settings of the scheduler
type Params struct {
	Feeds      FeedStore
	Articles   ArticleStore
	Graph      KeywordGraph
	Settings   SettingStore
	Parser     Parser
	Normalizer Normalizer
	Extractor  KeywordExtractor

	CrawlInterval    time.Duration
	CrawlWorkers     int
	KeywordsInterval time.Duration
	KeywordWorkers   int
	BatchSize        int
}

// Status describes the last finished run of a job
type Status struct {
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Error      string      `json:"error,omitempty"`
	Crawl      *CrawlStats `json:"crawl,omitempty"`
	Keywords   *IndexStats `json:"keywords,omitempty"`
}

// NewScheduler creates a scheduler. Zero intervals disable periodic runs of the job,
// it can still be triggered with Crawl or IndexKeywords.
func NewScheduler(params Params) *Scheduler {
	return &Scheduler{
		feedProcessor: NewFeedProcessor(FeedProcessorConfig{
			Feeds:      params.Feeds,
			Articles:   params.Articles,
			Parser:     params.Parser,
			Normalizer: params.Normalizer,
			MaxWorkers: params.CrawlWorkers,
		}),
		keywordIndexer: NewKeywordIndexer(KeywordIndexerConfig{
			Articles:   params.Articles,
			Graph:      params.Graph,
			Settings:   params.Settings,
			Extractor:  params.Extractor,
			BatchSize:  params.BatchSize,
			MaxWorkers: params.KeywordWorkers,
		}),
		crawlInterval:    params.CrawlInterval,
		keywordsInterval: params.KeywordsInterval,
	}
}

// Start begins periodic jobs, both run immediately and then on their intervals
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	if s.crawlInterval > 0 {
		s.wg.Add(1)
		go s.loop(ctx, "crawl", s.crawlInterval, func(ctx context.Context) error {
			_, err := s.Crawl(ctx)
			return err
		})
	}

	if s.keywordsInterval > 0 {
		s.wg.Add(1)
		go s.loop(ctx, "keywords", s.keywordsInterval, func(ctx context.Context) error {
			_, err := s.IndexKeywords(ctx, false)
			return err
		})
	}

	lgr.Printf("[INFO] scheduler started with crawl interval %v, keywords interval %v", s.crawlInterval, s.keywordsInterval)
}

// Stop cancels running jobs and waits for them to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Crawl runs a single crawl of all enabled feeds, ErrRunInProgress if a crawl is already running
func (s *Scheduler) Crawl(ctx context.Context) (CrawlStats, error) {
	if !s.crawlMu.TryLock() {
		return CrawlStats{}, ErrRunInProgress
	}
	defer s.crawlMu.Unlock()

	started := time.Now()
	stats, err := s.feedProcessor.UpdateAllFeeds(ctx)
	s.setStatus(&s.lastCrawl, Status{StartedAt: started, FinishedAt: time.Now(), Error: errString(err), Crawl: &stats})
	return stats, err
}

// IndexKeywords runs a single keyword indexing pass, ErrRunInProgress if indexing is already running
func (s *Scheduler) IndexKeywords(ctx context.Context, rescan bool) (IndexStats, error) {
	if !s.keywordMu.TryLock() {
		return IndexStats{}, ErrRunInProgress
	}
	defer s.keywordMu.Unlock()

	started := time.Now()
	stats, err := s.keywordIndexer.Run(ctx, rescan)
	s.setStatus(&s.lastIndex, Status{StartedAt: started, FinishedAt: time.Now(), Error: errString(err), Keywords: &stats})
	return stats, err
}

// LastRuns returns status of the last finished crawl and keyword runs, zero values if not run yet
func (s *Scheduler) LastRuns() (crawl, keywords Status) {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.lastCrawl, s.lastIndex
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, run func(ctx context.Context) error) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOnce := func() {
		if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			if errors.Is(err, ErrRunInProgress) {
				lgr.Printf("[DEBUG] %s job skipped, previous run is active", name)
				return
			}
			lgr.Printf("[WARN] %s job failed: %v", name, err)
		}
	}

	runOnce()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

func (s *Scheduler) setStatus(dst *Status, st Status) {
	s.statusMu.Lock()
	*dst = st
	s.statusMu.Unlock()
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/newsgraph/pkg/cache"
	"github.com/umputun/newsgraph/pkg/config"
	"github.com/umputun/newsgraph/pkg/content"
	"github.com/umputun/newsgraph/pkg/domain"
	"github.com/umputun/newsgraph/pkg/feed"
	"github.com/umputun/newsgraph/pkg/keyword"
	"github.com/umputun/newsgraph/pkg/llm"
	"github.com/umputun/newsgraph/pkg/recommend"
	"github.com/umputun/newsgraph/pkg/repository"
	"github.com/umputun/newsgraph/pkg/scheduler"
	"github.com/umputun/newsgraph/pkg/search"
	"github.com/umputun/newsgraph/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen"`

	CrawlOnce    bool `long:"crawl-once" description:"crawl all feeds once and exit"`
	KeywordsOnce bool `long:"keywords-once" description:"index keywords of new articles once and exit"`
	Rescan       bool `long:"rescan" description:"with --keywords-once, index all articles from the beginning"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	_ = godotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		setupLog(opts.Debug)
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	setupLog(opts.Debug, secrets(cfg)...)

	log.Printf("[INFO] starting newsgraph version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err = run(ctx, cfg, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// loadConfig reads the config file if set, otherwise returns defaults. Listen flag overrides the file.
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

// secrets returns configured credentials to be masked in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.LLM.APIKey, cfg.Gemini.APIKey, cfg.Cache.Redis.Password} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// run wires all components. With crawl-once or keywords-once it runs the jobs and returns,
// otherwise it starts the scheduler and serves http until ctx is canceled.
func run(ctx context.Context, cfg *config.Config, opts Opts) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repos.Close()

	if err := seedFeeds(ctx, repos.Feed, cfg.Publishers); err != nil {
		return fmt.Errorf("failed to seed feeds: %w", err)
	}

	extractor, closeExtractor, err := makeKeywordExtractor(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize keyword extractor: %w", err)
	}
	defer closeExtractor()

	sched := scheduler.NewScheduler(scheduler.Params{
		Feeds:            repos.Feed,
		Articles:         repos.Article,
		Graph:            repos.Keyword,
		Settings:         repos.Setting,
		Parser:           feed.NewParser(cfg.Ingest.Timeout, cfg.Ingest.UserAgent, cfg.Ingest.MaxEntries),
		Normalizer:       feed.NewNormalizer(),
		Extractor:        extractor,
		CrawlInterval:    cfg.Ingest.Interval,
		CrawlWorkers:     cfg.Ingest.MaxWorkers,
		KeywordsInterval: cfg.Keywords.Interval,
		KeywordWorkers:   cfg.Keywords.MaxWorkers,
		BatchSize:        cfg.Keywords.BatchSize,
	})

	if opts.CrawlOnce || opts.KeywordsOnce {
		return runOnce(ctx, sched, opts)
	}

	layer, closeCache, err := makeCacheLayer(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer closeCache()

	engine := recommend.NewEngine(recommend.Params{
		Articles: repos.Article,
		Keywords: repos.Keyword,
		Cache:    layer,
		TTL: recommend.TTL{
			HotArticles: cfg.Cache.TTL.HotArticles,
			HotKeywords: cfg.Cache.TTL.HotKeywords,
			Related:     cfg.Cache.TTL.Related,
		},
		Limits: recommend.Limits{
			MaxPageSize:    cfg.Pagination.MaxPageSize,
			MaxKeywords:    cfg.Pagination.MaxKeywords,
			MaxHotKeywords: cfg.Pagination.MaxHotKeywords,
		},
	})

	params := server.Params{
		Config:    cfg,
		Store:     server.NewRepositoryAdapter(repos),
		Recommend: engine,
		Search:    search.NewEngine(repos.Article, layer, cfg.Cache.TTL.Search, cfg.Pagination.MaxPageSize),
		Jobs:      sched,
		Version:   revision,
		Debug:     opts.Debug,
	}
	if cfg.Extraction.Enabled {
		params.Extractor = makeContentExtractor(cfg.Extraction)
	}
	if cfg.Translation.Enabled {
		translator, closeTranslator, err := makeArticleTranslator(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize article translator: %w", err)
		}
		defer closeTranslator()
		params.Translator = translator
	}

	sched.Start(ctx)
	defer sched.Stop()

	if err := server.New(params).Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// runOnce runs requested jobs a single time, crawl goes first
func runOnce(ctx context.Context, sched *scheduler.Scheduler, opts Opts) error {
	if opts.CrawlOnce {
		stats, err := sched.Crawl(ctx)
		if err != nil {
			return fmt.Errorf("crawl: %w", err)
		}
		log.Printf("[INFO] crawl completed, %s", stats)
		if stats.HasErrors() {
			return fmt.Errorf("crawl finished with errors: %s", stats)
		}
	}
	if opts.KeywordsOnce {
		stats, err := sched.IndexKeywords(ctx, opts.Rescan)
		if err != nil {
			return fmt.Errorf("index keywords: %w", err)
		}
		log.Printf("[INFO] keyword indexing completed, %s", stats)
	}
	return nil
}

// seedFeeds stores configured publishers and their feeds, existing ones are updated
func seedFeeds(ctx context.Context, feeds *repository.FeedRepository, publishers []config.PublisherConfig) error {
	for _, p := range publishers {
		pubID, err := feeds.UpsertPublisher(ctx, domain.Publisher{Name: p.Name, IsVN: p.IsVN})
		if err != nil {
			return err
		}
		for _, f := range p.Feeds {
			if err := feeds.UpsertFeed(ctx, &domain.Feed{URL: f.URL, Title: f.Title, PublisherID: pubID, Enabled: true}); err != nil {
				return err
			}
		}
		log.Printf("[DEBUG] seeded publisher %s with %d feeds", p.Name, len(p.Feeds))
	}
	return nil
}

// makeKeywordExtractor builds tagger and optional translator. The returned func releases provider clients.
func makeKeywordExtractor(ctx context.Context, cfg *config.Config) (*keyword.Extractor, func(), error) {
	closeFn := func() {}

	var tagger keyword.Tagger
	switch cfg.Keywords.Tagger.Type {
	case config.TaggerLLM:
		tagger = llm.NewOpenAI(cfg.LLM)
	default:
		tagger = keyword.NewHTTPTagger(cfg.Keywords.Tagger.Endpoint, cfg.Keywords.Tagger.Timeout)
	}

	var translator *keyword.RetryTranslator
	if cfg.Keywords.Translate.Enabled {
		var next keyword.Translator
		switch cfg.Keywords.Translate.Provider {
		case config.ProviderGemini:
			gemini, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
			if err != nil {
				return nil, closeFn, err
			}
			closeFn = func() {
				if err := gemini.Close(); err != nil {
					log.Printf("[WARN] failed to close gemini client: %v", err)
				}
			}
			next = gemini
		default:
			next = llm.NewOpenAI(cfg.LLM)
		}
		tr := cfg.Keywords.Translate
		translator = keyword.NewRetryTranslator(next, tr.Retries, tr.RetryDelay, tr.RateLimit)
		log.Printf("[INFO] title translation enabled, provider %s", tr.Provider)
	}

	stopwords, err := keyword.LoadStopwords(cfg.Keywords.StopwordsFile)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}

	return keyword.NewExtractor(tagger, translator, stopwords, cfg.Keywords.NativeLanguage), closeFn, nil
}

func makeContentExtractor(cfg config.ExtractionConfig) *content.HTTPExtractor {
	return content.NewHTTPExtractor(content.Opts{
		Timeout:       cfg.Timeout,
		UserAgent:     cfg.UserAgent,
		MinTextLength: cfg.MinTextLength,
		IncludeImages: cfg.IncludeImages,
	})
}

// makeArticleTranslator builds article translator over the configured provider, pages are fetched
// with extraction settings even if the extraction endpoint is disabled
func makeArticleTranslator(ctx context.Context, cfg *config.Config) (*content.Translator, func(), error) {
	tr := cfg.Translation
	var next content.TextTranslator
	closeFn := func() {}
	switch tr.Provider {
	case config.ProviderOpenAI:
		next = llm.NewOpenAI(cfg.LLM)
	default:
		gemini, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, closeFn, err
		}
		closeFn = func() {
			if err := gemini.Close(); err != nil {
				log.Printf("[WARN] failed to close gemini client: %v", err)
			}
		}
		next = gemini
	}
	log.Printf("[INFO] article translation enabled, provider %s, max %d words", tr.Provider, tr.MaxWords)
	return content.NewTranslator(makeContentExtractor(cfg.Extraction), next, tr.MaxWords, tr.TargetLang), closeFn, nil
}

// makeCacheLayer connects the configured cache store. An unreachable redis falls back to memory store.
func makeCacheLayer(ctx context.Context, cfg config.CacheConfig) (*cache.Layer, func(), error) {
	switch cfg.Type {
	case config.CacheRedis:
		store, err := cache.NewRedisStore(ctx, cache.RedisOpts{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err == nil {
			log.Printf("[INFO] using redis cache at %s", cfg.Redis.Addr)
			return cache.NewLayer(store, cfg.Timeout), func() { _ = store.Close() }, nil
		}
		if errors.Is(err, context.Canceled) {
			return nil, nil, err
		}
		log.Printf("[WARN] redis unavailable, using memory cache: %v", err)
	case config.CacheMemory:
	default:
		return nil, nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
	return cache.NewLayer(cache.NewMemoryStore(cfg.MaxKeys), cfg.Timeout), func() {}, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

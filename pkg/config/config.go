package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// cache store types
const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

// translation providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// tagger types
const (
	TaggerHTTP = "http"
	TaggerLLM  = "llm"
)

// Config holds the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database    DatabaseConfig    `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Cache       CacheConfig       `yaml:"cache" json:"cache" jsonschema:"description=Query cache configuration"`
	Pagination  PaginationConfig  `yaml:"pagination" json:"pagination" jsonschema:"description=Pagination limits"`
	Ingest      IngestConfig      `yaml:"ingest" json:"ingest" jsonschema:"description=Feed crawling configuration"`
	Keywords    KeywordsConfig    `yaml:"keywords" json:"keywords" jsonschema:"description=Keyword extraction configuration"`
	LLM         LLMConfig         `yaml:"llm" json:"llm" jsonschema:"description=OpenAI-compatible LLM used for translation and tagging"`
	Gemini      GeminiConfig      `yaml:"gemini" json:"gemini" jsonschema:"description=Gemini translation provider"`
	Extraction  ExtractionConfig  `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`
	Translation TranslationConfig `yaml:"translation" json:"translation" jsonschema:"description=Full article translation"`
	Publishers  []PublisherConfig `yaml:"publishers" json:"publishers" jsonschema:"description=Publishers and their feeds"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and external links"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsgraph.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// CacheConfig holds query cache settings
type CacheConfig struct {
	Type    string        `yaml:"type" json:"type" jsonschema:"default=memory,enum=memory,enum=redis,description=Cache store type"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2s,description=Timeout for a single cache store call"`
	MaxKeys int           `yaml:"max_keys" json:"max_keys" jsonschema:"default=10000,description=Maximum keys kept by memory store"`
	Redis   RedisConfig   `yaml:"redis" json:"redis" jsonschema:"description=Redis connection"`
	TTL     CacheTTL      `yaml:"ttl" json:"ttl" jsonschema:"description=Per-query cache TTLs"`
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr" jsonschema:"default=localhost:6379,description=Redis address"`
	Password string `yaml:"password" json:"password" jsonschema:"description=Redis password (can use environment variable)"`
	DB       int    `yaml:"db" json:"db" jsonschema:"default=0,description=Redis database number"`
}

// CacheTTL defines expiration of cached query results
type CacheTTL struct {
	HotArticles time.Duration `yaml:"hot_articles" json:"hot_articles" jsonschema:"default=10m,description=Hot articles TTL"`
	HotKeywords time.Duration `yaml:"hot_keywords" json:"hot_keywords" jsonschema:"default=10m,description=Hot keywords TTL"`
	Search      time.Duration `yaml:"search" json:"search" jsonschema:"default=5m,description=Search results TTL"`
	Related     time.Duration `yaml:"related" json:"related" jsonschema:"default=10m,description=Related keywords and articles TTL"`
}

// PaginationConfig defines limits of list operations
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" json:"default_page_size" jsonschema:"default=20,minimum=1,description=Page size used when not requested"`
	MaxPageSize     int `yaml:"max_page_size" json:"max_page_size" jsonschema:"default=100,minimum=1,description=Maximum allowed page size"`
	MaxKeywords     int `yaml:"max_keywords" json:"max_keywords" jsonschema:"default=25,minimum=1,description=Maximum keywords per articles-by-keywords request"`
	MaxHotKeywords  int `yaml:"max_hot_keywords" json:"max_hot_keywords" jsonschema:"default=200,minimum=1,description=Maximum hot keywords limit"`

	DefaultHotKeywords int `yaml:"default_hot_keywords" json:"default_hot_keywords" jsonschema:"default=50,minimum=1,description=Hot keywords limit used when not requested"`
}

// IngestConfig holds feed crawling settings
type IngestConfig struct {
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Crawl interval"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum feeds processed concurrently"`
	MaxEntries int           `yaml:"max_entries" json:"max_entries" jsonschema:"default=20,description=Entries considered per feed per run"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0 (compatible; Newsgraph/1.0),description=User agent for feed requests"`
}

// KeywordsConfig holds keyword extraction settings
type KeywordsConfig struct {
	Interval       time.Duration   `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Keyword extraction interval"`
	BatchSize      int             `yaml:"batch_size" json:"batch_size" jsonschema:"default=100,minimum=1,description=Articles loaded per extraction batch"`
	MaxWorkers     int             `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum articles processed concurrently"`
	NativeLanguage string          `yaml:"native_language" json:"native_language" jsonschema:"default=vi,description=Language titles are translated into"`
	StopwordsFile  string          `yaml:"stopwords_file" json:"stopwords_file" jsonschema:"description=Optional stopwords file, one word per line (embedded list used if empty)"`
	Translate      TranslateConfig `yaml:"translate" json:"translate" jsonschema:"description=Title translation"`
	Tagger         TaggerConfig    `yaml:"tagger" json:"tagger" jsonschema:"description=Part-of-speech tagger"`
}

// TranslateConfig holds translation settings
type TranslateConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Translate titles of non-native publishers"`
	Provider   string        `yaml:"provider" json:"provider" jsonschema:"default=openai,enum=openai,enum=gemini,description=Translation provider"`
	Retries    int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Translation attempts"`
	RetryDelay time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=2s,description=Fixed delay between attempts"`
	RateLimit  time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=500ms,description=Minimum interval between translation calls"`
}

// TaggerConfig holds part-of-speech tagger settings
type TaggerConfig struct {
	Type     string        `yaml:"type" json:"type" jsonschema:"default=http,enum=http,enum=llm,description=Tagger implementation"`
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=http://localhost:8000/pos,description=HTTP tagger endpoint"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Tagger request timeout"`
}

// LLMConfig holds OpenAI-compatible LLM configuration
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.1,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// GeminiConfig holds Gemini configuration
type GeminiConfig struct {
	APIKey string `yaml:"api_key" json:"api_key" jsonschema:"description=Gemini API key (can use environment variable)"`
	Model  string `yaml:"model" json:"model" jsonschema:"default=gemini-1.5-flash,description=Gemini model name"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable content extraction endpoint"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsgraph/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
	IncludeImages bool          `yaml:"include_images" json:"include_images" jsonschema:"default=true,description=Include images in extraction"`
}

// TranslationConfig holds full article translation settings, pages are fetched with extraction settings
type TranslationConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable article translation endpoint"`
	Provider   string `yaml:"provider" json:"provider" jsonschema:"default=gemini,enum=openai,enum=gemini,description=Translation provider"`
	TargetLang string `yaml:"target_lang" json:"target_lang" jsonschema:"default=vi,description=Language used when not requested"`
	MaxWords   int    `yaml:"max_words" json:"max_words" jsonschema:"default=1500,minimum=1,description=Longer articles are rejected"`
}

// PublisherConfig defines a publisher and its feeds, seeded into the database on start
type PublisherConfig struct {
	Name  string       `yaml:"name" json:"name" jsonschema:"required,description=Publisher name"`
	IsVN  bool         `yaml:"is_vn" json:"is_vn" jsonschema:"default=true,description=Publisher writes in the native language"`
	Feeds []FeedConfig `yaml:"feeds" json:"feeds" jsonschema:"description=Publisher feeds"`
}

// FeedConfig defines a single feed
type FeedConfig struct {
	URL   string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Title string `yaml:"title" json:"title" jsonschema:"description=Feed title (defaults to URL)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// is_vn defaults to true, yaml can't tell missing from false
	var raw struct {
		Publishers []map[string]any `yaml:"publishers"`
	}
	if err := yaml.Unmarshal([]byte(expanded), &raw); err == nil {
		for i, p := range raw.Publishers {
			if _, ok := p["is_vn"]; !ok && i < len(cfg.Publishers) {
				cfg.Publishers[i].IsVN = true
			}
		}
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsgraph.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// cache
	if c.Cache.Type == "" {
		c.Cache.Type = CacheMemory
	}
	if c.Cache.Timeout == 0 {
		c.Cache.Timeout = 2 * time.Second
	}
	if c.Cache.MaxKeys == 0 {
		c.Cache.MaxKeys = 10000
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = "localhost:6379"
	}
	if c.Cache.TTL.HotArticles == 0 {
		c.Cache.TTL.HotArticles = 10 * time.Minute
	}
	if c.Cache.TTL.HotKeywords == 0 {
		c.Cache.TTL.HotKeywords = 10 * time.Minute
	}
	if c.Cache.TTL.Search == 0 {
		c.Cache.TTL.Search = 5 * time.Minute
	}
	if c.Cache.TTL.Related == 0 {
		c.Cache.TTL.Related = 10 * time.Minute
	}

	// pagination
	if c.Pagination.DefaultPageSize == 0 {
		c.Pagination.DefaultPageSize = 20
	}
	if c.Pagination.MaxPageSize == 0 {
		c.Pagination.MaxPageSize = 100
	}
	if c.Pagination.MaxKeywords == 0 {
		c.Pagination.MaxKeywords = 25
	}
	if c.Pagination.MaxHotKeywords == 0 {
		c.Pagination.MaxHotKeywords = 200
	}
	if c.Pagination.DefaultHotKeywords == 0 {
		c.Pagination.DefaultHotKeywords = 50
	}

	// ingest
	if c.Ingest.Interval == 0 {
		c.Ingest.Interval = 30 * time.Minute
	}
	if c.Ingest.MaxWorkers == 0 {
		c.Ingest.MaxWorkers = 5
	}
	if c.Ingest.MaxEntries == 0 {
		c.Ingest.MaxEntries = 20
	}
	if c.Ingest.Timeout == 0 {
		c.Ingest.Timeout = 30 * time.Second
	}
	if c.Ingest.UserAgent == "" {
		c.Ingest.UserAgent = "Mozilla/5.0 (compatible; Newsgraph/1.0)"
	}

	// keywords
	if c.Keywords.Interval == 0 {
		c.Keywords.Interval = 30 * time.Minute
	}
	if c.Keywords.BatchSize == 0 {
		c.Keywords.BatchSize = 100
	}
	if c.Keywords.MaxWorkers == 0 {
		c.Keywords.MaxWorkers = 4
	}
	if c.Keywords.NativeLanguage == "" {
		c.Keywords.NativeLanguage = "vi"
	}
	if c.Keywords.Translate.Provider == "" {
		c.Keywords.Translate.Provider = ProviderOpenAI
	}
	if c.Keywords.Translate.Retries == 0 {
		c.Keywords.Translate.Retries = 3
	}
	if c.Keywords.Translate.RetryDelay == 0 {
		c.Keywords.Translate.RetryDelay = 2 * time.Second
	}
	if c.Keywords.Translate.RateLimit == 0 {
		c.Keywords.Translate.RateLimit = 500 * time.Millisecond
	}
	if c.Keywords.Tagger.Type == "" {
		c.Keywords.Tagger.Type = TaggerHTTP
	}
	if c.Keywords.Tagger.Endpoint == "" {
		c.Keywords.Tagger.Endpoint = "http://localhost:8000/pos"
	}
	if c.Keywords.Tagger.Timeout == 0 {
		c.Keywords.Tagger.Timeout = 10 * time.Second
	}

	// llm
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.1
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-1.5-flash"
	}

	// extraction
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Newsgraph/1.0"
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 100
	}

	// article translation
	if c.Translation.Provider == "" {
		c.Translation.Provider = ProviderGemini
	}
	if c.Translation.TargetLang == "" {
		c.Translation.TargetLang = "vi"
	}
	if c.Translation.MaxWords == 0 {
		c.Translation.MaxWords = 1500
	}

	// feed title defaults to url
	for i := range c.Publishers {
		for j := range c.Publishers[i].Feeds {
			if c.Publishers[i].Feeds[j].Title == "" {
				c.Publishers[i].Feeds[j].Title = c.Publishers[i].Feeds[j].URL
			}
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate cache config
	switch cfg.Cache.Type {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("cache.type must be %q or %q, got %q", CacheMemory, CacheRedis, cfg.Cache.Type)
	}

	// validate pagination
	if cfg.Pagination.DefaultPageSize < 1 || cfg.Pagination.DefaultPageSize > cfg.Pagination.MaxPageSize {
		return fmt.Errorf("pagination.default_page_size must be between 1 and max_page_size")
	}
	if cfg.Pagination.DefaultHotKeywords < 1 || cfg.Pagination.DefaultHotKeywords > cfg.Pagination.MaxHotKeywords {
		return fmt.Errorf("pagination.default_hot_keywords must be between 1 and max_hot_keywords")
	}

	// validate keywords config
	if cfg.Keywords.Translate.Enabled {
		switch cfg.Keywords.Translate.Provider {
		case ProviderOpenAI:
			if err := validateLLM(cfg.LLM); err != nil {
				return err
			}
		case ProviderGemini:
			if cfg.Gemini.APIKey == "" {
				return fmt.Errorf("gemini.api_key is required for gemini translation")
			}
		default:
			return fmt.Errorf("keywords.translate.provider must be %q or %q", ProviderOpenAI, ProviderGemini)
		}
	}
	switch cfg.Keywords.Tagger.Type {
	case TaggerHTTP:
	case TaggerLLM:
		if err := validateLLM(cfg.LLM); err != nil {
			return err
		}
	default:
		return fmt.Errorf("keywords.tagger.type must be %q or %q", TaggerHTTP, TaggerLLM)
	}

	// validate extraction config
	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	// validate article translation
	if cfg.Translation.Enabled {
		switch cfg.Translation.Provider {
		case ProviderOpenAI:
			if err := validateLLM(cfg.LLM); err != nil {
				return err
			}
		case ProviderGemini:
			if cfg.Gemini.APIKey == "" {
				return fmt.Errorf("gemini.api_key is required for gemini article translation")
			}
		default:
			return fmt.Errorf("translation.provider must be %q or %q", ProviderOpenAI, ProviderGemini)
		}
		if cfg.Translation.MaxWords < 1 {
			return fmt.Errorf("translation.max_words must be positive")
		}
	}

	// validate publishers
	for _, p := range cfg.Publishers {
		if p.Name == "" {
			return fmt.Errorf("publisher name is required")
		}
		for _, f := range p.Feeds {
			if f.URL == "" {
				return fmt.Errorf("feed url is required for publisher %q", p.Name)
			}
		}
	}

	return nil
}

func validateLLM(c LLMConfig) error {
	if c.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if c.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}

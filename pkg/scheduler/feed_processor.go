package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsgraph/pkg/domain"
	"github.com/umputun/newsgraph/pkg/feed"
)

// FeedProcessor crawls enabled feeds and stores new articles.
// Each feed is fetched, its entries normalized and upserted by link hash; entries without
// link, description or image are skipped. A failing feed is recorded on the feed row and
// never stops processing of other feeds.
type FeedProcessor struct {
	feeds      FeedStore
	articles   ArticleStore
	parser     Parser
	normalizer Normalizer
	maxWorkers int
	now        func() time.Time
}

// FeedProcessorConfig holds configuration for FeedProcessor
type FeedProcessorConfig struct {
	Feeds      FeedStore
	Articles   ArticleStore
	Parser     Parser
	Normalizer Normalizer
	MaxWorkers int
	Now        func() time.Time
}

// CrawlStats summarizes a crawl run
type CrawlStats struct {
	Feeds       int `json:"feeds"`
	FailedFeeds int `json:"failed_feeds"`
	Inserted    int `json:"inserted"`
	Duplicates  int `json:"duplicates"`
	Skipped     int `json:"skipped"`
	Errors      int `json:"errors"`
}

// HasErrors reports failed feeds or failed article writes
func (s CrawlStats) HasErrors() bool {
	return s.FailedFeeds > 0 || s.Errors > 0
}

func (s CrawlStats) String() string {
	return fmt.Sprintf("feeds: %d, failed: %d, inserted: %d, duplicates: %d, skipped: %d, errors: %d",
		s.Feeds, s.FailedFeeds, s.Inserted, s.Duplicates, s.Skipped, s.Errors)
}

func (s *CrawlStats) add(o CrawlStats) {
	s.Feeds += o.Feeds
	s.FailedFeeds += o.FailedFeeds
	s.Inserted += o.Inserted
	s.Duplicates += o.Duplicates
	s.Skipped += o.Skipped
	s.Errors += o.Errors
}

// NewFeedProcessor creates a feed processor, max workers defaults to 1
func NewFeedProcessor(cfg FeedProcessorConfig) *FeedProcessor {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &FeedProcessor{
		feeds:      cfg.Feeds,
		articles:   cfg.Articles,
		parser:     cfg.Parser,
		normalizer: cfg.Normalizer,
		maxWorkers: cfg.MaxWorkers,
		now:        cfg.Now,
	}
}

// UpdateAllFeeds fetches all enabled feeds concurrently and returns the combined summary.
// The error is returned only if the feed list can't be loaded.
func (fp *FeedProcessor) UpdateAllFeeds(ctx context.Context) (CrawlStats, error) {
	feeds, err := fp.feeds.GetFeeds(ctx, true)
	if err != nil {
		return CrawlStats{}, fmt.Errorf("get enabled feeds: %w", err)
	}

	lgr.Printf("[INFO] updating %d feeds", len(feeds))

	var (
		mu    sync.Mutex
		total CrawlStats
	)

	// errgroup without context, a failed feed must not cancel others
	var g errgroup.Group
	g.SetLimit(fp.maxWorkers)
	for i := range feeds {
		f := feeds[i]
		g.Go(func() error {
			stats := fp.UpdateFeed(ctx, &f)
			mu.Lock()
			total.add(stats)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	lgr.Printf("[INFO] feed update completed, %s", total)
	return total, nil
}

// UpdateFeed fetches a single feed and stores its new articles
func (fp *FeedProcessor) UpdateFeed(ctx context.Context, f *domain.Feed) CrawlStats {
	stats := CrawlStats{Feeds: 1}
	feedID := fp.getFeedIdentifier(f)
	lgr.Printf("[DEBUG] updating feed: %s", feedID)

	items, err := fp.parser.Parse(ctx, f.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to parse feed %s: %v", feedID, err)
		stats.FailedFeeds = 1
		if err := fp.feeds.UpdateFeedError(ctx, f.ID, err.Error()); err != nil {
			lgr.Printf("[WARN] failed to update error status for feed %s: %v", feedID, err)
		}
		return stats
	}

	now := fp.now()
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		article, err := fp.normalizer.Normalize(item, f.ID, now)
		if err != nil {
			if !errors.Is(err, feed.ErrNoLink) && !errors.Is(err, feed.ErrNoDescription) && !errors.Is(err, feed.ErrNoImage) {
				lgr.Printf("[WARN] failed to normalize entry in feed %s: %v", feedID, err)
			}
			stats.Skipped++
			continue
		}

		inserted, err := fp.articles.UpsertArticle(ctx, &article)
		if err != nil {
			lgr.Printf("[WARN] failed to store article from feed %s (link: %s): %v", feedID, article.Link, err)
			stats.Errors++
			continue
		}
		if !inserted {
			stats.Duplicates++
			continue
		}
		stats.Inserted++
	}

	if err := fp.feeds.UpdateFeedFetched(ctx, f.ID); err != nil {
		lgr.Printf("[WARN] failed to update last fetched for feed %s: %v", feedID, err)
	}

	if stats.Inserted > 0 {
		lgr.Printf("[INFO] added %d new articles from feed %s", stats.Inserted, feedID)
	}
	return stats
}

// getFeedIdentifier returns a human-readable identifier for a feed
func (fp *FeedProcessor) getFeedIdentifier(f *domain.Feed) string {
	if f.Title != "" {
		return f.Title
	}
	return f.URL
}

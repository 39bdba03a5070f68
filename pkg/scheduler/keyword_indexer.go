package scheduler

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsgraph/pkg/domain"
)

// KeywordIndexer extends the article-keyword graph with articles added since the last run.
// Progress is kept in the keywords.cursor setting as the id of the last indexed article.
type KeywordIndexer struct {
	articles   ArticleStore
	graph      KeywordGraph
	settings   SettingStore
	extractor  KeywordExtractor
	batchSize  int
	maxWorkers int
}

// KeywordIndexerConfig holds configuration for KeywordIndexer
type KeywordIndexerConfig struct {
	Articles   ArticleStore
	Graph      KeywordGraph
	Settings   SettingStore
	Extractor  KeywordExtractor
	BatchSize  int
	MaxWorkers int
}

// IndexStats summarizes a keyword run
type IndexStats struct {
	Articles int   `json:"articles"`
	Failed   int   `json:"failed"`
	Edges    int   `json:"edges"`
	Cursor   int64 `json:"cursor"`
}

func (s IndexStats) String() string {
	return fmt.Sprintf("articles: %d, failed: %d, edges: %d, cursor: %d", s.Articles, s.Failed, s.Edges, s.Cursor)
}

// NewKeywordIndexer creates a keyword indexer with batch size 100 and a single worker by default
func NewKeywordIndexer(cfg KeywordIndexerConfig) *KeywordIndexer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	return &KeywordIndexer{
		articles:   cfg.Articles,
		graph:      cfg.Graph,
		settings:   cfg.Settings,
		extractor:  cfg.Extractor,
		batchSize:  cfg.BatchSize,
		maxWorkers: cfg.MaxWorkers,
	}
}

// maxStalledRuns is how many runs a batch with every article failing is retried before it is skipped
const maxStalledRuns = 3

// Run indexes articles after the stored cursor batch by batch. With rescan set it starts from
// the first article, links already present are kept as is. Failed articles are logged, counted
// and skipped. A batch where every article fails is treated as an extractor outage: the cursor
// stays and the batch is retried by the next run, up to maxStalledRuns runs, then skipped.
func (ki *KeywordIndexer) Run(ctx context.Context, rescan bool) (IndexStats, error) {
	var cursor int64
	if !rescan {
		c, err := ki.settings.GetInt64(ctx, domain.SettingKeywordCursor)
		if err != nil {
			return IndexStats{}, fmt.Errorf("get keyword cursor: %w", err)
		}
		cursor = c
	}
	stalled, err := ki.settings.GetInt64(ctx, domain.SettingKeywordStalledRuns)
	if err != nil {
		return IndexStats{}, fmt.Errorf("get stalled runs: %w", err)
	}
	stats := IndexStats{Cursor: cursor}

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		batch, err := ki.articles.ArticlesAfter(ctx, cursor, ki.batchSize)
		if err != nil {
			return stats, fmt.Errorf("get articles after %d: %w", cursor, err)
		}
		if len(batch) == 0 {
			break
		}

		failed := ki.indexBatch(ctx, batch, &stats)
		if failed == len(batch) {
			stalled++
			if stalled < maxStalledRuns {
				lgr.Printf("[WARN] all %d articles after %d failed, retry on next run (%d/%d)",
					len(batch), cursor, stalled, maxStalledRuns)
				if err := ki.settings.SetInt64(ctx, domain.SettingKeywordStalledRuns, stalled); err != nil {
					return stats, fmt.Errorf("save stalled runs: %w", err)
				}
				break
			}
			lgr.Printf("[WARN] all %d articles after %d failed in %d runs, skipping them", len(batch), cursor, stalled)
		}
		if stalled > 0 {
			if err := ki.settings.SetInt64(ctx, domain.SettingKeywordStalledRuns, 0); err != nil {
				return stats, fmt.Errorf("save stalled runs: %w", err)
			}
			stalled = 0
		}

		next := cursor
		for _, a := range batch {
			next = max(next, a.ID)
		}
		if err := ki.settings.SetInt64(ctx, domain.SettingKeywordCursor, next); err != nil {
			return stats, fmt.Errorf("save keyword cursor: %w", err)
		}
		cursor = next
		stats.Cursor = next

		if len(batch) < ki.batchSize {
			break
		}
	}

	lgr.Printf("[INFO] keyword indexing completed, %s", stats)
	return stats, nil
}

// indexBatch indexes articles concurrently, updates stats and returns number of failed articles
func (ki *KeywordIndexer) indexBatch(ctx context.Context, batch []domain.ArticleSource, stats *IndexStats) int {
	edges := make([]int, len(batch))
	errs := make([]error, len(batch))
	var g errgroup.Group
	g.SetLimit(ki.maxWorkers)
	for i := range batch {
		g.Go(func() error {
			edges[i], errs[i] = ki.indexArticle(ctx, batch[i])
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, a := range batch {
		stats.Articles++
		stats.Edges += edges[i]
		if errs[i] != nil {
			lgr.Printf("[WARN] failed to index keywords of article %d: %v", a.ID, errs[i])
			stats.Failed++
			failed++
		}
	}
	return failed
}

// indexArticle extracts keywords of the article title and links them, returns number of keywords linked
func (ki *KeywordIndexer) indexArticle(ctx context.Context, a domain.ArticleSource) (int, error) {
	keywords, err := ki.extractor.Extract(ctx, a.Title, a.IsVN)
	if err != nil {
		return 0, fmt.Errorf("extract keywords: %w", err)
	}

	linked := 0
	for _, kw := range keywords {
		id, err := ki.graph.UpsertKeyword(ctx, kw)
		if err != nil {
			return linked, fmt.Errorf("upsert keyword %q: %w", kw, err)
		}
		if err := ki.graph.LinkArticleKeyword(ctx, a.ID, id); err != nil {
			return linked, fmt.Errorf("link keyword %q: %w", kw, err)
		}
		linked++
	}
	if linked > 0 {
		lgr.Printf("[DEBUG] article %d linked to %d keywords", a.ID, linked)
	}
	return linked, nil
}

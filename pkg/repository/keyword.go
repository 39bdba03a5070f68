package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsgraph/pkg/domain"
)

// KeywordRepository maintains the article-keyword graph
type KeywordRepository struct {
	db *sqlx.DB
}

// keywordSQL represents a keyword for SQL operations
type keywordSQL struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Hash string `db:"hash"`
}

// keywordCountSQL represents a keyword with a count of distinct articles
type keywordCountSQL struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Count int    `db:"count"`
}

// NewKeywordRepository creates a new keyword repository
func NewKeywordRepository(db *sqlx.DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

// UpsertKeyword returns id of the keyword with given name, creating it on first occurrence.
// Keywords are addressed by md5 of the lower-cased name, concurrent calls for the same name
// converge on a single row.
func (r *KeywordRepository) UpsertKeyword(ctx context.Context, name string) (int64, error) {
	norm := domain.NormalizeKeyword(name)
	if norm == "" {
		return 0, errors.New("upsert keyword: empty name")
	}
	hash := domain.KeywordHash(norm)

	var id int64
	err := withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "INSERT INTO keywords (name, hash) VALUES (?, ?) ON CONFLICT(hash) DO NOTHING",
			norm, hash); err != nil {
			return fmt.Errorf("insert keyword %q: %w", norm, err)
		}
		if err := r.db.GetContext(ctx, &id, "SELECT id FROM keywords WHERE hash = ?", hash); err != nil {
			return fmt.Errorf("get keyword %q: %w", norm, err)
		}
		return nil
	})
	return id, err
}

// LinkArticleKeyword creates an article-keyword edge, no-op if the edge exists
func (r *KeywordRepository) LinkArticleKeyword(ctx context.Context, articleID, keywordID int64) error {
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "INSERT OR IGNORE INTO article_keywords (article_id, keyword_id) VALUES (?, ?)",
			articleID, keywordID); err != nil {
			return fmt.Errorf("link article %d keyword %d: %w", articleID, keywordID, err)
		}
		return nil
	})
}

// KeywordByName finds keyword by exact (normalized) name. The second value is false if not found.
func (r *KeywordRepository) KeywordByName(ctx context.Context, name string) (domain.Keyword, bool, error) {
	var rec keywordSQL
	err := r.db.GetContext(ctx, &rec, "SELECT id, name, hash FROM keywords WHERE hash = ?", domain.KeywordHash(name))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Keyword{}, false, nil
	}
	if err != nil {
		return domain.Keyword{}, false, fmt.Errorf("get keyword by name: %w", err)
	}
	return rec.toDomain(), true, nil
}

// KeywordIDsByNames resolves names to ids, unknown names are skipped
func (r *KeywordRepository) KeywordIDsByNames(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return []int64{}, nil
	}
	hashes := make([]string, 0, len(names))
	for _, n := range names {
		hashes = append(hashes, domain.KeywordHash(n))
	}
	query, args, err := sqlx.In("SELECT id FROM keywords WHERE hash IN (?) ORDER BY id", hashes)
	if err != nil {
		return nil, fmt.Errorf("build keyword ids query: %w", err)
	}
	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get keyword ids: %w", err)
	}
	return ids, nil
}

// KeywordsByArticle returns keywords linked to the article, ordered by id
func (r *KeywordRepository) KeywordsByArticle(ctx context.Context, articleID int64) ([]domain.Keyword, error) {
	query := `
		SELECT k.id, k.name, k.hash FROM keywords k
		JOIN article_keywords ak ON ak.keyword_id = k.id
		WHERE ak.article_id = ?
		ORDER BY k.id
	`
	var recs []keywordSQL
	if err := r.db.SelectContext(ctx, &recs, query, articleID); err != nil {
		return nil, fmt.Errorf("get keywords by article: %w", err)
	}
	return toDomainKeywords(recs), nil
}

// KeywordsByIDs returns keywords with given ids, ordered by id
func (r *KeywordRepository) KeywordsByIDs(ctx context.Context, ids []int64) ([]domain.Keyword, error) {
	res := []domain.Keyword{}
	for _, chunk := range chunks(ids, inChunkSize) {
		query, args, err := sqlx.In("SELECT id, name, hash FROM keywords WHERE id IN (?) ORDER BY id", chunk)
		if err != nil {
			return nil, fmt.Errorf("build keywords query: %w", err)
		}
		var recs []keywordSQL
		if err := r.db.SelectContext(ctx, &recs, r.db.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("get keywords by ids: %w", err)
		}
		res = append(res, toDomainKeywords(recs)...)
	}
	return res, nil
}

// ArticleIDsByKeywords returns a page of distinct ids of articles linked to any of the keywords,
// newest first, and the full count. Article excludeID is left out, zero excludes nothing.
func (r *KeywordRepository) ArticleIDsByKeywords(ctx context.Context, keywordIDs []int64, excludeID int64,
	limit, offset int) ([]int64, int, error) {
	if len(keywordIDs) == 0 {
		return []int64{}, 0, nil
	}

	from := `FROM articles a WHERE a.id IN (SELECT article_id FROM article_keywords WHERE keyword_id IN (?)) AND a.id != ?`

	countQuery, args, err := sqlx.In("SELECT COUNT(*) "+from, keywordIDs, excludeID)
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("count articles by keywords: %w", err)
	}
	if total == 0 {
		return []int64{}, 0, nil
	}

	idsQuery, args, err := sqlx.In("SELECT a.id "+from+" ORDER BY a.pub_date DESC, a.id DESC LIMIT ? OFFSET ?",
		keywordIDs, excludeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("build ids query: %w", err)
	}
	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(idsQuery), args...); err != nil {
		return nil, 0, fmt.Errorf("get articles by keywords: %w", err)
	}
	return ids, total, nil
}

// HotKeywords aggregates number of distinct articles per keyword, most used first, ties by id
func (r *KeywordRepository) HotKeywords(ctx context.Context, limit int) ([]domain.KeywordCount, error) {
	query := `
		SELECT k.id, k.name, COUNT(DISTINCT ak.article_id) AS count
		FROM keywords k
		JOIN article_keywords ak ON ak.keyword_id = k.id
		GROUP BY k.id, k.name
		ORDER BY count DESC, k.id ASC
		LIMIT ?
	`
	var recs []keywordCountSQL
	if err := r.db.SelectContext(ctx, &recs, query, limit); err != nil {
		return nil, fmt.Errorf("get hot keywords: %w", err)
	}
	return toDomainKeywordCounts(recs), nil
}

// ScanEdges returns up to limit edges of the most recently inserted articles
func (r *KeywordRepository) ScanEdges(ctx context.Context, limit int) ([]domain.ArticleKeyword, error) {
	var recs []struct {
		ArticleID int64 `db:"article_id"`
		KeywordID int64 `db:"keyword_id"`
	}
	query := "SELECT article_id, keyword_id FROM article_keywords ORDER BY article_id DESC, keyword_id ASC LIMIT ?"
	if err := r.db.SelectContext(ctx, &recs, query, limit); err != nil {
		return nil, fmt.Errorf("scan edges: %w", err)
	}
	res := make([]domain.ArticleKeyword, len(recs))
	for i, rec := range recs {
		res[i] = domain.ArticleKeyword{ArticleID: rec.ArticleID, KeywordID: rec.KeywordID}
	}
	return res, nil
}

// CooccurringKeywords returns keywords sharing at least one article with keywordID, annotated with the
// number of distinct shared articles, most frequent first, ties by id. The keyword itself is excluded.
func (r *KeywordRepository) CooccurringKeywords(ctx context.Context, keywordID int64, limit int) ([]domain.KeywordCount, error) {
	query := `
		SELECT k.id, k.name, COUNT(DISTINCT other.article_id) AS count
		FROM article_keywords src
		JOIN article_keywords other ON other.article_id = src.article_id AND other.keyword_id != src.keyword_id
		JOIN keywords k ON k.id = other.keyword_id
		WHERE src.keyword_id = ?
		GROUP BY k.id, k.name
		ORDER BY count DESC, k.id ASC
		LIMIT ?
	`
	var recs []keywordCountSQL
	if err := r.db.SelectContext(ctx, &recs, query, keywordID, limit); err != nil {
		return nil, fmt.Errorf("get co-occurring keywords: %w", err)
	}
	return toDomainKeywordCounts(recs), nil
}

func (k keywordSQL) toDomain() domain.Keyword {
	return domain.Keyword{ID: k.ID, Name: k.Name, Hash: k.Hash}
}

func toDomainKeywords(recs []keywordSQL) []domain.Keyword {
	res := make([]domain.Keyword, len(recs))
	for i, rec := range recs {
		res[i] = rec.toDomain()
	}
	return res
}

func toDomainKeywordCounts(recs []keywordCountSQL) []domain.KeywordCount {
	res := make([]domain.KeywordCount, len(recs))
	for i, rec := range recs {
		res[i] = domain.KeywordCount{ID: rec.ID, Name: rec.Name, Count: rec.Count}
	}
	return res
}

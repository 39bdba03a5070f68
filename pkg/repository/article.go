package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsgraph/pkg/domain"
)

// ArticleRepository handles article database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Link          string    `db:"link"`
	ImageURL      string    `db:"image_url"`
	Description   string    `db:"description"`
	PubDate       time.Time `db:"pub_date"`
	FeedID        int64     `db:"feed_id"`
	Hash          string    `db:"hash"`
	TitleLC       string    `db:"title_lc"`
	DescriptionLC string    `db:"description_lc"`
	CreatedAt     time.Time `db:"created_at"`
}

const articleColumns = "a.id, a.title, a.link, a.image_url, a.description, a.pub_date, a.feed_id, a.hash, a.created_at"

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// UpsertArticle inserts article unless an article with the same link hash exists.
// Returns true if the article was inserted, article ID is set in this case.
func (r *ArticleRepository) UpsertArticle(ctx context.Context, article *domain.Article) (bool, error) {
	article.Hash = domain.LinkHash(article.Link)
	rec := articleSQL{
		Title:         article.Title,
		Link:          strings.TrimSpace(article.Link),
		ImageURL:      article.ImageURL,
		Description:   article.Description,
		PubDate:       dbTime(article.PubDate),
		FeedID:        article.FeedID,
		Hash:          article.Hash,
		TitleLC:       strings.ToLower(article.Title),
		DescriptionLC: strings.ToLower(article.Description),
	}

	query := `
		INSERT INTO articles (title, link, image_url, description, pub_date, feed_id, hash, title_lc, description_lc)
		VALUES (:title, :link, :image_url, :description, :pub_date, :feed_id, :hash, :title_lc, :description_lc)
		ON CONFLICT(hash) DO NOTHING
	`
	var inserted bool
	err := withRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			return fmt.Errorf("upsert article: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if n == 0 {
			return nil
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		article.ID, inserted = id, true
		return nil
	})
	return inserted, err
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var rec articleSQL
	if err := r.db.GetContext(ctx, &rec, "SELECT "+articleColumns+" FROM articles a WHERE a.id = ?", id); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	res := rec.toDomain()
	return &res, nil
}

// HotArticles returns articles published not later than before, newest first, and the full count
func (r *ArticleRepository) HotArticles(ctx context.Context, before time.Time, limit, offset int) ([]domain.Article, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM articles WHERE pub_date <= ?", dbTime(before)); err != nil {
		return nil, 0, fmt.Errorf("count hot articles: %w", err)
	}
	if total == 0 {
		return []domain.Article{}, 0, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles a
		WHERE a.pub_date <= ?
		ORDER BY a.pub_date DESC, a.id DESC
		LIMIT ? OFFSET ?`
	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, query, dbTime(before), limit, offset); err != nil {
		return nil, 0, fmt.Errorf("get hot articles: %w", err)
	}
	return toDomainArticles(recs), total, nil
}

// SearchArticles returns articles with title or description containing the lower-cased query
// as a literal substring, newest first, and the full count
func (r *ArticleRepository) SearchArticles(ctx context.Context, query string, limit, offset int) ([]domain.Article, int, error) {
	q := strings.ToLower(query)
	where := "instr(a.title_lc, ?) > 0 OR instr(a.description_lc, ?) > 0"

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM articles a WHERE "+where, q, q); err != nil {
		return nil, 0, fmt.Errorf("count search articles: %w", err)
	}
	if total == 0 {
		return []domain.Article{}, 0, nil
	}

	sel := "SELECT " + articleColumns + " FROM articles a WHERE " + where +
		" ORDER BY a.pub_date DESC, a.id DESC LIMIT ? OFFSET ?"
	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, sel, q, q, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("search articles: %w", err)
	}
	return toDomainArticles(recs), total, nil
}

// ArticlesByIDs returns articles with given ids, newest first. Missing ids are ignored.
func (r *ArticleRepository) ArticlesByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}
	var recs []articleSQL
	for _, chunk := range chunks(ids, inChunkSize) {
		query, args, err := sqlx.In("SELECT "+articleColumns+" FROM articles a WHERE a.id IN (?)", chunk)
		if err != nil {
			return nil, fmt.Errorf("build articles query: %w", err)
		}
		var part []articleSQL
		if err := r.db.SelectContext(ctx, &part, r.db.Rebind(query), args...); err != nil {
			return nil, fmt.Errorf("get articles by ids: %w", err)
		}
		recs = append(recs, part...)
	}
	res := toDomainArticles(recs)
	sortArticles(res)
	return res, nil
}

// LatestByKeyword returns the most recent articles linked to the keyword name
func (r *ArticleRepository) LatestByKeyword(ctx context.Context, name string, limit int) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles a
		JOIN article_keywords ak ON ak.article_id = a.id
		JOIN keywords k ON k.id = ak.keyword_id
		WHERE k.hash = ?
		ORDER BY a.pub_date DESC, a.id DESC
		LIMIT ?`
	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, query, domain.KeywordHash(name), limit); err != nil {
		return nil, fmt.Errorf("get latest articles by keyword: %w", err)
	}
	return toDomainArticles(recs), nil
}

// ArticlesAfter returns up to limit articles with id greater than afterID, oldest id first,
// with the language flag of their publisher. Articles of unknown feeds are treated as native.
func (r *ArticleRepository) ArticlesAfter(ctx context.Context, afterID int64, limit int) ([]domain.ArticleSource, error) {
	query := `
		SELECT a.id, a.title, COALESCE(p.is_vn, 1) AS is_vn
		FROM articles a
		LEFT JOIN feeds f ON f.id = a.feed_id
		LEFT JOIN publishers p ON p.id = f.publisher_id
		WHERE a.id > ?
		ORDER BY a.id ASC
		LIMIT ?
	`
	var recs []struct {
		ID    int64  `db:"id"`
		Title string `db:"title"`
		IsVN  bool   `db:"is_vn"`
	}
	if err := r.db.SelectContext(ctx, &recs, query, afterID, limit); err != nil {
		return nil, fmt.Errorf("get articles after %d: %w", afterID, err)
	}
	res := make([]domain.ArticleSource, len(recs))
	for i, rec := range recs {
		res[i] = domain.ArticleSource{ID: rec.ID, Title: rec.Title, IsVN: rec.IsVN}
	}
	return res, nil
}

func (a articleSQL) toDomain() domain.Article {
	return domain.Article{
		ID:          a.ID,
		Title:       a.Title,
		Link:        a.Link,
		ImageURL:    a.ImageURL,
		Description: a.Description,
		PubDate:     a.PubDate.UTC(),
		FeedID:      a.FeedID,
		Hash:        a.Hash,
		CreatedAt:   a.CreatedAt,
	}
}

func toDomainArticles(recs []articleSQL) []domain.Article {
	res := make([]domain.Article, len(recs))
	for i, rec := range recs {
		res[i] = rec.toDomain()
	}
	return res
}

// sortArticles orders articles by publish date descending, id descending for equal dates
func sortArticles(articles []domain.Article) {
	slices.SortFunc(articles, func(a, b domain.Article) int {
		if c := b.PubDate.Compare(a.PubDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

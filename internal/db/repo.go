package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}

	return nil
}

func applyArticleFilter(query *orm.Query, filter ArticleFilter) *orm.Query {
	query = query.Where(`"t"."status" = ?`, StatusPublished)

	if filter.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *filter.CategoryID)
	}

	if filter.Featured != nil {
		query = query.Where(`"t"."featured" = ?`, *filter.Featured)
	}

	if filter.ExcludeID != nil {
		query = query.Where(`"t"."article_id" != ?`, *filter.ExcludeID)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			return q.
				WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern).
				WhereOr(`"t"."excerpt" ILIKE ?`, pattern), nil
		})
	}

	return query
}

// ArticleBySlug returns the published article with the given slug, with
// category and author attached, or nil when no such article exists.
func (r *Repository) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return article, nil
}

// Articles retrieves published articles matching the filter, most recent
// first. Limit and Offset must be positive and non-negative respectively.
func (r *Repository) Articles(ctx context.Context, filter ArticleFilter) ([]Article, error) {
	if filter.Limit < 1 || filter.Offset < 0 {
		return nil, fmt.Errorf(
			"invalid pagination: limit=%d, offset=%d", filter.Limit, filter.Offset,
		)
	}

	var articles []Article
	query := applyArticleFilter(r.db.ModelContext(ctx, &articles), filter).
		Relation("Category").
		Relation("Author")

	err := query.
		OrderExpr(`"t"."created_at" DESC`).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

// ArticlesCount counts articles matching the filter, ignoring Limit/Offset.
func (r *Repository) ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error) {
	count, err := applyArticleFilter(
		r.db.ModelContext(ctx, (*Article)(nil)), filter,
	).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

// RelatedArticles returns up to limit published articles from the same
// category, excluding the article itself, most recent first.
func (r *Repository) RelatedArticles(ctx context.Context, categoryID, excludeID, limit int) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Author").
		Where(`"t"."status" = ?`, StatusPublished).
		Where(`"t"."category_id" = ?`, categoryID).
		Where(`"t"."article_id" != ?`, excludeID).
		OrderExpr(`"t"."created_at" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query related articles: %w", err)
	}

	return articles, nil
}

// Categories returns all categories ordered by name, each with the count of
// published articles referencing it. Categories with no articles count as 0.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		ColumnExpr(`"t".*`).
		ColumnExpr(`count("a"."article_id") AS "news_count"`).
		Join(`LEFT JOIN "articles" AS "a"`).
		JoinOn(`"a"."category_id" = "t"."category_id"`).
		JoinOn(`"a"."status" = ?`, StatusPublished).
		GroupExpr(`"t"."category_id"`).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// InsertArticle inserts the article and returns the assigned id. Timestamps
// are set here; a duplicate slug surfaces as the underlying pg error.
func (r *Repository) InsertArticle(ctx context.Context, article *Article) (int, error) {
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.Status == "" {
		article.Status = StatusDraft
	}

	_, err := r.db.ModelContext(ctx, article).Insert()
	if err != nil {
		return 0, fmt.Errorf("failed to insert article: %w", err)
	}

	return article.ID, nil
}

// UpdateArticle replaces the mutable fields of the article identified by
// article.ID. Returns false when no row matched.
func (r *Repository) UpdateArticle(ctx context.Context, article *Article) (bool, error) {
	article.UpdatedAt = time.Now()

	result, err := r.db.ModelContext(ctx, article).
		Column("title", "slug", "content", "excerpt", "image_url",
			"category_id", "status", "featured", "updated_at").
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update article: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// DeleteArticle removes the article by id. Returns false when no row matched.
func (r *Repository) DeleteArticle(ctx context.Context, articleID int) (bool, error) {
	result, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."article_id" = ?`, articleID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete article: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// IncrementViews bumps the view counter for the article. The counter only
// ever grows; there is no decrement path.
func (r *Repository) IncrementViews(ctx context.Context, articleID int) error {
	_, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Set(`"views" = "views" + 1`).
		Where(`"t"."article_id" = ?`, articleID).
		Update()

	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}

	return nil
}

// UserByToken resolves a session token to its user. Expired or unknown
// tokens return nil, not an error.
func (r *Repository) UserByToken(ctx context.Context, token string) (*User, error) {
	session := &Session{}
	err := r.db.ModelContext(ctx, session).
		Relation("User").
		Where(`"t"."token" = ?`, token).
		Where(`"t"."expires_at" > ?`, time.Now()).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}

	return session.User, nil
}

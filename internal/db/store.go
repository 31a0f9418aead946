package db

import (
	"context"
)

// ArticleFilter narrows the published-article listing. Nil fields are
// not applied. Limit and Offset are expected to be normalized by the caller.
type ArticleFilter struct {
	CategoryID *int
	Featured   *bool
	Search     string
	ExcludeID  *int
	Limit      int
	Offset     int
}

// Store is the backing-store contract consumed by the surfjournal manager
// and the auth middleware. The production implementation is *Repository;
// tests substitute a manual stub.
type Store interface {
	ArticleBySlug(ctx context.Context, slug string) (*Article, error)
	Articles(ctx context.Context, filter ArticleFilter) ([]Article, error)
	ArticlesCount(ctx context.Context, filter ArticleFilter) (int, error)
	RelatedArticles(ctx context.Context, categoryID, excludeID, limit int) ([]Article, error)
	Categories(ctx context.Context) ([]Category, error)

	InsertArticle(ctx context.Context, article *Article) (int, error)
	UpdateArticle(ctx context.Context, article *Article) (bool, error)
	DeleteArticle(ctx context.Context, articleID int) (bool, error)
	IncrementViews(ctx context.Context, articleID int) error

	UserByToken(ctx context.Context, token string) (*User, error)

	Ping(ctx context.Context) error
	Close() error
}

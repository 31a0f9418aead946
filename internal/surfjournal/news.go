package surfjournal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/surfjournal/backend/internal/db"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50

	// RelatedLimit is how many related articles the detail page shows.
	RelatedLimit = 3
)

// Manager is the single point of truth for reading and writing articles and
// categories. Reads go through a short-lived cache; any successful write
// clears the whole cache.
type Manager struct {
	db    db.Store
	cache *ttlCache
	log   *slog.Logger
}

func NewManager(store db.Store, log *slog.Logger, ttl time.Duration) *Manager {
	return &Manager{
		db:    store,
		cache: newTTLCache(ttl, nil),
		log:   log,
	}
}

// newManagerWithClock is the test constructor, letting tests move time.
func newManagerWithClock(store db.Store, log *slog.Logger, ttl time.Duration, now func() time.Time) *Manager {
	return &Manager{
		db:    store,
		cache: newTTLCache(ttl, now),
		log:   log,
	}
}

// normalize applies listing defaults before the filter is used for either
// the query or the cache key, so equivalent requests share one entry.
func (f Filter) normalize() Filter {
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// ArticleBySlug returns the published article with the given slug, or nil
// when absent. A cache miss that finds the article increments its view
// counter once; cache hits within the TTL do not re-increment, so repeat
// views inside the window are undercounted. That approximation is kept
// deliberately.
func (m *Manager) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	key := articleBySlugKey(slug)
	if cached, ok := m.cache.get(key); ok {
		return cached.(*Article), nil
	}

	dbArticle, err := m.db.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get article by slug: %w", err)
	}

	var article *Article
	if dbArticle != nil {
		converted := NewArticle(*dbArticle)
		article = &converted

		if err := m.db.IncrementViews(ctx, dbArticle.ID); err != nil {
			// The read already succeeded; losing one view is acceptable.
			m.log.Error("failed to increment views", "articleId", dbArticle.ID, "error", err)
		}
	}

	m.cache.set(key, article)

	return article, nil
}

// RelatedArticles returns up to limit published articles sharing a category
// with the given article, excluding the article itself.
func (m *Manager) RelatedArticles(ctx context.Context, categoryID, excludeID, limit int) ([]Article, error) {
	if limit < 1 {
		limit = RelatedLimit
	}

	key := relatedKey(categoryID, excludeID, limit)
	if cached, ok := m.cache.get(key); ok {
		return cached.([]Article), nil
	}

	list, err := m.db.RelatedArticles(ctx, categoryID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get related articles: %w", err)
	}

	articles := NewArticles(list)
	m.cache.set(key, articles)

	return articles, nil
}

// Articles retrieves published articles matching the filter, most recent
// first, along with the total ignoring limit/offset.
func (m *Manager) Articles(ctx context.Context, filter Filter) (ArticlePage, error) {
	filter = filter.normalize()

	key := listKey(filter)
	if cached, ok := m.cache.get(key); ok {
		return cached.(ArticlePage), nil
	}

	dbFilter := db.ArticleFilter{
		CategoryID: filter.CategoryID,
		Featured:   filter.Featured,
		Search:     filter.Search,
		ExcludeID:  filter.ExcludeID,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}

	list, err := m.db.Articles(ctx, dbFilter)
	if err != nil {
		return ArticlePage{}, fmt.Errorf("db get articles: %w", err)
	}

	total, err := m.db.ArticlesCount(ctx, dbFilter)
	if err != nil {
		return ArticlePage{}, fmt.Errorf("db get articles count: %w", err)
	}

	page := ArticlePage{Items: NewArticles(list), Total: total}
	m.cache.set(key, page)

	return page, nil
}

// Categories returns all categories ordered by name with published-article
// counts; zero-count categories are included.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	key := categoriesKey()
	if cached, ok := m.cache.get(key); ok {
		return cached.([]Category), nil
	}

	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	categories := NewCategories(list)
	m.cache.set(key, categories)

	return categories, nil
}

// CreateArticle inserts a new article and returns its id. Store rejections
// (such as a duplicate slug) propagate unchanged; there is no retry.
func (m *Manager) CreateArticle(ctx context.Context, draft ArticleDraft) (int, error) {
	id, err := m.db.InsertArticle(ctx, draft.toDB(0))
	if err != nil {
		return 0, fmt.Errorf("db insert article: %w", err)
	}

	m.cache.clear()

	return id, nil
}

// UpdateArticle replaces the mutable fields of the article. Returns false,
// not an error, when no article has that id.
func (m *Manager) UpdateArticle(ctx context.Context, id int, draft ArticleDraft) (bool, error) {
	updated, err := m.db.UpdateArticle(ctx, draft.toDB(id))
	if err != nil {
		return false, fmt.Errorf("db update article: %w", err)
	}

	m.cache.clear()

	return updated, nil
}

// DeleteArticle hard-deletes the article. Returns false when no row matched.
func (m *Manager) DeleteArticle(ctx context.Context, id int) (bool, error) {
	deleted, err := m.db.DeleteArticle(ctx, id)
	if err != nil {
		return false, fmt.Errorf("db delete article: %w", err)
	}

	m.cache.clear()

	return deleted, nil
}

// UserByToken resolves a session token to a user; expired or unknown tokens
// yield nil. Sessions are never cached.
func (m *Manager) UserByToken(ctx context.Context, token string) (*db.User, error) {
	user, err := m.db.UserByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("db get user by token: %w", err)
	}

	return user, nil
}

package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/surfjournal/backend/internal/surfjournal"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods over the same manager the REST
// surface uses; writes stay REST-only.
type NewsService struct {
	zenrpc.Service
	manager *surfjournal.Manager
}

func NewNewsService(manager *surfjournal.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List retrieves published articles with optional category/featured/search
// filters, most recent first.
//
//zenrpc:filter listing filter with pagination
//zenrpc:return page of article summaries with total
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, filter ListFilter) (*ArticlePage, error) {
	page, err := s.manager.Articles(ctx, filter.toDomain())
	if err != nil {
		return nil, err
	}

	result := NewArticlePage(page)
	return &result, nil
}

// BySlug retrieves a single published article by slug with full content.
//
//zenrpc:slug article slug
//zenrpc:return article with full content
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *NewsService) BySlug(ctx context.Context, slug string) (*Article, error) {
	article, err := s.manager.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if article == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	result := NewArticle(*article)
	return &result, nil
}

// Categories retrieves all categories ordered by name with published-article
// counts.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *NewsService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

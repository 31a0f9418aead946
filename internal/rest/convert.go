package rest

import "github.com/surfjournal/backend/internal/surfjournal"

func NewArticle(a surfjournal.Article) Article {
	return Article{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		Content:      a.Content,
		Excerpt:      a.Excerpt,
		ImageURL:     a.ImageURL,
		CategoryID:   a.CategoryID,
		CategoryName: a.CategoryName,
		Author:       a.AuthorName,
		Status:       a.Status,
		Featured:     a.Featured,
		Views:        a.Views,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// NewArticleSummary drops the content body for listings.
func NewArticleSummary(a surfjournal.Article) Article {
	summary := NewArticle(a)
	summary.Content = ""
	return summary
}

func NewArticles(list []surfjournal.Article) []Article {
	return surfjournal.Map(list, NewArticleSummary)
}

func NewCategory(c surfjournal.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		NewsCount:   c.NewsCount,
	}
}

func NewCategories(list []surfjournal.Category) []Category {
	return surfjournal.Map(list, NewCategory)
}

func (in ArticleInput) toDraft(authorID int) surfjournal.ArticleDraft {
	return surfjournal.ArticleDraft{
		Title:      in.Title,
		Slug:       in.Slug,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		ImageURL:   in.ImageURL,
		CategoryID: in.CategoryID,
		AuthorID:   authorID,
		Status:     in.Status,
		Featured:   in.Featured,
	}
}

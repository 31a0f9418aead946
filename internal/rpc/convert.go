package rpc

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
		Featured:     a.Featured,
		Views:        a.Views,
		CreatedAt:    a.CreatedAt,
	}
}

func NewArticleSummary(a surfjournal.Article) Article {
	summary := NewArticle(a)
	summary.Content = ""
	return summary
}

func NewArticlePage(page surfjournal.ArticlePage) ArticlePage {
	return ArticlePage{
		Items: surfjournal.Map(page.Items, NewArticleSummary),
		Total: page.Total,
	}
}

func NewCategories(list []surfjournal.Category) []Category {
	return surfjournal.Map(list, func(c surfjournal.Category) Category {
		return Category{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			NewsCount:   c.NewsCount,
		}
	})
}

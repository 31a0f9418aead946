package surfjournal

import (
	"github.com/surfjournal/backend/internal/db"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticle(a db.Article) Article {
	article := Article{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Content:    a.Content,
		Excerpt:    a.Excerpt,
		ImageURL:   a.ImageURL,
		CategoryID: a.CategoryID,
		AuthorID:   a.AuthorID,
		Status:     a.Status,
		Featured:   a.Featured,
		Views:      a.Views,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}

	if a.Category != nil {
		article.CategoryName = a.Category.Name
	}

	if a.Author != nil {
		article.AuthorName = a.Author.Name
	}

	return article
}

func NewArticles(list []db.Article) []Article {
	return Map(list, NewArticle)
}

func NewCategory(c db.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		NewsCount:   c.NewsCount,
	}
}

func NewCategories(list []db.Category) []Category {
	return Map(list, NewCategory)
}

func (d ArticleDraft) toDB(id int) *db.Article {
	status := d.Status
	if status == "" {
		status = db.StatusDraft
	}

	return &db.Article{
		ID:         id,
		Title:      d.Title,
		Slug:       d.Slug,
		Content:    d.Content,
		Excerpt:    d.Excerpt,
		ImageURL:   d.ImageURL,
		CategoryID: d.CategoryID,
		AuthorID:   d.AuthorID,
		Status:     status,
		Featured:   d.Featured,
	}
}

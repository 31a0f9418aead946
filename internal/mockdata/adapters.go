package mockdata

import (
	"sort"

	"github.com/surfjournal/backend/internal/db"
	"github.com/surfjournal/backend/internal/surfjournal"
)

// ToArticle maps a mock record onto the domain article shape. The mapping is
// deliberately explicit: the mock fixtures keep their original field names
// (Headline, Body, ImageLink) and this is the single place they are matched
// to the store's vocabulary.
func ToArticle(a MockArticle) surfjournal.Article {
	return surfjournal.Article{
		ID:           a.ID,
		Title:        a.Headline,
		Slug:         a.UrlSlug,
		Content:      a.Body,
		Excerpt:      a.Summary,
		ImageURL:     a.ImageLink,
		CategoryID:   a.TopicID,
		CategoryName: a.Topic,
		AuthorName:   a.Writer,
		Status:       db.StatusPublished,
		Featured:     a.Promoted,
		Views:        a.Hits,
		CreatedAt:    a.PostedAt,
		UpdatedAt:    a.PostedAt,
	}
}

func ToCategory(c MockCategory) surfjournal.Category {
	return surfjournal.Category{
		ID:          c.ID,
		Name:        c.Label,
		Slug:        c.UrlSlug,
		Description: c.About,
		NewsCount:   c.Stories,
	}
}

// AllArticles returns every mock article mapped to the domain shape, most
// recent first, matching the store's listing order.
func AllArticles() []surfjournal.Article {
	articles := surfjournal.Map(Articles, ToArticle)
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles
}

func AllCategories() []surfjournal.Category {
	return surfjournal.Map(Categories, ToCategory)
}

// ArticleBySlug returns the mock article with the given slug, nil if absent.
func ArticleBySlug(slug string) *surfjournal.Article {
	for i := range Articles {
		if Articles[i].UrlSlug == slug {
			article := ToArticle(Articles[i])
			return &article
		}
	}
	return nil
}

// NextID synthesizes an identifier for fabricated mock-mode inserts.
func NextID() int {
	max := 0
	for i := range Articles {
		if Articles[i].ID > max {
			max = Articles[i].ID
		}
	}
	return max + 1
}

package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfjournal/backend/internal/db"
)

func TestToArticle(t *testing.T) {
	posted := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	mock := MockArticle{
		ID:        12,
		Headline:  "Test Headline",
		UrlSlug:   "test-headline",
		Body:      "<p>body</p>",
		Summary:   "summary",
		ImageLink: "/images/test.jpg",
		TopicID:   3,
		Topic:     "Gear",
		Writer:    "Lena Reef",
		Promoted:  true,
		Hits:      9,
		PostedAt:  posted,
	}

	article := ToArticle(mock)

	assert.Equal(t, 12, article.ID)
	assert.Equal(t, "Test Headline", article.Title)
	assert.Equal(t, "test-headline", article.Slug)
	assert.Equal(t, "<p>body</p>", article.Content)
	assert.Equal(t, "summary", article.Excerpt)
	assert.Equal(t, "/images/test.jpg", article.ImageURL)
	assert.Equal(t, 3, article.CategoryID)
	assert.Equal(t, "Gear", article.CategoryName)
	assert.Equal(t, "Lena Reef", article.AuthorName)
	assert.Equal(t, db.StatusPublished, article.Status)
	assert.True(t, article.Featured)
	assert.Equal(t, 9, article.Views)
	assert.Equal(t, posted, article.CreatedAt)
}

func TestToCategory(t *testing.T) {
	category := ToCategory(MockCategory{
		ID: 4, Label: "Travel", UrlSlug: "travel", About: "Trips", Stories: 0,
	})

	assert.Equal(t, 4, category.ID)
	assert.Equal(t, "Travel", category.Name)
	assert.Equal(t, "travel", category.Slug)
	assert.Equal(t, "Trips", category.Description)
	assert.Zero(t, category.NewsCount)
}

func TestAllArticlesOrder(t *testing.T) {
	articles := AllArticles()
	require.Len(t, articles, len(Articles))

	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].CreatedAt.After(articles[i-1].CreatedAt),
			"articles must be ordered most recent first")
	}
}

func TestArticleBySlug(t *testing.T) {
	article := ArticleBySlug(Articles[0].UrlSlug)
	require.NotNil(t, article)
	assert.Equal(t, Articles[0].Headline, article.Title)

	assert.Nil(t, ArticleBySlug("no-such-slug"))
}

func TestNextID(t *testing.T) {
	id := NextID()
	for i := range Articles {
		assert.Greater(t, id, Articles[i].ID)
	}
}

func TestSessionByToken(t *testing.T) {
	session := SessionByToken("mock-admin-token")
	require.NotNil(t, session)
	assert.Equal(t, "admin", session.Role)

	assert.Nil(t, SessionByToken("bogus"))
}

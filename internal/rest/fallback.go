package rest

import (
	"strings"

	"github.com/surfjournal/backend/internal/mockdata"
	"github.com/surfjournal/backend/internal/surfjournal"
)

// filterMockArticles applies the listing predicates to the static sample
// set, mirroring the store's semantics so the envelope is interchangeable
// with a live read. Returned total ignores limit/offset.
func filterMockArticles(filter surfjournal.Filter) surfjournal.ArticlePage {
	var matched []surfjournal.Article
	for _, article := range mockdata.AllArticles() {
		if filter.CategoryID != nil && article.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Featured != nil && article.Featured != *filter.Featured {
			continue
		}
		if filter.ExcludeID != nil && article.ID == *filter.ExcludeID {
			continue
		}
		if filter.Search != "" && !matchesSearch(article, filter.Search) {
			continue
		}
		matched = append(matched, article)
	}

	total := len(matched)

	if filter.Offset >= total {
		return surfjournal.ArticlePage{Items: []surfjournal.Article{}, Total: total}
	}

	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}

	return surfjournal.ArticlePage{Items: matched[filter.Offset:end], Total: total}
}

func matchesSearch(article surfjournal.Article, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(article.Title), needle) ||
		strings.Contains(strings.ToLower(article.Content), needle) ||
		strings.Contains(strings.ToLower(article.Excerpt), needle)
}

// relatedMockArticles picks up to limit sample articles sharing the
// category, excluding the article itself.
func relatedMockArticles(categoryID, excludeID, limit int) []surfjournal.Article {
	related := []surfjournal.Article{}
	for _, article := range mockdata.AllArticles() {
		if article.CategoryID != categoryID || article.ID == excludeID {
			continue
		}
		related = append(related, article)
		if len(related) == limit {
			break
		}
	}
	return related
}

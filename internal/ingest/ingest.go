// Package ingest turns an RSS/Atom feed into draft articles: parse the
// feed, fetch each entry, extract the readable body and derive an excerpt.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/mmcdole/gofeed"

	"github.com/surfjournal/backend/internal/surfjournal"
)

const excerptLength = 200

type Importer struct {
	news   *surfjournal.Manager
	parser *gofeed.Parser
	client *retryablehttp.Client
	log    *slog.Logger
}

func New(news *surfjournal.Manager, log *slog.Logger) *Importer {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	parser := gofeed.NewParser()
	parser.Client = client.StandardClient()

	return &Importer{
		news:   news,
		parser: parser,
		client: client,
		log:    log,
	}
}

// Run imports every entry of the feed as a draft article in the given
// category. Entries that fail to fetch or extract are skipped, not fatal.
// Returns the number of articles created.
func (im *Importer) Run(ctx context.Context, feedURL string, categoryID, authorID int) (int, error) {
	feed, err := im.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return 0, fmt.Errorf("parse feed: %w", err)
	}

	created := 0
	for _, item := range feed.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}

		draft, err := im.buildDraft(ctx, item, categoryID, authorID)
		if err != nil {
			im.log.Error("skipping feed item", "link", item.Link, "error", err)
			continue
		}

		id, err := im.create(ctx, draft)
		if err != nil {
			im.log.Error("failed to create article", "slug", draft.Slug, "error", err)
			continue
		}

		im.log.Info("imported article", "id", id, "slug", draft.Slug)
		created++
	}

	return created, nil
}

func (im *Importer) buildDraft(ctx context.Context, item *gofeed.Item, categoryID, authorID int) (surfjournal.ArticleDraft, error) {
	content, err := im.extract(ctx, item.Link)
	if err != nil {
		return surfjournal.ArticleDraft{}, err
	}

	excerpt, err := Excerpt(content, excerptLength)
	if err != nil {
		return surfjournal.ArticleDraft{}, fmt.Errorf("derive excerpt: %w", err)
	}
	if excerpt == "" {
		excerpt = strings.TrimSpace(item.Description)
	}

	imageURL := ""
	if item.Image != nil {
		imageURL = item.Image.URL
	}

	return surfjournal.ArticleDraft{
		Title:      item.Title,
		Slug:       Slugify(item.Title),
		Content:    content,
		Excerpt:    excerpt,
		ImageURL:   imageURL,
		CategoryID: categoryID,
		AuthorID:   authorID,
	}, nil
}

func (im *Importer) extract(ctx context.Context, link string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", link, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := im.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", link, err)
	}
	defer resp.Body.Close()

	pageURL, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse link: %w", err)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("extract readable content: %w", err)
	}

	return article.Content, nil
}

// create inserts the draft, retrying once with a random slug suffix when
// the store rejects a duplicate slug.
func (im *Importer) create(ctx context.Context, draft surfjournal.ArticleDraft) (int, error) {
	id, err := im.news.CreateArticle(ctx, draft)
	if err == nil {
		return id, nil
	}

	draft.Slug = draft.Slug + "-" + uuid.NewString()[:8]
	return im.news.CreateArticle(ctx, draft)
}

// Slugify lowercases the title and collapses everything outside [a-z0-9]
// into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Excerpt strips tags from the HTML fragment and truncates the text on a
// word boundary.
func Excerpt(html string, max int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if len(text) <= max {
		return text, nil
	}

	cut := strings.LastIndex(text[:max], " ")
	if cut <= 0 {
		cut = max
	}

	return text[:cut] + "…", nil
}

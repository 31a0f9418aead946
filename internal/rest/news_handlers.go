package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/surfjournal/backend/internal/db"
	"github.com/surfjournal/backend/internal/mockdata"
	"github.com/surfjournal/backend/internal/surfjournal"
)

// Options toggles the handler-level switches. MockMode serves reads from
// sample data; Debug exposes error details in 500 responses.
type Options struct {
	MockMode bool
	Debug    bool
}

type NewsHandler struct {
	news *surfjournal.Manager
	log  *slog.Logger
	opts Options
}

// NewNewsHandler builds the handler. news may be nil when no database is
// reachable; the handler then behaves as if mock mode were on.
func NewNewsHandler(news *surfjournal.Manager, log *slog.Logger, opts Options) *NewsHandler {
	return &NewsHandler{
		news: news,
		log:  log,
		opts: opts,
	}
}

func (h *NewsHandler) useMock() bool {
	return h.opts.MockMode || h.news == nil
}

func (f NewsRequest) toFilter() surfjournal.Filter {
	filter := surfjournal.Filter{
		CategoryID: f.CategoryID,
		Featured:   f.Featured,
		Search:     f.Search,
		ExcludeID:  f.Exclude,
		Limit:      surfjournal.DefaultPageSize,
	}

	if f.Limit != nil && *f.Limit > 0 {
		filter.Limit = *f.Limit
	}
	if filter.Limit > surfjournal.MaxPageSize {
		filter.Limit = surfjournal.MaxPageSize
	}
	if f.Offset != nil && *f.Offset > 0 {
		filter.Offset = *f.Offset
	}

	return filter
}

// News handles GET /api/news
// @Summary List published articles
// @Description Lists published articles, most recent first, with optional category/featured/search filters. Falls back to sample data in mock mode or on a store failure.
// @Tags news
// @Produce json
// @Param limit query int false "Page size (default 10, max 50)"
// @Param offset query int false "Items to skip"
// @Param categoryId query int false "Filter by category ID"
// @Param featured query bool false "Filter by featured flag"
// @Param search query string false "Case-insensitive substring over title/content/excerpt"
// @Param exclude query int false "Article ID to exclude"
// @Success 200 {object} rest.Envelope
// @Failure 400 {object} rest.Envelope
// @Router /api/news [get]
func (h *NewsHandler) News(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request parameters")
	}

	filter := req.toFilter()

	page, err := h.page(c, filter)
	if err != nil {
		// Reads degrade to sample content rather than failing the caller.
		h.log.Error("article listing failed, serving mock data", "error", err)
		page = filterMockArticles(filter)
	}

	return respondList(c, http.StatusOK,
		NewArticles(page.Items), newMeta(page.Total, filter.Limit, filter.Offset))
}

func (h *NewsHandler) page(c echo.Context, filter surfjournal.Filter) (surfjournal.ArticlePage, error) {
	if h.useMock() {
		return filterMockArticles(filter), nil
	}

	return h.news.Articles(c.Request().Context(), filter)
}

// NewsByIDOrSlug handles GET /api/news/:idOrSlug
// @Summary Fetch one article
// @Description Numeric identifiers are not served by this route and return 404; anything else is treated as a slug.
// @Tags news
// @Produce json
// @Param idOrSlug path string true "Article slug (numeric values return 404)"
// @Success 200 {object} rest.Envelope
// @Failure 404 {object} rest.Envelope
// @Router /api/news/{idOrSlug} [get]
func (h *NewsHandler) NewsByIDOrSlug(c echo.Context) error {
	param := c.Param("idOrSlug")
	if _, err := strconv.Atoi(param); err == nil {
		return respondError(c, http.StatusNotFound, "article not found")
	}

	article := h.articleBySlug(c, param)
	if article == nil {
		return respondError(c, http.StatusNotFound, "article not found")
	}

	return respond(c, http.StatusOK, NewArticle(*article))
}

// NewsBySlug handles GET /api/news/slug/:slug
// @Summary Fetch an article with related articles
// @Description Returns the article plus up to 3 related articles from the same category, the article itself excluded.
// @Tags news
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.Envelope
// @Failure 404 {object} rest.Envelope
// @Router /api/news/slug/{slug} [get]
func (h *NewsHandler) NewsBySlug(c echo.Context) error {
	slug := c.Param("slug")

	article := h.articleBySlug(c, slug)
	if article == nil {
		return respondError(c, http.StatusNotFound, "article not found")
	}

	related := h.relatedTo(c, article)

	return respond(c, http.StatusOK, NewsDetail{
		Article: NewArticle(*article),
		Related: NewArticles(related),
	})
}

func (h *NewsHandler) articleBySlug(c echo.Context, slug string) *surfjournal.Article {
	if h.useMock() {
		return mockdata.ArticleBySlug(slug)
	}

	article, err := h.news.ArticleBySlug(c.Request().Context(), slug)
	if err != nil {
		h.log.Error("article read failed, serving mock data", "slug", slug, "error", err)
		return mockdata.ArticleBySlug(slug)
	}

	return article
}

func (h *NewsHandler) relatedTo(c echo.Context, article *surfjournal.Article) []surfjournal.Article {
	if h.useMock() {
		return relatedMockArticles(article.CategoryID, article.ID, surfjournal.RelatedLimit)
	}

	related, err := h.news.RelatedArticles(
		c.Request().Context(), article.CategoryID, article.ID, surfjournal.RelatedLimit,
	)
	if err != nil {
		h.log.Error("related articles read failed, serving mock data", "error", err)
		return relatedMockArticles(article.CategoryID, article.ID, surfjournal.RelatedLimit)
	}

	return related
}

// Categories handles GET /api/categories
// @Summary List categories
// @Description Lists all categories ordered by name, each with its published-article count; zero-count categories are included.
// @Tags categories
// @Produce json
// @Success 200 {object} rest.Envelope
// @Router /api/categories [get]
func (h *NewsHandler) Categories(c echo.Context) error {
	if h.useMock() {
		return respond(c, http.StatusOK, NewCategories(mockdata.AllCategories()))
	}

	categories, err := h.news.Categories(c.Request().Context())
	if err != nil {
		h.log.Error("categories read failed, serving mock data", "error", err)
		return respond(c, http.StatusOK, NewCategories(mockdata.AllCategories()))
	}

	return respond(c, http.StatusOK, NewCategories(categories))
}

func validateInput(in ArticleInput) string {
	switch {
	case in.Title == "":
		return "title is required"
	case in.Slug == "":
		return "slug is required"
	case in.Content == "":
		return "content is required"
	case in.CategoryID == 0:
		return "categoryId is required"
	case in.Status != "" && in.Status != db.StatusDraft && in.Status != db.StatusPublished:
		return "status must be draft or published"
	}
	return ""
}

// CreateNews handles POST /api/news
// @Summary Create an article
// @Description Creates an article; status defaults to draft. Requires a session. In mock mode a synthesized id is returned without touching any store.
// @Tags news
// @Accept json
// @Produce json
// @Param article body rest.ArticleInput true "Article fields"
// @Success 201 {object} rest.Envelope
// @Failure 400,401,500 {object} rest.Envelope
// @Router /api/news [post]
func (h *NewsHandler) CreateNews(c echo.Context) error {
	var in ArticleInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if msg := validateInput(in); msg != "" {
		return respondError(c, http.StatusBadRequest, msg)
	}

	if h.useMock() {
		// Explicit mock-mode leniency: fabricate the insert.
		return respond(c, http.StatusCreated, Created{ID: mockdata.NextID()})
	}

	id, err := h.news.CreateArticle(c.Request().Context(), in.toDraft(authorID(c)))
	if err != nil {
		return h.writeError(c, err, "failed to create article")
	}

	return respond(c, http.StatusCreated, Created{ID: id})
}

// UpdateNews handles PUT /api/news/:id
// @Summary Update an article
// @Description Full replace of the mutable fields. Requires a session. 404 when the id does not exist.
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body rest.ArticleInput true "Article fields"
// @Success 200 {object} rest.Envelope
// @Failure 400,401,404,500 {object} rest.Envelope
// @Router /api/news/{id} [put]
func (h *NewsHandler) UpdateNews(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	var in ArticleInput
	if err := c.Bind(&in); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	if msg := validateInput(in); msg != "" {
		return respondError(c, http.StatusBadRequest, msg)
	}

	if h.useMock() {
		return respond(c, http.StatusOK, nil)
	}

	updated, err := h.news.UpdateArticle(c.Request().Context(), id, in.toDraft(authorID(c)))
	if err != nil {
		return h.writeError(c, err, "failed to update article")
	}
	if !updated {
		return respondError(c, http.StatusNotFound, "article not found")
	}

	return respond(c, http.StatusOK, nil)
}

// DeleteNews handles DELETE /api/news/:id
// @Summary Delete an article
// @Description Hard delete by id. Requires an admin session. 404 when the id does not exist.
// @Tags news
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Envelope
// @Failure 400,401,404,500 {object} rest.Envelope
// @Router /api/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return respondError(c, http.StatusBadRequest, "invalid id")
	}

	if h.useMock() {
		return respond(c, http.StatusOK, nil)
	}

	deleted, err := h.news.DeleteArticle(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err, "failed to delete article")
	}
	if !deleted {
		return respondError(c, http.StatusNotFound, "article not found")
	}

	return respond(c, http.StatusOK, nil)
}

// writeError reports a failed write honestly. The underlying error is only
// exposed in debug mode.
func (h *NewsHandler) writeError(c echo.Context, err error, message string) error {
	h.log.Error(message, "error", err)
	if h.opts.Debug {
		message = message + ": " + err.Error()
	}
	return respondError(c, http.StatusInternalServerError, message)
}

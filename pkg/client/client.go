// Package client is a thin wrapper over the surf-journal API with a
// non-throwing contract: every call returns the same envelope shape a
// successful response would, substituting success:false and an empty
// payload on transport or server failure, so callers never need error
// handling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-retryablehttp"
)

type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

func New(baseURL string) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.Logger = nil

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// WithToken returns a copy of the client that sends the session token on
// every request.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// ListParams mirror the /api/news query parameters. Zero values are omitted.
type ListParams struct {
	Limit      int
	Offset     int
	CategoryID int
	Featured   *bool
	Search     string
	Exclude    int
}

func (p ListParams) query() string {
	q := url.Values{}

	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.CategoryID > 0 {
		q.Set("categoryId", strconv.Itoa(p.CategoryID))
	}
	if p.Featured != nil {
		q.Set("featured", strconv.FormatBool(*p.Featured))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Exclude > 0 {
		q.Set("exclude", strconv.Itoa(p.Exclude))
	}

	if len(q) == 0 {
		return ""
	}

	return "?" + q.Encode()
}

// News lists articles. On any failure the response carries success:false
// and an empty item list.
func (c *Client) News(ctx context.Context, params ListParams) NewsResponse {
	var resp NewsResponse
	if !c.do(ctx, http.MethodGet, "/api/news"+params.query(), nil, &resp) {
		return NewsResponse{Data: []Article{}, Message: "request failed"}
	}
	if resp.Data == nil {
		resp.Data = []Article{}
	}
	return resp
}

// ArticleBySlug fetches one article plus its related articles.
func (c *Client) ArticleBySlug(ctx context.Context, slug string) DetailResponse {
	var resp DetailResponse
	if !c.do(ctx, http.MethodGet, "/api/news/slug/"+slug, nil, &resp) {
		return DetailResponse{Message: "request failed"}
	}
	return resp
}

// Categories lists categories with article counts.
func (c *Client) Categories(ctx context.Context) CategoriesResponse {
	var resp CategoriesResponse
	if !c.do(ctx, http.MethodGet, "/api/categories", nil, &resp) {
		return CategoriesResponse{Data: []Category{}, Message: "request failed"}
	}
	if resp.Data == nil {
		resp.Data = []Category{}
	}
	return resp
}

// CreateArticle posts a new article. Requires a token.
func (c *Client) CreateArticle(ctx context.Context, input ArticleInput) CreateResponse {
	var resp CreateResponse
	if !c.do(ctx, http.MethodPost, "/api/news", input, &resp) {
		return CreateResponse{Message: "request failed"}
	}
	return resp
}

// UpdateArticle replaces an article's fields. Requires a token.
func (c *Client) UpdateArticle(ctx context.Context, id int, input ArticleInput) StatusResponse {
	var resp StatusResponse
	if !c.do(ctx, http.MethodPut, "/api/news/"+strconv.Itoa(id), input, &resp) {
		return StatusResponse{Message: "request failed"}
	}
	return resp
}

// DeleteArticle removes an article. Requires an admin token.
func (c *Client) DeleteArticle(ctx context.Context, id int) StatusResponse {
	var resp StatusResponse
	if !c.do(ctx, http.MethodDelete, "/api/news/"+strconv.Itoa(id), nil, &resp) {
		return StatusResponse{Message: "request failed"}
	}
	return resp
}

// do issues the request and decodes the envelope into out. It returns false
// only when no envelope could be obtained at all; server-side failures
// already arrive as success:false envelopes and are passed through.
func (c *Client) do(ctx context.Context, method, path string, body, out any) bool {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return false
		}
		payload = encoded
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return false
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("X-Session-Token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out) == nil
}

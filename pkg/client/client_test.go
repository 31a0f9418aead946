package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/news", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "4", r.URL.Query().Get("offset"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": 5, "title": "Last One", "slug": "last-one"}},
			"meta":    map[string]int{"total": 5, "page": 3, "pageSize": 2, "totalPages": 3},
		})
	})

	mux.HandleFunc("GET /api/news/slug/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"article": map[string]any{"id": 1, "slug": "first"},
				"related": []map[string]any{{"id": 2}},
			},
		})
	})

	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": 1, "name": "Big Wave", "newsCount": 3}},
		})
	})

	mux.HandleFunc("POST /api/news", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Session-Token") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "session required"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]int{"id": 6}})
	})

	return httptest.NewServer(mux)
}

func TestClient_News(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp := New(server.URL).News(context.Background(), ListParams{Limit: 2, Offset: 4})

	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "last-one", resp.Data[0].Slug)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestClient_ArticleBySlug(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp := New(server.URL).ArticleBySlug(context.Background(), "first")

	assert.True(t, resp.Success)
	assert.Equal(t, "first", resp.Data.Article.Slug)
	assert.Len(t, resp.Data.Related, 1)
}

func TestClient_Categories(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	resp := New(server.URL).Categories(context.Background())

	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 3, resp.Data[0].NewsCount)
}

func TestClient_CreateArticle(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	input := ArticleInput{Title: "T", Slug: "t", Content: "c", CategoryID: 1}

	t.Run("WithToken", func(t *testing.T) {
		resp := New(server.URL).WithToken("tok").CreateArticle(context.Background(), input)
		assert.True(t, resp.Success)
		assert.Equal(t, 6, resp.Data.ID)
	})

	t.Run("WithoutToken", func(t *testing.T) {
		resp := New(server.URL).CreateArticle(context.Background(), input)
		assert.False(t, resp.Success)
		assert.Equal(t, "session required", resp.Message)
	})
}

// Search terms pass through to the server verbatim: spaces survive and
// reserved characters cannot smuggle extra parameters into the query.
func TestClient_QueryEncoding(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []map[string]any{}})
	}))
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	t.Run("SpacesSurvive", func(t *testing.T) {
		client.News(ctx, ListParams{Search: "wind charts"})
		assert.Equal(t, "wind charts", got.Get("search"))
	})

	t.Run("ReservedCharactersStayInTheTerm", func(t *testing.T) {
		client.News(ctx, ListParams{Search: "swell&featured=true"})
		assert.Equal(t, "swell&featured=true", got.Get("search"))
		assert.Empty(t, got.Get("featured"))
	})
}

// The client must never surface transport failures as anything but a
// success:false envelope with an empty default payload.
func TestClient_NeverThrows(t *testing.T) {
	client := New("http://127.0.0.1:1")
	client.http.RetryMax = 0
	ctx := context.Background()

	news := client.News(ctx, ListParams{})
	assert.False(t, news.Success)
	assert.NotNil(t, news.Data)
	assert.Empty(t, news.Data)
	assert.NotEmpty(t, news.Message)

	categories := client.Categories(ctx)
	assert.False(t, categories.Success)
	assert.NotNil(t, categories.Data)

	detail := client.ArticleBySlug(ctx, "x")
	assert.False(t, detail.Success)

	status := client.DeleteArticle(ctx, 1)
	assert.False(t, status.Success)
}

package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "test database not reachable, skipping integration tests.")
		fmt.Fprintln(os.Stderr, "to run them: docker-compose -f docker-compose.test.yml up -d")
		_ = testDB.Close()
		os.Exit(0)
	}

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := RunMigrations(ctx, MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, []string{"users", "sessions", "categories", "articles"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, New(tx)
}

func TestRepository_ArticleBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("PublishedWithRelations", func(t *testing.T) {
		article, err := testRepo.ArticleBySlug(ctx, "nazare-fires-on-opening-swell")
		require.NoError(t, err)
		require.NotNil(t, article)

		assert.Equal(t, "Nazare Fires On Opening Swell", article.Title)
		assert.Equal(t, StatusPublished, article.Status)
		require.NotNil(t, article.Category)
		assert.Equal(t, "Big Wave", article.Category.Name)
		require.NotNil(t, article.Author)
		assert.NotEmpty(t, article.Author.Name)
	})

	t.Run("DraftIsInvisible", func(t *testing.T) {
		article, err := testRepo.ArticleBySlug(ctx, "draft-board-shaping-notes")
		require.NoError(t, err)
		assert.Nil(t, article)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		article, err := testRepo.ArticleBySlug(ctx, "no-such-slug")
		require.NoError(t, err)
		assert.Nil(t, article)
	})
}

func TestRepository_Articles(t *testing.T) {
	ctx := context.Background()

	t.Run("PublishedOnlyMostRecentFirst", func(t *testing.T) {
		articles, err := testRepo.Articles(ctx, ArticleFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, articles, 4, "draft must be excluded")

		for i := 1; i < len(articles); i++ {
			assert.False(t, articles[i].CreatedAt.After(articles[i-1].CreatedAt))
		}
	})

	t.Run("CountIgnoresPagination", func(t *testing.T) {
		filter := ArticleFilter{Limit: 2, Offset: 2}

		articles, err := testRepo.Articles(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, articles, 2)

		total, err := testRepo.ArticlesCount(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 4, total)
	})

	t.Run("FeaturedFilter", func(t *testing.T) {
		featured := true
		articles, err := testRepo.Articles(ctx, ArticleFilter{Limit: 10, Featured: &featured})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		for _, article := range articles {
			assert.True(t, article.Featured)
		}
	})

	t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
		articles, err := testRepo.Articles(ctx, ArticleFilter{Limit: 10, Search: "WETSUIT"})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "winter-wetsuit-roundup", articles[0].Slug)
	})

	t.Run("InvalidPagination", func(t *testing.T) {
		_, err := testRepo.Articles(ctx, ArticleFilter{Limit: 0})
		assert.Error(t, err)
	})
}

func TestRepository_Categories(t *testing.T) {
	ctx, repo := withTx(t)

	// a category with no published articles must still appear with count 0
	empty := &Category{Name: "Aerials", Slug: "aerials"}
	_, err := repo.db.ModelContext(ctx, empty).Insert()
	require.NoError(t, err)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)

	byName := map[string]Category{}
	for i := 1; i < len(categories); i++ {
		assert.GreaterOrEqual(t, categories[i].Name, categories[i-1].Name, "must be ordered by name")
	}
	for _, category := range categories {
		byName[category.Name] = category
	}

	assert.Equal(t, 2, byName["Big Wave"].NewsCount)
	assert.Equal(t, 1, byName["Forecasts"].NewsCount)
	assert.Equal(t, 1, byName["Gear"].NewsCount, "draft must not be counted")
	assert.Equal(t, 0, byName["Aerials"].NewsCount)
}

func TestRepository_Writes(t *testing.T) {
	t.Run("InsertAssignsIDAndTimestamps", func(t *testing.T) {
		ctx, repo := withTx(t)

		id, err := repo.InsertArticle(ctx, &Article{
			Title: "New Spot Guide", Slug: "new-spot-guide", Content: "<p>x</p>",
			CategoryID: 1, AuthorID: 1,
		})
		require.NoError(t, err)
		assert.Greater(t, id, 0)

		stored := &Article{ID: id}
		require.NoError(t, repo.db.ModelContext(ctx, stored).WherePK().Select())
		assert.Equal(t, StatusDraft, stored.Status)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("DuplicateSlugRejected", func(t *testing.T) {
		ctx, repo := withTx(t)

		_, err := repo.InsertArticle(ctx, &Article{
			Title: "Duplicate", Slug: "nazare-fires-on-opening-swell", Content: "x",
			CategoryID: 1, AuthorID: 1,
		})
		assert.Error(t, err)
	})

	t.Run("UpdateMatchedAndMissing", func(t *testing.T) {
		ctx, repo := withTx(t)

		existing, err := repo.ArticleBySlug(ctx, "weekend-swell-outlook")
		require.NoError(t, err)
		require.NotNil(t, existing)

		updated, err := repo.UpdateArticle(ctx, &Article{
			ID: existing.ID, Title: "Updated Outlook", Slug: "weekend-swell-outlook",
			Content: existing.Content, CategoryID: existing.CategoryID,
			Status: StatusPublished,
		})
		require.NoError(t, err)
		assert.True(t, updated)

		missing, err := repo.UpdateArticle(ctx, &Article{
			ID: 99999, Title: "x", Slug: "x", Content: "x", CategoryID: 1,
			Status: StatusDraft,
		})
		require.NoError(t, err)
		assert.False(t, missing, "absence is not an error")
	})

	t.Run("DeleteMatchedAndMissing", func(t *testing.T) {
		ctx, repo := withTx(t)

		existing, err := repo.ArticleBySlug(ctx, "winter-wetsuit-roundup")
		require.NoError(t, err)
		require.NotNil(t, existing)

		deleted, err := repo.DeleteArticle(ctx, existing.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		missing, err := repo.DeleteArticle(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, missing)
	})

	t.Run("IncrementViews", func(t *testing.T) {
		ctx, repo := withTx(t)

		before, err := repo.ArticleBySlug(ctx, "teahupoo-trials-recap")
		require.NoError(t, err)
		require.NotNil(t, before)

		require.NoError(t, repo.IncrementViews(ctx, before.ID))

		after, err := repo.ArticleBySlug(ctx, "teahupoo-trials-recap")
		require.NoError(t, err)
		assert.Equal(t, before.Views+1, after.Views)
	})
}

func TestRepository_UserByToken(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidSession", func(t *testing.T) {
		user, err := testRepo.UserByToken(ctx, TestAdminToken)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, RoleAdmin, user.Role)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		user, err := testRepo.UserByToken(ctx, "bogus")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

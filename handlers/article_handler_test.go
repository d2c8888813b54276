package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"newshub/handlers"
	"newshub/middleware"
	"newshub/mocks"
	"newshub/models"
	"newshub/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	handlerContent = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 3)
	testJWTSecret  = []byte("handler-test-secret")
)

type routerFixture struct {
	router   *gin.Engine
	articles *mocks.ArticleRepository
	users    *mocks.UserRepository
	mail     *mocks.Mailer
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &routerFixture{
		articles: mocks.NewArticleRepository(),
		users:    mocks.NewUserRepository(),
		mail:     mocks.NewMailer(),
	}
	categories := mocks.NewCategoryRepository()
	categories.Seed("Tech", "tech")

	articleService := services.NewArticleService(
		f.articles, mocks.NewTagRepository(), categories, f.users,
		mocks.NewNotificationRepository(), f.mail,
		"http://localhost:8080", zerolog.Nop(),
	)
	articleHandler := handlers.NewArticleHandler(articleService, t.TempDir())

	f.router = gin.New()
	api := f.router.Group("/api")
	api.GET("/articles", articleHandler.GetArticles)
	api.GET("/articles/:id", articleHandler.GetArticle)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(testJWTSecret))
	authed.POST("/articles", articleHandler.CreateArticle)
	authed.PUT("/articles/:id", articleHandler.UpdateArticle)
	authed.DELETE("/articles/:id", articleHandler.DeleteArticle)
	authed.GET("/dashboard/articles", articleHandler.GetDashboardArticles)

	return f
}

func bearerToken(t *testing.T, userID uint, email string, role models.UserRole) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTSecret)
	require.NoError(t, err)
	return "Bearer " + signed
}

func (f *routerFixture) seedPublished(n int) {
	for i := 0; i < n; i++ {
		f.articles.Seed(models.Article{
			AuthorID: 1,
			Title:    "Published Article",
			Slug:     "published-article-" + strings.Repeat("x", i+1),
			Content:  handlerContent,
			Category: "Tech",
			Status:   models.StatusPublished,
		})
	}
}

func TestListArticlesPaginationShape(t *testing.T) {
	f := newRouterFixture(t)
	f.seedPublished(12)
	f.articles.Seed(models.Article{
		AuthorID: 1, Title: "Hidden Draft", Slug: "hidden-draft",
		Content: handlerContent, Category: "Tech", Status: models.StatusDraft,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles?limit=5&offset=10", nil)
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Articles   []models.Article  `json:"articles"`
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// The draft is invisible to the public listing.
	assert.Equal(t, int64(12), body.Pagination.Total)
	assert.Equal(t, 5, body.Pagination.Limit)
	assert.Equal(t, 10, body.Pagination.Offset)
	assert.False(t, body.Pagination.HasMore)
	assert.Len(t, body.Articles, 2)
}

func TestListArticlesIgnoresStatusParameter(t *testing.T) {
	f := newRouterFixture(t)
	f.seedPublished(2)
	f.articles.Seed(models.Article{
		AuthorID: 1, Title: "Secret Draft", Slug: "secret-draft",
		Content: handlerContent, Category: "Tech", Status: models.StatusDraft,
	})
	f.articles.Seed(models.Article{
		AuthorID: 1, Title: "Old Piece", Slug: "old-piece",
		Content: handlerContent, Category: "Tech", Status: models.StatusArchived,
	})

	for _, status := range []string{"draft", "archived"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/articles?status="+status, nil)
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Articles   []models.Article  `json:"articles"`
			Pagination models.Pagination `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		assert.Equal(t, int64(2), body.Pagination.Total, "status=%s", status)
		for _, article := range body.Articles {
			assert.Equal(t, models.StatusPublished, article.Status, "status=%s", status)
		}
	}
}

func TestListArticlesHasMore(t *testing.T) {
	f := newRouterFixture(t)
	f.seedPublished(12)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles?limit=10", nil)
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Pagination.HasMore)
}

func TestCreateArticleRequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, f.articles.WriteCalls())
}

func TestCreateArticleReturnsCreated(t *testing.T) {
	f := newRouterFixture(t)
	f.users.Seed(models.User{ID: 1, Name: "Author", Email: "author@example.com"})

	form := url.Values{}
	form.Set("title", "A Fine Article")
	form.Set("content", handlerContent)
	form.Set("category", "Tech")
	form.Set("status", "published")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", bearerToken(t, 1, "author@example.com", models.RoleUser))
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.ID)
	assert.NotEmpty(t, body.Message)
}

func TestCreateArticleValidationErrors(t *testing.T) {
	f := newRouterFixture(t)

	form := url.Values{}
	form.Set("title", "ab")
	form.Set("content", "too short")
	form.Set("category", "Tech")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", bearerToken(t, 1, "author@example.com", models.RoleUser))
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "title")
	assert.Contains(t, body.Errors, "content")
	assert.Equal(t, 0, f.articles.WriteCalls())
}

func TestUpdateArticleForbiddenForStrangers(t *testing.T) {
	f := newRouterFixture(t)
	article := f.articles.Seed(models.Article{
		AuthorID: 1, Title: "A Fine Article", Slug: "a-fine-article",
		Content: handlerContent, Category: "Tech", Status: models.StatusDraft,
	})

	form := url.Values{}
	form.Set("title", "A Fine Article")
	form.Set("content", handlerContent)
	form.Set("category", "Tech")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/articles/1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", bearerToken(t, 2, "stranger@example.com", models.RoleUser))
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	stored, err := f.articles.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, stored.Status)
}

func TestGetArticleNotFound(t *testing.T) {
	f := newRouterFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles/404", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardListsOwnArticlesOnly(t *testing.T) {
	f := newRouterFixture(t)
	f.articles.Seed(models.Article{
		AuthorID: 1, Title: "Mine", Slug: "mine",
		Content: handlerContent, Category: "Tech", Status: models.StatusDraft,
	})
	f.articles.Seed(models.Article{
		AuthorID: 2, Title: "Theirs", Slug: "theirs",
		Content: handlerContent, Category: "Tech", Status: models.StatusPublished,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/articles", nil)
	req.Header.Set("Authorization", bearerToken(t, 1, "author@example.com", models.RoleUser))
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Articles []models.Article `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Articles, 1)
	assert.Equal(t, "Mine", body.Articles[0].Title)
}

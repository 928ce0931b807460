package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/models"
	"github.com/reviewhub-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "router-test-secret")

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func seedUser(t *testing.T, username string, role models.Role) (models.User, string) {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Role: role}
	require.NoError(t, database.DB.Create(&user).Error)
	token, err := services.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

func seedTitle(t *testing.T) models.Title {
	t.Helper()
	category := models.Category{Name: "Books", Slug: "books"}
	require.NoError(t, database.DB.Create(&category).Error)
	title := models.Title{Name: "Dune", Year: 1965, CategoryID: category.ID}
	require.NoError(t, database.DB.Create(&title).Error)
	return title
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnonymousReads(t *testing.T) {
	router := setupRouter(t)
	title := seedTitle(t)

	for _, path := range []string{
		"/api/v1/categories",
		"/api/v1/genres",
		"/api/v1/titles",
		fmt.Sprintf("/api/v1/titles/%d", title.ID),
		fmt.Sprintf("/api/v1/titles/%d/reviews", title.ID),
	} {
		w := doJSON(router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCatalogRetrieveBySlug(t *testing.T) {
	router := setupRouter(t)
	require.NoError(t, database.DB.Create(&models.Category{Name: "Books", Slug: "books"}).Error)
	require.NoError(t, database.DB.Create(&models.Genre{Name: "Fantasy", Slug: "fantasy"}).Error)

	w := doJSON(router, http.MethodGet, "/api/v1/categories/books", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Data models.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "Books", payload.Data.Name)
	assert.Equal(t, "books", payload.Data.Slug)

	w = doJSON(router, http.MethodGet, "/api/v1/genres/fantasy", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/genres/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(router, http.MethodGet, "/api/v1/categories/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnonymousReviewCreateRejected(t *testing.T) {
	router := setupRouter(t)
	title := seedTitle(t)

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/v1/titles/%d/reviews", title.ID), "",
		gin.H{"text": "nope", "score": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewLifecycleOverHTTP(t *testing.T) {
	router := setupRouter(t)
	title := seedTitle(t)
	_, aliceToken := seedUser(t, "alice", models.RoleUser)

	path := fmt.Sprintf("/api/v1/titles/%d/reviews", title.ID)

	w := doJSON(router, http.MethodPost, path, aliceToken, gin.H{"text": "great", "score": 8})
	require.Equal(t, http.StatusCreated, w.Code)

	// One review per (title, author): the second attempt conflicts
	w = doJSON(router, http.MethodPost, path, aliceToken, gin.H{"text": "again", "score": 9})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Out-of-range score is a validation failure, not a conflict
	_, bobToken := seedUser(t, "bob", models.RoleUser)
	w = doJSON(router, http.MethodPost, path, bobToken, gin.H{"text": "x", "score": 11})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rating shows up in the title read
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/titles/%d", title.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Data struct {
			Rating *int `json:"rating"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.NotNil(t, payload.Data.Rating)
	assert.Equal(t, 8, *payload.Data.Rating)
}

func TestCatalogWriteRequiresAdminAuthority(t *testing.T) {
	router := setupRouter(t)
	_, aliceToken := seedUser(t, "alice", models.RoleUser)
	_, adminToken := seedUser(t, "root", models.RoleAdmin)

	body := gin.H{"name": "Books", "slug": "books"}

	w := doJSON(router, http.MethodPost, "/api/v1/categories", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/categories", aliceToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/categories", adminToken, body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUnknownTitleIs404(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/titles/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/titles/notanumber", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserEndpointsAdminOnly(t *testing.T) {
	router := setupRouter(t)
	_, aliceToken := seedUser(t, "alice", models.RoleUser)
	_, adminToken := seedUser(t, "root", models.RoleAdmin)

	w := doJSON(router, http.MethodGet, "/api/v1/users", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// /users/me needs only authentication
	w = doJSON(router, http.MethodGet, "/api/v1/users/me", aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSelfProfileRoleIgnoredOverHTTP(t *testing.T) {
	router := setupRouter(t)
	alice, aliceToken := seedUser(t, "alice", models.RoleUser)

	w := doJSON(router, http.MethodPatch, "/api/v1/users/me", aliceToken,
		gin.H{"role": "admin", "bio": "still just alice"})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, database.DB.First(&stored, alice.ID).Error)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.Equal(t, "still just alice", stored.Bio)
}

package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehive/cinehive/internal/config"
)

// newTestApp wires a full application instance against a fresh seeded store
func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = "production"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "cinehive.test"
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000

	lgr := zerolog.Nop()

	repos, err := SetupStore(lgr)
	require.NoError(t, err)

	deps, err := BuildDependencies(cfg, repos, lgr)
	require.NoError(t, err)

	return SetupRouter(cfg, deps, lgr)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func loginAs(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := newTestApp(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "newuser",
		"email":    "new@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	decodeBody(t, w, &registered)
	assert.NotEmpty(t, registered.Token)
	// The password hash never appears in the response
	assert.NotContains(t, w.Body.String(), "password")

	// Duplicate registration is rejected
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "newuser",
		"email":    "new@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The fresh account can log in
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "new@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "new@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newTestApp(t)

	// Missing password
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "newuser",
		"email":    "new@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "newuser",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovieEndpoints(t *testing.T) {
	router := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/movies", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var movies []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	decodeBody(t, w, &movies)
	require.Len(t, movies, 4)
	assert.Equal(t, "The Avengers", movies[0].Title)

	w = doJSON(t, router, http.MethodGet, "/api/movies/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Shining")

	w = doJSON(t, router, http.MethodGet, "/api/movies/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuizEndpoints(t *testing.T) {
	router := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/quiz/questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var questions []struct {
		ID int `json:"id"`
	}
	decodeBody(t, w, &questions)
	assert.Len(t, questions, 3)

	w = doJSON(t, router, http.MethodPost, "/api/quiz/recommendations", "", map[string]interface{}{
		"answers": map[string]string{"genre": "horror"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var movies []struct {
		Title string `json:"title"`
	}
	decodeBody(t, w, &movies)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Shining", movies[0].Title)

	// No matching answer falls back to the first three catalog entries
	w = doJSON(t, router, http.MethodPost, "/api/quiz/recommendations", "", map[string]interface{}{
		"answers": map[string]string{},
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &movies)
	assert.Len(t, movies, 3)
}

func TestCommunityEndpoints(t *testing.T) {
	router := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/communities", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var communities []struct {
		ID          string `json:"id"`
		MemberCount int    `json:"memberCount"`
	}
	decodeBody(t, w, &communities)
	require.Len(t, communities, 3)

	w = doJSON(t, router, http.MethodGet, "/api/communities/horror-fans", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/communities/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoinCommunityFlow(t *testing.T) {
	router := newTestApp(t)

	// Without a token the join is rejected with 401
	w := doJSON(t, router, http.MethodPost, "/api/communities/marvel-movies/join", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// With a garbage token it is rejected with 403
	w = doJSON(t, router, http.MethodPost, "/api/communities/marvel-movies/join", "garbage", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Sarah has not joined marvel-movies in the seed data
	token := loginAs(t, router, "sarah@example.com")

	w = doJSON(t, router, http.MethodPost, "/api/communities/marvel-movies/join", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var community struct {
		MemberCount int `json:"memberCount"`
	}
	w = doJSON(t, router, http.MethodGet, "/api/communities/marvel-movies", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &community)
	assert.Equal(t, 15421, community.MemberCount)

	// A repeat join succeeds without moving the count again
	w = doJSON(t, router, http.MethodPost, "/api/communities/marvel-movies/join", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/communities/marvel-movies", "", nil)
	decodeBody(t, w, &community)
	assert.Equal(t, 15421, community.MemberCount)

	w = doJSON(t, router, http.MethodPost, "/api/communities/nope/join", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostAndCommentFlow(t *testing.T) {
	router := newTestApp(t)
	token := loginAs(t, router, "john@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/communities/marvel-movies/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []struct {
		ID           string `json:"id"`
		CommentCount int    `json:"commentCount"`
	}
	decodeBody(t, w, &posts)
	require.Len(t, posts, 1)

	// Creating a post requires a token
	w = doJSON(t, router, http.MethodPost, "/api/communities/marvel-movies/posts", "", map[string]string{
		"title": "x", "content": "y",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/communities/marvel-movies/posts", token, map[string]string{
		"title":   "Phase 4 hot takes",
		"content": "Let's hear them.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID             string `json:"id"`
		AuthorUsername string `json:"authorUsername"`
		CommentCount   int    `json:"commentCount"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "moviebuff123", created.AuthorUsername)
	assert.Zero(t, created.CommentCount)

	// Comment on the new post and watch the counter move
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/posts/%s/comments", created.ID), token, map[string]string{
		"content": "Hot take: all of them.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/posts/%s/comments", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var comments []struct {
		Content string `json:"content"`
	}
	decodeBody(t, w, &comments)
	require.Len(t, comments, 1)

	w = doJSON(t, router, http.MethodGet, "/api/communities/marvel-movies/posts", "", nil)
	decodeBody(t, w, &posts)
	require.Len(t, posts, 2)
	assert.Equal(t, 1, posts[1].CommentCount)
}

func TestWatchPartyFlow(t *testing.T) {
	router := newTestApp(t)
	johnToken := loginAs(t, router, "john@example.com")
	sarahToken := loginAs(t, router, "sarah@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/watch-parties", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var parties []struct {
		ID           string   `json:"id"`
		Participants []string `json:"participants"`
	}
	decodeBody(t, w, &parties)
	require.Len(t, parties, 2)

	// Seed parties are scheduled in the future
	w = doJSON(t, router, http.MethodGet, "/api/watch-parties?status=upcoming", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &parties)
	assert.Len(t, parties, 2)

	w = doJSON(t, router, http.MethodGet, "/api/watch-parties?status=past", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &parties)
	assert.Empty(t, parties)

	// John schedules a single-seat party, filling it himself
	w = doJSON(t, router, http.MethodPost, "/api/watch-parties", johnToken, map[string]interface{}{
		"title":           "Private screening",
		"movieId":         "2",
		"scheduledFor":    "2030-01-01T20:00:00Z",
		"platform":        "Netflix",
		"maxParticipants": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID           string   `json:"id"`
		Participants []string `json:"participants"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, []string{"1"}, created.Participants)

	// Sarah cannot squeeze in
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/watch-parties/%s/join", created.ID), sarahToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "full")

	// Joining the roomy seed party works
	w = doJSON(t, router, http.MethodPost, "/api/watch-parties/2/join", johnToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/watch-parties/nope/join", johnToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Creation requires a token
	w = doJSON(t, router, http.MethodPost, "/api/watch-parties", "", map[string]interface{}{
		"title": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSecurityHeadersApplied(t *testing.T) {
	router := newTestApp(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

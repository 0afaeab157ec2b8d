package app

import (
	"credit_edu_backend/internal/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, mode string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: mode},
		Quiz:   config.QuizConfig{Store: config.StoreMemory, PassingScore: 70},
		Auth:   config.AuthConfig{DemoUserID: "demo-user"},
		Log:    config.LogConfig{Path: filepath.Join(t.TempDir(), "app.log")},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{
			MaxRequests:   1000,
			WindowMinutes: 1,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func serve(a *App, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func TestNewApp_MemoryStore(t *testing.T) {
	a := newTestApp(t, testConfig(t, "debug"))

	assert.Nil(t, a.DB)
	assert.Nil(t, a.Redis)

	w := serve(a, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := `{"lessonId":"1","score":85,"correctAnswers":4,"totalQuestions":5,"answers":{"1":2},"timeSpent":30}`
	w = serve(a, http.MethodPost, "/api/quiz/results", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(a, http.MethodGet, "/api/quiz/debug", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"demo-user"`)
}

func TestNewApp_ReleaseHidesDebug(t *testing.T) {
	a := newTestApp(t, testConfig(t, "release"))

	w := serve(a, http.MethodGet, "/api/quiz/debug", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewApp_AuthEnabled(t *testing.T) {
	cfg := testConfig(t, "debug")
	cfg.Auth.Enabled = true
	cfg.Auth.JWTSecret = "test-secret"
	a := newTestApp(t, cfg)

	w := serve(a, http.MethodGet, "/api/lessons/1/quiz/attempts", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 题目接口公开
	w = serve(a, http.MethodGet, "/api/lessons/1/quiz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApp_ApplyConfig(t *testing.T) {
	a := newTestApp(t, testConfig(t, "debug"))

	updated := testConfig(t, "debug")
	updated.Quiz.PassingScore = 90
	a.ApplyConfig(updated)

	w := serve(a, http.MethodGet, "/api/lessons/1/quiz", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Settings struct {
				PassingScore int `json:"passingScore"`
			} `json:"settings"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 90, resp.Data.Settings.PassingScore)
}

func TestNewApp_UnreachableDatabase(t *testing.T) {
	cfg := testConfig(t, "debug")
	cfg.Quiz.Store = config.StoreDatabase
	cfg.Database = config.DatabaseConfig{Driver: "postgres"}

	_, err := NewApp(cfg)
	assert.ErrorContains(t, err, "unsupported database driver")
}

package middleware

import (
	"credit_edu_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/me", func(c *gin.Context) {
		id, _ := util.UserIDFromContext(c.Request.Context())
		c.String(http.StatusOK, id)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	valid, err := util.GenerateJWT("user-1", "a@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := util.GenerateJWT("user-1", "a@example.com", testSecret, -time.Minute)
	require.NoError(t, err)
	foreign, err := util.GenerateJWT("user-1", "a@example.com", "another-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		setup    func(*http.Request)
		wantCode int
		wantBody string
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized, ""},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) }, http.StatusOK, "user-1"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: valid}) }, http.StatusOK, "user-1"},
		{"expired", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) }, http.StatusUnauthorized, ""},
		{"wrong secret", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+foreign) }, http.StatusUnauthorized, ""},
		{"garbage", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), util.CodeUnauthorized)
			}
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requestContext(t *testing.T, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/applications", nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestWantsJSON(t *testing.T) {
	t.Run("Should match XHR requests", func(t *testing.T) {
		c := requestContext(t, map[string]string{"X-Requested-With": "XMLHttpRequest"})
		assert.True(t, wantsJSON(c))
	})

	t.Run("Should match an exact JSON accept header", func(t *testing.T) {
		c := requestContext(t, map[string]string{"Accept": "application/json"})
		assert.True(t, wantsJSON(c))
	})

	t.Run("Should match JSON anywhere in a compound accept header", func(t *testing.T) {
		c := requestContext(t, map[string]string{"Accept": "application/json, text/plain, */*"})
		assert.True(t, wantsJSON(c))
	})

	t.Run("Should treat browser navigation as HTML", func(t *testing.T) {
		c := requestContext(t, map[string]string{"Accept": "text/html,application/xhtml+xml"})
		assert.False(t, wantsJSON(c))
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should answer anonymous JSON clients with a 401 envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/applications", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/applications", nil)
		req.Header.Set("Accept", "application/json, text/plain, */*")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication required")
	})

	t.Run("Should redirect anonymous page requests to the login form", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/applications", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/applications", nil)
		req.Header.Set("Accept", "text/html")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

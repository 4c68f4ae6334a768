package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorPageRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../../web/templates/*.tmpl")
	NewErrorPageHandler(r.Group(""))
	return r
}

func TestErrorPage(t *testing.T) {
	t.Run("Should color the page by error code", func(t *testing.T) {
		r := newErrorPageRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/error?code=404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "error-blue")
		assert.Contains(t, body, "Page Not Found")
		assert.Contains(t, body, "error-ball")
	})

	t.Run("Should clamp unknown codes to 500 with the red palette", func(t *testing.T) {
		r := newErrorPageRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/error?code=999", nil)
		r.ServeHTTP(w, req)

		body := w.Body.String()
		assert.Contains(t, body, "500")
		assert.Contains(t, body, "error-red")
	})

	t.Run("Should show the forwarded message", func(t *testing.T) {
		r := newErrorPageRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/error?code=403&message=No+access", nil)
		r.ServeHTTP(w, req)

		body := w.Body.String()
		assert.Contains(t, body, "No access")
		assert.Contains(t, body, "error-violet")
	})
}

func TestErrorTone(t *testing.T) {
	assert.Equal(t, "red", errorTone(http.StatusBadRequest))
	assert.Equal(t, "red", errorTone(http.StatusInternalServerError))
	assert.Equal(t, "amber", errorTone(http.StatusUnauthorized))
	assert.Equal(t, "amber", errorTone(http.StatusServiceUnavailable))
	assert.Equal(t, "violet", errorTone(http.StatusForbidden))
	assert.Equal(t, "blue", errorTone(http.StatusNotFound))
	assert.Equal(t, "indigo", errorTone(http.StatusTeapot))
}

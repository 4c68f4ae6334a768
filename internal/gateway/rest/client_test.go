package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/apperror"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, message string, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"message": message,
		"data":    data,
	}))
}

func TestClientAuth(t *testing.T) {
	t.Run("Should attach the bearer token carried in the context", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			writeEnvelope(t, w, http.StatusOK, "ok", []domain.Job{})
		}))
		defer srv.Close()

		gw := NewJobGateway(NewClient(srv.URL, time.Second))
		ctx := domain.WithToken(context.Background(), "abc123")

		_, err := gw.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc123", gotAuth)
	})

	t.Run("Should send no Authorization header for anonymous requests", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			writeEnvelope(t, w, http.StatusOK, "ok", []domain.Job{})
		}))
		defer srv.Close()

		gw := NewJobGateway(NewClient(srv.URL, time.Second))
		_, err := gw.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClientErrors(t *testing.T) {
	t.Run("Should preserve backend status and message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(t, w, http.StatusConflict, "Already applied to this job", nil)
		}))
		defer srv.Close()

		gw := NewApplicationGateway(NewClient(srv.URL, time.Second))
		_, err := gw.Apply(context.Background(), "job1", "")

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.StatusCode(err))
		assert.Equal(t, "Already applied to this job", apperror.Message(err))
	})

	t.Run("Should fall back to the status text when the body is not an envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gateway timeout", http.StatusBadGateway)
		}))
		defer srv.Close()

		gw := NewJobGateway(NewClient(srv.URL, time.Second))
		_, err := gw.List(context.Background())

		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, apperror.StatusCode(err))
	})

	t.Run("Should surface transport failures as plain errors", func(t *testing.T) {
		gw := NewJobGateway(NewClient("http://127.0.0.1:1", 200*time.Millisecond))
		_, err := gw.List(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, apperror.StatusCode(err))
	})
}

func TestJobGateway(t *testing.T) {
	t.Run("Should map search filters onto query parameters", func(t *testing.T) {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/jobs/search", r.URL.Path)
			gotQuery = map[string]string{
				"q":        r.URL.Query().Get("q"),
				"location": r.URL.Query().Get("location"),
				"type":     r.URL.Query().Get("type"),
			}
			writeEnvelope(t, w, http.StatusOK, "ok", []domain.Job{{ID: "j1", Title: "Go Engineer"}})
		}))
		defer srv.Close()

		gw := NewJobGateway(NewClient(srv.URL, time.Second))
		jobs, err := gw.Search(context.Background(), domain.JobSearchFilters{
			Keyword:  "go",
			Location: "Berlin",
			Type:     "remote",
		})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"q": "go", "location": "Berlin", "type": "remote"}, gotQuery)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Go Engineer", jobs[0].Title)
	})

	t.Run("Should decode the envelope data field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/jobs/j1", r.URL.Path)
			writeEnvelope(t, w, http.StatusOK, "ok", domain.Job{ID: "j1", Title: "Go Engineer", Status: "active"})
		}))
		defer srv.Close()

		gw := NewJobGateway(NewClient(srv.URL, time.Second))
		job, err := gw.GetByID(context.Background(), "j1")

		require.NoError(t, err)
		assert.Equal(t, "Go Engineer", job.Title)
		assert.Equal(t, "active", job.Status)
	})
}

func TestApplicationGateway(t *testing.T) {
	t.Run("Should post the apply payload with backend field names", func(t *testing.T) {
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/applications", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			writeEnvelope(t, w, http.StatusCreated, "created", domain.Application{ID: "a1", Status: "pending"})
		}))
		defer srv.Close()

		gw := NewApplicationGateway(NewClient(srv.URL, time.Second))
		app, err := gw.Apply(context.Background(), "job1", "cv1")

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"jobId": "job1", "cvId": "cv1"}, gotBody)
		assert.Equal(t, "pending", app.Status)
	})

	t.Run("Should omit the cv reference when none is chosen", func(t *testing.T) {
		var gotBody map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			writeEnvelope(t, w, http.StatusCreated, "created", domain.Application{ID: "a1"})
		}))
		defer srv.Close()

		gw := NewApplicationGateway(NewClient(srv.URL, time.Second))
		_, err := gw.Apply(context.Background(), "job1", "")

		require.NoError(t, err)
		_, hasCV := gotBody["cvId"]
		assert.False(t, hasCV)
	})

	t.Run("Should hit the admin status endpoint", func(t *testing.T) {
		var gotPath, gotStatus string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gotStatus = body["status"]
			writeEnvelope(t, w, http.StatusOK, "ok", nil)
		}))
		defer srv.Close()

		gw := NewApplicationGateway(NewClient(srv.URL, time.Second))
		require.NoError(t, gw.UpdateStatusAdmin(context.Background(), "a1", "accepted"))

		assert.Equal(t, "/applications/admin/a1/status", gotPath)
		assert.Equal(t, "accepted", gotStatus)
	})
}

func TestCVGatewayBlob(t *testing.T) {
	t.Run("Should carry content type and filename through", func(t *testing.T) {
		payload := []byte("%PDF-1.7 fake body")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cv/cv1/download", r.URL.Path)
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
			_, _ = w.Write(payload)
		}))
		defer srv.Close()

		gw := NewCVGateway(NewClient(srv.URL, time.Second))
		blob, err := gw.Download(context.Background(), "cv1")

		require.NoError(t, err)
		assert.Equal(t, "application/pdf", blob.ContentType)
		assert.Equal(t, "resume.pdf", blob.Filename)
		assert.Equal(t, payload, blob.Data)
	})
}

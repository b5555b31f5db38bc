package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clientes-api/internal/config"
	"github.com/BruksfildServices01/clientes-api/internal/logger"
	"github.com/BruksfildServices01/clientes-api/internal/routes"
	"github.com/BruksfildServices01/clientes-api/internal/storage"
	"github.com/BruksfildServices01/clientes-api/internal/testutil"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	photos, err := storage.NewFilesystem(t.TempDir(), logger.Discard())
	require.NoError(t, err)

	cfg := &config.Config{
		DBUrl:      "file::memory:",
		ServerPort: "8080",
		Log:        config.LogConfig{Level: "info", Format: "text"},
		Storage: config.StorageConfig{
			Driver:        config.StorageFilesystem,
			Dir:           photos.Dir(),
			MaxUploadSize: "1MB",
		},
	}
	require.NoError(t, cfg.Validate())

	return routes.NewRouter(routes.Deps{
		DB:     testutil.NewDB(t),
		Photos: photos,
		Logger: logger.Discard(),
		Config: cfg,
	})
}

func TestHealth(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/clientes/1", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestRoutesAreWired(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/clientes", "", http.StatusOK},
		{http.MethodGet, "/api/clientes/page/0", "", http.StatusOK},
		{http.MethodGet, "/api/clientes/1", "", http.StatusNotFound},
		{http.MethodPost, "/api/clientes", `{}`, http.StatusBadRequest},
		{http.MethodPut, "/api/clientes/1", `{}`, http.StatusBadRequest},
		{http.MethodDelete, "/api/clientes/1", "", http.StatusInternalServerError},
		{http.MethodPost, "/api/clientes/upload", "", http.StatusBadRequest},
		{http.MethodGet, "/api/uploads/img/nada.png", "", http.StatusInternalServerError},
		{http.MethodGet, "/api/audit-logs", "", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

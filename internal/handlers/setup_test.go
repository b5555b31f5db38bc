package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clientes-api/internal/audit"
	domain "github.com/BruksfildServices01/clientes-api/internal/domain/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/handlers"
	"github.com/BruksfildServices01/clientes-api/internal/infra/repository"
	"github.com/BruksfildServices01/clientes-api/internal/logger"
	"github.com/BruksfildServices01/clientes-api/internal/models"
	"github.com/BruksfildServices01/clientes-api/internal/storage"
	"github.com/BruksfildServices01/clientes-api/internal/testutil"
	ucCliente "github.com/BruksfildServices01/clientes-api/internal/usecase/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/validators"
)

func init() {
	gin.SetMode(gin.TestMode)
	validators.Register()
}

type env struct {
	router *gin.Engine
	repo   domain.Repository
	photos *storage.Filesystem
}

// dispatcher may be nil: audit events are then discarded.
func newRouter(repo domain.Repository, photos storage.Store, dispatcher *audit.Dispatcher, maxUpload int64) *gin.Engine {
	log := logger.Discard()
	svc := ucCliente.NewService(repo)
	ch := handlers.NewClienteHandler(svc, photos, dispatcher, log)
	ph := handlers.NewPhotoHandler(svc, photos, dispatcher, log, maxUpload)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/clientes", ch.Index)
	api.GET("/clientes/page/:page", ch.IndexPage)
	api.GET("/clientes/:id", ch.Show)
	api.POST("/clientes", ch.Create)
	api.PUT("/clientes/:id", ch.Update)
	api.DELETE("/clientes/:id", ch.Delete)
	api.POST("/clientes/upload", ph.Upload)
	api.GET("/uploads/img/:nombreFoto", ph.View)
	return r
}

func newEnv(t *testing.T) *env {
	return newEnvWithLimit(t, 0)
}

func newEnvWithLimit(t *testing.T, maxUpload int64) *env {
	t.Helper()

	photos, err := storage.NewFilesystem(t.TempDir(), logger.Discard())
	require.NoError(t, err)

	repo := repository.NewClienteGormRepository(testutil.NewDB(t))
	return &env{
		router: newRouter(repo, photos, nil, maxUpload),
		repo:   repo,
		photos: photos,
	}
}

func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) upload(t *testing.T, id, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if id != "" {
		require.NoError(t, mw.WriteField("id", id))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("archivo", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/clientes/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) create(t *testing.T, c models.Cliente) models.Cliente {
	t.Helper()
	saved, err := e.repo.Save(context.Background(), c)
	require.NoError(t, err)
	return saved
}

func (e *env) writePhoto(t *testing.T, name string, content []byte) {
	t.Helper()
	require.NoError(t, e.photos.Save(context.Background(), name, bytes.NewReader(content)))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type messageBody struct {
	Mensaje string          `json:"mensaje"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
	Cliente *models.Cliente `json:"cliente"`
}

func validBody() map[string]any {
	return map[string]any{
		"nombre":   "Rocio",
		"apellido": "Pinzon",
		"email":    "rocio@example.com",
		"createAt": "2024-03-15",
	}
}

// --------------------------------------------------
// failing repository
// --------------------------------------------------

var errCause = errors.New("connection refused")

type failingRepo struct {
	err     error
	cliente *models.Cliente
}

func (r failingRepo) FindAll(context.Context) ([]models.Cliente, error) {
	return nil, r.err
}

func (r failingRepo) FindPage(context.Context, int, int) (domain.Page, error) {
	return domain.Page{}, r.err
}

func (r failingRepo) FindByID(context.Context, uint) (*models.Cliente, error) {
	if r.cliente != nil {
		c := *r.cliente
		return &c, nil
	}
	return nil, r.err
}

func (r failingRepo) Save(context.Context, models.Cliente) (models.Cliente, error) {
	return models.Cliente{}, r.err
}

func (r failingRepo) Delete(context.Context, uint) error {
	return r.err
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/docker/go-units"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/clientes-api/internal/audit"
	domain "github.com/BruksfildServices01/clientes-api/internal/domain/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/httperr"
	"github.com/BruksfildServices01/clientes-api/internal/httpresp"
	"github.com/BruksfildServices01/clientes-api/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type PhotoHandler struct {
	clientes  domain.Repository
	photos    storage.Store
	audit     *audit.Dispatcher
	logger    *slog.Logger
	maxUpload int64
}

func NewPhotoHandler(
	clientes domain.Repository,
	photos storage.Store,
	dispatcher *audit.Dispatcher,
	logger *slog.Logger,
	maxUpload int64,
) *PhotoHandler {
	return &PhotoHandler{
		clientes:  clientes,
		photos:    photos,
		audit:     dispatcher,
		logger:    logger.With("component", "photos"),
		maxUpload: maxUpload,
	}
}

// folga para os demais campos do multipart
const multipartOverhead = 1 << 20

// aspas do nome original vão escapadas no Content-Disposition
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// photoName builds "<uuid>_<original>" with spaces and any client-side
// directory removed from the original name.
func photoName(original string) string {
	if i := strings.LastIndexAny(original, `/\`); i >= 0 {
		original = original[i+1:]
	}
	return uuid.NewString() + "_" + strings.ReplaceAll(original, " ", "")
}

// ======================================================
// UPLOAD
// ======================================================

func (h *PhotoHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+multipartOverhead)
	}

	header, err := c.FormFile("archivo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			httperr.BadRequest(c, "Debe adjuntar un archivo en el campo 'archivo'.")
			return
		}
		httperr.BadRequest(c, "No se pudo leer el formulario: "+err.Error())
		return
	}

	id, ok := parseID(c, c.PostForm("id"))
	if !ok {
		return
	}

	cliente, err := h.clientes.FindByID(ctx, id)
	if err != nil {
		httperr.DataAccess(c, msgQueryFailed, err, httperr.SepNone)
		return
	}

	// arquivo vazio: 201 sem corpo útil
	if header.Size == 0 {
		httpresp.Created(c, gin.H{})
		return
	}

	if cliente == nil {
		httperr.Internal(c, "Error al subir la imagen", msgNotFound(id))
		return
	}

	if h.maxUpload > 0 && header.Size > h.maxUpload {
		httperr.BadRequest(c, fmt.Sprintf(
			"La imagen supera el tamaño máximo permitido (%s).",
			units.HumanSize(float64(h.maxUpload)),
		))
		return
	}

	name := photoName(header.Filename)

	file, err := header.Open()
	if err != nil {
		h.uploadFailed(c, name, err)
		return
	}
	defer file.Close()

	if info, err := storage.Inspect(file); err == nil {
		h.logger.Info("photo received", "foto", name, "format", info.Format, "width", info.Width, "height", info.Height)
	} else {
		h.logger.Info("photo received", "foto", name, "format", "unknown", "size", header.Size)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		h.uploadFailed(c, name, err)
		return
	}

	if err := h.photos.Save(ctx, name, file); err != nil {
		h.uploadFailed(c, name, err)
		return
	}

	previous := domain.ReplaceFoto(cliente, name)
	if previous != "" {
		if _, err := h.photos.RemoveIfPresent(ctx, previous); err != nil {
			h.logger.Warn("could not remove previous photo", "foto", previous, "error", err)
		}
	}

	saved, err := h.clientes.Save(ctx, *cliente)
	if err != nil {
		httperr.DataAccess(c, msgUpdateFailed, err, httperr.SepColon)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   audit.ActionClientePhotoUpdated,
		Entity:   audit.EntityCliente,
		EntityID: &saved.ID,
		Metadata: gin.H{"foto": name, "previous": previous},
	})

	httpresp.Created(c, gin.H{
		"cliente": saved,
		"mensaje": "La imagen: " + name + " se ha subido con éxito",
	})
}

func (h *PhotoHandler) uploadFailed(c *gin.Context, name string, err error) {
	h.logger.Error("photo upload failed", "foto", name, "error", err)
	httperr.Internal(
		c,
		"Error al subir la imagen "+name,
		fmt.Sprintf("clase de un error %T mensaje de error %s", httperr.Cause(err), err.Error()),
	)
}

// ======================================================
// VIEW
// ======================================================

// View streams the photo as an attachment. A missing photo aborts with a
// bare 500.
func (h *PhotoHandler) View(c *gin.Context) {
	name := c.Param("nombreFoto")

	obj, err := h.photos.Open(c.Request.Context(), name)
	if err != nil {
		h.logger.Error("photo not available", "foto", name, "error", err)
		_ = c.AbortWithError(
			http.StatusInternalServerError,
			fmt.Errorf("Error!! No se pudo cargar la siguiente imagen: %s: %w", name, err),
		)
		return
	}
	defer obj.Body.Close()

	c.DataFromReader(
		http.StatusOK,
		obj.Size,
		obj.ContentType,
		obj.Body,
		map[string]string{
			"Content-Disposition": `attachment; filename="` + quoteEscaper.Replace(obj.Name) + `"`,
		},
	)
}

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clientes-api/internal/audit"
	domain "github.com/BruksfildServices01/clientes-api/internal/domain/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/httperr"
	"github.com/BruksfildServices01/clientes-api/internal/httpresp"
	"github.com/BruksfildServices01/clientes-api/internal/models"
	"github.com/BruksfildServices01/clientes-api/internal/storage"
	"github.com/BruksfildServices01/clientes-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ClienteHandler struct {
	clientes domain.Repository
	photos   storage.Store
	audit    *audit.Dispatcher
	logger   *slog.Logger
}

func NewClienteHandler(
	clientes domain.Repository,
	photos storage.Store,
	dispatcher *audit.Dispatcher,
	logger *slog.Logger,
) *ClienteHandler {
	return &ClienteHandler{
		clientes: clientes,
		photos:   photos,
		audit:    dispatcher,
		logger:   logger.With("component", "clientes"),
	}
}

// ======================================================
// MESSAGES
// ======================================================

const (
	msgQueryFailed  = "Error al realizar la consulta en la BD."
	msgInsertFailed = "Error al realizar el insert en la BD"
	msgUpdateFailed = "Error al actualizar el cliente con la BD"
	msgDeleteFailed = "Error al eliminar el cliente con la BD"

	msgCreated = "El cliente ha sido creado con éxito"
	msgUpdated = "El cliente ha sido actualizado con éxito"
	msgDeleted = "El cliente ha sido eliminado con éxito"
)

func msgNotFound(id uint) string {
	return fmt.Sprintf("El cliente ID: %d no existe en la base de datos.", id)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		httperr.BadRequest(c, fmt.Sprintf("El ID '%s' no es válido.", raw))
		return 0, false
	}
	return uint(id), true
}

// bindCliente returns the 400 messages for the body, one per failing
// field, or nil when it is valid.
func bindCliente(c *gin.Context, in *models.Cliente) []string {
	err := c.ShouldBindJSON(in)
	if err == nil {
		return nil
	}
	if errs, ok := validators.FieldErrors(in, err); ok {
		return errs
	}
	return []string{"El cuerpo de la solicitud no es válido: " + err.Error()}
}

// removePhoto is best-effort: failures are logged, never returned.
func (h *ClienteHandler) removePhoto(c *gin.Context, name string) {
	if name == "" {
		return
	}
	if _, err := h.photos.RemoveIfPresent(c.Request.Context(), name); err != nil {
		h.logger.Warn("could not remove photo", "foto", name, "error", err)
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ClienteHandler) Index(c *gin.Context) {
	clientes, err := h.clientes.FindAll(c.Request.Context())
	if err != nil {
		httperr.DataAccess(c, msgQueryFailed, err, httperr.SepNone)
		return
	}
	if clientes == nil {
		clientes = []models.Cliente{}
	}

	httpresp.OK(c, clientes)
}

func (h *ClienteHandler) IndexPage(c *gin.Context) {
	raw := c.Param("page")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		httperr.BadRequest(c, fmt.Sprintf("La página '%s' no es válida.", raw))
		return
	}

	result, err := h.clientes.FindPage(c.Request.Context(), page, domain.PageSize)
	if err != nil {
		httperr.DataAccess(c, msgQueryFailed, err, httperr.SepNone)
		return
	}

	httpresp.OK(c, httpresp.NewPage(result.Content, result.Number, result.Size, result.Total))
}

// ======================================================
// SHOW
// ======================================================

func (h *ClienteHandler) Show(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	cliente, err := h.clientes.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.DataAccess(c, msgQueryFailed, err, httperr.SepNone)
		return
	}

	if cliente == nil {
		httperr.NotFound(c, msgNotFound(id))
		return
	}

	httpresp.OK(c, cliente)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClienteHandler) Create(c *gin.Context) {
	var in models.Cliente
	if errs := bindCliente(c, &in); errs != nil {
		httperr.Validation(c, errs)
		return
	}

	// id é do banco; foto só entra pelo upload
	in.ID = 0
	in.Foto = ""

	created, err := h.clientes.Save(c.Request.Context(), in)
	if err != nil {
		httperr.DataAccess(c, msgInsertFailed, err, httperr.SepColon)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   audit.ActionClienteCreated,
		Entity:   audit.EntityCliente,
		EntityID: &created.ID,
	})

	httpresp.Created(c, gin.H{
		"mensaje": msgCreated,
		"cliente": created,
	})
}

// ======================================================
// UPDATE
// ======================================================

// Update looks the record up first, then reports validation errors, then
// a missing record.
func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	current, lookupErr := h.clientes.FindByID(c.Request.Context(), id)

	var in models.Cliente
	if errs := bindCliente(c, &in); errs != nil {
		httperr.Validation(c, errs)
		return
	}

	if lookupErr != nil {
		httperr.DataAccess(c, msgUpdateFailed, lookupErr, httperr.SepColon)
		return
	}

	if current == nil {
		httperr.NotFound(c, fmt.Sprintf("Error no se puede editar el cliente ID: %d", id))
		return
	}

	updated, err := h.clientes.Save(c.Request.Context(), domain.ApplyUpdate(*current, in))
	if err != nil {
		httperr.DataAccess(c, msgUpdateFailed, err, httperr.SepColon)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   audit.ActionClienteUpdated,
		Entity:   audit.EntityCliente,
		EntityID: &updated.ID,
	})

	httpresp.Created(c, gin.H{
		"mensaje": msgUpdated,
		"cliente": updated,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	failed := msgDeleteFailed + strconv.FormatUint(uint64(id), 10)

	cliente, err := h.clientes.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.DataAccess(c, failed, err, httperr.SepColon)
		return
	}

	if cliente == nil {
		httperr.Internal(c, failed, msgNotFound(id))
		return
	}

	h.removePhoto(c, cliente.Foto)

	if err := h.clientes.Delete(c.Request.Context(), id); err != nil {
		httperr.DataAccess(c, failed, err, httperr.SepColon)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   audit.ActionClienteDeleted,
		Entity:   audit.EntityCliente,
		EntityID: &id,
		Metadata: gin.H{"foto": cliente.Foto},
	})

	c.JSON(http.StatusOK, gin.H{"mensaje": msgDeleted})
}

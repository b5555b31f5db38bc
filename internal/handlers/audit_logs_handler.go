package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clientes-api/internal/httperr"
	"github.com/BruksfildServices01/clientes-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if raw := c.Query("entity_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			httperr.BadRequest(c, "El parámetro 'entity_id' no es válido.")
			return
		}
		q = q.Where("entity_id = ?", uint(id))
	}

	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(models.DateLayout, raw); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(models.DateLayout, raw); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total + listagem
	// --------------------------------------------------

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.DataAccess(c, msgQueryFailed, err, httperr.SepNone)
		return
	}

	// além da última página: nada a buscar, e (page-1)*limit poderia estourar
	logs := []models.AuditLog{}
	if int64(page-1) < (total+int64(limit)-1)/int64(limit) {
		if err := q.
			Order("created_at DESC").
			Order("id DESC").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&logs).Error; err != nil {
			httperr.DataAccess(c, msgQueryFailed, err, httperr.SepNone)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

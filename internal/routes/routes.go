package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clientes-api/internal/audit"
	"github.com/BruksfildServices01/clientes-api/internal/config"
	"github.com/BruksfildServices01/clientes-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clientes-api/internal/infra/repository"
	"github.com/BruksfildServices01/clientes-api/internal/middleware"
	"github.com/BruksfildServices01/clientes-api/internal/storage"
	ucCliente "github.com/BruksfildServices01/clientes-api/internal/usecase/cliente"
	"github.com/BruksfildServices01/clientes-api/internal/validators"
)

// Deps são as dependências compartilhadas pelas rotas.
type Deps struct {
	DB     *gorm.DB
	Photos storage.Store
	Audit  *audit.Dispatcher
	Logger *slog.Logger
	Config *config.Config
}

// NewRouter builds the engine with the global middleware, /health and the
// API routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	validators.Register()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	clienteRepo := infraRepo.NewClienteGormRepository(deps.DB)

	// ======================================================
	// 🧠 SERVICE
	// ======================================================
	clienteService := ucCliente.NewService(clienteRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	var maxUpload int64
	if deps.Config != nil {
		maxUpload = deps.Config.Storage.MaxUploadBytes()
	}

	clienteHandler := handlers.NewClienteHandler(
		clienteService,
		deps.Photos,
		deps.Audit,
		deps.Logger,
	)

	photoHandler := handlers.NewPhotoHandler(
		clienteService,
		deps.Photos,
		deps.Audit,
		deps.Logger,
		maxUpload,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/clientes", clienteHandler.Index)
		api.GET("/clientes/page/:page", clienteHandler.IndexPage)
		api.GET("/clientes/:id", clienteHandler.Show)
		api.POST("/clientes", clienteHandler.Create)
		api.PUT("/clientes/:id", clienteHandler.Update)
		api.DELETE("/clientes/:id", clienteHandler.Delete)

		api.POST("/clientes/upload", photoHandler.Upload)
		api.GET("/uploads/img/:nombreFoto", photoHandler.View)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/investify-receipts/internal/config"
	domainRepo "github.com/sangkips/investify-receipts/internal/domain/repository"
	"github.com/sangkips/investify-receipts/internal/presentation/http/handler"
	"github.com/sangkips/investify-receipts/internal/presentation/http/middleware"
	"github.com/sangkips/investify-receipts/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Receipt  *handler.ReceiptHandler
	Store    *handler.StoreHandler
	PrintJob *handler.PrintJobHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.TerminalRateLimiter
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
			"printer": deps.Cfg.Printer.Type,
		})
	})

	// API v1 routes, all authenticated by terminal token
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.JWTManager))
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	registerReceiptRoutes(v1, h, deps)
	registerPrinterRoutes(v1, h)
	registerStoreRoutes(v1, h)
	registerHistoryRoutes(v1, h)

	return router
}

// NewRateLimiter builds the per-terminal limiter from configuration.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.TerminalRateLimiter {
	rlCfg := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rlCfg.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rlCfg.BurstSize = cfg.Requests
	}
	rlCfg.CleanupInterval = 5 * time.Minute
	rlCfg.EntryTTL = 10 * time.Minute
	return middleware.NewTerminalRateLimiter(rlCfg)
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo:   deps.IdempotencyRepo,
		Logger: deps.Logger,
	})

	receipts := v1.Group("/receipts")
	{
		receipts.POST("/sale", idempotent, h.Receipt.PrintSaleReceipt)
		receipts.POST("/sale/preview", h.Receipt.PreviewSaleReceipt)
		receipts.POST("/bnpl-confirmation", idempotent, h.Receipt.PrintBnplConfirmation)
		receipts.POST("/bnpl-confirmation/preview", h.Receipt.PreviewBnplConfirmation)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Receipt.GetPrinterStatus)
		printer.POST("/test", h.Receipt.TestPrint)
	}
}

func registerStoreRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/store", h.Store.GetStore)
	v1.PUT("/store", h.Store.UpdateStore)
}

func registerHistoryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/print-jobs", h.PrintJob.ListPrintJobs)
	v1.GET("/date-range", h.PrintJob.GetDateRange)
}

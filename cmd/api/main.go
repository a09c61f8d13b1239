package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/investify-receipts/internal/application/render"
	"github.com/sangkips/investify-receipts/internal/application/service"
	"github.com/sangkips/investify-receipts/internal/config"
	"github.com/sangkips/investify-receipts/internal/domain/entity"
	"github.com/sangkips/investify-receipts/internal/infrastructure/database"
	"github.com/sangkips/investify-receipts/internal/infrastructure/repository"
	"github.com/sangkips/investify-receipts/internal/presentation/http/handler"
	"github.com/sangkips/investify-receipts/internal/presentation/http/middleware"
	"github.com/sangkips/investify-receipts/internal/presentation/http/routes"
	"github.com/sangkips/investify-receipts/pkg/dateutil"
	"github.com/sangkips/investify-receipts/pkg/email"
	"github.com/sangkips/investify-receipts/pkg/logger"
	"github.com/sangkips/investify-receipts/pkg/printer"
	"github.com/sangkips/investify-receipts/pkg/utils"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.OutputPath,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	defaultStore := entity.StoreProfile{
		Name:               cfg.Store.Name,
		Address:            cfg.Store.Address,
		Phone:              cfg.Store.Phone,
		NTN:                cfg.Store.NTN,
		ReceiptFooter:      cfg.Store.ReceiptFooter,
		ConfirmationFooter: cfg.Store.ConfirmationFooter,
	}
	if err := database.SeedDefaultData(db, defaultStore, log); err != nil {
		log.Warn("Failed to seed default data", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	storeRepo := repository.NewStoreProfileRepository(db)
	printJobRepo := repository.NewPrintJobRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize print host
	host, err := printer.NewHostFromConfig(printer.Config{
		Type:     cfg.Printer.Type,
		USBPath:  cfg.Printer.USBPath,
		Address:  cfg.Printer.Address,
		SpoolDir: cfg.Printer.SpoolDir,
		SpoolMax: cfg.Printer.SpoolMax,
		Inbox:    cfg.Printer.Inbox,
	}, afero.NewOsFs(), emailService)
	if err != nil {
		log.Warn("Failed to initialize printer, printing disabled", zap.Error(err))
		host = printer.NewNullHost()
	}

	// Initialize services
	calendar := dateutil.NewCalendar(dateutil.PakistanLocation(), time.Now)
	storeService := service.NewStoreService(storeRepo, defaultStore)
	receiptService := service.NewReceiptService(
		host,
		render.NewRenderer(calendar),
		storeService,
		printJobRepo,
		calendar,
		cfg.Printer.PrintDelay,
		log.Named("receipts"),
	)
	printJobService := service.NewPrintJobService(printJobRepo, calendar)

	handlers := &routes.Handlers{
		Receipt:  handler.NewReceiptHandler(receiptService),
		Store:    handler.NewStoreHandler(storeService),
		PrintJob: handler.NewPrintJobHandler(printJobService),
	}

	rateLimiter := routes.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()
	go middleware.PurgeExpiredKeys(purgeCtx, idempotencyRepo, time.Hour, log.Named("idempotency"))

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Logger:          log.Named("http"),
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
			zap.String("printer", host.Status().Type),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let documents already written to the printer finish printing
	receiptService.Wait()
	log.Info("Server exited")
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-admin-backoffice/config"
	deliveryHttp "health-admin-backoffice/internal/delivery/http"
	"health-admin-backoffice/internal/delivery/http/handler"
	"health-admin-backoffice/internal/delivery/http/middleware"
	"health-admin-backoffice/internal/infrastructure/cache"
	"health-admin-backoffice/internal/infrastructure/database"
	"health-admin-backoffice/internal/observability/metrics"
	"health-admin-backoffice/internal/repository"
	"health-admin-backoffice/internal/service"
	"health-admin-backoffice/internal/usecase"
	"health-admin-backoffice/pkg/jwt"
	"health-admin-backoffice/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	authorityRepo := repository.NewHealthAuthorityRepository()
	diagnosisListRepo := repository.NewDiagnosisListRepository()
	drugListRepo := repository.NewDrugListRepository()
	clinicianListRepo := repository.NewClinicianListRepository()
	diagnosisRepo := repository.NewDiagnosisRepository()
	drugRepo := repository.NewDrugRepository()
	clinicianRepo := repository.NewClinicianRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	payerRepo := repository.NewPayerRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	importService := service.NewClinicianImportService(cfg.Import.MaxRows)

	// Initialize usecases
	authorityUsecase := usecase.NewHealthAuthorityUsecase(db, log, authorityRepo, diagnosisListRepo, drugListRepo, clinicianListRepo, auditService)
	referenceListUsecase := usecase.NewReferenceListUsecase(db, log, diagnosisListRepo, drugListRepo, clinicianListRepo, auditService)
	listItemUsecase := usecase.NewListItemUsecase(db, log, diagnosisRepo, drugRepo, clinicianRepo, diagnosisListRepo, drugListRepo, clinicianListRepo, importService, auditService, m)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, auditService, m)
	payerUsecase := usecase.NewPayerUsecase(db, log, payerRepo, authorityRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authorityHandler := handler.NewHealthAuthorityHandler(authorityUsecase, customValidator)
	referenceListHandler := handler.NewReferenceListHandler(referenceListUsecase, customValidator)
	listItemHandler := handler.NewListItemHandler(listItemUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	payerHandler := handler.NewPayerHandler(payerUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(authorityHandler, referenceListHandler, listItemHandler, prescriptionHandler, payerHandler, auditLogHandler, authMiddleware, corsMiddleware, m)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthhub/config"
	deliveryHttp "healthhub/internal/delivery/http"
	"healthhub/internal/delivery/http/handler"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/infrastructure/cache"
	"healthhub/internal/infrastructure/database"
	"healthhub/internal/repository"
	"healthhub/internal/service"
	"healthhub/internal/usecase"
	"healthhub/pkg/jwt"
	"healthhub/pkg/password"
	"healthhub/pkg/validator"

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

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Upload directory must exist before the first multipart request
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

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
	// Initialize shared services
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	hasher := password.NewHasher()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	staffProfileRepo := repository.NewStaffProfileRepository()
	adminProfileRepo := repository.NewAdminProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	billingRepo := repository.NewBillingRepository()
	documentRepo := repository.NewDocumentRepository()
	historyRepo := repository.NewPatientHistoryRepository()
	staffTaskRepo := repository.NewStaffTaskRepository()
	sequenceRepo := repository.NewSequenceRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, accountRepo, doctorProfileRepo, patientProfileRepo, jwtService, hasher, redisClient, auditService)
	profileUsecase := usecase.NewProfileUsecase(db, log, accountRepo, doctorProfileRepo, staffProfileRepo, adminProfileRepo, patientProfileRepo, sequenceRepo, hasher, auditService)
	approvalUsecase := usecase.NewApprovalUsecase(db, log, accountRepo, doctorProfileRepo, staffProfileRepo, adminProfileRepo, auditService)
	managementUsecase := usecase.NewManagementUsecase(db, log, accountRepo, doctorProfileRepo, staffProfileRepo, adminProfileRepo, patientProfileRepo, sequenceRepo, hasher, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, doctorProfileRepo, patientProfileRepo, appointmentRepo, prescriptionRepo, billingRepo, historyRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, doctorProfileRepo, patientProfileRepo, appointmentRepo, prescriptionRepo, auditService)
	billingUsecase := usecase.NewBillingUsecase(db, log, patientProfileRepo, appointmentRepo, billingRepo, auditService)
	documentUsecase := usecase.NewDocumentUsecase(db, log, cfg.Upload, patientProfileRepo, doctorProfileRepo, appointmentRepo, documentRepo, auditService)
	staffTaskUsecase := usecase.NewStaffTaskUsecase(db, log, staffProfileRepo, staffTaskRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	approvalHandler := handler.NewApprovalHandler(approvalUsecase)
	managementHandler := handler.NewManagementHandler(managementUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase)
	documentHandler := handler.NewDocumentHandler(documentUsecase, cfg.Upload)
	staffTaskHandler := handler.NewStaffTaskHandler(staffTaskUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		cfg.Upload,
		authHandler,
		profileHandler,
		approvalHandler,
		managementHandler,
		appointmentHandler,
		prescriptionHandler,
		billingHandler,
		documentHandler,
		staffTaskHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
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

// Close releases database and Redis connections
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

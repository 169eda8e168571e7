package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oncoportal/config"
	deliveryHttp "oncoportal/internal/delivery/http"
	"oncoportal/internal/delivery/http/handler"
	"oncoportal/internal/delivery/http/middleware"
	"oncoportal/internal/infrastructure/cache"
	"oncoportal/internal/infrastructure/database"
	"oncoportal/internal/infrastructure/inference"
	"oncoportal/internal/infrastructure/store"
	"oncoportal/internal/repository"
	"oncoportal/internal/service"
	"oncoportal/internal/usecase"
	"oncoportal/pkg/jwt"
	"oncoportal/pkg/validator"

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

	// Initialize Redis (session tokens, optionally the record store)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize the record store backend
	recordStore, err := newRecordStore(cfg, app, redisClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize record store: %w", err)
	}
	logrus.Infof("Record store ready (driver: %s)", cfg.Store.Driver)

	// Initialize all layers
	server := initializeServer(cfg, recordStore, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// newRecordStore builds the store backend selected by STORE_DRIVER. The
// postgres driver is the only one that opens a database connection.
func newRecordStore(cfg *config.Config, app *App, redisClient *redis.Client) (store.Store, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(cfg.Store.Path)
	case "redis":
		return store.NewRedisStore(redisClient), nil
	case "postgres":
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, err
		}
		app.DB = db
		logrus.Info("Database connected successfully")
		return store.NewGormStore(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, recordStore store.Store, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	directoryRepo := repository.NewDirectoryRepository(recordStore, log)
	requestRepo := repository.NewDoctorRequestRepository(recordStore, log)
	entryRepo := repository.NewDataEntryRepository(recordStore, log)
	graphRepo := repository.NewKnowledgeGraphRepository(recordStore, log)
	imageRepo := repository.NewProfileImageRepository(recordStore, log)
	sessionRepo := cache.NewRedisSessionStore(redisClient)

	// Initialize services
	modelRunner := inference.NewHTTPClient(cfg.Model)
	chatbot := service.NewChatbotService(rand.New(rand.NewSource(time.Now().UnixNano())))

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, directoryRepo, sessionRepo, jwtService)
	profileUsecase := usecase.NewProfileUsecase(log, directoryRepo, imageRepo)
	directoryUsecase := usecase.NewDirectoryUsecase(log, directoryRepo)
	requestUsecase := usecase.NewDoctorRequestUsecase(log, directoryRepo, requestRepo)
	dataUsecase := usecase.NewPatientDataUsecase(log, entryRepo, graphRepo, modelRunner)
	diagnosisUsecase := usecase.NewDiagnosisUsecase()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase, customValidator)
	requestHandler := handler.NewDoctorRequestHandler(requestUsecase, customValidator)
	dataEntryHandler := handler.NewDataEntryHandler(dataUsecase, customValidator)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisUsecase, customValidator)
	chatbotHandler := handler.NewChatbotHandler(chatbot, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		directoryHandler,
		requestHandler,
		dataEntryHandler,
		diagnosisHandler,
		chatbotHandler,
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"store-api/internal/handlers"
	"store-api/internal/jwt"
	"store-api/internal/logger"
	"store-api/internal/middlewares"
	"store-api/internal/repositories"
	"store-api/internal/services"
	"store-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title store-api
// @version 1.0.0
// @description REST service for items, users and user profile images
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp,
		adminPass, uploadDir, corsOrigins,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp,
		adminPass, uploadDir, corsOrigins,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, JWT, admin, storage, and CORS configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	adminPass, uploadDir string, corsOrigins []string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Admin and storage config
	adminPass = getEnv("ADMIN_SETUP_PASS", "")
	uploadDir = getEnv("UPLOAD_DIR", "public")

	// CORS config
	corsOrigins = strings.Split(
		getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173"),
		",",
	)
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}

	return
}

// run initializes the logger, database, storage, services and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	adminPass, uploadDir string, corsOrigins []string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Error("PostgreSQL connection error:", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Error("PostgreSQL ping failed:", err)
		return err
	}

	// Initialize JWT verifier and file storage
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)
	files := storage.NewFileStorage(uploadDir)

	// Initialize repositories
	itemRepo := repositories.NewItemRepository(db)
	userRepo := repositories.NewUserRepository(db)
	schemaRepo := repositories.NewSchemaRepository(db)

	// Initialize services
	itemService := services.NewItemService(itemRepo)
	userService := services.NewUserService(userRepo, files)
	imageService := services.NewProfileImageService(userRepo, files)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(corsOrigins))

	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewItemsListHandler(itemService))
		r.Post("/", handlers.NewItemCreateHandler(itemService))
		r.Delete("/", handlers.NewItemDeleteByNameHandler(itemService))
		r.Get("/{id}", handlers.NewItemGetHandler(itemService))
		r.Patch("/{id}", handlers.NewItemUpdateHandler(itemService))
		r.Put("/{id}", handlers.NewItemReplaceHandler(itemService))
		r.Delete("/{id}", handlers.NewItemDeleteHandler(itemService))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", handlers.NewUsersListHandler(userService))
		r.Post("/", handlers.NewUserCreateHandler(userService))

		// Protected profile image routes. Registered before /{id} so the
		// literal segment wins.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Post("/profile/image", handlers.NewProfileImageUploadHandler(imageService, tokener))
			r.Delete("/profile/image", handlers.NewProfileImageRemoveHandler(imageService, tokener))
		})

		r.Get("/{id}", handlers.NewUserGetHandler(userService))
		r.Patch("/{id}", handlers.NewUserUpdateHandler(userService))
		r.Delete("/{id}", handlers.NewUserDeleteHandler(userService))
	})

	r.Get("/admin/initial", handlers.NewAdminInitialHandler(schemaRepo, adminPass))

	// Uploaded images are served from the same public directory they are
	// written to.
	fileServer := http.StripPrefix("/profile-images/", http.FileServer(http.Dir(uploadDir+"/profile-images")))
	r.Get("/profile-images/*", fileServer.ServeHTTP)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

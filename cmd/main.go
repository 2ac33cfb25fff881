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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/metroapp/metro-map-backend/internal/cache"
	"github.com/metroapp/metro-map-backend/internal/handlers"
	"github.com/metroapp/metro-map-backend/internal/logger"
	"github.com/metroapp/metro-map-backend/internal/middlewares"
	"github.com/metroapp/metro-map-backend/internal/repositories"
	"github.com/metroapp/metro-map-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title metro-map-backend API
// @version 1.0.0
// @description Backend for the metro map web app: accounts, metro/POI geodata and favorite stations
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		corsOrigins, warmCities, logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		corsOrigins, warmCities,
		logLevel,
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
// application, database, CORS, cache and logging configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	corsOrigins, warmCities []string,
	logLevel string,
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
	appHost = getEnv("APP_HOST", "0.0.0.0")
	appPort = getEnv("APP_PORT", "5000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "metro")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// CORS config: the map pages are served as static files from
	// another origin.
	corsOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	// Cities preloaded by cache warm.
	warmCities = splitList(getEnv("CACHE_WARM_CITIES", "nj,bj,sh,wh"))

	return
}

// splitList splits a comma-separated env value into trimmed items.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			items = append(items, s)
		}
	}
	return items
}

// run initializes the logger, database, cache, services and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	corsOrigins, warmCities []string,
	logLevel string,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Initialize the geo payload cache
	geoCache := cache.New(log)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext, log)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext, log)
	metroRepo := repositories.NewMetroReadRepository(db, log)
	poiRepo := repositories.NewPOIReadRepository(db, log)
	favReadRepo := repositories.NewFavoriteReadRepository(db, middlewares.GetTxFromContext, log)
	favWriteRepo := repositories.NewFavoriteWriteRepository(db, middlewares.GetTxFromContext, log)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, log)
	geoService := services.NewGeoService(metroRepo, poiRepo, geoCache, warmCities, log)
	favService := services.NewFavoriteService(favReadRepo, favWriteRepo, log)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(chimiddleware.Compress(5))
	r.Use(middlewares.LoggingMiddleware(log))

	txMiddleware := middlewares.TxMiddleware(db, log)

	r.Route("/api", func(r chi.Router) {
		// Mutating account and favorite routes run inside a
		// per-request transaction.
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)
			r.Post("/register", handlers.NewRegisterHandler(authService, log))
			r.Post("/login", handlers.NewLoginHandler(authService, log))
			r.Post("/reset_password", handlers.NewResetPasswordHandler(authService, log))
			r.Post("/change_password", handlers.NewChangePasswordHandler(authService, log))
			r.Post("/change_security_answer", handlers.NewChangeAnswerHandler(authService, log))
			r.Post("/favorite/add", handlers.NewAddFavoriteHandler(favService, log))
			r.Post("/favorite/remove", handlers.NewRemoveFavoriteHandler(favService, log))
		})

		r.Get("/profile", handlers.NewProfileHandler(authService, log))
		r.Post("/logout", handlers.NewLogoutHandler())
		r.Post("/check_user", handlers.NewCheckUserHandler(authService, log))
		r.Get("/get_security_question", handlers.NewSecurityQuestionHandler(authService, log))
		r.Post("/verify_security_answer", handlers.NewVerifyAnswerHandler(authService, log))

		r.Get("/metro/lines", handlers.NewMetroLinesHandler(geoService, log))
		r.Get("/metro/stations", handlers.NewMetroStationsHandler(geoService, log))
		r.Get("/poi", handlers.NewPOIHandler(geoService, log))
		r.Get("/poi/nearby", handlers.NewNearbyPOIHandler(geoService, log))

		r.Get("/favorite/list", handlers.NewListFavoritesHandler(favService, log))
		r.Get("/favorite/check", handlers.NewCheckFavoriteHandler(favService, log))

		r.Post("/cache/warm", handlers.NewWarmCacheHandler(geoService, log))
		r.Post("/cache/clear", handlers.NewClearCacheHandler(geoService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Preload geo payloads so the first map render does not pay the
	// query cost.
	go func() {
		results, err := geoService.Warm(ctx)
		if err != nil {
			log.Errorw("startup cache warm failed", "error", err)
			return
		}
		log.Infow("startup cache warm completed", "results", results)
	}()

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

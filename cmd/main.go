package main

import (
	"context"
	"errors"
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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/dev-connect/docs"
	"github.com/sbilibin2017/dev-connect/internal/handlers"
	"github.com/sbilibin2017/dev-connect/internal/jwt"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/metrics"
	"github.com/sbilibin2017/dev-connect/internal/middlewares"
	"github.com/sbilibin2017/dev-connect/internal/repositories"
	"github.com/sbilibin2017/dev-connect/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Supported values of STORAGE_DRIVER.
const (
	driverPostgres = "postgres"
	driverMongo    = "mongo"
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	StorageDriver string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	MongoURI string
	MongoDB  string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
	CookieSecure bool

	FeedPageSize int

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

// @title dev-connect API
// @version 1.0.0
// @description Developer networking service: accounts, profiles, connection requests and feed
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration. JWT_SECRET_KEY has no default.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	cfg.StorageDriver = getEnv("STORAGE_DRIVER", driverPostgres)
	if cfg.StorageDriver != driverPostgres && cfg.StorageDriver != driverMongo {
		err = fmt.Errorf("STORAGE_DRIVER: unsupported driver %q", cfg.StorageDriver)
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// MongoDB config
	cfg.MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.MongoDB = getEnv("MONGO_DB", "devconnect")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config, empty brokers disables event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "connection-events")

	// JWT and session cookie config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTSecretKey == "" {
		err = errors.New("JWT_SECRET_KEY is required")
		return
	}
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		err = fmt.Errorf("COOKIE_SECURE: %w", err)
		return
	}

	if cfg.FeedPageSize, err = getInt("FEED_PAGE_SIZE", "10"); err != nil {
		return
	}

	// Auth rate limit config
	if cfg.AuthRateLimitRPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64); err != nil {
		err = fmt.Errorf("AUTH_RATE_LIMIT_RPS: %w", err)
		return
	}
	if cfg.AuthRateLimitBurst, err = getInt("AUTH_RATE_LIMIT_BURST", "10"); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open the configured storage backend
	var (
		store *storage
		err   error
	)
	switch cfg.StorageDriver {
	case driverMongo:
		store, err = openMongo(ctx, cfg)
	default:
		store, err = openPostgres(ctx, cfg)
	}
	if err != nil {
		return err
	}
	defer store.close()

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}

	// Kafka writer for connection events
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = writer
		logger.Log.Infow("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	revocations := repositories.NewTokenRevocationRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(store.userReader, store.userWriter, tokens, revocations)
	profileService := services.NewProfileService(store.userReader, store.userWriter)
	connectionService := services.NewConnectionService(store.userReader, store.requestReader, store.requestWriter, events)
	feedService := services.NewFeedService(store.userLister, store.requestReader, cfg.FeedPageSize)

	// Initialize handlers
	cookie := handlers.CookieConfig{Secure: cfg.CookieSecure, MaxAge: tokens.Expiration()}
	signupHandler := handlers.NewSignupHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, cookie)
	logoutHandler := handlers.NewLogoutHandler(authService, tokens, cookie)
	profileViewHandler := handlers.NewProfileViewHandler(profileService)
	profileEditHandler := handlers.NewProfileEditHandler(profileService)
	passwordChangeHandler := handlers.NewPasswordChangeHandler(profileService)
	sendRequestHandler := handlers.NewSendRequestHandler(connectionService)
	reviewRequestHandler := handlers.NewReviewRequestHandler(connectionService)
	receivedHandler := handlers.NewReceivedRequestsHandler(feedService)
	connectionsHandler := handlers.NewConnectionsHandler(feedService)
	feedHandler := handlers.NewFeedHandler(feedService)

	limiter := middlewares.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	limiter.StartCleanup(ctx, time.Minute, 5*time.Minute)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.InstrumentHandler)

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Post("/signup", signupHandler)
		r.Post("/login", loginHandler)
		r.Post("/logout", logoutHandler)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, revocations))

		r.Get("/profile/view", profileViewHandler)
		r.Patch("/profile/edit", profileEditHandler)
		r.Patch("/profile/edit/password", passwordChangeHandler)

		r.With(store.txMiddleware).Post("/request/send/{status}/{toUserId}", sendRequestHandler)
		r.With(store.txMiddleware).Post("/request/review/{status}/{requestId}", reviewRequestHandler)

		r.Get("/user/request/received", receivedHandler)
		r.Get("/user/connections", connectionsHandler)
		r.Get("/user/feed", feedHandler)
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

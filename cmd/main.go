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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/bloodaid/blood-donation-backend/internal/handlers"
	"github.com/bloodaid/blood-donation-backend/internal/jwt"
	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/middlewares"
	"github.com/bloodaid/blood-donation-backend/internal/repositories"
	"github.com/bloodaid/blood-donation-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every runtime setting parsed from the environment.
type config struct {
	appHost          string
	appPort          string
	logLevel         string
	protectMutations bool

	postgresDSN  string
	maxOpenConns int
	maxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	resetCodeTTL      time.Duration

	kafkaBroker string
	kafkaTopic  string

	jwtSecretKey string
	jwtExp       time.Duration
}

// @title blood-donation-backend API
// @version 1.0.0
// @description CRUD backend for blood donors and hospitals: registration, login, profile management and a manual password-reset flow
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// full application config. The database DSN and the JWT signing key are
// mandatory: there is no fallback value for either, and startup fails
// without them.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{
		appHost:       getEnv("APP_HOST", "localhost"),
		appPort:       getEnv("APP_PORT", "8080"),
		logLevel:      getEnv("APP_LOG_LEVEL", "info"),
		postgresDSN:   getEnv("POSTGRES_DSN", ""),
		redisHost:     getEnv("REDIS_HOST", "localhost"),
		redisPassword: getEnv("REDIS_PASSWORD", ""),
		kafkaBroker:   getEnv("KAFKA_BROKER", ""),
		kafkaTopic:    getEnv("KAFKA_TOPIC", "account-events"),
		jwtSecretKey:  getEnv("JWT_SECRET_KEY", ""),
	}

	if cfg.postgresDSN == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if cfg.jwtSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}

	var err error
	if cfg.protectMutations, err = strconv.ParseBool(getEnv("APP_PROTECT_MUTATIONS", "false")); err != nil {
		return nil, err
	}
	if cfg.maxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.maxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return nil, err
	}

	resetCodeTTLSecond, err := strconv.Atoi(getEnv("RESET_CODE_TTL_SECOND", "900"))
	if err != nil {
		return nil, err
	}
	cfg.resetCodeTTL = time.Duration(resetCodeTTLSecond) * time.Second

	jwtExpSecond, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400"))
	if err != nil {
		return nil, err
	}
	cfg.jwtExp = time.Duration(jwtExpSecond) * time.Second

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.postgresDSN)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.maxOpenConns)
	db.SetMaxIdleConns(cfg.maxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	if err := repositories.Migrate(ctx, db); err != nil {
		logger.Log.Errorw("schema migration failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer is optional; without a broker, account events are
	// simply not published.
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", cfg.kafkaTopic)
	}

	// Initialize token service
	tokenService := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(cfg.jwtExp),
	)

	// Initialize repositories
	donorReadRepo := repositories.NewDonorReadRepository(db)
	donorWriteRepo := repositories.NewDonorWriteRepository(db)
	hospitalReadRepo := repositories.NewHospitalReadRepository(db)
	hospitalWriteRepo := repositories.NewHospitalWriteRepository(db)
	resetCodeRepo := repositories.NewResetCodeRepository(rdb, cfg.resetCodeTTL)

	// Initialize services
	hasher := services.NewPasswordHasher()
	events := services.NewEventPublisher(kafkaWriter)
	donorService := services.NewDonorService(donorReadRepo, donorWriteRepo, resetCodeRepo, hasher, tokenService, events)
	hospitalService := services.NewHospitalService(hospitalReadRepo, hospitalWriteRepo, hasher, tokenService, events)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(15 * time.Second))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokenService)
	maybeProtected := func(next http.HandlerFunc) http.HandlerFunc {
		if !cfg.protectMutations {
			return next
		}
		return authMiddleware(next).ServeHTTP
	}

	// Donor routes
	r.Post("/register", handlers.NewDonorRegisterHandler(donorService))
	r.Post("/verify-email", handlers.NewVerifyEmailHandler(donorService))
	r.Post("/login", handlers.NewDonorLoginHandler(donorService))
	r.Post("/request-password-reset", handlers.NewRequestPasswordResetHandler(donorService))
	r.Post("/reset-password", handlers.NewResetPasswordHandler(donorService))
	r.Get("/users", handlers.NewDonorListHandler(donorService))
	r.Get("/users/{id}", handlers.NewDonorGetHandler(donorService))
	r.Put("/users/{id}", maybeProtected(handlers.NewDonorUpdateHandler(donorService)))
	r.Delete("/users/{id}", maybeProtected(handlers.NewDonorDeleteHandler(donorService)))

	// Hospital routes
	r.Post("/hospitals/auth/register", handlers.NewHospitalRegisterHandler(hospitalService))
	r.Post("/hospitals/auth/login", handlers.NewHospitalLoginHandler(hospitalService))
	r.Get("/hospitals", handlers.NewHospitalListHandler(hospitalService))
	r.Get("/hospitals/{id}", handlers.NewHospitalGetHandler(hospitalService))
	r.Put("/hospitals/{id}", maybeProtected(handlers.NewHospitalUpdateHandler(hospitalService)))
	r.Delete("/hospitals/{id}", maybeProtected(handlers.NewHospitalDeleteHandler(hospitalService)))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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

package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	petHTTP "pawhaven/internal/pet/delivery/http"
	petDomain "pawhaven/internal/pet/domain"
	petRepository "pawhaven/internal/pet/repository"
	"pawhaven/internal/pet/usecase/command"
	"pawhaven/internal/storage"
	userHTTP "pawhaven/internal/user/delivery/http"
	userDomain "pawhaven/internal/user/domain"
	userRepository "pawhaven/internal/user/repository"
	"pawhaven/kafka"
	"pawhaven/pkg/database"
	"pawhaven/pkg/logger"
	"pawhaven/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "pawhaven-api")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting pawhaven API")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "pawhavendb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&userDomain.User{}, &petDomain.Pet{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis backs the liked sets and session revocation
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
	})

	// Repositories
	var petRepo petDomain.PetRepository = petRepository.NewGormPetRepository(db)
	if getEnv("TRACE_REPOSITORY", "false") == "true" {
		petRepo = petRepository.NewGormPetRepositoryWithTracing(db)
	}
	userRepo := userRepository.NewGormUserRepository(db)
	likedStore := petRepository.NewRedisLikedStore(redisClient)
	sessionStore := userRepository.NewRedisSessionStore(redisClient)

	// Image storage: S3 when configured, in-memory otherwise
	var objectStore storage.ObjectStore
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		s3Store, err := storage.NewS3Store(
			context.Background(),
			bucket,
			getEnv("AWS_REGION", "us-east-1"),
			os.Getenv("S3_PUBLIC_BASE_URL"),
		)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize S3 storage")
		}
		objectStore = s3Store
		logger.Logger.Info().Str("bucket", bucket).Msg("Using S3 image storage")
	} else {
		objectStore = storage.NewMemoryStore()
		logger.Logger.Warn().Msg("S3_BUCKET not set, using in-memory image storage")
	}

	// Kafka publisher is optional; adoptions still commit without it
	var publisher command.EventPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaPublisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		}
	}

	// Initialize handlers
	shareBaseURL := getEnv("SHARE_BASE_URL", "http://localhost:3000")
	petHandler := petHTTP.NewPetHandler(petRepo, likedStore, objectStore, publisher, sessionStore, shareBaseURL)
	userHandler := userHTTP.NewUserHandler(userRepo, sessionStore)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(petHandler, userHandler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(petHandler *petHTTP.PetHandler, userHandler *userHTTP.UserHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Logging first, then tracing
	router.Use(petHTTP.LoggingMiddleware)
	router.Use(func(next http.Handler) http.Handler {
		return petHTTP.TracingMiddleware("http-request", next)
	})

	// Register routes
	userHandler.RegisterRoutes(router)
	petHandler.RegisterRoutes(router)

	// Health check endpoint
	petHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	userHTTP.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

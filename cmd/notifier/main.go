package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pawhaven/kafka"
	"pawhaven/pkg/logger"
	"pawhaven/pkg/tracing"
)

// The notifier consumes adoption events and records them. A real deployment
// would fan out emails or push notifications from here.
func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "pawhaven-notifier")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting pawhaven notifier")

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

	// Adoption counter
	adoptionsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifier_adoptions_total",
		Help: "Total number of adoption events processed",
	})
	prometheus.MustRegister(adoptionsTotal)

	// Kafka consumer
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "pawhaven-notifier")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicPetAdopted})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypePetAdopted, func(ctx context.Context, event kafka.PetAdoptedEvent) error {
		adoptionsTotal.Inc()
		logger.Info(ctx).
			Str("event_id", event.EventID).
			Str("pet_id", event.PetID).
			Str("pet_name", event.PetName).
			Str("owner_id", event.OwnerID).
			Str("adopter_id", event.AdopterID).
			Msg("Pet adopted")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	// Metrics endpoint
	httpPort := getEnv("HTTP_PORT", "8081")
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		logger.Logger.Info().
			Str("port", httpPort).
			Msg("Metrics server started")

		if err := http.ListenAndServe(":"+httpPort, mux); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-dhl-labelflow/internal/aws"
	"github.com/imrishuroy/go-dhl-labelflow/internal/config"
	"github.com/imrishuroy/go-dhl-labelflow/internal/handlers"
	"github.com/imrishuroy/go-dhl-labelflow/internal/logging"
	"github.com/imrishuroy/go-dhl-labelflow/internal/metrics"
)

const serviceName = "label-api"

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cfg.Metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", cfg.Metrics.Endpoint())

	handlers.RegisterLabelRoutes(r, cfg)
	handlers.RegisterCustomsRoutes(r, cfg)

	return r
}

func main() {
	env := config.FromEnv()
	logger := logging.New(logging.Config{
		Level:       env.LogLevel,
		ServiceName: serviceName,
		Environment: env.Environment,
		Version:     env.Version,
	})
	slog.SetDefault(logger)

	settings, err := config.Load(env.SettingsFile)
	if err != nil {
		logger.Error("failed to load settings", "error", err, "path", env.SettingsFile)
		os.Exit(1)
	}

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		logger.Error("failed to init aws clients", "error", err)
		os.Exit(1)
	}

	cfg := handlers.HandlerConfig{
		DynamoDBClient:   clients.DynamoDB,
		SQSClient:        clients.SQS,
		IdempotencyTable: env.IdempotencyTable,
		QueueURL:         env.QueueURL,
		TTLWindow:        48 * time.Hour,
		Validator:        settings.Validator(),
		Settings:         settings,
		Region:           settings.Region(),
		Metrics:          metrics.New(serviceName, env.MetricsNamespace),
		Logger:           logger,
	}

	r := setupRouter(cfg)

	// RUN_LOCAL=true serves plain HTTP for development.
	if env.RunLocal {
		logger.Info("running local server", "addr", env.HTTPAddr, "base_country", settings.BaseCountry)
		if err := r.Run(env.HTTPAddr); err != nil {
			logger.Error("failed to run local server", "error", err)
			os.Exit(1)
		}
		return
	}

	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

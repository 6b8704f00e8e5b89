package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/imrishuroy/go-dhl-labelflow/internal/aws"
	"github.com/imrishuroy/go-dhl-labelflow/internal/config"
	"github.com/imrishuroy/go-dhl-labelflow/internal/idempotency"
	"github.com/imrishuroy/go-dhl-labelflow/internal/logging"
)

// ttlWindow is how long idempotency records are kept.
const ttlWindow = 48 * time.Hour

func main() {
	env := config.FromEnv()
	logger := logging.New(logging.Config{
		Level:       env.LogLevel,
		ServiceName: "label-worker",
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

	p := NewProcessor(ProcessorConfig{
		Validator:  settings.Validator(),
		Settings:   settings,
		Region:     settings.Region(),
		IdempStore: idempotency.NewStore(clients.DynamoDB, env.IdempotencyTable, ttlWindow),
		Emitter:    aws.NewMetricEmitter(clients.CloudWatch, env.MetricsNamespace),
		Logger:     logger,
	})

	// RUN_LOCAL=true processes a single message from LOCAL_SQS_BODY.
	if env.RunLocal {
		body := os.Getenv("LOCAL_SQS_BODY")
		if body == "" {
			logger.Error("LOCAL_SQS_BODY is empty")
			os.Exit(1)
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{{MessageId: "local-1", Body: body}},
		}
		if err := p.Handle(context.Background(), event); err != nil {
			logger.Error("local handler error", "error", err)
			os.Exit(1)
		}
		return
	}

	lambda.Start(p.Handle)
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-dhl-labelflow/internal/aws"
	"github.com/imrishuroy/go-dhl-labelflow/internal/labels"
	"github.com/imrishuroy/go-dhl-labelflow/internal/logging"
	"github.com/imrishuroy/go-dhl-labelflow/internal/metrics"
	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
)

// HandlerConfig groups dependencies for the label and customs handlers.
type HandlerConfig struct {
	DynamoDBClient   aws.DynamoDBAPI
	SQSClient        aws.SQSAPI
	IdempotencyTable string
	QueueURL         string
	TTLWindow        time.Duration

	Validator *labels.Validator
	Settings  labels.Settings
	Region    region.Region
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

func (cfg HandlerConfig) logger() *slog.Logger {
	if cfg.Logger == nil {
		return logging.Discard()
	}
	return cfg.Logger
}

// requestError maps structural validation failures onto a 400 body.
// It reports false for anything else.
func requestError(c *gin.Context, err error) bool {
	var code string
	switch {
	case errors.Is(err, labels.ErrMissingOrder):
		code = "missing_order"
	case errors.Is(err, labels.ErrMissingShipment):
		code = "missing_shipment"
	case errors.Is(err, labels.ErrUnknownKind):
		code = "unknown_kind"
	default:
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": code, "msg": err.Error()})
	return true
}

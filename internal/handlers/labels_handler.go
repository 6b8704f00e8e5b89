package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/imrishuroy/go-dhl-labelflow/internal/aws"
	"github.com/imrishuroy/go-dhl-labelflow/internal/idempotency"
	"github.com/imrishuroy/go-dhl-labelflow/internal/labels"
	"github.com/imrishuroy/go-dhl-labelflow/internal/validation"
)

type labelsHandler struct {
	cfg        HandlerConfig
	log        *slog.Logger
	idempStore *idempotency.Store
	publisher  *aws.Publisher
}

// RegisterLabelRoutes registers the label validation and label request routes.
func RegisterLabelRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	h := &labelsHandler{
		cfg:        cfg,
		log:        cfg.logger(),
		idempStore: idempotency.NewStore(cfg.DynamoDBClient, cfg.IdempotencyTable, cfg.TTLWindow),
		publisher:  aws.NewPublisher(cfg.SQSClient, cfg.QueueURL),
	}

	r.POST("/labels/validate", func(c *gin.Context) {
		var req validation.LabelRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		res, kind, ok := h.validate(c, req)
		if !ok {
			return
		}
		if !res.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "kind": kind, "errors": res.Errors})
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": true, "kind": kind, "arguments": res.Arguments})
	})

	r.POST("/labels", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.LabelRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing_idempotency_key"})
			return
		}

		res, kind, ok := h.validate(c, req)
		if !ok {
			return
		}
		if !res.Valid() {
			h.cfg.Metrics.RecordLabelRequest("rejected")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "kind": kind, "errors": res.Errors})
			return
		}

		requestID := uuid.NewString()
		created, err := h.idempStore.CreateIfNotExists(ctx, idempotency.Entry{
			Key:        idempKey,
			RequestID:  requestID,
			ShipmentID: req.Shipment.ID,
			Kind:       string(kind),
		})
		if err != nil {
			h.log.Error("idempotency create failed", "error", err, "idempotency_key", idempKey)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "idempotency_check_failed", "detail": err.Error()})
			return
		}
		if !created {
			h.replay(c, idempKey)
			return
		}

		shipmentJSON, err := json.Marshal(req.Shipment)
		if err != nil {
			h.fail(c, idempKey, "encode_failed", err)
			return
		}
		msg := aws.LabelRequestMessage{
			RequestID:      requestID,
			IdempotencyKey: idempKey,
			Kind:           string(kind),
			Shipment:       shipmentJSON,
			Args:           res.Arguments.Map(),
			Interactive:    req.Interactive,
			CorrelationID:  c.GetHeader("X-Request-Id"),
		}
		if err := h.publisher.SendLabelRequest(ctx, msg); err != nil {
			h.fail(c, idempKey, "enqueue_failed", err)
			return
		}

		h.cfg.Metrics.RecordLabelRequest("accepted")
		h.log.Info("label request accepted",
			"request_id", requestID,
			"shipment_id", req.Shipment.ID,
			"kind", kind,
		)
		c.Header("Location", fmt.Sprintf("/labels/%s", requestID))
		c.JSON(http.StatusAccepted, gin.H{"request_id": requestID, "status": idempotency.StatusInProgress})
	})
}

// validate resolves kind and defaults and runs the label validator. It
// writes the response and reports false on structural failures.
func (h *labelsHandler) validate(c *gin.Context, req validation.LabelRequest) (labels.Result, labels.Kind, bool) {
	var defaults labels.Args
	if req.Defaults != nil {
		defaults = labels.Args(req.Defaults)
	}

	lreq, err := h.cfg.Validator.NewRequest(req.Kind, req.Shipment, labels.Args(req.Args), defaults, req.Interactive)
	if err == nil {
		var res labels.Result
		res, err = h.cfg.Validator.ValidateRequest(lreq)
		if err == nil {
			h.cfg.Metrics.RecordValidation(string(lreq.Kind), res.Errors.Codes())
			if !res.Valid() {
				h.log.Warn("label arguments invalid",
					"shipment_id", req.Shipment.ID,
					"kind", lreq.Kind,
					"errors", res.Errors.String(),
				)
			}
			return res, lreq.Kind, true
		}
	}

	if !requestError(c, err) {
		h.log.Error("label validation failed", "error", err, "shipment_id", req.Shipment.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "validation_error", "detail": err.Error()})
	}
	return labels.Result{}, "", false
}

// replay answers a duplicate Idempotency-Key with the stored outcome.
func (h *labelsHandler) replay(c *gin.Context, key string) {
	rec, err := h.idempStore.Get(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "idempotency_check_failed", "detail": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "idempotency_record_missing"})
		return
	}

	h.cfg.Metrics.RecordLabelRequest("duplicate")
	switch rec.Status {
	case idempotency.StatusDone:
		if rec.ResponseBody != "" && json.Valid([]byte(rec.ResponseBody)) {
			c.Data(rec.ResponseStatus, "application/json", []byte(rec.ResponseBody))
			return
		}
		c.JSON(http.StatusOK, gin.H{"request_id": rec.RequestID, "status": rec.Status})
	case idempotency.StatusInProgress:
		c.JSON(http.StatusAccepted, gin.H{"message": "request already in progress", "request_id": rec.RequestID, "status": rec.Status})
	case idempotency.StatusFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "previous_attempt_failed", "request_id": rec.RequestID, "note": rec.Note})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unknown_idempotency_status"})
	}
}

// fail marks the claimed key FAILED so the client can retry with a new key.
func (h *labelsHandler) fail(c *gin.Context, key, code string, err error) {
	if merr := h.idempStore.MarkFailed(c.Request.Context(), key, fmt.Sprintf("%s: %v", code, err)); merr != nil {
		h.log.Error("idempotency mark failed", "error", merr, "idempotency_key", key)
	}
	h.cfg.Metrics.RecordLabelRequest("failed")
	h.log.Error("label request failed", "error", err, "idempotency_key", key, "code", code)
	c.JSON(http.StatusInternalServerError, gin.H{"error": code, "detail": err.Error()})
}

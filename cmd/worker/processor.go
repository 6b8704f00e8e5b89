package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/imrishuroy/go-dhl-labelflow/internal/aws"
	"github.com/imrishuroy/go-dhl-labelflow/internal/customs"
	"github.com/imrishuroy/go-dhl-labelflow/internal/idempotency"
	"github.com/imrishuroy/go-dhl-labelflow/internal/labels"
	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// errPermanent marks failures a retry cannot fix. The record is set to
// FAILED and the message is acknowledged.
var errPermanent = errors.New("permanent failure")

// ProcessorConfig groups the worker's dependencies.
type ProcessorConfig struct {
	Validator  *labels.Validator
	Settings   labels.Settings
	Region     region.Region
	IdempStore *idempotency.Store
	Emitter    *aws.MetricEmitter
	Logger     *slog.Logger
}

// Processor handles SQS messages carrying label requests.
type Processor struct {
	cfg ProcessorConfig
	log *slog.Logger
}

// NewProcessor creates a new worker processor.
func NewProcessor(cfg ProcessorConfig) *Processor {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Processor{cfg: cfg, log: log}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Lambda retries the batch; repeated failures land in the DLQ.
			p.log.Error("worker error", "error", err, "message_id", rec.MessageId)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg aws.LabelRequestMessage
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	log := p.log.With(
		"request_id", msg.RequestID,
		"idempotency_key", msg.IdempotencyKey,
		"correlation_id", msg.CorrelationID,
	)
	log.Info("received label request", "kind", msg.Kind)

	existing, err := p.cfg.IdempStore.Get(ctx, msg.IdempotencyKey)
	if err != nil {
		return fmt.Errorf("failed to read idempotency record: %w", err)
	}
	if existing == nil {
		// the API claims the key before enqueueing; a missing record has expired
		log.Warn("idempotency record missing, dropping message")
		return nil
	}
	if existing.Status != idempotency.StatusInProgress {
		log.Info("label request already finalized", "status", existing.Status)
		return nil
	}

	summary, err := p.process(msg)
	if errors.Is(err, errPermanent) {
		log.Warn("label request rejected", "error", err)
		p.emit(ctx, log, "LabelRequestsFailed", 1, msg.Kind)
		if merr := p.cfg.IdempStore.MarkFailed(ctx, msg.IdempotencyKey, err.Error()); merr != nil {
			return fmt.Errorf("failed to mark idempotency failed: %w", merr)
		}
		return nil
	}
	if err != nil {
		return err
	}

	if summary.Customs != nil && !summary.Customs.UnresolvedWeightKG.IsZero() {
		log.Warn("customs weight left unresolved",
			"shipment_id", summary.ShipmentID,
			"unresolved_kg", summary.Customs.UnresolvedWeightKG.String(),
		)
		unresolved, _ := summary.Customs.UnresolvedWeightKG.Abs().Float64()
		p.emit(ctx, log, "UnresolvedCustomsWeight", unresolved, summary.Kind)
	}
	p.emit(ctx, log, "LabelRequestsProcessed", 1, summary.Kind)

	body, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := p.cfg.IdempStore.MarkDone(ctx, msg.IdempotencyKey, string(body), http.StatusOK); err != nil {
		return fmt.Errorf("failed to update idempotency: %w", err)
	}

	log.Info("label request completed", "shipment_id", summary.ShipmentID, "product", summary.Product)
	return nil
}

// process re-validates the queued arguments and derives the label summary.
func (p *Processor) process(msg aws.LabelRequestMessage) (Summary, error) {
	var s shipment.Shipment
	if err := json.Unmarshal(msg.Shipment, &s); err != nil {
		return Summary{}, fmt.Errorf("%w: decode shipment: %v", errPermanent, err)
	}

	var defaults labels.Args
	if msg.Defaults != nil {
		defaults = labels.Args(msg.Defaults)
	}
	req, err := p.cfg.Validator.NewRequest(msg.Kind, &s, labels.Args(msg.Args), defaults, msg.Interactive)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", errPermanent, err)
	}
	res, err := p.cfg.Validator.ValidateRequest(req)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", errPermanent, err)
	}
	if !res.Valid() {
		return Summary{}, fmt.Errorf("%w: %s", errPermanent, res.Errors.String())
	}

	args := res.Arguments
	summary := Summary{
		RequestID:    msg.RequestID,
		ShipmentID:   s.ID,
		Kind:         string(req.Kind),
		Status:       idempotency.StatusDone,
		Reference:    reference(req.Kind, &s),
		StreetNumber: labels.StreetNumber(p.cfg.Region, s.Address.StreetNumber, s.Country()),
		Product:      args.Product,
		Services:     args.Services.Strings(),
	}

	if needsCustoms(req.Kind) && p.cfg.Region.IsCrossBorder(s.Country()) {
		net := args.NetWeight
		if net.IsZero() {
			net = labels.ShipmentWeight(&s, p.cfg.Settings, true)
		}
		decl, err := customs.BuildDeclaration(&s, net, p.cfg.Region.BaseCountry())
		if err != nil {
			return Summary{}, fmt.Errorf("%w: customs: %v", errPermanent, err)
		}
		summary.Customs = &decl
	}

	return summary, nil
}

func (p *Processor) emit(ctx context.Context, log *slog.Logger, name string, value float64, kind string) {
	if kind == "" {
		kind = "unknown"
	}
	err := p.cfg.Emitter.Emit(ctx, aws.Datum{
		Name:       name,
		Value:      value,
		Dimensions: map[string]string{"Kind": kind},
	})
	if err != nil {
		log.Error("failed to emit metric", "error", err, "metric", name)
	}
}

func reference(kind labels.Kind, s *shipment.Shipment) string {
	switch kind {
	case labels.KindReturn, labels.KindDeutschePostReturn:
		return labels.ReturnCustomerReference(s)
	case labels.KindInlayReturn:
		return labels.InlayReturnReference(s)
	default:
		return labels.CustomerReference(s)
	}
}

func needsCustoms(kind labels.Kind) bool {
	return kind == labels.KindSimple || kind == labels.KindDeutschePost
}

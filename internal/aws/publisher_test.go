package aws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type mockSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (m *mockSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.inputs = append(m.inputs, in)
	return &sqs.SendMessageOutput{}, nil
}

type mockCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
}

func (m *mockCloudWatch) PutMetricData(ctx context.Context, in *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	m.inputs = append(m.inputs, in)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestSendLabelRequest(t *testing.T) {
	mock := &mockSQS{}
	p := NewPublisher(mock, "https://sqs.local/labels")

	msg := LabelRequestMessage{
		RequestID:      "r-1",
		IdempotencyKey: "k-1",
		Kind:           "simple",
		Shipment:       json.RawMessage(`{"id":"7"}`),
		Args:           map[string]any{"dhl_product": "V01PAK"},
	}
	if err := p.SendLabelRequest(context.Background(), msg); err != nil {
		t.Fatalf("SendLabelRequest error: %v", err)
	}
	if len(mock.inputs) != 1 {
		t.Fatalf("expected one message, got %d", len(mock.inputs))
	}

	in := mock.inputs[0]
	if *in.QueueUrl != "https://sqs.local/labels" {
		t.Fatalf("queue url mismatch: %s", *in.QueueUrl)
	}
	var got LabelRequestMessage
	if err := json.Unmarshal([]byte(*in.MessageBody), &got); err != nil {
		t.Fatalf("body is not json: %v", err)
	}
	if got.RequestID != "r-1" || got.Kind != "simple" || string(got.Shipment) != `{"id":"7"}` {
		t.Fatalf("unexpected body: %+v", got)
	}
	if v := in.MessageAttributes["kind"].StringValue; v == nil || *v != "simple" {
		t.Fatalf("kind attribute missing: %+v", in.MessageAttributes)
	}
	if _, ok := in.MessageAttributes["correlation_id"]; ok {
		t.Fatalf("empty attributes must be skipped")
	}
}

func TestSendLabelRequest_Error(t *testing.T) {
	p := NewPublisher(&mockSQS{err: errors.New("throttled")}, "q")
	err := p.SendLabelRequest(context.Background(), LabelRequestMessage{RequestID: "r"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestMetricEmitter_Emit(t *testing.T) {
	mock := &mockCloudWatch{}
	e := NewMetricEmitter(mock, "LabelFlow")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e.nowFunc = func() time.Time { return fixed }

	err := e.Emit(context.Background(),
		Datum{Name: "LabelsValidated", Value: 1, Dimensions: map[string]string{"Kind": "simple"}},
		Datum{Name: "UnresolvedWeight", Value: 0.02, Unit: cwtypes.StandardUnitNone},
	)
	if err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	if len(mock.inputs) != 1 {
		t.Fatalf("expected one PutMetricData call, got %d", len(mock.inputs))
	}

	in := mock.inputs[0]
	if *in.Namespace != "LabelFlow" || len(in.MetricData) != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}
	first := in.MetricData[0]
	if first.Unit != cwtypes.StandardUnitCount {
		t.Fatalf("expected default unit Count, got %s", first.Unit)
	}
	if len(first.Dimensions) != 1 || *first.Dimensions[0].Value != "simple" {
		t.Fatalf("dimensions mismatch: %+v", first.Dimensions)
	}
	if !first.Timestamp.Equal(fixed) {
		t.Fatalf("timestamp mismatch: %v", first.Timestamp)
	}
}

func TestMetricEmitter_NilClientIsNoop(t *testing.T) {
	var e *MetricEmitter
	if err := e.Emit(context.Background(), Datum{Name: "x"}); err != nil {
		t.Fatalf("nil emitter should be a no-op: %v", err)
	}
	if err := NewMetricEmitter(nil, "ns").Emit(context.Background(), Datum{Name: "x"}); err != nil {
		t.Fatalf("nil client should be a no-op: %v", err)
	}
}

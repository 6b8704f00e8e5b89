package handlers

import (
	"context"
	"errors"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// mockDynamo keeps idempotency items keyed by idempotency_key.
type mockDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (m *mockDynamo) PutItem(ctx context.Context, in *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(in.Item["idempotency_key"])
	if _, ok := m.items[k]; ok && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{}
	}
	m.items[k] = in.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, in *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &dyn.GetItemOutput{Item: m.items[keyOf(in.Key["idempotency_key"])]}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, in *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[keyOf(in.Key["idempotency_key"])]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if v, ok := in.ExpressionAttributeValues[":failed"]; ok {
		item["status"] = v
	}
	if v, ok := in.ExpressionAttributeValues[":done"]; ok {
		item["status"] = v
	}
	if v, ok := in.ExpressionAttributeValues[":n"]; ok {
		item["note"] = v
	}
	if v, ok := in.ExpressionAttributeValues[":rb"]; ok {
		item["response_body"] = v
	}
	if v, ok := in.ExpressionAttributeValues[":rs"]; ok {
		item["response_status"] = v
	}
	return &dyn.UpdateItemOutput{}, nil
}

func (m *mockDynamo) status(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return keyOf(m.items[key]["status"])
}

type mockSQS struct {
	mu     sync.Mutex
	bodies []string
	fail   bool
}

func (m *mockSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errors.New("queue unavailable")
	}
	m.bodies = append(m.bodies, *in.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

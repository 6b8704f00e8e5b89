package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Datum is a single CloudWatch data point.
type Datum struct {
	Name       string
	Value      float64
	Unit       cwtypes.StandardUnit
	Dimensions map[string]string
}

// MetricEmitter publishes worker metrics to CloudWatch.
type MetricEmitter struct {
	CloudWatch CloudWatchAPI
	Namespace  string
	nowFunc    func() time.Time
}

// NewMetricEmitter returns an emitter writing into namespace.
func NewMetricEmitter(client CloudWatchAPI, namespace string) *MetricEmitter {
	return &MetricEmitter{
		CloudWatch: client,
		Namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// Emit sends data in one PutMetricData call. A nil client is a no-op.
func (e *MetricEmitter) Emit(ctx context.Context, data ...Datum) error {
	if e == nil || e.CloudWatch == nil || len(data) == 0 {
		return nil
	}

	now := e.nowFunc()
	metricData := make([]cwtypes.MetricDatum, 0, len(data))
	for _, d := range data {
		unit := d.Unit
		if unit == "" {
			unit = cwtypes.StandardUnitCount
		}
		datum := cwtypes.MetricDatum{
			MetricName: awsString(d.Name),
			Value:      float64Ptr(d.Value),
			Unit:       unit,
			Timestamp:  &now,
		}
		for k, v := range d.Dimensions {
			datum.Dimensions = append(datum.Dimensions, cwtypes.Dimension{
				Name:  awsString(k),
				Value: awsString(v),
			})
		}
		metricData = append(metricData, datum)
	}

	_, err := e.CloudWatch.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  awsString(e.Namespace),
		MetricData: metricData,
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

func float64Ptr(f float64) *float64 { return &f }

package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Outcome labels for customer operations
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeNotFound   = "not_found"
	OutcomeConflict   = "conflict"
	OutcomeError      = "error"
)

// CustomerMetrics records the count and latency of customer service operations.
type CustomerMetrics struct {
	operationsTotal   Counter
	operationDuration Timer
}

// NewCustomerMetrics creates the customer operation instruments on meter.
func NewCustomerMetrics(meter metric.Meter) (*CustomerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	operationsTotal, err := NewCounter(
		meter,
		"customer_operations_total",
		"Total number of customer operations by outcome",
		"{operations}",
	)
	if err != nil {
		return nil, err
	}

	operationDuration, err := NewTimer(meter,
		"customer_operation_duration_seconds",
		"Customer operation latency distribution in seconds",
		ServiceDurationBuckets,
	)
	if err != nil {
		return nil, err
	}

	return &CustomerMetrics{
		operationsTotal:   operationsTotal,
		operationDuration: operationDuration,
	}, nil
}

// RecordOperation records one finished operation. A nil receiver is a no-op.
func (m *CustomerMetrics) RecordOperation(ctx context.Context, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.operationsTotal.Inc(ctx,
		AttrOperation.String(operation),
		AttrOutcome.String(outcome),
	)
	m.operationDuration.Observe(ctx, elapsed,
		AttrOperation.String(operation),
	)
}

// ErrMeterNil is returned by NewCustomerMetrics when meter is nil
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

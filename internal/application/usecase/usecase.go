package usecase

import (
	"context"
	"time"

	"github.com/DioGolang/GoCheckout/pkg/metrics"
	tracing "github.com/DioGolang/GoCheckout/pkg/otel"
)

type UseCase[I, O any] interface {
	Execute(ctx context.Context, input I) (O, error)
}

type metricsDecorator[I, O any] struct {
	name    string
	next    UseCase[I, O]
	metrics metrics.Metrics
}

// WithMetrics records the duration and outcome of every execution of next
// under name.
func WithMetrics[I, O any](name string, m metrics.Metrics, next UseCase[I, O]) UseCase[I, O] {
	return &metricsDecorator[I, O]{name: name, next: next, metrics: m}
}

func (d *metricsDecorator[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := d.next.Execute(ctx, input)
	d.metrics.RecordUseCaseExecution(d.name, err == nil, time.Since(start))
	return output, err
}

type tracingDecorator[I, O any] struct {
	name string
	next UseCase[I, O]
}

// WithTracing wraps every execution of next in a span named after the use
// case.
func WithTracing[I, O any](name string, next UseCase[I, O]) UseCase[I, O] {
	return &tracingDecorator[I, O]{name: name, next: next}
}

func (d *tracingDecorator[I, O]) Execute(ctx context.Context, input I) (_ O, err error) {
	ctx, span := tracing.StartSpan(ctx, "usecase."+d.name)
	defer func() { tracing.EndSpan(span, err) }()
	return d.next.Execute(ctx, input)
}

// Instrument applies tracing and metrics to next.
func Instrument[I, O any](name string, m metrics.Metrics, next UseCase[I, O]) UseCase[I, O] {
	return WithMetrics(name, m, WithTracing(name, next))
}

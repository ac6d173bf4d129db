package event

import (
	"context"
	"time"

	"github.com/DioGolang/GoCheckout/pkg/events"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
	"github.com/sony/gobreaker"
)

type resilientHandler struct {
	metrics metrics.Metrics
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker
	next    events.EventHandler
}

// WrapResilient bounds every call to next by timeout, runs it through cb and
// records the outcome per event name. Calls rejected by an open breaker are
// recorded as failures.
func WrapResilient(
	m metrics.Metrics,
	timeout time.Duration,
	cb *gobreaker.CircuitBreaker,
	next events.EventHandler,
) events.EventHandler {
	return &resilientHandler{metrics: m, timeout: timeout, cb: cb, next: next}
}

func (h *resilientHandler) Handle(ctx context.Context, event events.Event) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	_, err := h.cb.Execute(func() (interface{}, error) {
		return nil, h.next.Handle(ctx, event)
	})

	h.metrics.RecordEventDispatched(event.GetName(), err == nil)
	return err
}

// NewBreaker returns the breaker settings used for event handlers that talk
// to external systems.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

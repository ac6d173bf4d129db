package event

import (
	"context"
	"math"
	"time"

	"github.com/DioGolang/GoCheckout/pkg/events"
	"github.com/DioGolang/GoCheckout/pkg/logger"
)

type retryHandler struct {
	log         logger.Logger
	handlerName string
	maxRetries  int
	baseWait    time.Duration
	next        events.EventHandler
}

// WrapExponentialBackoff retries next up to maxRetries times, doubling the
// wait after every failure.
func WrapExponentialBackoff(
	log logger.Logger,
	handlerName string,
	maxRetries int,
	baseWait time.Duration,
	next events.EventHandler,
) events.EventHandler {
	return &retryHandler{
		log:         log,
		handlerName: handlerName,
		maxRetries:  maxRetries,
		baseWait:    baseWait,
		next:        next,
	}
}

func (h *retryHandler) Handle(ctx context.Context, event events.Event) error {
	var err error
	for attempt := 0; attempt <= h.maxRetries; attempt++ {
		err = h.next.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if attempt < h.maxRetries {
			wait := h.baseWait * time.Duration(math.Pow(2, float64(attempt)))

			h.log.Warn(ctx, "Transient failure, retrying...",
				logger.String("handler", h.handlerName),
				logger.String("event", event.GetName()),
				logger.Int("attempt", attempt+1),
				logger.String("wait", wait.String()),
				logger.WithError(err),
			)

			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}

	h.log.Error(ctx, "Max retries reached, giving up.",
		logger.String("handler", h.handlerName),
		logger.String("event", event.GetName()),
		logger.WithError(err),
	)
	return err
}

package customer

import (
	"context"

	"github.com/DioGolang/GoCheckout/pkg/events"
	"github.com/DioGolang/GoCheckout/pkg/logger"
)

// LogWhenCustomerCreatedHandler is the first listener of CustomerCreatedEvent.
type LogWhenCustomerCreatedHandler struct {
	Logger logger.Logger
}

func (h *LogWhenCustomerCreatedHandler) Handle(ctx context.Context, event events.Event) error {
	h.Logger.Info(ctx, "first handler of event: CustomerCreated", payloadFields(event)...)
	return nil
}

// LogWhenCustomerCreatedSecondHandler is the second listener of
// CustomerCreatedEvent.
type LogWhenCustomerCreatedSecondHandler struct {
	Logger logger.Logger
}

func (h *LogWhenCustomerCreatedSecondHandler) Handle(ctx context.Context, event events.Event) error {
	h.Logger.Info(ctx, "second handler of event: CustomerCreated", payloadFields(event)...)
	return nil
}

type LogWhenAddressChangedHandler struct {
	Logger logger.Logger
}

func (h *LogWhenAddressChangedHandler) Handle(ctx context.Context, event events.Event) error {
	h.Logger.Info(ctx, "customer address changed", payloadFields(event)...)
	return nil
}

func payloadFields(event events.Event) []logger.Field {
	fields := []logger.Field{logger.String("event", event.GetName())}
	if p, ok := event.GetPayload().(EventPayload); ok {
		fields = append(fields,
			logger.String("customer_id", p.ID),
			logger.String("name", p.Name),
			logger.String("address", p.Address),
		)
	}
	return fields
}

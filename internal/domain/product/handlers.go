package product

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoCheckout/pkg/events"
	"github.com/DioGolang/GoCheckout/pkg/logger"
)

// Mailer delivers a notification to the catalog team.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

type SendEmailWhenProductIsCreatedHandler struct {
	Mailer Mailer
}

func (h *SendEmailWhenProductIsCreatedHandler) Handle(ctx context.Context, event events.Event) error {
	p, ok := event.GetPayload().(CreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.GetPayload(), event.GetName())
	}
	subject := fmt.Sprintf("New product: %s", p.Name)
	body := fmt.Sprintf("%s (%s) is now available for %.2f", p.Name, p.Description, p.Price)
	return h.Mailer.Send(ctx, subject, body)
}

// LogMailer "sends" mail by writing it to the log.
type LogMailer struct {
	Logger logger.Logger
}

func (m *LogMailer) Send(ctx context.Context, subject, body string) error {
	m.Logger.Info(ctx, "sending email",
		logger.String("subject", subject),
		logger.String("body", body),
	)
	return nil
}

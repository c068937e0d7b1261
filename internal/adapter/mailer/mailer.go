package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/gomail.v2"

	domainErrors "github.com/RaffaFachrizal29/belivps/internal/domain/errors"
	"github.com/RaffaFachrizal29/belivps/internal/domain/model"
)

// Mailer delivers order notifications. Delivery is a side channel: it never
// touches order state, and callers decide what a failure means.
type Mailer interface {
	// SendOrderNotice renders and delivers the notification for the order's
	// current status. The simulated flag reports that no real delivery was
	// attempted because SMTP is not configured.
	SendOrderNotice(ctx context.Context, order *model.Order) (simulated bool, err error)
}

// simulatedDelay approximates a round trip to an SMTP relay so the endpoint
// behaves the same with and without delivery configured.
const simulatedDelay = 300 * time.Millisecond

// SMTPMailer sends notifications through an SMTP relay, falling back to
// simulated delivery when no relay host is configured.
type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
	logger *slog.Logger
}

// Config carries SMTP relay settings. An empty Host enables simulation.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// New creates a mailer from relay configuration.
func New(cfg Config, logger *slog.Logger) *SMTPMailer {
	m := &SMTPMailer{from: cfg.From, logger: logger}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// SendOrderNotice implements Mailer.
func (m *SMTPMailer) SendOrderNotice(ctx context.Context, order *model.Order) (bool, error) {
	msg, err := Render(order)
	if err != nil {
		return false, err
	}

	if m.dialer == nil {
		return true, m.simulate(ctx, msg)
	}

	if err := m.deliver(ctx, msg); err != nil {
		m.logger.Error("notification delivery failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return false, fmt.Errorf("%w: %w", domainErrors.ErrDeliveryFailed, err)
	}

	m.logger.Info("notification delivered",
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)),
	)
	return false, nil
}

func (m *SMTPMailer) simulate(ctx context.Context, msg *Message) error {
	m.logger.Info("smtp not configured, simulating delivery",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(simulatedDelay):
		return nil
	}
}

func (m *SMTPMailer) deliver(ctx context.Context, msg *Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	// gomail has no context support, so the send runs in its own goroutine
	// and the caller stops waiting on cancellation.
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(mail)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/RaffaFachrizal29/belivps/internal/config"
)

// Module wires the SMTP mailer for fx.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) Mailer {
	return New(Config{
		Host:     p.Config.SMTPHost,
		Port:     p.Config.SMTPPort,
		Username: p.Config.SMTPUsername,
		Password: p.Config.SMTPPassword,
		From:     p.Config.SMTPFrom,
	}, p.Logger)
}

package mailer

import (
	"go.uber.org/fx"

	"github.com/dmarquina/eventbooking/internal/config"
)

// Module exposes the SMTP sender to the fx graph.
var Module = fx.Provide(newSender)

func newSender(cfg *config.Config) Sender {
	return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
}

// Package mail provides the outbound email transport. The only
// implementation is a console mailer that stands in for a real provider.
package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// ConsoleMailer writes each message to the log instead of sending it.
// Send never fails.
type ConsoleMailer struct {
	log zerolog.Logger
}

func NewConsoleMailer(log zerolog.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: log}
}

func (m *ConsoleMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", htmlBody).
		Msg("email sent (console transport)")
	return nil
}

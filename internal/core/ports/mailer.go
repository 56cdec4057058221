package ports

import "context"

// Mailer delivers a single HTML email. Implementations may simulate the
// provider (the console mailer logs the message instead of sending it).
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

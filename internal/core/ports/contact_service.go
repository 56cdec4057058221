package ports

import "context"

// ContactInput carries an enterprise contact request. Message is optional.
type ContactInput struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Message string
}

type ContactService interface {
	Submit(ctx context.Context, in ContactInput) error
}

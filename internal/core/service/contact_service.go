package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gasixone/crmpro-backend/internal/core/domain"
	"github.com/gasixone/crmpro-backend/internal/core/ports"
)

// ContactService handles enterprise contact requests. Requests are logged,
// not persisted; the store's contacts array stays empty.
type ContactService struct {
	log zerolog.Logger
}

func NewContactService(log zerolog.Logger) *ContactService {
	return &ContactService{log: log}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Company) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return domain.ErrMissingContactFields
	}

	s.log.Info().
		Str("name", in.Name).
		Str("email", in.Email).
		Str("company", in.Company).
		Str("phone", in.Phone).
		Str("message", in.Message).
		Msg("enterprise contact request received")

	return nil
}

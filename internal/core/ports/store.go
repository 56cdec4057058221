package ports

import (
	"context"

	"github.com/gasixone/crmpro-backend/internal/core/domain"
)

// DocumentStore persists the single store document. Read returns the current
// document, creating an empty one on first use; Write replaces the whole
// document. There is no locking: two concurrent read-modify-write sequences
// race, and the last writer wins.
type DocumentStore interface {
	Read(ctx context.Context) (*domain.Document, error)
	Write(ctx context.Context, doc *domain.Document) error
}

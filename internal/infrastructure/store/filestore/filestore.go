// Package filestore persists the whole store document as one JSON file on
// local disk. Every write rewrites the file; there is no locking and no
// merge, so concurrent read-modify-write sequences are last-writer-wins.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gasixone/crmpro-backend/internal/core/domain"
)

type Store struct {
	path string
}

// New returns a Store backed by the JSON file at path. The file is created
// on first Read.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Read(_ context.Context) (*domain.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := domain.NewDocument()
		if err := s.write(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}
	if doc.Users == nil {
		doc.Users = []domain.User{}
	}
	if doc.Contacts == nil {
		doc.Contacts = []domain.Contact{}
	}
	return &doc, nil
}

func (s *Store) Write(_ context.Context, doc *domain.Document) error {
	return s.write(doc)
}

func (s *Store) write(doc *domain.Document) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

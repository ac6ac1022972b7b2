package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"centralbank/internal/domain"
)

const (
	documentFormat  = "centralbank_accounts"
	documentVersion = 1
)

// document is the on-disk shape: a meta header plus the full account
// collection in creation order.
type document struct {
	Meta     meta              `json:"_meta"`
	Accounts []*domain.Account `json:"accounts"`
}

type meta struct {
	Format  string    `json:"format"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// Store persists the account collection as a single JSON document at a
// fixed path. Saves go through a temp file and a rename so a crash
// mid-write leaves the previous document intact.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(ctx context.Context) (*domain.Collection, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: no document yet.
			return domain.NewCollection(), nil
		}
		return nil, fmt.Errorf("failed to open account document %s: %w", s.path, err)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode account document %s: %w", s.path, err)
	}
	if doc.Meta.Version != documentVersion {
		return nil, fmt.Errorf("account document %s has unsupported version %d (want %d)",
			s.path, doc.Meta.Version, documentVersion)
	}
	return domain.NewCollection(doc.Accounts...), nil
}

func (s *Store) Save(ctx context.Context, c *domain.Collection) error {
	doc := document{
		Meta: meta{
			Format:  documentFormat,
			Version: documentVersion,
			SavedAt: time.Now(),
		},
		Accounts: c.List(),
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode account document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace account document %s: %w", s.path, err)
	}
	return nil
}

package accounts_repo

import (
	"context"

	"centralbank/internal/domain"
)

// Store is the persistence boundary between in-memory account state and
// the on-disk document. Load returns an empty collection when no
// document exists yet; Save replaces the persisted document entirely.
type Store interface {
	Load(ctx context.Context) (*domain.Collection, error)
	Save(ctx context.Context, c *domain.Collection) error
}

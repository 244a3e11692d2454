// Package shares persists a local mirror of the session's share cache so
// the CLI can list known shares without hitting the network.
package shares

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sharebox/internal/client/models"
)

// ErrNotFound is returned by GetByName when a share is not mirrored.
var ErrNotFound = errors.New("share not found")

// Repository describes the operations on the local share mirror.
type Repository interface {
	// Upsert inserts or replaces a share and its files by sharename.
	Upsert(ctx context.Context, share *models.Share) error

	// Delete removes a share and its files. Deleting an absent share is
	// not an error.
	Delete(ctx context.Context, sharename string) error

	// GetByName returns one mirrored share with its files, or ErrNotFound.
	GetByName(ctx context.Context, sharename string) (*models.Share, error)

	// GetAll returns every mirrored share, files included, ordered by
	// sharename.
	GetAll(ctx context.Context) ([]*models.Share, error)
}

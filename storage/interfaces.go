package storage

import (
	"context"

	"github.com/poiesic/resourcedir/core"
)

// SnapshotRepository provides operations for persisting category snapshots.
// Implementations must be thread-safe and support concurrent access.
type SnapshotRepository interface {
	// SaveSnapshot stores a snapshot, replacing any existing snapshot
	// for the same category. The snapshot is validated before writing.
	SaveSnapshot(ctx context.Context, snapshot *core.Snapshot) error

	// GetSnapshot retrieves the stored snapshot for a category.
	// Returns ErrNotFound if no snapshot exists.
	GetSnapshot(ctx context.Context, category string) (*core.Snapshot, error)

	// DeleteSnapshot removes the stored snapshot for a category.
	// Returns ErrNotFound if no snapshot exists.
	DeleteSnapshot(ctx context.Context, category string) error

	// ListCategories returns the categories with stored snapshots,
	// sorted lexicographically.
	ListCategories(ctx context.Context) ([]string, error)

	// Close closes the repository and releases resources.
	Close() error
}

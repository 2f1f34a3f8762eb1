// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/storage"
)

// snapshotRepository implements storage.SnapshotRepository over BadgerDB.
type snapshotRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.SnapshotRepository = (*snapshotRepository)(nil)

// NewSnapshotRepository creates a snapshot repository over the given backend.
func NewSnapshotRepository(backend *Backend) (storage.SnapshotRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &snapshotRepository{
		backend: backend,
		logger:  backend.logger,
	}, nil
}

// SaveSnapshot validates, serializes and stores a snapshot, replacing any
// existing snapshot for the same category.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot *core.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := core.ValidateSnapshot(snapshot); err != nil {
		return err
	}

	data, err := storage.MarshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotKey(snapshot.Category), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}

	r.logger.Debug("snapshot saved", "category", snapshot.Category, "records", len(snapshot.Records))
	return nil
}

// GetSnapshot retrieves the stored snapshot for a category.
func (r *snapshotRepository) GetSnapshot(ctx context.Context, category string) (*core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *core.Snapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey(category))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", storage.ErrNotFound, category)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot, err = storage.UnmarshalSnapshot(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// DeleteSnapshot removes the stored snapshot for a category.
func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, category string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSnapshotKey(category)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", storage.ErrNotFound, category)
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	return nil
}

// ListCategories returns the categories with stored snapshots, sorted.
func (r *snapshotRepository) ListCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	prefix := []byte(snapshotPrefix + ":")
	var categories []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := string(iter.Item().Key())
			categories = append(categories, strings.TrimPrefix(key, string(prefix)))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sort.Strings(categories)
	return categories, nil
}

// Close is a no-op; the underlying backend owns the database handle.
func (r *snapshotRepository) Close() error {
	return nil
}

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


package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/parser"
	"github.com/poiesic/resourcedir/sources"
	"github.com/poiesic/resourcedir/storage"
)

const defaultTTL = time.Hour

// TextFetcher retrieves raw listing text from an ordered list of sources.
type TextFetcher interface {
	FetchText(ctx context.Context, srcs []string) (text, source string, err error)
}

// Loader fetches, parses and caches category snapshots. Snapshots are
// memoized in memory for the configured TTL and persisted so a category
// whose sources are all unreachable can still be served from the last
// good fetch. Safe for concurrent use.
type Loader struct {
	config    *sources.Config
	fetcher   TextFetcher
	snapshots storage.SnapshotRepository
	ttl       time.Duration
	pool      *ants.Pool
	clock     func() time.Time
	logger    *slog.Logger

	mu   sync.RWMutex
	memo map[string]*core.Snapshot
}

// Option configures a Loader.
type Option func(*Loader) error

// WithTTL sets how long a cached snapshot stays fresh. Default is one hour.
func WithTTL(ttl time.Duration) Option {
	return func(l *Loader) error {
		if ttl <= 0 {
			return ErrInvalidTTL
		}
		l.ttl = ttl
		return nil
	}
}

// WithPoolSize sets the worker pool size used by RefreshAll.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		if l.pool != nil {
			l.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithClock sets the time source used for TTL checks and snapshot
// timestamps. Default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(l *Loader) error {
		if clock == nil {
			return ErrNilClock
		}
		l.clock = clock
		return nil
	}
}

// NewLoader creates a loader over the given configuration, fetcher and
// snapshot repository.
func NewLoader(config *sources.Config, fetcher TextFetcher, snapshots storage.SnapshotRepository, opts ...Option) (*Loader, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if snapshots == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		config:    config,
		fetcher:   fetcher,
		snapshots: snapshots,
		ttl:       defaultTTL,
		pool:      pool,
		clock:     time.Now,
		logger:    slog.Default(),
		memo:      make(map[string]*core.Snapshot),
	}
	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}
	return l, nil
}

// Get returns the snapshot for a category, refreshing it when the cached
// copy is missing or older than the TTL. When a refresh fails, the last
// persisted snapshot is returned with Stale set; the error is returned
// only when no persisted snapshot exists either.
func (l *Loader) Get(ctx context.Context, category string) (*core.Snapshot, error) {
	l.mu.RLock()
	snap, ok := l.memo[category]
	l.mu.RUnlock()
	if ok && l.clock().Sub(snap.FetchedAt) < l.ttl {
		return snap, nil
	}

	fresh, err := l.Refresh(ctx, category)
	if err == nil {
		return fresh, nil
	}
	if errors.Is(err, ErrUnknownCategory) {
		return nil, err
	}

	persisted, getErr := l.snapshots.GetSnapshot(ctx, category)
	if getErr != nil {
		return nil, fmt.Errorf("refreshing %q: %w", category, err)
	}

	l.logger.Warn("serving stale snapshot", "category", category, "fetched_at", persisted.FetchedAt, "err", err)
	stale := *persisted
	stale.Stale = true

	l.mu.Lock()
	l.memo[category] = &stale
	l.mu.Unlock()
	return &stale, nil
}

// Refresh fetches and parses a category unconditionally, persists the new
// snapshot and replaces the cached copy. Unlike Get it does not fall back
// to a stale snapshot on failure.
func (l *Loader) Refresh(ctx context.Context, category string) (*core.Snapshot, error) {
	cat, ok := l.config.Category(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	text, source, err := l.fetcher.FetchText(ctx, cat.Sources)
	if err != nil {
		return nil, err
	}

	records, err := parser.Parse(text, category)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", category, err)
	}

	snap := &core.Snapshot{
		Category:  category,
		Source:    source,
		FetchedAt: l.clock(),
		Checksum:  core.IDFromContent(text),
		Records:   records,
	}
	if err := l.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("persisting %q: %w", category, err)
	}

	l.logger.Info("snapshot refreshed", "category", category, "source", source, "records", len(records))

	l.mu.Lock()
	l.memo[category] = snap
	l.mu.Unlock()
	return snap, nil
}

// RefreshAll refreshes every configured category concurrently. Failures
// are logged per category and joined into the returned error; categories
// that succeed are refreshed regardless.
func (l *Loader) RefreshAll(ctx context.Context) error {
	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  []error
	)
	for _, name := range l.config.Names() {
		wg.Add(1)
		submitErr := l.pool.Submit(func() {
			defer wg.Done()
			if _, err := l.Refresh(ctx, name); err != nil {
				l.logger.Error("refresh failed", "category", name, "err", err)
				errMu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				errMu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			errMu.Lock()
			errs = append(errs, fmt.Errorf("%s: %w", name, submitErr))
			errMu.Unlock()
		}
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Config returns the source configuration the loader was built with.
func (l *Loader) Config() *sources.Config {
	return l.config
}

// Release releases the worker pool. The loader should not be used after
// calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

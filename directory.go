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


package resourcedir

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/dataset"
	"github.com/poiesic/resourcedir/search"
	"github.com/poiesic/resourcedir/sources"
	"github.com/poiesic/resourcedir/storage"
	"github.com/poiesic/resourcedir/storage/badger"
)

// Directory is the top-level entry point wiring sources, parsing, storage
// and ranking together.
type Directory struct {
	backend   *badger.Backend
	snapshots storage.SnapshotRepository
	fetcher   *sources.Fetcher
	loader    *dataset.Loader
	ranker    *search.Ranker
	logger    *slog.Logger
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*directoryOptions)

type directoryOptions struct {
	config   *sources.Config
	inMemory bool
	ttl      time.Duration
	logger   *slog.Logger
}

// WithSourceConfig overrides the built-in source configuration.
func WithSourceConfig(config *sources.Config) DirectoryOption {
	return func(o *directoryOptions) {
		o.config = config
	}
}

// WithInMemory opens the snapshot store in memory instead of on disk.
func WithInMemory() DirectoryOption {
	return func(o *directoryOptions) {
		o.inMemory = true
	}
}

// WithSnapshotTTL sets how long cached snapshots stay fresh.
func WithSnapshotTTL(ttl time.Duration) DirectoryOption {
	return func(o *directoryOptions) {
		o.ttl = ttl
	}
}

// WithDirectoryLogger sets the logger used by the directory and its parts.
func WithDirectoryLogger(logger *slog.Logger) DirectoryOption {
	return func(o *directoryOptions) {
		o.logger = logger
	}
}

// NewDirectory opens the snapshot store at filePath and wires the fetcher,
// loader and ranker over it.
func NewDirectory(filePath string, opts ...DirectoryOption) (*Directory, error) {
	options := &directoryOptions{
		config: sources.DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.config == nil {
		options.config = sources.DefaultConfig()
	}
	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	snapshots, err := badger.NewSnapshotRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	fetcher, err := sources.NewFetcher(sources.WithFetcherLogger(options.logger))
	if err != nil {
		snapshots.Close()
		backend.Close()
		return nil, err
	}

	loaderOpts := []dataset.Option{dataset.WithLogger(options.logger)}
	if options.ttl > 0 {
		loaderOpts = append(loaderOpts, dataset.WithTTL(options.ttl))
	}
	loader, err := dataset.NewLoader(options.config, fetcher, snapshots, loaderOpts...)
	if err != nil {
		snapshots.Close()
		backend.Close()
		return nil, err
	}

	ranker, err := search.NewRanker(search.WithLogger(options.logger))
	if err != nil {
		loader.Release()
		snapshots.Close()
		backend.Close()
		return nil, err
	}

	return &Directory{
		backend:   backend,
		snapshots: snapshots,
		fetcher:   fetcher,
		loader:    loader,
		ranker:    ranker,
		logger:    options.logger,
	}, nil
}

// NewSession creates a pagination session for Search.
func (d *Directory) NewSession() *search.Session {
	return search.NewSession()
}

// Search interprets the query, ranks the category's records and returns up
// to limit results along with the detected intent. A limit <= 0 returns
// everything above threshold.
//
// When session is non-nil the query "more" repeats the session's previous
// query for the category and returns the next page of unseen results; any
// other query resets pagination. Hard filters left empty or set to
// search.FilterAll are filled from detected intent, so "dental in 60623"
// restricts to that ZIP even with no explicit filter.
func (d *Directory) Search(ctx context.Context, category, query string, filters search.Filters, session *search.Session, limit int) ([]core.ScoredRecord, core.Intent, error) {
	snapshot, err := d.loader.Get(ctx, category)
	if err != nil {
		return nil, core.Intent{}, err
	}

	effective := strings.TrimSpace(query)
	if session != nil {
		if strings.EqualFold(effective, "more") {
			effective = session.LastQuery(category)
		} else {
			session.Remember(category, effective)
		}
	}

	intent := search.ExtractIntent(effective, category, snapshot.AvailableDays())
	cleaned := search.CleanQuery(effective, intent)

	merged := mergeIntentFilters(filters, intent)
	ranked := d.ranker.Rank(snapshot.Records, cleaned, category, merged, intent)

	if session != nil {
		if limit <= 0 {
			limit = len(ranked)
		}
		return session.NextPage(category, ranked, limit), intent, nil
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, intent, nil
}

// mergeIntentFilters fills inactive filter fields from detected intent so
// intent acts as a hard restriction, not just a score bonus.
func mergeIntentFilters(f search.Filters, intent core.Intent) search.Filters {
	if intent.Zip != "" && (f.Zip == "" || f.Zip == search.FilterAll) {
		f.Zip = intent.Zip
	}
	if intent.Service != "" && (f.Service == "" || f.Service == search.FilterAll) {
		f.Service = intent.Service
	}
	if intent.Day != "" && (f.Day == "" || f.Day == search.FilterAll) {
		f.Day = intent.Day
	}
	return f
}

// Records returns the category's current records, refreshing the snapshot
// if it is missing or expired.
func (d *Directory) Records(ctx context.Context, category string) ([]*core.Record, error) {
	snapshot, err := d.loader.Get(ctx, category)
	if err != nil {
		return nil, err
	}
	return snapshot.Records, nil
}

// Snapshot returns the category's current snapshot.
func (d *Directory) Snapshot(ctx context.Context, category string) (*core.Snapshot, error) {
	return d.loader.Get(ctx, category)
}

// Refresh re-fetches and re-parses one category unconditionally.
func (d *Directory) Refresh(ctx context.Context, category string) (*core.Snapshot, error) {
	return d.loader.Refresh(ctx, category)
}

// RefreshAll refreshes every configured category.
func (d *Directory) RefreshAll(ctx context.Context) error {
	return d.loader.RefreshAll(ctx)
}

// Categories returns the configured category names.
func (d *Directory) Categories() []string {
	return d.loader.Config().Names()
}

// Suggest checks a query for known misspellings.
func (d *Directory) Suggest(query string) (search.Suggestion, bool) {
	return search.DetectMisspelling(query)
}

// Close releases the loader's worker pool and closes storage.
func (d *Directory) Close() error {
	d.loader.Release()

	if err := d.snapshots.Close(); err != nil {
		d.logger.Error("error closing snapshot repository", "err", err)
		return err
	}
	if err := d.backend.Close(); err != nil {
		d.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

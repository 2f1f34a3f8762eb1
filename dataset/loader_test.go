package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/sources"
	"github.com/poiesic/resourcedir/storage"
)

const healthListing = `1. West Side Dental Clinic
📍 1200 S Western Ave, Chicago, IL 60608
📞 312-555-0134
⏰ Mon-Fri 9am-5pm
Services: dental exams, cleanings
`

// stubFetcher returns canned text per category source list.
type stubFetcher struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (s *stubFetcher) FetchText(_ context.Context, srcs []string) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", "", s.err
	}
	return s.text, srcs[0], nil
}

// selectiveFetcher fails for one source and serves the listing otherwise.
type selectiveFetcher struct {
	failSource string
}

func (s *selectiveFetcher) FetchText(_ context.Context, srcs []string) (string, string, error) {
	if len(srcs) > 0 && srcs[0] == s.failSource {
		return "", "", errors.New("network down")
	}
	return healthListing, srcs[0], nil
}

// memoryRepo is a map-backed SnapshotRepository for loader tests.
type memoryRepo struct {
	mu    sync.Mutex
	snaps map[string]*core.Snapshot
	fail  bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{snaps: make(map[string]*core.Snapshot)}
}

func (m *memoryRepo) SaveSnapshot(_ context.Context, snap *core.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("save failed")
	}
	m.snaps[snap.Category] = snap
	return nil
}

func (m *memoryRepo) GetSnapshot(_ context.Context, category string) (*core.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[category]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return snap, nil
}

func (m *memoryRepo) DeleteSnapshot(_ context.Context, category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, category)
	return nil
}

func (m *memoryRepo) ListCategories(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.snaps))
	for name := range m.snaps {
		names = append(names, name)
	}
	return names, nil
}

func (m *memoryRepo) Close() error { return nil }

func testConfig() *sources.Config {
	return &sources.Config{Categories: []sources.Category{
		{Name: "Healthcare", Sources: []string{"health.txt"}},
		{Name: "Education", Sources: []string{"education.txt"}},
	}}
}

func TestNewLoaderValidation(t *testing.T) {
	fetcher := &stubFetcher{text: healthListing}
	repo := newMemoryRepo()

	_, err := NewLoader(nil, fetcher, repo)
	assert.ErrorIs(t, err, ErrConfigRequired)

	_, err = NewLoader(testConfig(), nil, repo)
	assert.ErrorIs(t, err, ErrFetcherRequired)

	_, err = NewLoader(testConfig(), fetcher, nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewLoader(testConfig(), fetcher, repo, WithTTL(0))
	assert.ErrorIs(t, err, ErrInvalidTTL)

	_, err = NewLoader(testConfig(), fetcher, repo, WithClock(nil))
	assert.ErrorIs(t, err, ErrNilClock)
}

func TestRefreshParsesAndPersists(t *testing.T) {
	fetcher := &stubFetcher{text: healthListing}
	repo := newMemoryRepo()
	loader, err := NewLoader(testConfig(), fetcher, repo)
	require.NoError(t, err)
	defer loader.Release()

	snap, err := loader.Refresh(context.Background(), "Healthcare")
	require.NoError(t, err)
	assert.Equal(t, "Healthcare", snap.Category)
	assert.Equal(t, "health.txt", snap.Source)
	assert.False(t, snap.Stale)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "West Side Dental Clinic", snap.Records[0].Name)

	persisted, err := repo.GetSnapshot(context.Background(), "Healthcare")
	require.NoError(t, err)
	assert.Equal(t, snap.Checksum, persisted.Checksum)
}

func TestRefreshUnknownCategory(t *testing.T) {
	loader, err := NewLoader(testConfig(), &stubFetcher{text: healthListing}, newMemoryRepo())
	require.NoError(t, err)
	defer loader.Release()

	_, err = loader.Refresh(context.Background(), "Transit")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestGetMemoizesWithinTTL(t *testing.T) {
	fetcher := &stubFetcher{text: healthListing}
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	loader, err := NewLoader(testConfig(), fetcher, newMemoryRepo(),
		WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	defer loader.Release()

	first, err := loader.Get(context.Background(), "Healthcare")
	require.NoError(t, err)
	second, err := loader.Get(context.Background(), "Healthcare")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, fetcher.calls)
}

func TestGetRefreshesAfterTTL(t *testing.T) {
	fetcher := &stubFetcher{text: healthListing}
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	loader, err := NewLoader(testConfig(), fetcher, newMemoryRepo(),
		WithTTL(time.Minute),
		WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	defer loader.Release()

	_, err = loader.Get(context.Background(), "Healthcare")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = loader.Get(context.Background(), "Healthcare")
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestGetFallsBackToPersistedSnapshot(t *testing.T) {
	fetcher := &stubFetcher{text: healthListing}
	repo := newMemoryRepo()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	loader, err := NewLoader(testConfig(), fetcher, repo,
		WithTTL(time.Minute),
		WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	defer loader.Release()

	_, err = loader.Refresh(context.Background(), "Healthcare")
	require.NoError(t, err)

	fetcher.err = errors.New("network down")
	now = now.Add(2 * time.Minute)

	snap, err := loader.Get(context.Background(), "Healthcare")
	require.NoError(t, err)
	assert.True(t, snap.Stale)
	require.Len(t, snap.Records, 1)

	// Persisted copy stays unmarked.
	persisted, err := repo.GetSnapshot(context.Background(), "Healthcare")
	require.NoError(t, err)
	assert.False(t, persisted.Stale)
}

func TestGetFailsWhenNothingPersisted(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("network down")}
	loader, err := NewLoader(testConfig(), fetcher, newMemoryRepo())
	require.NoError(t, err)
	defer loader.Release()

	_, err = loader.Get(context.Background(), "Healthcare")
	assert.Error(t, err)
}

func TestRefreshAll(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		repo := newMemoryRepo()
		loader, err := NewLoader(testConfig(), &stubFetcher{text: healthListing}, repo)
		require.NoError(t, err)
		defer loader.Release()

		require.NoError(t, loader.RefreshAll(context.Background()))
		names, err := repo.ListCategories(context.Background())
		require.NoError(t, err)
		assert.Len(t, names, 2)
	})

	t.Run("one failure leaves others refreshed", func(t *testing.T) {
		repo := newMemoryRepo()
		fetcher := &selectiveFetcher{failSource: "education.txt"}
		loader, err := NewLoader(testConfig(), fetcher, repo)
		require.NoError(t, err)
		defer loader.Release()

		err = loader.RefreshAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Education")
		assert.NotContains(t, err.Error(), "Healthcare")

		_, err = repo.GetSnapshot(context.Background(), "Healthcare")
		assert.NoError(t, err)
		_, err = repo.GetSnapshot(context.Background(), "Education")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("failures joined", func(t *testing.T) {
		fetcher := &stubFetcher{err: errors.New("network down")}
		loader, err := NewLoader(testConfig(), fetcher, newMemoryRepo())
		require.NoError(t, err)
		defer loader.Release()

		err = loader.RefreshAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Healthcare")
		assert.Contains(t, err.Error(), "Education")
	})
}

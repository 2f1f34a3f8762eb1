package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/storage"
)

func testSnapshot(category string) *core.Snapshot {
	return &core.Snapshot{
		Category:  category,
		Source:    "resources/listing.txt",
		FetchedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Checksum:  core.IDFromContent(category + " listing"),
		Records: []*core.Record{
			{
				ID:         "1",
				Name:       "West Side Dental Clinic",
				ZipCode:    "60608",
				Services:   []string{"dental"},
				SearchBlob: "west side dental clinic",
			},
		},
	}
}

func newTestRepo(t *testing.T) storage.SnapshotRepository {
	t.Helper()
	repo, backend, err := NewMemorySnapshotRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestNewSnapshotRepositoryNilBackend(t *testing.T) {
	_, err := NewSnapshotRepository(nil)
	assert.ErrorIs(t, err, storage.ErrBackendRequired)
}

func TestSaveAndGetSnapshot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	snap := testSnapshot("Healthcare")
	require.NoError(t, repo.SaveSnapshot(ctx, snap))

	got, err := repo.GetSnapshot(ctx, "Healthcare")
	require.NoError(t, err)
	assert.Equal(t, snap.Checksum, got.Checksum)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "West Side Dental Clinic", got.Records[0].Name)
}

func TestSaveSnapshotReplaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, testSnapshot("Healthcare")))

	updated := testSnapshot("Healthcare")
	updated.Checksum = core.IDFromContent("new listing")
	require.NoError(t, repo.SaveSnapshot(ctx, updated))

	got, err := repo.GetSnapshot(ctx, "Healthcare")
	require.NoError(t, err)
	assert.Equal(t, updated.Checksum, got.Checksum)

	names, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Healthcare"}, names)
}

func TestSaveSnapshotInvalid(t *testing.T) {
	repo := newTestRepo(t)

	snap := testSnapshot("Healthcare")
	snap.Category = ""
	err := repo.SaveSnapshot(context.Background(), snap)
	assert.ErrorIs(t, err, core.ErrEmptyCategory)
}

func TestGetSnapshotNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetSnapshot(context.Background(), "Transit")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteSnapshot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, testSnapshot("Healthcare")))
	require.NoError(t, repo.DeleteSnapshot(ctx, "Healthcare"))

	_, err := repo.GetSnapshot(ctx, "Healthcare")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.DeleteSnapshot(ctx, "Healthcare")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListCategoriesSorted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, testSnapshot("Resettlement / Legal / Shelter")))
	require.NoError(t, repo.SaveSnapshot(ctx, testSnapshot("Healthcare")))
	require.NoError(t, repo.SaveSnapshot(ctx, testSnapshot("Education")))

	names, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Education", "Healthcare", "Resettlement / Legal / Shelter"}, names)
}

func TestClosedBackend(t *testing.T) {
	repo, backend, err := NewMemorySnapshotRepository()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = repo.GetSnapshot(context.Background(), "Healthcare")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = repo.SaveSnapshot(context.Background(), testSnapshot("Healthcare"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestContextCancelled(t *testing.T) {
	repo := newTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.GetSnapshot(ctx, "Healthcare")
	assert.ErrorIs(t, err, context.Canceled)
}

package badger

// Key prefixes for different data types
const (
	snapshotPrefix = "snap"
)

// makeSnapshotKey generates a key for a category snapshot.
func makeSnapshotKey(category string) []byte {
	return []byte(snapshotPrefix + ":" + category)
}

// Package dataset keeps parsed category snapshots fresh. A Loader fetches
// raw listing text through a TextFetcher, parses it into records, persists
// the resulting snapshot, and serves cached snapshots until their TTL
// expires. When every source for a category fails, the last persisted
// snapshot is served marked stale rather than returning nothing.
package dataset

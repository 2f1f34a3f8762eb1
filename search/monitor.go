package search

import "github.com/poiesic/resourcedir/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during a search.
type RankMonitor interface {
	Start(query string, candidates int)
	AfterFilters(remaining int)
	AfterExpansion(variants []string)
	Scored(record *core.Record, score float64)
	Finish(results []core.ScoredRecord)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)              {}
func (n *noopMonitor) AfterFilters(_ int)                 {}
func (n *noopMonitor) AfterExpansion(_ []string)          {}
func (n *noopMonitor) Scored(_ *core.Record, _ float64)   {}
func (n *noopMonitor) Finish(_ []core.ScoredRecord)       {}

package search

import (
	"sync"

	"github.com/poiesic/resourcedir/core"
)

// Session tracks which results a user has already seen per category, so
// follow-up "more" requests page through the same ranking without repeats.
// Sessions are caller-owned: create one per user conversation and pass it
// explicitly. Safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	lastQuery map[string]string
	shown     map[string]map[string]bool
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		lastQuery: make(map[string]string),
		shown:     make(map[string]map[string]bool),
	}
}

// NextPage returns up to n records from ranked that this session has not
// shown for the category yet, and marks them shown. Ranked input must be
// deterministically ordered for pages to be disjoint.
func (s *Session) NextPage(category string, ranked []core.ScoredRecord, n int) []core.ScoredRecord {
	if n <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := s.shown[category]
	if seen == nil {
		seen = make(map[string]bool)
		s.shown[category] = seen
	}

	page := make([]core.ScoredRecord, 0, n)
	for _, sr := range ranked {
		if seen[sr.Record.ID] {
			continue
		}
		seen[sr.Record.ID] = true
		page = append(page, sr)
		if len(page) == n {
			break
		}
	}
	return page
}

// Remember stores the query driving the category's current ranking and
// resets pagination when it differs from the previous one.
func (s *Session) Remember(category, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastQuery[category] != query {
		delete(s.shown, category)
	}
	s.lastQuery[category] = query
}

// LastQuery returns the most recent query remembered for the category.
func (s *Session) LastQuery(category string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery[category]
}

// ShownCount reports how many records the session has shown for the category.
func (s *Session) ShownCount(category string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shown[category])
}

// Reset clears all pagination and query state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = make(map[string]string)
	s.shown = make(map[string]map[string]bool)
}

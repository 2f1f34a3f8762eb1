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


package search

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/dictionary"
)

// Score weights and bonuses. The fuzzy blend carries most of the signal;
// the bonuses reward exact evidence the blend dilutes.
const (
	defaultFuzzyWeight = 0.65
	defaultThreshold   = 0.05

	bonusBlobSubstring = 0.30
	bonusNameSubstring = 0.20
	bonusServiceTag    = 0.15
	bonusSubcategory   = 0.20
	bonusSynonymGroup  = 0.10
	bonusStemPair      = 0.05
	bonusConcept       = 0.08
	bonusOpenNow       = 0.40
	bonusZipIntent     = 0.30
	bonusDayIntent     = 0.20
	bonusMustHave      = 0.15
)

// FilterAll is the sentinel filter value meaning "no restriction".
const FilterAll = "All"

// Filters are the hard pre-score restrictions. Empty or FilterAll fields
// are no-ops. Day filtering fails closed: records without parsed hours for
// the day are excluded.
type Filters struct {
	Zip      string
	Language string
	Service  string
	Day      string
}

func filterActive(v string) bool {
	return v != "" && v != FilterAll
}

// Ranker scores records against interpreted queries. Safe for concurrent
// use; all state is set at construction.
type Ranker struct {
	fuzzyWeight float64
	threshold   float64
	location    *time.Location
	clock       func() time.Time
	logger      *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithClock sets the time source used for open-now checks.
// Default is time.Now. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(r *Ranker) error {
		if clock == nil {
			return ErrNilClock
		}
		r.clock = clock
		return nil
	}
}

// WithLocation sets the timezone open-now checks evaluate in.
// Default is America/Chicago.
func WithLocation(loc *time.Location) Option {
	return func(r *Ranker) error {
		if loc == nil {
			return ErrNilLocation
		}
		r.location = loc
		return nil
	}
}

// WithThreshold sets the minimum score a record must exceed to be returned.
func WithThreshold(threshold float64) Option {
	return func(r *Ranker) error {
		if threshold < 0 || threshold >= 1 {
			return ErrInvalidThreshold
		}
		r.threshold = threshold
		return nil
	}
}

// WithFuzzyWeight sets the weight of the fuzzy blend in the final score.
// Must stay within [0.60, 0.70] so bonuses keep their intended leverage.
func WithFuzzyWeight(weight float64) Option {
	return func(r *Ranker) error {
		if weight < 0.60 || weight > 0.70 {
			return ErrInvalidFuzzyWeight
		}
		r.fuzzyWeight = weight
		return nil
	}
}

// NewRanker creates a ranker with the default Chicago timezone, falling
// back to the host's local zone when tzdata is unavailable.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{
		fuzzyWeight: defaultFuzzyWeight,
		threshold:   defaultThreshold,
		clock:       time.Now,
		logger:      slog.Default(),
	}

	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		r.logger.Warn("timezone data unavailable, using local time", "err", err)
		loc = time.Local
	}
	r.location = loc

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// scored carries the per-record state needed through sorting.
type scored struct {
	record  *core.Record
	score   float64
	openNow bool
}

// Rank filters, scores, and orders records for a query. The query should
// already have intent literals stripped (CleanQuery); intent carries those
// signals instead. An empty query with empty intent returns nothing.
func (r *Ranker) Rank(records []*core.Record, query, category string, filters Filters, intent core.Intent) []core.ScoredRecord {
	return r.RankWithMonitor(records, query, category, filters, intent, nil)
}

// RankWithMonitor is Rank with observation hooks for each stage.
func (r *Ranker) RankWithMonitor(records []*core.Record, query, category string, filters Filters, intent core.Intent, monitor RankMonitor) []core.ScoredRecord {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" && intent.IsZero() {
		return nil
	}
	monitor.Start(q, len(records))

	candidates := make([]*core.Record, 0, len(records))
	for _, rec := range records {
		if rec != nil && passesFilters(rec, filters) {
			candidates = append(candidates, rec)
		}
	}
	monitor.AfterFilters(len(candidates))

	synonymGroups := dictionary.SynonymsFor(category)
	variants := expandQuery(q, synonymGroups)
	monitor.AfterExpansion(variants)

	mustHave, hasMustHave := askedService(q, category)
	now := r.clock().In(r.location)
	timing := intent.Now

	results := make([]scored, 0, len(candidates))
	for _, rec := range candidates {
		s := scored{record: rec, openNow: rec.OpenAt(now)}
		s.score = r.scoreRecord(rec, q, variants, synonymGroups, intent, timing, s.openNow, mustHave, hasMustHave)
		monitor.Scored(rec, s.score)
		if s.score > r.threshold {
			results = append(results, s)
		}
	}

	// Under timing intent open records outrank closed ones outright;
	// score and name only break ties within each group.
	sort.SliceStable(results, func(i, j int) bool {
		if timing && results[i].openNow != results[j].openNow {
			return results[i].openNow
		}
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].record.Name < results[j].record.Name
	})

	out := make([]core.ScoredRecord, len(results))
	for i, s := range results {
		out[i] = core.ScoredRecord{Score: s.score, Record: s.record}
	}
	monitor.Finish(out)
	return out
}

func (r *Ranker) scoreRecord(rec *core.Record, q string, variants []string, synonymGroups map[string][]string, intent core.Intent, timing, openNow bool, mustHave dictionary.Entry, hasMustHave bool) float64 {
	var score float64

	if q != "" {
		best := 0.0
		for _, v := range variants {
			if s := BlendedScore(v, rec.SearchBlob); s > best {
				best = s
			}
		}
		score = best * r.fuzzyWeight

		if strings.Contains(rec.SearchBlob, q) {
			score += bonusBlobSubstring
		}
		if strings.Contains(strings.ToLower(rec.Name), q) {
			score += bonusNameSubstring
		}
		for _, sub := range rec.Subcategories {
			if strings.Contains(q, strings.ToLower(sub)) {
				score += bonusSubcategory
			}
		}
		if synonymCooccurrence(q, strings.ToLower(rec.ServicesText), synonymGroups) {
			score += bonusSynonymGroup
		}
		svcTokens := tokenize(rec.ServicesText)
		score += bonusStemPair * float64(stemOverlapPairs(tokenize(q), svcTokens))
		score += bonusConcept * float64(conceptMatches(q, rec.SearchBlob))
	}

	for _, tag := range rec.Services {
		if tagInQuery(q, tag) || intent.Service == tag {
			score += bonusServiceTag
		}
	}
	if hasMustHave && mustHave.Pattern.MatchString(strings.ToLower(rec.ServicesText)) {
		score += bonusMustHave
	}
	if timing && openNow {
		score += bonusOpenNow
	}
	if intent.Zip != "" && rec.ZipCode == intent.Zip {
		score += bonusZipIntent
	}
	if intent.Day != "" {
		if _, ok := rec.Hours[intent.Day]; ok {
			score += bonusDayIntent
		}
	}
	return score
}

// passesFilters applies the hard filters. Language and service use
// case-insensitive substring membership so UI labels like "Spanish" match
// the canonical "spanish" tag.
func passesFilters(rec *core.Record, f Filters) bool {
	if filterActive(f.Zip) && rec.ZipCode != f.Zip {
		return false
	}
	if filterActive(f.Language) && !anyContains(rec.Languages, f.Language) {
		return false
	}
	if filterActive(f.Service) && !anyContains(rec.Services, f.Service) {
		return false
	}
	if filterActive(f.Day) {
		if _, ok := rec.Hours[strings.ToLower(f.Day)]; !ok {
			return false
		}
	}
	return true
}

func anyContains(values []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// expandQuery builds query variants by substituting each base term present
// in the query with each of its synonyms. Base terms match whole words
// only, so "mental" does not expand inside "fundamental". The original
// query is always the first variant; scores take the max over all of them.
func expandQuery(q string, groups map[string][]string) []string {
	variants := []string{q}
	if q == "" {
		return variants
	}
	for base, group := range groups {
		if !containsWord(q, base) {
			continue
		}
		for _, syn := range group {
			if syn == base || strings.Contains(q, syn) {
				continue
			}
			variants = append(variants, strings.ReplaceAll(q, base, syn))
		}
	}
	return variants
}

// synonymCooccurrence reports whether some synonym group has a member in
// the query and a member in the services text.
func synonymCooccurrence(q, servicesText string, groups map[string][]string) bool {
	if servicesText == "" {
		return false
	}
	for base, group := range groups {
		members := append([]string{base}, group...)
		inQuery := false
		for _, m := range members {
			if strings.Contains(q, m) {
				inQuery = true
				break
			}
		}
		if !inQuery {
			continue
		}
		for _, m := range members {
			if strings.Contains(servicesText, m) {
				return true
			}
		}
	}
	return false
}

// stemOverlapPairs counts (query token, services token) pairs where one is
// a strict prefix of the other, both at least three characters.
func stemOverlapPairs(qTokens, svcTokens []string) int {
	pairs := 0
	for _, qt := range qTokens {
		if len(qt) < 3 {
			continue
		}
		for _, st := range svcTokens {
			if len(st) < 3 || qt == st {
				continue
			}
			if strings.HasPrefix(st, qt) || strings.HasPrefix(qt, st) {
				pairs++
			}
		}
	}
	return pairs
}

// conceptMatches counts concept keywords in the query whose related terms
// appear in the record text.
func conceptMatches(q, blob string) int {
	count := 0
	for keyword, related := range dictionary.Concepts {
		if !containsWord(q, keyword) {
			continue
		}
		for _, term := range related {
			if strings.Contains(blob, term) {
				count++
				break
			}
		}
	}
	return count
}

// containsWord reports whether text contains word with token boundaries.
func containsWord(text, word string) bool {
	for _, tok := range tokenize(text) {
		if tok == word {
			return true
		}
	}
	return false
}

// tagInQuery reports whether a canonical service tag is named in the query,
// accepting the underscore form or its spaced spelling.
func tagInQuery(q, tag string) bool {
	if q == "" {
		return false
	}
	return strings.Contains(q, tag) || strings.Contains(q, strings.ReplaceAll(tag, "_", " "))
}

// askedService resolves the category's asked-for-service entry for the
// query, whose pattern doubles as the must-have probe on services text.
func askedService(q, category string) (dictionary.Entry, bool) {
	dict := dictionary.QueryServices[category]
	if dict == nil || q == "" {
		return dictionary.Entry{}, false
	}
	return dict.Find(q)
}

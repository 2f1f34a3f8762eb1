package search

import (
	"regexp"
	"strings"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/dictionary"
)

var (
	queryZipRE = regexp.MustCompile(`\b60\d{3}\b`)
	timingRE   = regexp.MustCompile(`(?i)\b(now|today|open|available|immediate(?:ly)?|urgent(?:ly)?)\b`)
	spaceRE    = regexp.MustCompile(`\s+`)
)

// ExtractIntent pulls structured signals out of a free-text query: a ZIP
// (direct or via neighborhood name), a category-relevant service, a day,
// and timing intent. Day intent is honored only when availableDays shows
// the dataset can satisfy it; pass nil to skip the gate.
func ExtractIntent(query, category string, availableDays map[string]bool) core.Intent {
	var intent core.Intent
	lower := strings.ToLower(query)

	intent.Zip = queryZipRE.FindString(lower)
	if intent.Zip == "" {
		intent.Zip = neighborhoodZip(lower)
	}

	if dict := dictionary.QueryServices[category]; dict != nil {
		if entry, ok := dict.Find(lower); ok {
			intent.Service = entry.Tag
			intent.ServiceTerm = entry.Pattern.FindString(lower)
		}
	}

	for _, day := range core.Days {
		if term := dictionary.DayPatterns[day].FindString(lower); term != "" {
			if availableDays == nil || availableDays[day] {
				intent.Day = day
				intent.DayTerm = term
			}
			break
		}
	}

	intent.Now = timingRE.MatchString(lower)
	return intent
}

// neighborhoodZip resolves a neighborhood mention to its primary ZIP.
// Matching is substring-contains in either direction so both "clinics in
// pilsen" and a bare "pilsen" resolve.
func neighborhoodZip(lowerQuery string) string {
	trimmed := strings.TrimSpace(lowerQuery)
	if trimmed == "" {
		return ""
	}
	for _, n := range dictionary.Neighborhoods {
		if strings.Contains(trimmed, n.Name) || strings.Contains(n.Name, trimmed) {
			return n.Zips[0]
		}
	}
	return ""
}

// CleanQuery strips the detected ZIP, service, and day literals from the
// query so they are not double-counted by fuzzy scoring. The residual may
// be empty when the whole query was intent.
func CleanQuery(query string, intent core.Intent) string {
	cleaned := query
	if intent.Zip != "" {
		cleaned = queryZipRE.ReplaceAllString(cleaned, " ")
	}
	for _, term := range []string{intent.ServiceTerm, intent.DayTerm} {
		if term == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		cleaned = re.ReplaceAllString(cleaned, " ")
	}
	return strings.TrimSpace(spaceRE.ReplaceAllString(cleaned, " "))
}

// Suggestion is an advisory spelling correction. The engine never rewrites
// the query itself; callers decide whether to offer Corrected.
type Suggestion struct {
	Word      string // the misspelled query word
	Fix       string // its correction
	Corrected string // the full query with the word corrected
}

// DetectMisspelling scans query words against the known-misspellings table
// and returns the first hit.
func DetectMisspelling(query string) (Suggestion, bool) {
	lower := strings.ToLower(query)
	for _, word := range tokenize(lower) {
		fix, ok := dictionary.Misspellings[word]
		if !ok {
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
		return Suggestion{
			Word:      word,
			Fix:       fix,
			Corrected: re.ReplaceAllString(lower, fix),
		}, true
	}
	return Suggestion{}, false
}

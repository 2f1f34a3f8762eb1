package dictionary

import "regexp"

// Entry pairs a canonical tag with the pattern that detects it.
type Entry struct {
	Tag     string
	Pattern *regexp.Regexp
}

// Dictionary is an ordered list of entries sharing a single matching routine.
// Entry order is a priority: First returns the earliest match, and Classify
// reports tags in entry order.
type Dictionary struct {
	entries []Entry
}

// New builds a dictionary from entries in priority order.
func New(entries ...Entry) *Dictionary {
	return &Dictionary{entries: entries}
}

// pat builds a case-insensitive entry.
func pat(tag, expr string) Entry {
	return Entry{Tag: tag, Pattern: regexp.MustCompile(`(?i)` + expr)}
}

// Classify returns the tag of every entry whose pattern matches text,
// in entry order. Returns nil when nothing matches.
func (d *Dictionary) Classify(text string) []string {
	if text == "" {
		return nil
	}
	var tags []string
	for _, e := range d.entries {
		if e.Pattern.MatchString(text) {
			tags = append(tags, e.Tag)
		}
	}
	return tags
}

// First returns the tag of the first entry matching text.
func (d *Dictionary) First(text string) (string, bool) {
	e, ok := d.Find(text)
	return e.Tag, ok
}

// Find returns the first entry matching text, exposing its pattern for
// callers that need the matched literal or a second probe.
func (d *Dictionary) Find(text string) (Entry, bool) {
	if text == "" {
		return Entry{}, false
	}
	for _, e := range d.entries {
		if e.Pattern.MatchString(text) {
			return e, true
		}
	}
	return Entry{}, false
}

// Tags returns every tag in entry order.
func (d *Dictionary) Tags() []string {
	tags := make([]string, len(d.entries))
	for i, e := range d.entries {
		tags[i] = e.Tag
	}
	return tags
}

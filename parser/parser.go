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


package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/dictionary"
)

var (
	ordinalStartRE = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	firstLineRE    = regexp.MustCompile(`^\s*(\d+)\.\s+(.+)`)
	blankSplitRE   = regexp.MustCompile(`\n\s*\n`)
)

// field identifies which record field a classified line fills.
type field int

const (
	fieldServices field = iota
	fieldPhone
	fieldHours
	fieldLanguages
	fieldWebsite
	fieldAddress
)

// lineRule ties the substrings that identify a line to the regexp that
// strips its label. Rules are checked in order; the first hit wins, so a
// line mentioning both a phone label and an hours figure stays a phone line.
type lineRule struct {
	field    field
	triggers []string
	strip    *regexp.Regexp
}

var lineRules = []lineRule{
	{fieldServices, []string{"services:", "service:", "🏥", "🛟", "🛠", "🧰"},
		regexp.MustCompile(`^\s*(?:🏥|🛟|🛠️|🛠|🧰)?\s*(?i:services?\s*:)?\s*`)},
	{fieldPhone, []string{"phone:", "📞"},
		regexp.MustCompile(`^\s*(?:📞)?\s*(?i:phone\s*:)?\s*`)},
	{fieldHours, []string{"hours:", "hour:", "⏰"},
		regexp.MustCompile(`^\s*(?:⏰)?\s*(?i:hours?\s*:)?\s*`)},
	{fieldLanguages, []string{"languages:", "language:", "🗣"},
		regexp.MustCompile(`^\s*(?:🗣️|🗣)?\s*(?i:languages?\s*:)?\s*`)},
	{fieldWebsite, []string{"website:", "web:", "🌐"},
		regexp.MustCompile(`^\s*(?:🌐)?\s*(?i:web(?:site)?\s*:)?\s*`)},
	{fieldAddress, []string{"address:", "location:", "📍"},
		regexp.MustCompile(`^\s*(?:📍)?\s*(?i:(?:address|location)\s*:)?\s*`)},
}

// Parse turns a raw category listing into normalized records. The text is
// split into blocks on ordinal markers ("12. Name"); when fewer than two
// ordinal blocks exist the text is split on blank lines instead. Blocks
// with fewer than two non-empty lines are skipped. A non-empty input that
// yields no records is not an error; it is logged and returns an empty
// slice.
func Parse(rawText, category string) ([]*core.Record, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil, ErrEmptyInput
	}

	records := make([]*core.Record, 0, 16)
	seen := make(map[string]int)

	for _, block := range splitBlocks(text) {
		rec := parseBlock(block, len(records)+1)
		if rec == nil {
			continue
		}
		if n := seen[rec.ID]; n > 0 {
			seen[rec.ID] = n + 1
			rec.ID = fmt.Sprintf("%s_%d", rec.ID, n+1)
		} else {
			seen[rec.ID] = 1
		}
		finishRecord(rec, block, category)
		records = append(records, rec)
	}

	if len(records) == 0 {
		slog.Warn("no records parsed from listing text",
			"category", category, "bytes", len(text))
	}
	return records, nil
}

// splitBlocks slices text at ordinal line starts. Go's regexp has no
// lookahead, so the split works from match offsets rather than a zero-width
// pattern.
func splitBlocks(text string) []string {
	starts := ordinalStartRE.FindAllStringIndex(text, -1)
	if len(starts) < 2 {
		return blankSplitRE.Split(text, -1)
	}

	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}

// parseBlock extracts the raw fields of one block, or nil for noise blocks.
// position numbers records that carry no ordinal of their own.
func parseBlock(block string, position int) *core.Record {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	rec := &core.Record{}
	if m := firstLineRE.FindStringSubmatch(lines[0]); m != nil {
		rec.ID = m[1]
		rec.Name = strings.TrimSpace(m[2])
	} else {
		rec.ID = fmt.Sprintf("item_%d", position)
		rec.Name = lines[0]
	}

	for _, line := range lines[1:] {
		if classifyLine(rec, line) {
			continue
		}
		// Opportunistic address: an unlabeled street-looking line.
		if rec.Address == "" && len(line) > 10 {
			lower := strings.ToLower(line)
			if strings.Contains(lower, "chicago") || strings.Contains(lower, " il") || zipRE.MatchString(line) {
				rec.Address = line
			}
		}
	}
	return rec
}

// classifyLine routes a labeled line into the matching raw field. Reports
// whether the line matched any rule.
func classifyLine(rec *core.Record, line string) bool {
	lower := strings.ToLower(line)
	for _, rule := range lineRules {
		for _, trigger := range rule.triggers {
			if !strings.Contains(lower, trigger) {
				continue
			}
			value := strings.TrimSpace(rule.strip.ReplaceAllString(line, ""))
			switch rule.field {
			case fieldServices:
				rec.ServicesText = value
			case fieldPhone:
				rec.Phone, rec.PhoneDigits = NormalizePhone(value)
			case fieldHours:
				rec.HoursText = value
			case fieldLanguages:
				rec.Languages = dictionary.Languages.Classify(value)
			case fieldWebsite:
				rec.Website = NormalizeWebsite(value)
			case fieldAddress:
				rec.Address = value
			}
			return true
		}
	}
	return false
}

// finishRecord derives the normalized fields once the raw ones are in
// place. ZIP comes from the address when possible, falling back to anywhere
// in the block.
func finishRecord(rec *core.Record, block, category string) {
	rec.ZipCode = NormalizeZip(rec.Address)
	if rec.ZipCode == "" {
		rec.ZipCode = NormalizeZip(block)
	}
	rec.Services = dictionary.Services.Classify(strings.ToLower(rec.ServicesText))
	rec.Hours = ParseHours(rec.HoursText)
	nameAndServices := rec.Name + " " + rec.ServicesText
	rec.AvailabilityBadges = AvailabilityBadges(strings.ToLower(nameAndServices))
	if subdict := dictionary.Subcategories[category]; subdict != nil {
		rec.Subcategories = subdict.Classify(strings.ToLower(nameAndServices))
	}
	rec.SearchBlob = rec.BuildSearchBlob()
}

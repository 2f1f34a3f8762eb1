package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/dictionary"
)

// timeWindow is how far past a day name the time scanner looks. Times
// further out belong to another day's entry.
const timeWindow = 50

var (
	timeTokenRE = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(am|pm)?`)
	dayRangeRE  = regexp.MustCompile(`\b(monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat|sunday|sun)\s*[-–]\s*(monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat|sunday|sun)\b`)
)

// ParseHours converts free-form hours text into structured per-day ranges.
// Day ranges like "Mon-Thu" are expanded first, wrapping around the week
// for spans like "Fri-Mon"; each remaining day name is then scanned
// individually. Times are taken from a bounded window after the day name,
// paired in order of appearance, and converted to 24h when an explicit
// am/pm marker is present. Unparseable text yields an empty map, never an
// error.
func ParseHours(text string) core.Hours {
	hours := core.Hours{}
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return hours
	}

	for _, m := range dayRangeRE.FindAllStringSubmatchIndex(lower, -1) {
		start := dictionary.DayIndex[lower[m[2]:m[3]]]
		end := dictionary.DayIndex[lower[m[4]:m[5]]]
		ranges := scanTimes(lower, m[1])
		for _, idx := range expandDaySpan(start, end) {
			day := core.Days[idx]
			if _, ok := hours[day]; !ok {
				hours[day] = ranges
			}
		}
	}

	for _, day := range core.Days {
		if _, ok := hours[day]; ok {
			continue
		}
		loc := dictionary.DayPatterns[day].FindStringIndex(lower)
		if loc == nil {
			continue
		}
		hours[day] = scanTimes(lower, loc[1])
	}

	return hours
}

// expandDaySpan returns the Monday-first day indices from start through end
// inclusive, wrapping past Sunday when the span runs backwards.
func expandDaySpan(start, end int) []int {
	var days []int
	for i := start; ; i = (i + 1) % 7 {
		days = append(days, i)
		if i == end {
			return days
		}
	}
}

// scanTimes reads time tokens from a bounded window starting at pos and
// pairs them into ranges. An unpaired trailing token is dropped.
func scanTimes(text string, pos int) []core.TimeRange {
	window := text[pos:min(pos+timeWindow, len(text))]
	tokens := timeTokenRE.FindAllStringSubmatch(window, -1)

	var ranges []core.TimeRange
	for i := 0; i+1 < len(tokens); i += 2 {
		start, ok1 := clockTime(tokens[i])
		end, ok2 := clockTime(tokens[i+1])
		if ok1 && ok2 {
			ranges = append(ranges, core.TimeRange{Start: start, End: end})
		}
	}
	return ranges
}

// clockTime converts a matched time token to a ClockTime. Explicit pm
// markers shift to 24h form; bare hours are stored as written.
func clockTime(token []string) (core.ClockTime, bool) {
	hour, err := strconv.Atoi(token[1])
	if err != nil {
		return core.ClockTime{}, false
	}
	minute := 0
	if token[2] != "" {
		minute, err = strconv.Atoi(token[2])
		if err != nil {
			return core.ClockTime{}, false
		}
	}
	switch token[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	ct := core.ClockTime{Hour: hour, Minute: minute}
	if !ct.Valid() {
		return core.ClockTime{}, false
	}
	return ct, true
}

package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a deterministic identifier derived from content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Days lists the canonical lowercase day names, Monday first.
// Hours maps are keyed exclusively by these names.
var Days = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// IsCanonicalDay reports whether name is one of the canonical day names.
func IsCanonicalDay(name string) bool {
	for _, d := range Days {
		if d == name {
			return true
		}
	}
	return false
}

// ClockTime is a time of day without a date, in 24-hour form.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// minutes converts the clock time to minutes past midnight for comparisons.
func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

// Valid reports whether the clock time is within a single day.
func (c ClockTime) Valid() bool {
	return c.Hour >= 0 && c.Hour < 24 && c.Minute >= 0 && c.Minute < 60
}

// TimeRange is an open interval within one day, endpoints inclusive.
type TimeRange struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// Contains reports whether t falls within the range, endpoints included.
func (r TimeRange) Contains(t ClockTime) bool {
	return r.Start.minutes() <= t.minutes() && t.minutes() <= r.End.minutes()
}

// Hours maps canonical day names to open intervals. A day key with an empty
// interval list means the listing mentioned the day but gave no parseable
// times; an absent key means the day is unknown.
type Hours map[string][]TimeRange

// Badge is a human-readable availability label attached to a record.
type Badge string

const (
	BadgeFree        Badge = "Free"
	BadgeLowCost     Badge = "Low Cost"
	BadgeMedicaid    Badge = "Accepts Medicaid"
	BadgeWalkIn      Badge = "Walk-in"
	BadgeInterpreter Badge = "Interpreter Available"
	BadgeAllHours    Badge = "24/7 Available"
	BadgeAppointment Badge = "Appointment Required"
)

// Record is a single normalized resource listing. Records are immutable once
// parsed; the JSON tags define the snapshot cache schema.
type Record struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	PhoneDigits        string   `json:"phone_digits,omitempty"`
	Website            string   `json:"website,omitempty"`
	ZipCode            string   `json:"zip_code,omitempty"`
	Services           []string `json:"services,omitempty"`
	ServicesText       string   `json:"services_text,omitempty"`
	Subcategories      []string `json:"subcategories,omitempty"`
	AvailabilityBadges []Badge  `json:"availability_badges,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	Hours              Hours    `json:"hours,omitempty"`
	HoursText          string   `json:"hours_text,omitempty"`
	SearchBlob         string   `json:"search_blob"`
}

// BuildSearchBlob assembles the lowercased free-text haystack the ranking
// engine matches against: name, address, services text, service tags,
// languages, and hours text joined by single spaces.
func (r *Record) BuildSearchBlob() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{
		r.Name,
		r.Address,
		r.ServicesText,
		strings.Join(r.Services, " "),
		strings.Join(r.Languages, " "),
		r.HoursText,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// OpenAt reports whether the record is open at the given moment.
// Records with no parsed hours for the day are treated as closed.
func (r *Record) OpenAt(t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	ranges, ok := r.Hours[day]
	if !ok {
		return false
	}
	now := ClockTime{Hour: t.Hour(), Minute: t.Minute()}
	for _, tr := range ranges {
		if tr.Contains(now) {
			return true
		}
	}
	return false
}

// Snapshot is the parsed state of one category at a point in time. Snapshots
// are immutable after construction and shared freely across goroutines; a
// refresh replaces the whole snapshot rather than mutating it.
type Snapshot struct {
	Category  string    `json:"category"`
	Source    string    `json:"source,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
	Checksum  ID        `json:"checksum"`
	Stale     bool      `json:"stale,omitempty"`
	Records   []*Record `json:"records"`
}

// AvailableDays returns the set of canonical days appearing in any record's
// hours. Used to gate day intent on days the dataset can actually satisfy.
func (s *Snapshot) AvailableDays() map[string]bool {
	days := make(map[string]bool)
	for _, rec := range s.Records {
		for day := range rec.Hours {
			days[day] = true
		}
	}
	return days
}

// DaysPresent returns AvailableDays in canonical Monday-first order.
func (s *Snapshot) DaysPresent() []string {
	present := s.AvailableDays()
	out := make([]string, 0, len(present))
	for _, d := range Days {
		if present[d] {
			out = append(out, d)
		}
	}
	return out
}

// Intent is the structured interpretation of a free-text query.
type Intent struct {
	Zip         string // detected ZIP, directly or via a neighborhood name
	Service     string // canonical service tag
	ServiceTerm string // literal query text that triggered Service
	Day         string // canonical day name
	DayTerm     string // literal query text that triggered Day
	Now         bool   // timing intent ("open now", "today", ...)
}

// IsZero reports whether no intent signal was detected.
func (in Intent) IsZero() bool {
	return in.Zip == "" && in.Service == "" && in.Day == "" && !in.Now
}

// ScoredRecord pairs a record with its relevance score.
type ScoredRecord struct {
	Score  float64 `json:"score"`
	Record *Record `json:"record"`
}

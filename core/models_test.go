package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("community health center")
		id2 := IDFromContent("community health center")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different id", func(t *testing.T) {
		id1 := IDFromContent("community health center")
		id2 := IDFromContent("legal aid clinic")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content", func(t *testing.T) {
		assert.NotZero(t, IDFromContent(""))
	})
}

func TestBuildSearchBlob(t *testing.T) {
	rec := &Record{
		Name:         "West Side Dental Clinic",
		Address:      "123 Main St, Chicago, IL 60623",
		ServicesText: "Dental exams, cleanings",
		Services:     []string{"dental"},
		Languages:    []string{"spanish"},
		HoursText:    "Mon 9am-5pm",
	}

	blob := rec.BuildSearchBlob()
	assert.Equal(t, "west side dental clinic 123 main st, chicago, il 60623 dental exams, cleanings dental spanish mon 9am-5pm", blob)

	t.Run("empty fields skipped", func(t *testing.T) {
		rec := &Record{Name: "Food Pantry"}
		assert.Equal(t, "food pantry", rec.BuildSearchBlob())
	})
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 17}}

	assert.True(t, r.Contains(ClockTime{Hour: 9}))
	assert.True(t, r.Contains(ClockTime{Hour: 12, Minute: 30}))
	assert.True(t, r.Contains(ClockTime{Hour: 17}))
	assert.False(t, r.Contains(ClockTime{Hour: 17, Minute: 1}))
	assert.False(t, r.Contains(ClockTime{Hour: 8, Minute: 59}))
}

func TestRecordOpenAt(t *testing.T) {
	rec := &Record{
		ID:   "1",
		Name: "Clinic",
		Hours: Hours{
			"monday": {{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 17}}},
			"friday": {},
		},
	}

	// 2026-08-24 is a Monday.
	monNoon := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	monLate := time.Date(2026, 8, 24, 19, 0, 0, 0, time.UTC)
	friNoon := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	sunNoon := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.True(t, rec.OpenAt(monNoon))
	assert.False(t, rec.OpenAt(monLate))
	assert.False(t, rec.OpenAt(friNoon), "day present but no parseable times means closed")
	assert.False(t, rec.OpenAt(sunNoon), "unknown day means closed")

	t.Run("no hours at all", func(t *testing.T) {
		bare := &Record{ID: "2", Name: "Pantry"}
		assert.False(t, bare.OpenAt(monNoon))
	})
}

func TestSnapshotAvailableDays(t *testing.T) {
	snap := &Snapshot{
		Category: "Healthcare",
		Records: []*Record{
			{ID: "1", Name: "A", Hours: Hours{"monday": nil, "friday": nil}},
			{ID: "2", Name: "B", Hours: Hours{"wednesday": nil}},
			{ID: "3", Name: "C"},
		},
	}

	days := snap.AvailableDays()
	require.Len(t, days, 3)
	assert.True(t, days["monday"])
	assert.True(t, days["wednesday"])
	assert.True(t, days["friday"])
	assert.False(t, days["sunday"])

	assert.Equal(t, []string{"monday", "wednesday", "friday"}, snap.DaysPresent())
}

func TestIntentIsZero(t *testing.T) {
	assert.True(t, Intent{}.IsZero())
	assert.False(t, Intent{Zip: "60623"}.IsZero())
	assert.False(t, Intent{Service: "dental"}.IsZero())
	assert.False(t, Intent{Day: "monday"}.IsZero())
	assert.False(t, Intent{Now: true}.IsZero())
}

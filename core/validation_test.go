package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *Record {
	return &Record{
		ID:         "1",
		Name:       "West Side Dental Clinic",
		ZipCode:    "60623",
		SearchBlob: "west side dental clinic",
		Hours: Hours{
			"monday": {{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 17}}},
		},
	}
}

func TestValidateRecord(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateRecord(validRecord()))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRecord(nil), ErrInvalidRecord)
	})

	t.Run("empty id", func(t *testing.T) {
		rec := validRecord()
		rec.ID = ""
		assert.ErrorIs(t, ValidateRecord(rec), ErrEmptyID)
	})

	t.Run("empty name", func(t *testing.T) {
		rec := validRecord()
		rec.Name = ""
		assert.ErrorIs(t, ValidateRecord(rec), ErrEmptyName)
	})

	t.Run("empty zip ok", func(t *testing.T) {
		rec := validRecord()
		rec.ZipCode = ""
		assert.NoError(t, ValidateRecord(rec))
	})

	t.Run("non chicago zip", func(t *testing.T) {
		for _, zip := range []string{"10001", "6062", "606234", "60-62"} {
			rec := validRecord()
			rec.ZipCode = zip
			assert.ErrorIs(t, ValidateRecord(rec), ErrInvalidZip, "zip %q", zip)
		}
	})

	t.Run("non canonical day", func(t *testing.T) {
		rec := validRecord()
		rec.Hours = Hours{"Mon": nil}
		assert.ErrorIs(t, ValidateRecord(rec), ErrInvalidDay)
	})

	t.Run("out of range time", func(t *testing.T) {
		rec := validRecord()
		rec.Hours = Hours{
			"monday": {{Start: ClockTime{Hour: 25}, End: ClockTime{Hour: 26}}},
		}
		assert.ErrorIs(t, ValidateRecord(rec), ErrInvalidTimeRange)
	})
}

func TestValidateSnapshot(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		snap := &Snapshot{Category: "Healthcare", Records: []*Record{validRecord()}}
		require.NoError(t, ValidateSnapshot(snap))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSnapshot(nil), ErrInvalidSnapshot)
	})

	t.Run("empty category", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSnapshot(&Snapshot{}), ErrEmptyCategory)
	})

	t.Run("bad record", func(t *testing.T) {
		rec := validRecord()
		rec.Name = ""
		snap := &Snapshot{Category: "Healthcare", Records: []*Record{rec}}
		err := ValidateSnapshot(snap)
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

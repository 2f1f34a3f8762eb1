package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/dictionary"
)

const healthcareListing = `1. West Side Dental Clinic
📍 Address: 123 S Pulaski Rd, Chicago, IL 60623
📞 Phone: 773-555-1234
🏥 Services: Dental exams, cleanings, pediatric dentistry
⏰ Hours: Mon-Thu 9am-5pm
🗣 Languages: Spanish, Polish
🌐 Website: https://westsidedental.example.org

2. Little Village Community Health Center
📍 Location: 2600 W Cermak Rd, Chicago, IL 60608
📞 Phone: 312.555.9876
🏥 Services: Primary care, immunizations, walk-in visits, free screenings
⏰ Hours: Saturday 9am-12pm
🗣 Languages: Spanish, Mandarin`

func TestParseOrdinalListing(t *testing.T) {
	records, err := Parse(healthcareListing, dictionary.CategoryHealthcare)
	require.NoError(t, err)
	require.Len(t, records, 2)

	t.Run("first record", func(t *testing.T) {
		rec := records[0]
		assert.Equal(t, "1", rec.ID)
		assert.Equal(t, "West Side Dental Clinic", rec.Name)
		assert.Equal(t, "123 S Pulaski Rd, Chicago, IL 60623", rec.Address)
		assert.Equal(t, "773-555-1234", rec.Phone)
		assert.Equal(t, "7735551234", rec.PhoneDigits)
		assert.Equal(t, "https://westsidedental.example.org", rec.Website)
		assert.Equal(t, "60623", rec.ZipCode)
		assert.Equal(t, []string{"dental", "pediatric"}, rec.Services)
		assert.Equal(t, "Dental exams, cleanings, pediatric dentistry", rec.ServicesText)
		assert.Equal(t, []string{"Dental", "Pediatric"}, rec.Subcategories)
		assert.Equal(t, []string{"spanish", "polish"}, rec.Languages)

		require.Contains(t, rec.Hours, "monday")
		require.Contains(t, rec.Hours, "thursday")
		assert.NotContains(t, rec.Hours, "friday")
		require.NotEmpty(t, rec.Hours["monday"])
		assert.Equal(t, core.TimeRange{
			Start: core.ClockTime{Hour: 9},
			End:   core.ClockTime{Hour: 17},
		}, rec.Hours["monday"][0])

		require.NoError(t, core.ValidateRecord(rec))
	})

	t.Run("second record", func(t *testing.T) {
		rec := records[1]
		assert.Equal(t, "2", rec.ID)
		assert.Equal(t, "Little Village Community Health Center", rec.Name)
		assert.Equal(t, "2600 W Cermak Rd, Chicago, IL 60608", rec.Address)
		assert.Equal(t, "3125559876", rec.PhoneDigits)
		assert.Equal(t, "60608", rec.ZipCode)
		assert.Equal(t, []string{"immunization", "primary_care", "urgent_care"}, rec.Services)
		assert.Contains(t, rec.AvailabilityBadges, core.BadgeFree)
		assert.Contains(t, rec.AvailabilityBadges, core.BadgeWalkIn)
		require.Contains(t, rec.Hours, "saturday")
		assert.Equal(t, []core.TimeRange{{
			Start: core.ClockTime{Hour: 9},
			End:   core.ClockTime{Hour: 12},
		}}, rec.Hours["saturday"])
	})

	t.Run("search blob regenerates", func(t *testing.T) {
		for _, rec := range records {
			assert.Equal(t, rec.BuildSearchBlob(), rec.SearchBlob)
		}
	})
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse(healthcareListing, dictionary.CategoryHealthcare)
	require.NoError(t, err)
	second, err := Parse(healthcareListing, dictionary.CategoryHealthcare)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseBlankLineFallback(t *testing.T) {
	text := `Community Food Pantry
📍 Address: 500 W 63rd St, Chicago, IL 60621
⏰ Hours: Sat 10am-1pm

Neighborhood Helpline
📞 Phone: 773-555-0000`

	records, err := Parse(text, dictionary.CategoryResettlement)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "item_1", records[0].ID)
	assert.Equal(t, "Community Food Pantry", records[0].Name)
	assert.Equal(t, "60621", records[0].ZipCode)
	assert.Equal(t, "item_2", records[1].ID)
	assert.Equal(t, "7735550000", records[1].PhoneDigits)
}

func TestParseSkipsNoiseBlocks(t *testing.T) {
	text := `Updated August 2025

Community Food Pantry
📍 Address: 500 W 63rd St, Chicago, IL 60621

-- end of list --`

	records, err := Parse(text, dictionary.CategoryResettlement)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Community Food Pantry", records[0].Name)
}

func TestParseDuplicateOrdinals(t *testing.T) {
	text := `7. First Clinic
📞 Phone: 773-555-1111

7. Second Clinic
📞 Phone: 773-555-2222

7. Third Clinic
📞 Phone: 773-555-3333`

	records, err := Parse(text, dictionary.CategoryHealthcare)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "7", records[0].ID)
	assert.Equal(t, "7_2", records[1].ID)
	assert.Equal(t, "7_3", records[2].ID)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("   \n\n  ", dictionary.CategoryHealthcare)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLineClassificationOrder(t *testing.T) {
	// A line naming both a phone label and an hours label stays a phone line.
	text := `1. Helpline Center
📞 Phone: 773-555-1234 (hours: daytime)
Some other detail

2. Second Center
📍 Address: 1 N State St, Chicago, IL 60602`

	records, err := Parse(text, dictionary.CategoryHealthcare)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "773-555-1234", records[0].Phone)
	assert.Empty(t, records[0].HoursText)
}

func TestParseKeepsFreeTextContactFields(t *testing.T) {
	text := `1. Neighborhood Wellness Center
📍 2200 W Division St, Chicago, IL 60622
📞 Call front desk for number
🌐 www.wellness-chicago.org

2. Second Center
📞 Phone: 312-555-1100
📍 1 N State St, Chicago, IL 60602`

	records, err := Parse(text, dictionary.CategoryHealthcare)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Call front desk for number", records[0].Phone)
	assert.Empty(t, records[0].PhoneDigits)
	assert.Equal(t, "www.wellness-chicago.org", records[0].Website)
}

func TestOpportunisticAddress(t *testing.T) {
	text := `1. Uptown Legal Aid
4554 N Broadway, Chicago, IL 60640
📞 Phone: 773-555-7700

2. Loop Office
📍 Address: 77 W Washington St, Chicago, IL 60602
📞 Phone: 312-555-1100`

	records, err := Parse(text, dictionary.CategoryResettlement)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "4554 N Broadway, Chicago, IL 60640", records[0].Address)
	assert.Equal(t, "60640", records[0].ZipCode)
}

func TestAvailabilityBadges(t *testing.T) {
	badges := AvailabilityBadges("free walk-in clinic, interpreter available, by appointment after 5pm")
	assert.Equal(t, []core.Badge{
		core.BadgeFree,
		core.BadgeWalkIn,
		core.BadgeInterpreter,
		core.BadgeAppointment,
	}, badges)

	assert.Nil(t, AvailabilityBadges("nothing notable"))
}

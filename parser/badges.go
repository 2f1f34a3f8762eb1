package parser

import (
	"github.com/poiesic/resourcedir/core"
	"github.com/poiesic/resourcedir/dictionary"
)

// AvailabilityBadges derives badge labels from listing text, typically the
// record's name and services text combined.
func AvailabilityBadges(text string) []core.Badge {
	tags := dictionary.Badges.Classify(text)
	if len(tags) == 0 {
		return nil
	}
	badges := make([]core.Badge, len(tags))
	for i, tag := range tags {
		badges[i] = core.Badge(tag)
	}
	return badges
}

package trend

import "github.com/classpulse/classpulse/internal/signals"

const (
	// StrengthThreshold is the latest-score floor for a strength tag.
	StrengthThreshold = 80.0

	// GrowthThreshold is the latest-score ceiling for a growth-area tag.
	GrowthThreshold = 60.0
)

// TagSet holds per-standard strength and growth-area tags. Tags carry the
// standard's description, not its code, so they read as plain language.
type TagSet struct {
	Strengths   []string
	GrowthAreas []string
}

// Tags derives strength and growth-area tags from a student's mastery
// history. Records must be newest first; only the latest record per
// standard is considered. Output order follows the first appearance of
// each standard in the input, so identical inputs produce identical tags.
func Tags(records []signals.MasteryRecord) TagSet {
	var tags TagSet
	seen := make(map[string]bool, len(records))

	for _, r := range records {
		if seen[r.StandardID] {
			continue
		}
		seen[r.StandardID] = true

		switch {
		case r.Score >= StrengthThreshold:
			tags.Strengths = append(tags.Strengths, r.StandardDescription)
		case r.Score < GrowthThreshold:
			tags.GrowthAreas = append(tags.GrowthAreas, r.StandardDescription)
		}
	}

	return tags
}

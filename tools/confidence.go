package tools

// Tier thresholds for classifying a GetEntities combined score into a
// human-facing confidence band.
const (
	// strongTierThreshold is the minimum combined score for the
	// "strong" tier.
	strongTierThreshold = 0.85

	// moderateTierThreshold is the minimum combined score for the
	// "moderate" tier.
	moderateTierThreshold = 0.6

	// weakTierThreshold is the minimum combined score for the "weak"
	// tier.
	weakTierThreshold = 0.3
)

// ClassifyTier returns a tier classification for a combined score in
// [0,1]: strong (>=0.85), moderate (>=0.6), weak (>=0.3), or no_signal
// (<0.3).
func ClassifyTier(score float64) string {
	switch {
	case score >= strongTierThreshold:
		return "strong"
	case score >= moderateTierThreshold:
		return "moderate"
	case score >= weakTierThreshold:
		return "weak"
	default:
		return "no_signal"
	}
}

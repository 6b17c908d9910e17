package matching

// Tier is the coarse human-readable bucket derived from the overall score.
type Tier string

const (
	TierPerfect Tier = "perfect"
	TierGreat   Tier = "great"
	TierGood    Tier = "good"
	TierFair    Tier = "fair"
	TierNone    Tier = "none" // rejected pairs only
)

// Tier thresholds are product constants, unlike the explanation thresholds
// which are tunable configuration.
const (
	tierPerfectAt = 85
	tierGreatAt   = 70
	tierGoodAt    = 55
)

// TierForScore maps an overall score onto its tier.
func TierForScore(score int) Tier {
	switch {
	case score >= tierPerfectAt:
		return TierPerfect
	case score >= tierGreatAt:
		return TierGreat
	case score >= tierGoodAt:
		return TierGood
	default:
		return TierFair
	}
}

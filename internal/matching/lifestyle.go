package matching

import "fmt"

// scoreCleanliness maps the ordinal distance on the 1-5 cleanliness scale to
// a score: 100 - |Δ| * 25, clamped to [0,100]. One step apart is livable,
// the full scale apart is constant friction.
func scoreCleanliness(a, b ProfileView) (int, []Fragment) {
	diff := a.Lifestyle.Cleanliness - b.Lifestyle.Cleanliness
	if diff < 0 {
		diff = -diff
	}
	score := clampScore(100 - diff*25)

	var frag Fragment
	switch {
	case score >= 85:
		frag = Fragment{Dimension: DimCleanliness, Reason: "Similar cleanliness standards"}
	case score >= 50:
		frag = Fragment{Dimension: DimCleanliness, Reason: "Slightly different cleanliness expectations"}
	default:
		frag = Fragment{
			Dimension: DimCleanliness,
			Reason: fmt.Sprintf("Different cleanliness expectations (%d vs %d) - potential friction",
				a.Lifestyle.Cleanliness, b.Lifestyle.Cleanliness),
		}
	}

	return score, []Fragment{frag}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

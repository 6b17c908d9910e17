package matching

import "fmt"

// scoreBudget rates how well two budget windows line up: the overlap of the
// two ranges as a fraction of their union span. Identical ranges score 100,
// disjoint ranges 0, with linear interpolation in between.
func scoreBudget(a, b ProfileView) (int, []Fragment) {
	overlapStart := max(a.Budget.Min, b.Budget.Min)
	overlapEnd := min(a.Budget.Max, b.Budget.Max)

	unionStart := min(a.Budget.Min, b.Budget.Min)
	unionEnd := max(a.Budget.Max, b.Budget.Max)

	var score int
	switch {
	case overlapEnd < overlapStart:
		score = 0
	case unionEnd == unionStart:
		// Both are the same point value.
		score = 100
	default:
		score = roundRatio(overlapEnd-overlapStart, unionEnd-unionStart)
	}

	var frag Fragment
	switch {
	case score >= 90:
		frag = Fragment{Dimension: DimBudget, Reason: "Perfect budget match"}
	case score >= 60:
		frag = Fragment{Dimension: DimBudget, Reason: "Compatible budgets"}
	default:
		frag = Fragment{
			Dimension: DimBudget,
			Reason: fmt.Sprintf("Budget mismatch (%d-%d vs %d-%d)",
				a.Budget.Min, a.Budget.Max, b.Budget.Min, b.Budget.Max),
		}
	}

	return score, []Fragment{frag}
}

// roundRatio returns round(num/den * 100) using integer arithmetic so the
// engine stays bit-for-bit deterministic across platforms.
func roundRatio(num, den int) int {
	return (num*100 + den/2) / den
}

package matching

// Aggregate combines per-dimension sub-scores into one overall score:
// round(Σ score·weight / Σ weight).
//
// A dimension missing from the weights map is excluded from both numerator
// and denominator — absence is an explicit configuration choice, never a
// silent zero weight. An effectively all-zero vector is a ConfigError; the
// engine validates weights before scoring, so hitting it here means the
// caller bypassed validation.
func Aggregate(scores map[Dimension]int, weights Weights) (int, error) {
	num, den := 0, 0
	for dim, score := range scores {
		w, ok := weights[dim]
		if !ok {
			continue
		}
		num += score * w
		den += w
	}
	if den == 0 {
		return 0, newConfigError("no positive weight covers any scored dimension")
	}
	return (num + den/2) / den, nil
}

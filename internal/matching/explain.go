package matching

import "sort"

// Impact classifies how a dimension's sub-score contributed to the match.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNeutral  Impact = "neutral"
	ImpactNegative Impact = "negative"
)

// Fragment is a raw reason emitted by a scorer, before impact
// classification and ordering.
type Fragment struct {
	Dimension Dimension
	Reason    string
}

// Explanation is one consumable line of the match report.
type Explanation struct {
	Dimension Dimension `json:"dimension"`
	Reason    string    `json:"reason"`
	Impact    Impact    `json:"impact"`
}

// ExplainConfig holds the tunable classification thresholds and per-bucket
// output caps. Thresholds are configuration rather than constants so product
// can retune them without a code change.
type ExplainConfig struct {
	PositiveAt  int // sub-score >= PositiveAt  -> positive
	NegativeAt  int // sub-score <  NegativeAt  -> negative
	MaxPositive int
	MaxNeutral  int
	MaxNegative int
}

// DefaultExplainConfig returns the product-default thresholds (75/45) and
// caps (5 positive, 3 neutral, 3 negative).
func DefaultExplainConfig() ExplainConfig {
	return ExplainConfig{
		PositiveAt:  75,
		NegativeAt:  45,
		MaxPositive: 5,
		MaxNeutral:  3,
		MaxNegative: 3,
	}
}

func (c ExplainConfig) validate() error {
	if c.NegativeAt > c.PositiveAt {
		return newConfigError("negative threshold %d exceeds positive threshold %d", c.NegativeAt, c.PositiveAt)
	}
	if c.MaxPositive < 0 || c.MaxNeutral < 0 || c.MaxNegative < 0 {
		return newConfigError("explanation caps must be non-negative")
	}
	return nil
}

func (c ExplainConfig) classify(score int) Impact {
	switch {
	case score >= c.PositiveAt:
		return ImpactPositive
	case score < c.NegativeAt:
		return ImpactNegative
	default:
		return ImpactNeutral
	}
}

// AssembleExplanations classifies each fragment by its dimension's
// sub-score, orders the list by weight contribution (weight × sub-score)
// descending, and truncates each impact bucket to its configured cap.
//
// Ordering is fully deterministic: contribution ties fall back to the fixed
// dimension priority, never to map iteration order.
func AssembleExplanations(fragments []Fragment, scores map[Dimension]int, weights Weights, cfg ExplainConfig) []Explanation {
	type ranked struct {
		exp          Explanation
		contribution int
		priority     int
	}

	items := make([]ranked, 0, len(fragments))
	for _, f := range fragments {
		score := scores[f.Dimension]
		items = append(items, ranked{
			exp: Explanation{
				Dimension: f.Dimension,
				Reason:    f.Reason,
				Impact:    cfg.classify(score),
			},
			contribution: weights[f.Dimension] * score,
			priority:     priorityOf(f.Dimension),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].contribution != items[j].contribution {
			return items[i].contribution > items[j].contribution
		}
		return items[i].priority < items[j].priority
	})

	caps := map[Impact]int{
		ImpactPositive: cfg.MaxPositive,
		ImpactNeutral:  cfg.MaxNeutral,
		ImpactNegative: cfg.MaxNegative,
	}
	taken := map[Impact]int{}

	out := make([]Explanation, 0, len(items))
	for _, it := range items {
		if taken[it.exp.Impact] >= caps[it.exp.Impact] {
			continue
		}
		taken[it.exp.Impact]++
		out = append(out, it.exp)
	}
	return out
}

package matching

// Dimension is one scored axis of compatibility.
type Dimension string

const (
	DimBudget      Dimension = "budget"
	DimCleanliness Dimension = "cleanliness"
	DimSchedule    Dimension = "schedule"
	DimPersonality Dimension = "personality"
	DimInterests   Dimension = "interests"
)

// dimensionPriority is the fixed tie-break order for explanations and any
// other place that needs a deterministic dimension ordering.
var dimensionPriority = []Dimension{
	DimBudget,
	DimCleanliness,
	DimSchedule,
	DimPersonality,
	DimInterests,
}

func priorityOf(d Dimension) int {
	for i, p := range dimensionPriority {
		if p == d {
			return i
		}
	}
	return len(dimensionPriority)
}

// Weights maps each dimension to its non-negative share of the overall
// score. The default vector sums to 100 so the weighted average stays a
// straightforward percentage, but any positive total is accepted.
type Weights map[Dimension]int

// DefaultWeights returns the system weight vector. Budget leads because
// financial mismatch is the most common reason shared living falls through.
func DefaultWeights() Weights {
	return Weights{
		DimBudget:      25,
		DimCleanliness: 20,
		DimSchedule:    20,
		DimPersonality: 20,
		DimInterests:   15,
	}
}

// Validate rejects unknown dimension names, negative weights, and the
// all-zero vector (which would make the weighted average undefined).
func (w Weights) Validate() error {
	total := 0
	for dim, weight := range w {
		if priorityOf(dim) == len(dimensionPriority) {
			return newConfigError("unknown dimension %q", dim)
		}
		if weight < 0 {
			return newConfigError("dimension %q has negative weight %d", dim, weight)
		}
		total += weight
	}
	if total == 0 {
		return newConfigError("weights sum to zero")
	}
	return nil
}

// clone returns an independent copy so effective-weight computation never
// mutates a caller-supplied map.
func (w Weights) clone() Weights {
	out := make(Weights, len(w))
	for dim, weight := range w {
		out[dim] = weight
	}
	return out
}

// EffectiveWeights resolves the weight vector for a pair of profiles.
//
// Rules:
//   - Neither side overrides: the system defaults are used as-is.
//   - One side overrides: its vector is averaged with the defaults.
//   - Both override: the two vectors are averaged.
//
// Averaging runs over the union of dimensions; a side that omits a dimension
// contributes the system default weight for it, so a partial override never
// silently zeroes out a dimension. Integer average rounds half up.
func EffectiveWeights(defaults Weights, a, b ProfileView) Weights {
	if a.WeightsOverride == nil && b.WeightsOverride == nil {
		return defaults.clone()
	}

	left := a.WeightsOverride
	if left == nil {
		left = defaults
	}
	right := b.WeightsOverride
	if right == nil {
		right = defaults
	}

	merged := make(Weights)
	for _, dim := range dimensionPriority {
		lw, lok := left[dim]
		rw, rok := right[dim]
		def, dok := defaults[dim]
		if !lok {
			if !dok {
				continue // dimension deliberately absent everywhere
			}
			lw = def
		}
		if !rok {
			if !dok {
				continue
			}
			rw = def
		}
		merged[dim] = (lw + rw + 1) / 2
	}
	return merged
}

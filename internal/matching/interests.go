package matching

import (
	"fmt"
	"sort"
	"strings"
)

// scoreInterests rates tag overlap relative to the smaller interest set:
// min(100, overlap / min(|a|,|b|) * 100). A profile whose every interest is
// shared by the other side scores 100 even if the other side lists more.
//
// When either set is empty there is nothing to compare; the configured
// neutral score is returned and the pair is flagged as limited-data rather
// than penalized — absence of data is not incompatibility.
func scoreInterests(a, b ProfileView, neutral int) (score int, frags []Fragment, limited bool) {
	if len(a.Interests) == 0 || len(b.Interests) == 0 {
		return neutral, []Fragment{{
			Dimension: DimInterests,
			Reason:    "Interests not specified - limited data",
		}}, true
	}

	shared := SharedInterests(a, b)
	smaller := min(len(a.Interests), len(b.Interests))
	score = min(100, roundRatio(len(shared), smaller))

	var frag Fragment
	switch {
	case len(shared) >= 2:
		frag = Fragment{
			Dimension: DimInterests,
			Reason:    fmt.Sprintf("Share %d interests: %s", len(shared), strings.Join(shared, ", ")),
		}
	case len(shared) == 1:
		frag = Fragment{Dimension: DimInterests, Reason: "One shared interest: " + shared[0]}
	default:
		frag = Fragment{Dimension: DimInterests, Reason: "No overlapping interests - different hobbies"}
	}

	return score, []Fragment{frag}, false
}

// SharedInterests returns the case-insensitive intersection of the two
// interest sets, sorted so output is stable.
func SharedInterests(a, b ProfileView) []string {
	have := make(map[string]bool, len(a.Interests))
	for _, tag := range a.Interests {
		have[strings.ToLower(strings.TrimSpace(tag))] = true
	}

	seen := make(map[string]bool)
	var shared []string
	for _, tag := range b.Interests {
		norm := strings.ToLower(strings.TrimSpace(tag))
		if have[norm] && !seen[norm] {
			seen[norm] = true
			shared = append(shared, norm)
		}
	}
	sort.Strings(shared)
	return shared
}

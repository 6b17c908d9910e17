package matching

import (
	"fmt"
	"strings"
)

// Violation records one deal-breaker that disqualifies a pairing.
type Violation struct {
	Constraint DealBreaker `json:"constraint"`
	DeclaredBy uint64      `json:"declaredBy"`
	Detail     string      `json:"detail"`
}

// AdmissionDecision is the outcome of the deal-breaker phase. A pair that is
// not admissible never receives a numeric score.
type AdmissionDecision struct {
	Admissible bool        `json:"admissible"`
	Violations []Violation `json:"violations,omitempty"`
}

// Reason renders the violations as a single rejection string, e.g.
// "no_smokers violated; no_pets violated".
func (d AdmissionDecision) Reason() string {
	if d.Admissible {
		return ""
	}
	parts := make([]string, 0, len(d.Violations))
	for _, v := range d.Violations {
		parts = append(parts, fmt.Sprintf("%s violated", v.Constraint))
	}
	return strings.Join(parts, "; ")
}

// EvaluateDealBreakers checks every hard constraint declared by either
// party against the other party's attributes. The check is symmetric: a
// violation in either direction rejects the pair, and all violations are
// collected rather than short-circuiting on the first, so the rejection
// reason is complete.
func EvaluateDealBreakers(a, b ProfileView) AdmissionDecision {
	var violations []Violation
	violations = append(violations, directedViolations(a, b)...)
	violations = append(violations, directedViolations(b, a)...)
	return AdmissionDecision{
		Admissible: len(violations) == 0,
		Violations: violations,
	}
}

// directedViolations checks the constraints declared by `declarer` against
// the attributes of `other`.
func directedViolations(declarer, other ProfileView) []Violation {
	var out []Violation

	if declarer.hasDealBreaker(NoSmokers) {
		if other.Lifestyle.Smoking == SmokingOccasionally || other.Lifestyle.Smoking == SmokingRegularly {
			out = append(out, Violation{
				Constraint: NoSmokers,
				DeclaredBy: declarer.ID,
				Detail:     fmt.Sprintf("profile %d smokes (%s)", other.ID, other.Lifestyle.Smoking),
			})
		}
	}

	if declarer.hasDealBreaker(NoPets) && other.Lifestyle.Pets == PetsHasPets {
		out = append(out, Violation{
			Constraint: NoPets,
			DeclaredBy: declarer.ID,
			Detail:     fmt.Sprintf("profile %d has pets", other.ID),
		})
	}

	if declarer.hasDealBreaker(QuietOnly) {
		if other.Lifestyle.NoiseTolerance >= 4 || other.Lifestyle.GuestsFrequency == GuestsOften {
			out = append(out, Violation{
				Constraint: QuietOnly,
				DeclaredBy: declarer.ID,
				Detail: fmt.Sprintf("profile %d noise tolerance %d, guests %s",
					other.ID, other.Lifestyle.NoiseTolerance, other.Lifestyle.GuestsFrequency),
			})
		}
	}

	// Gender is optional on ProfileView; the constraint only applies when
	// both sides declare one.
	if declarer.hasDealBreaker(SameGenderOnly) {
		if declarer.Gender != "" && other.Gender != "" && declarer.Gender != other.Gender {
			out = append(out, Violation{
				Constraint: SameGenderOnly,
				DeclaredBy: declarer.ID,
				Detail:     fmt.Sprintf("genders differ (%s vs %s)", declarer.Gender, other.Gender),
			})
		}
	}

	return out
}

package matching

import "fmt"

// Smoking habit vocabulary.
type Smoking string

const (
	SmokingNever        Smoking = "never"
	SmokingOccasionally Smoking = "occasionally"
	SmokingRegularly    Smoking = "regularly"
)

// Pets situation vocabulary.
type Pets string

const (
	PetsNone      Pets = "none"
	PetsHasPets   Pets = "has_pets"
	PetsAllergic  Pets = "allergic"
	PetsLovesPets Pets = "loves_pets"
)

// GuestsFrequency vocabulary.
type GuestsFrequency string

const (
	GuestsRarely    GuestsFrequency = "rarely"
	GuestsSometimes GuestsFrequency = "sometimes"
	GuestsOften     GuestsFrequency = "often"
)

// SleepSchedule vocabulary.
type SleepSchedule string

const (
	SleepEarlyBird SleepSchedule = "early_bird"
	SleepNightOwl  SleepSchedule = "night_owl"
	SleepFlexible  SleepSchedule = "flexible"
)

// SocialStyle vocabulary.
type SocialStyle string

const (
	SocialIntrovert SocialStyle = "introvert"
	SocialExtrovert SocialStyle = "extrovert"
	SocialAmbivert  SocialStyle = "ambivert"
)

// PrivacyPreference vocabulary, ordered from most to least private.
type PrivacyPreference string

const (
	PrivacyVeryPrivate PrivacyPreference = "very_private"
	PrivacyBalanced    PrivacyPreference = "balanced"
	PrivacyVerySocial  PrivacyPreference = "very_social"
)

// DealBreaker names a hard constraint a user declares against candidates.
type DealBreaker string

const (
	NoSmokers      DealBreaker = "no_smokers"
	NoPets         DealBreaker = "no_pets"
	QuietOnly      DealBreaker = "quiet_only"
	SameGenderOnly DealBreaker = "same_gender_only"
)

// BudgetRange is a currency-agnostic monthly budget window.
type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Lifestyle groups the daily-habit attributes of a profile.
// Cleanliness and NoiseTolerance are ordinals on a 1-5 scale.
type Lifestyle struct {
	Smoking         Smoking         `json:"smoking"`
	Pets            Pets            `json:"pets"`
	Cleanliness     int             `json:"cleanliness"`
	GuestsFrequency GuestsFrequency `json:"guestsFrequency"`
	NoiseTolerance  int             `json:"noiseTolerance"`
	SleepSchedule   SleepSchedule   `json:"sleepSchedule"`
}

// Personality groups the social-temperament attributes of a profile.
type Personality struct {
	SocialStyle SocialStyle       `json:"socialStyle"`
	Privacy     PrivacyPreference `json:"privacyPreference"`
}

// ProfileView is the normalized, read-only snapshot of one user's matchable
// attributes. The profile store owns validation of raw onboarding input;
// Validate here is the engine's last line of defense so that a malformed
// record never reaches the scorers.
type ProfileView struct {
	ID              uint64        `json:"id"`
	Gender          string        `json:"gender,omitempty"` // optional, only used by same_gender_only
	Budget          BudgetRange   `json:"budget"`
	Lifestyle       Lifestyle     `json:"lifestyle"`
	Personality     Personality   `json:"personality"`
	DealBreakers    []DealBreaker `json:"dealBreakers,omitempty"`
	Interests       []string      `json:"interests,omitempty"`
	WeightsOverride Weights       `json:"weightsOverride,omitempty"`
}

var (
	validSmoking = map[Smoking]bool{SmokingNever: true, SmokingOccasionally: true, SmokingRegularly: true}
	validPets    = map[Pets]bool{PetsNone: true, PetsHasPets: true, PetsAllergic: true, PetsLovesPets: true}
	validGuests  = map[GuestsFrequency]bool{GuestsRarely: true, GuestsSometimes: true, GuestsOften: true}
	validSleep   = map[SleepSchedule]bool{SleepEarlyBird: true, SleepNightOwl: true, SleepFlexible: true}
	validSocial  = map[SocialStyle]bool{SocialIntrovert: true, SocialExtrovert: true, SocialAmbivert: true}
	validPrivacy = map[PrivacyPreference]bool{PrivacyVeryPrivate: true, PrivacyBalanced: true, PrivacyVerySocial: true}
	validDB      = map[DealBreaker]bool{NoSmokers: true, NoPets: true, QuietOnly: true, SameGenderOnly: true}
)

// Validate checks every enumerated field against its closed vocabulary and
// the budget/ordinal invariants. Returns a *ValidationError on the first
// violation found.
func (p ProfileView) Validate() error {
	if p.Budget.Min > p.Budget.Max {
		return newValidationError(p.ID, fmt.Sprintf("budget min %d exceeds max %d", p.Budget.Min, p.Budget.Max))
	}
	if p.Budget.Min < 0 {
		return newValidationError(p.ID, fmt.Sprintf("budget min %d is negative", p.Budget.Min))
	}
	if !validSmoking[p.Lifestyle.Smoking] {
		return newValidationError(p.ID, fmt.Sprintf("unknown smoking value %q", p.Lifestyle.Smoking))
	}
	if !validPets[p.Lifestyle.Pets] {
		return newValidationError(p.ID, fmt.Sprintf("unknown pets value %q", p.Lifestyle.Pets))
	}
	if p.Lifestyle.Cleanliness < 1 || p.Lifestyle.Cleanliness > 5 {
		return newValidationError(p.ID, fmt.Sprintf("cleanliness %d outside 1-5", p.Lifestyle.Cleanliness))
	}
	if !validGuests[p.Lifestyle.GuestsFrequency] {
		return newValidationError(p.ID, fmt.Sprintf("unknown guestsFrequency value %q", p.Lifestyle.GuestsFrequency))
	}
	if p.Lifestyle.NoiseTolerance < 1 || p.Lifestyle.NoiseTolerance > 5 {
		return newValidationError(p.ID, fmt.Sprintf("noiseTolerance %d outside 1-5", p.Lifestyle.NoiseTolerance))
	}
	if !validSleep[p.Lifestyle.SleepSchedule] {
		return newValidationError(p.ID, fmt.Sprintf("unknown sleepSchedule value %q", p.Lifestyle.SleepSchedule))
	}
	if !validSocial[p.Personality.SocialStyle] {
		return newValidationError(p.ID, fmt.Sprintf("unknown socialStyle value %q", p.Personality.SocialStyle))
	}
	if !validPrivacy[p.Personality.Privacy] {
		return newValidationError(p.ID, fmt.Sprintf("unknown privacyPreference value %q", p.Personality.Privacy))
	}
	for _, db := range p.DealBreakers {
		if !validDB[db] {
			return newValidationError(p.ID, fmt.Sprintf("unknown deal-breaker %q", db))
		}
	}
	if p.WeightsOverride != nil {
		if err := p.WeightsOverride.Validate(); err != nil {
			return newValidationError(p.ID, fmt.Sprintf("weights override: %v", err))
		}
	}
	return nil
}

// hasDealBreaker reports whether the profile declares the given constraint.
func (p ProfileView) hasDealBreaker(db DealBreaker) bool {
	for _, d := range p.DealBreakers {
		if d == db {
			return true
		}
	}
	return false
}

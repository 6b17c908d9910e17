package matching

// Personality blend: social style carries more day-to-day weight than the
// privacy preference, 60/40.
const (
	socialStyleShare = 60
	privacyShare     = 40
)

// privacyOrdinal positions on the very_private..very_social axis.
var privacyOrdinal = map[PrivacyPreference]int{
	PrivacyVeryPrivate: 1,
	PrivacyBalanced:    2,
	PrivacyVerySocial:  3,
}

// scorePersonality combines social-style compatibility with the ordinal
// distance between privacy preferences.
//
// Social style table: same value 100, ambivert with either extreme 80,
// opposite extremes 50. Privacy distance reuses the cleanliness formula
// shape (100 - |Δ| * 25) on the three-step privacy scale.
func scorePersonality(a, b ProfileView) (int, []Fragment) {
	social := scoreSocialStyle(a.Personality.SocialStyle, b.Personality.SocialStyle)

	pd := privacyOrdinal[a.Personality.Privacy] - privacyOrdinal[b.Personality.Privacy]
	if pd < 0 {
		pd = -pd
	}
	privacy := clampScore(100 - pd*25)

	score := (social*socialStyleShare + privacy*privacyShare + 50) / 100

	var frag Fragment
	switch {
	case social == 100 && a.Personality.SocialStyle == SocialIntrovert:
		frag = Fragment{Dimension: DimPersonality, Reason: "Both introverts - will respect each other's space"}
	case social == 100 && a.Personality.SocialStyle == SocialExtrovert:
		frag = Fragment{Dimension: DimPersonality, Reason: "Both extroverts - great for socializing together"}
	case social == 50:
		frag = Fragment{Dimension: DimPersonality, Reason: "Introvert-extrovert mix may require adjustment"}
	case score >= 75:
		frag = Fragment{Dimension: DimPersonality, Reason: "Compatible personalities"}
	default:
		frag = Fragment{Dimension: DimPersonality, Reason: "Different social temperaments"}
	}

	return score, []Fragment{frag}
}

func scoreSocialStyle(a, b SocialStyle) int {
	switch {
	case a == b:
		return 100
	case a == SocialAmbivert || b == SocialAmbivert:
		return 80
	default:
		// introvert vs extrovert
		return 50
	}
}

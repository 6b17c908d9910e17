package db

import (
	"time"

	"github.com/pokojowo/match-service/internal/matching"
)

// User table
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time
	Gender       string    `gorm:"size:16"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Profile holds one user's matchable attributes, normalized by the
// onboarding flow before it lands here. Set-valued fields (deal-breakers,
// interests, weight overrides) are stored as JSON columns.
//
// Complete is only set once onboarding has filled every required field;
// candidate retrieval ignores incomplete profiles so the engine never sees
// half-filled records.
type Profile struct {
	UserID          uint64         `gorm:"primaryKey"`
	BudgetMin       int            `gorm:"not null"`
	BudgetMax       int            `gorm:"not null"`
	Smoking         string         `gorm:"size:16;not null"`
	Pets            string         `gorm:"size:16;not null"`
	Cleanliness     int            `gorm:"not null"`
	GuestsFrequency string         `gorm:"size:16;not null"`
	NoiseTolerance  int            `gorm:"not null"`
	SleepSchedule   string         `gorm:"size:16;not null"`
	SocialStyle     string         `gorm:"size:16;not null"`
	Privacy         string         `gorm:"size:16;not null"`
	DealBreakers    []string       `gorm:"serializer:json"`
	Interests       []string       `gorm:"serializer:json"`
	WeightsOverride map[string]int `gorm:"serializer:json"`
	Complete        bool           `gorm:"default:false;index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`

	User User `gorm:"foreignKey:UserID"`
}

// ToView converts the stored profile (plus its owner's gender) into the
// engine's immutable ProfileView.
func (p Profile) ToView(gender string) matching.ProfileView {
	view := matching.ProfileView{
		ID:     p.UserID,
		Gender: gender,
		Budget: matching.BudgetRange{Min: p.BudgetMin, Max: p.BudgetMax},
		Lifestyle: matching.Lifestyle{
			Smoking:         matching.Smoking(p.Smoking),
			Pets:            matching.Pets(p.Pets),
			Cleanliness:     p.Cleanliness,
			GuestsFrequency: matching.GuestsFrequency(p.GuestsFrequency),
			NoiseTolerance:  p.NoiseTolerance,
			SleepSchedule:   matching.SleepSchedule(p.SleepSchedule),
		},
		Personality: matching.Personality{
			SocialStyle: matching.SocialStyle(p.SocialStyle),
			Privacy:     matching.PrivacyPreference(p.Privacy),
		},
		Interests: p.Interests,
	}
	for _, d := range p.DealBreakers {
		view.DealBreakers = append(view.DealBreakers, matching.DealBreaker(d))
	}
	if len(p.WeightsOverride) > 0 {
		view.WeightsOverride = make(matching.Weights, len(p.WeightsOverride))
		for dim, w := range p.WeightsOverride {
			view.WeightsOverride[matching.Dimension(dim)] = w
		}
	}
	return view
}

package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	seedSmoking  = []string{"never", "never", "never", "occasionally", "regularly"}
	seedPets     = []string{"none", "none", "has_pets", "allergic", "loves_pets"}
	seedGuests   = []string{"rarely", "sometimes", "sometimes", "often"}
	seedSleep    = []string{"early_bird", "night_owl", "flexible", "flexible"}
	seedSocial   = []string{"introvert", "extrovert", "ambivert"}
	seedPrivacy  = []string{"very_private", "balanced", "balanced", "very_social"}
	seedTags     = []string{"cooking", "gaming", "hiking", "music", "movies", "yoga", "reading", "cycling", "board games", "photography"}
	seedBreakers = [][]string{nil, nil, {"no_smokers"}, {"no_pets"}, {"no_smokers", "quiet_only"}, {"same_gender_only"}}
)

// SeedTestData resets the database and populates it with demo users and
// preference profiles.
//
// Behavior:
//  1. Clears existing data in `users` and `profiles` tables.
//  2. Creates 20 users (10 male, 10 female) with hashed passwords.
//  3. Gives every user a complete matchable profile drawn from realistic
//     preference pools; a few carry deal-breakers and weight overrides.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(42)) // fixed seed keeps demo data reproducible

	// --- Fresh start ---
	if err := db.Exec("DELETE FROM profiles").Error; err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	for i := 1; i <= 20; i++ {
		gender := "male"
		if i > 10 {
			gender = "female"
		}

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Gender:       gender,
			Active:       true,
			LastLoginAt:  time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		budgetMin := 800 + r.Intn(8)*100
		profile := Profile{
			UserID:          user.ID,
			BudgetMin:       budgetMin,
			BudgetMax:       budgetMin + 400 + r.Intn(5)*100,
			Smoking:         pick(r, seedSmoking),
			Pets:            pick(r, seedPets),
			Cleanliness:     1 + r.Intn(5),
			GuestsFrequency: pick(r, seedGuests),
			NoiseTolerance:  1 + r.Intn(5),
			SleepSchedule:   pick(r, seedSleep),
			SocialStyle:     pick(r, seedSocial),
			Privacy:         pick(r, seedPrivacy),
			DealBreakers:    seedBreakers[r.Intn(len(seedBreakers))],
			Interests:       pickTags(r, 2+r.Intn(4)),
			Complete:        true,
		}

		// A few users care more about cleanliness than money.
		if i%7 == 0 {
			profile.WeightsOverride = map[string]int{
				"budget":      15,
				"cleanliness": 35,
				"schedule":    20,
				"personality": 20,
				"interests":   10,
			}
		}

		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}

	log.Println("Seeded 20 users with matchable profiles.")
	return nil
}

func pick(r *rand.Rand, pool []string) string {
	return pool[r.Intn(len(pool))]
}

func pickTags(r *rand.Rand, n int) []string {
	perm := r.Perm(len(seedTags))
	if n > len(perm) {
		n = len(perm)
	}
	tags := make([]string, 0, n)
	for _, idx := range perm[:n] {
		tags = append(tags, seedTags[idx])
	}
	return tags
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/pokojowo/match-service/internal/db"
	"github.com/pokojowo/match-service/internal/matching"
	"github.com/pokojowo/match-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&db.User{}, &db.Profile{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func seedUserWithProfile(t *testing.T, gdb *gorm.DB, id uint64, name, gender string, active, complete bool) {
	t.Helper()
	require.NoError(t, gdb.Create(&db.User{
		ID: id, Username: name, Email: name + "@test.com", PasswordHash: "x",
		Gender: gender,
	}).Error)
	if !active {
		// Active carries a default:true tag, so a zero value on Create is
		// dropped by GORM; deactivation has to be an explicit update.
		require.NoError(t, gdb.Model(&db.User{}).Where("id = ?", id).Update("active", false).Error)
	}
	require.NoError(t, gdb.Create(&db.Profile{
		UserID:    id,
		BudgetMin: 1000, BudgetMax: 1500,
		Smoking: "never", Pets: "none",
		Cleanliness: 3, GuestsFrequency: "sometimes",
		NoiseTolerance: 2, SleepSchedule: "flexible",
		SocialStyle: "ambivert", Privacy: "balanced",
		Interests:       []string{"cooking"},
		DealBreakers:    []string{"no_smokers"},
		WeightsOverride: map[string]int{"budget": 40},
		Complete:        complete,
	}).Error)
}

func TestGetView(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	seedUserWithProfile(t, dbase, 1, "user1", "female", true, true)

	view, err := repo.GetView(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), view.ID)
	assert.Equal(t, "female", view.Gender)
	assert.Equal(t, matching.BudgetRange{Min: 1000, Max: 1500}, view.Budget)
	assert.Equal(t, matching.SmokingNever, view.Lifestyle.Smoking)
	assert.Equal(t, []matching.DealBreaker{matching.NoSmokers}, view.DealBreakers)
	assert.Equal(t, matching.Weights{matching.DimBudget: 40}, view.WeightsOverride)
	assert.NoError(t, view.Validate())
}

func TestGetViewNotFound(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	// Unknown user
	_, err := repo.GetView(ctx, 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Incomplete profile behaves like no profile at all
	seedUserWithProfile(t, dbase, 2, "user2", "", true, false)
	_, err = repo.GetView(ctx, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListCandidateViews(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	seedUserWithProfile(t, dbase, 1, "viewer", "female", true, true)
	seedUserWithProfile(t, dbase, 2, "candidate", "male", true, true)
	seedUserWithProfile(t, dbase, 3, "incomplete", "male", true, false) // excluded
	seedUserWithProfile(t, dbase, 4, "inactive", "male", false, true)   // excluded
	seedUserWithProfile(t, dbase, 5, "another", "female", true, true)

	views, err := repo.ListCandidateViews(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Ordered by user ID; the viewer never appears in their own pool.
	assert.Equal(t, uint64(2), views[0].ID)
	assert.Equal(t, uint64(5), views[1].ID)
	assert.Equal(t, "male", views[0].Gender)
}

func TestListCandidateViewsLimit(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	seedUserWithProfile(t, dbase, 1, "viewer", "", true, true)
	seedUserWithProfile(t, dbase, 2, "c2", "", true, true)
	seedUserWithProfile(t, dbase, 3, "c3", "", true, true)

	views, err := repo.ListCandidateViews(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, uint64(2), views[0].ID)
}

func TestCountCandidates(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	seedUserWithProfile(t, dbase, 1, "viewer", "", true, true)
	seedUserWithProfile(t, dbase, 2, "c2", "", true, true)
	seedUserWithProfile(t, dbase, 3, "inactive", "", false, true)

	count, err := repo.CountCandidates(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

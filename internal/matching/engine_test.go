package matching_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokojowo/match-service/internal/matching"
)

func TestComputePairFullPipeline(t *testing.T) {
	a := baseProfile(1)
	a.Budget = matching.BudgetRange{Min: 1000, Max: 1500}
	a.Lifestyle.Cleanliness = 4
	a.Lifestyle.SleepSchedule = matching.SleepEarlyBird
	a.DealBreakers = []matching.DealBreaker{matching.NoSmokers}
	a.Interests = []string{"cooking", "hiking"}

	b := baseProfile(2)
	b.Budget = matching.BudgetRange{Min: 1200, Max: 1800}
	b.Lifestyle.Cleanliness = 5
	b.Lifestyle.SleepSchedule = matching.SleepFlexible
	b.Interests = []string{"cooking", "hiking"}

	res, err := matching.ComputePair(a, b, matching.DefaultConfig())
	require.NoError(t, err)
	require.False(t, res.Rejected)
	require.NotNil(t, res.Score)

	// budget 38, cleanliness 75, schedule 80, personality 100, interests 100
	// -> (38*25 + 75*20 + 80*20 + 100*20 + 100*15) / 100 = 75.5, rounds to 76
	assert.Equal(t, 76, *res.Score)
	assert.Equal(t, matching.TierGreat, res.Tier)
	assert.Equal(t, 38, res.Breakdown[matching.DimBudget])
	assert.Equal(t, 75, res.Breakdown[matching.DimCleanliness])
	assert.Equal(t, 80, res.Breakdown[matching.DimSchedule])
	assert.Equal(t, []string{"cooking", "hiking"}, res.SharedInterests)
	assert.NotEmpty(t, res.Explanations)
}

func TestComputePairRejected(t *testing.T) {
	a := baseProfile(1)
	a.DealBreakers = []matching.DealBreaker{matching.NoPets}

	b := baseProfile(2)
	b.Lifestyle.Pets = matching.PetsHasPets

	res, err := matching.ComputePair(a, b, matching.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, res.Rejected)
	assert.Nil(t, res.Score)
	assert.Equal(t, matching.TierNone, res.Tier)
	assert.Contains(t, res.RejectionReason, "no_pets")
	assert.Empty(t, res.Breakdown)
	assert.Empty(t, res.Explanations)

	// A rejected result must not serialize a score at all; 0 would read as
	// "compatible but terrible".
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"score"`)
}

func TestComputePairDeterministic(t *testing.T) {
	a, b := baseProfile(1), baseProfile(2)
	a.Interests = []string{"Yoga", "cooking", "hiking"}
	b.Interests = []string{"HIKING", "yoga", "movies"}

	first, err := matching.ComputePair(a, b, matching.DefaultConfig())
	require.NoError(t, err)
	second, err := matching.ComputePair(a, b, matching.DefaultConfig())
	require.NoError(t, err)

	rawFirst, err := json.Marshal(first)
	require.NoError(t, err)
	rawSecond, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, rawFirst, rawSecond)
}

func TestComputePairScoreBounds(t *testing.T) {
	extremes := []matching.ProfileView{baseProfile(1), baseProfile(2)}
	extremes[0].Budget = matching.BudgetRange{Min: 100, Max: 200}
	extremes[0].Lifestyle.Cleanliness = 1
	extremes[0].Lifestyle.SleepSchedule = matching.SleepEarlyBird
	extremes[0].Personality = matching.Personality{SocialStyle: matching.SocialIntrovert, Privacy: matching.PrivacyVeryPrivate}
	extremes[0].Interests = []string{"chess"}
	extremes[1].Budget = matching.BudgetRange{Min: 5000, Max: 6000}
	extremes[1].Lifestyle.Cleanliness = 5
	extremes[1].Lifestyle.SleepSchedule = matching.SleepNightOwl
	extremes[1].Personality = matching.Personality{SocialStyle: matching.SocialExtrovert, Privacy: matching.PrivacyVerySocial}
	extremes[1].Interests = []string{"parties"}

	res, err := matching.ComputePair(extremes[0], extremes[1], matching.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, res.Score)
	assert.GreaterOrEqual(t, *res.Score, 0)
	assert.LessOrEqual(t, *res.Score, 100)

	identical, err := matching.ComputePair(baseProfile(1), baseProfile(2), matching.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, identical.Score)
	assert.LessOrEqual(t, *identical.Score, 100)
}

func TestComputePairInvalidProfile(t *testing.T) {
	a := baseProfile(1)
	a.Lifestyle.Cleanliness = 0

	var valErr *matching.ValidationError
	_, err := matching.ComputePair(a, baseProfile(2), matching.DefaultConfig())
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, uint64(1), valErr.ProfileID)
}

func TestComputePairInvalidConfig(t *testing.T) {
	cfg := matching.DefaultConfig()
	cfg.Weights = matching.Weights{matching.DimBudget: 0}

	var cfgErr *matching.ConfigError
	_, err := matching.ComputePair(baseProfile(1), baseProfile(2), cfg)
	require.ErrorAs(t, err, &cfgErr)
}

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected matching.Tier
	}{
		{100, matching.TierPerfect},
		{85, matching.TierPerfect},
		{84, matching.TierGreat},
		{70, matching.TierGreat},
		{69, matching.TierGood},
		{55, matching.TierGood},
		{54, matching.TierFair},
		{0, matching.TierFair},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, matching.TierForScore(tt.score), "score %d", tt.score)
	}
}

// batchCandidates builds a pool where cleanliness distance to the viewer
// (cleanliness 3, flexible sleeper, empty interests) spreads the scores:
// identical 93, one step 88, two steps 83.
func batchCandidates() []matching.ProfileView {
	identical := baseProfile(10)

	oneStep := baseProfile(11)
	oneStep.Lifestyle.Cleanliness = 4

	twoSteps := baseProfile(12)
	twoSteps.Lifestyle.Cleanliness = 5

	return []matching.ProfileView{twoSteps, identical, oneStep}
}

func TestComputeBatchRanksDescending(t *testing.T) {
	out, err := matching.ComputeBatch(context.Background(), baseProfile(1), batchCandidates(), matching.DefaultConfig(), matching.BatchOptions{})
	require.NoError(t, err)

	require.Len(t, out.Matches, 3)
	assert.Equal(t, uint64(10), out.Matches[0].CandidateID)
	assert.Equal(t, 93, *out.Matches[0].Score)
	assert.Equal(t, uint64(11), out.Matches[1].CandidateID)
	assert.Equal(t, 88, *out.Matches[1].Score)
	assert.Equal(t, uint64(12), out.Matches[2].CandidateID)
	assert.Equal(t, 83, *out.Matches[2].Score)

	assert.Equal(t, 3, out.TotalCandidates)
	assert.Equal(t, 3, out.TotalMatches)
	assert.Equal(t, 0, out.FilteredByDealBreakers)

	assert.Equal(t, 93, out.Stats.HighestScore)
	assert.Equal(t, 83, out.Stats.LowestScore)
	assert.Equal(t, 88, out.Stats.AverageScore)
	// 93 and 88 both clear the perfect threshold; 83 is great.
	assert.Equal(t, 2, out.Stats.PerfectMatches)
	assert.Equal(t, 1, out.Stats.GreatMatches)
	assert.Equal(t, 0, out.Stats.GoodMatches)

	// Both sides of every pair have empty interest sets, so the neutral
	// score was used and each match carries the limited-data flag.
	for _, m := range out.Matches {
		assert.True(t, m.LimitedData)
	}
}

func TestComputeBatchTiesBreakByCandidateID(t *testing.T) {
	// Identical profiles in shuffled ID order must rank by ascending ID,
	// every run.
	candidates := []matching.ProfileView{baseProfile(7), baseProfile(3), baseProfile(5)}

	for range 10 {
		out, err := matching.ComputeBatch(context.Background(), baseProfile(1), candidates, matching.DefaultConfig(), matching.BatchOptions{})
		require.NoError(t, err)
		require.Len(t, out.Matches, 3)
		assert.Equal(t, uint64(3), out.Matches[0].CandidateID)
		assert.Equal(t, uint64(5), out.Matches[1].CandidateID)
		assert.Equal(t, uint64(7), out.Matches[2].CandidateID)
	}
}

func TestComputeBatchMinScoreFilter(t *testing.T) {
	out, err := matching.ComputeBatch(context.Background(), baseProfile(1), batchCandidates(), matching.DefaultConfig(), matching.BatchOptions{MinScore: 85})
	require.NoError(t, err)

	require.Len(t, out.Matches, 2)
	assert.Equal(t, 2, out.TotalMatches)
	// Filtered candidates still count toward the pool size, but drop out of
	// the stats.
	assert.Equal(t, 3, out.TotalCandidates)
	assert.Equal(t, 88, out.Stats.LowestScore)
}

func TestComputeBatchWindow(t *testing.T) {
	out, err := matching.ComputeBatch(context.Background(), baseProfile(1), batchCandidates(), matching.DefaultConfig(), matching.BatchOptions{Offset: 1, Limit: 1})
	require.NoError(t, err)

	require.Len(t, out.Matches, 1)
	assert.Equal(t, uint64(11), out.Matches[0].CandidateID)
	// TotalMatches and stats describe the full ranked list, not the window.
	assert.Equal(t, 3, out.TotalMatches)
	assert.Equal(t, 93, out.Stats.HighestScore)

	// An offset past the end yields an empty page, not an error.
	out, err = matching.ComputeBatch(context.Background(), baseProfile(1), batchCandidates(), matching.DefaultConfig(), matching.BatchOptions{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, out.Matches)
	assert.Equal(t, 3, out.TotalMatches)
}

func TestComputeBatchCountsRejections(t *testing.T) {
	viewer := baseProfile(1)
	viewer.DealBreakers = []matching.DealBreaker{matching.NoSmokers}

	smoker := baseProfile(20)
	smoker.Lifestyle.Smoking = matching.SmokingRegularly

	out, err := matching.ComputeBatch(context.Background(), viewer, []matching.ProfileView{smoker, baseProfile(21)}, matching.DefaultConfig(), matching.BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalCandidates)
	assert.Equal(t, 1, out.FilteredByDealBreakers)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, uint64(21), out.Matches[0].CandidateID)
}

func TestComputeBatchSkipsInvalidCandidates(t *testing.T) {
	broken := baseProfile(30)
	broken.Lifestyle.Cleanliness = 9

	out, err := matching.ComputeBatch(context.Background(), baseProfile(1), []matching.ProfileView{broken, baseProfile(31)}, matching.DefaultConfig(), matching.BatchOptions{})
	require.NoError(t, err)

	// Skipped candidates are reported but excluded from every count.
	require.Len(t, out.Skipped, 1)
	assert.Equal(t, uint64(30), out.Skipped[0].CandidateID)
	assert.Contains(t, out.Skipped[0].Reason, "cleanliness")
	assert.Equal(t, 1, out.TotalCandidates)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, uint64(31), out.Matches[0].CandidateID)
}

func TestComputeBatchSkipsSelf(t *testing.T) {
	viewer := baseProfile(1)

	out, err := matching.ComputeBatch(context.Background(), viewer, []matching.ProfileView{baseProfile(1), baseProfile(2)}, matching.DefaultConfig(), matching.BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.TotalCandidates)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, uint64(2), out.Matches[0].CandidateID)
	assert.Empty(t, out.Skipped)
}

func TestComputeBatchInvalidViewerAborts(t *testing.T) {
	viewer := baseProfile(1)
	viewer.Budget = matching.BudgetRange{Min: 2000, Max: 1000}

	var valErr *matching.ValidationError
	_, err := matching.ComputeBatch(context.Background(), viewer, batchCandidates(), matching.DefaultConfig(), matching.BatchOptions{})
	require.ErrorAs(t, err, &valErr)
}

func TestComputeBatchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := matching.ComputeBatch(ctx, baseProfile(1), batchCandidates(), matching.DefaultConfig(), matching.BatchOptions{})
	require.ErrorIs(t, err, context.Canceled)
	// Whatever completed before cancellation is still well-formed.
	assert.LessOrEqual(t, len(out.Matches), 3)
	for _, m := range out.Matches {
		require.NotNil(t, m.Score)
	}
}

func TestComputeBatchEmptyPool(t *testing.T) {
	out, err := matching.ComputeBatch(context.Background(), baseProfile(1), nil, matching.DefaultConfig(), matching.BatchOptions{})
	require.NoError(t, err)
	assert.Empty(t, out.Matches)
	assert.Equal(t, 0, out.TotalCandidates)
	assert.Equal(t, matching.BatchStats{}, out.Stats)
}

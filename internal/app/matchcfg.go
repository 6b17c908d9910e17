package app

import (
	"github.com/pokojowo/match-service/internal/config"
	"github.com/pokojowo/match-service/internal/matching"
)

// MatchConfig resolves the engine configuration from app config. Validation
// happens once at startup; a bad weight vector should stop the server, not
// fail every request.
func MatchConfig(cfg *config.Config) (matching.Config, error) {
	mc := matching.Config{
		Weights: matching.Weights{
			matching.DimBudget:      cfg.Match.WeightBudget,
			matching.DimCleanliness: cfg.Match.WeightCleanliness,
			matching.DimSchedule:    cfg.Match.WeightSchedule,
			matching.DimPersonality: cfg.Match.WeightPersonality,
			matching.DimInterests:   cfg.Match.WeightInterests,
		},
		Explain: matching.ExplainConfig{
			PositiveAt:  cfg.Match.PositiveThreshold,
			NegativeAt:  cfg.Match.NegativeThreshold,
			MaxPositive: cfg.Match.MaxPositive,
			MaxNeutral:  cfg.Match.MaxNeutral,
			MaxNegative: cfg.Match.MaxNegative,
		},
		NeutralScore:     cfg.Match.NeutralScore,
		BatchConcurrency: cfg.Match.BatchConcurrency,
	}
	if err := mc.Validate(); err != nil {
		return matching.Config{}, err
	}
	return mc, nil
}

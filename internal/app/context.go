package app

import (
	"log/slog"

	"github.com/pokojowo/match-service/internal/cache"
	"github.com/pokojowo/match-service/internal/matching"
	"gorm.io/gorm"
)

// AppContext holds shared dependencies (DB, Redis, Logger) plus the
// immutable matching configuration resolved at startup.
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	MatchCfg   matching.Config
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, matchCfg matching.Config) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		MatchCfg:   matchCfg,
	}
}

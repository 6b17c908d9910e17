package main

import (
	"context"

	"github.com/pokojowo/match-service/internal/app"
	"github.com/pokojowo/match-service/internal/cache"
	"github.com/pokojowo/match-service/internal/config"
	"github.com/pokojowo/match-service/internal/db"
	"github.com/pokojowo/match-service/internal/logger"
	"github.com/pokojowo/match-service/internal/server"
	"github.com/pokojowo/match-service/internal/service/match"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Resolve engine config up front; a bad weight vector is fatal.
	matchCfg, err := app.MatchConfig(cfg)
	if err != nil {
		log.Error("invalid matching config", "err", err)
		return
	}

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log, matchCfg)

	registrars := []server.Registrar{
		match.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr)

	if err := server.StartHTTPServer(cfg, registrars...); err != nil {
		log.Error("failed to start HTTP server", "err", err)
	}
}

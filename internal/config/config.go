package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	HTTP struct {
		Host string
		Port string
	}

	Match struct {
		// Dimension weights; must sum to a positive total.
		WeightBudget      int
		WeightCleanliness int
		WeightSchedule    int
		WeightPersonality int
		WeightInterests   int

		// Explanation classification thresholds and per-bucket caps.
		PositiveThreshold int
		NegativeThreshold int
		MaxPositive       int
		MaxNeutral        int
		MaxNegative       int

		// Score used when a dimension has no data to compare.
		NeutralScore int

		// Worker fan-out for batch scoring.
		BatchConcurrency int
	}

	App struct {
		ENV string
	}
}

func New() *Config {
	cfg := &Config{}

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "match_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "pokojowo")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	// HTTP
	cfg.HTTP.Host = getEnvDefault("HTTP_HOST", "127.0.0.1")
	cfg.HTTP.Port = getEnvDefault("HTTP_PORT", "8080")

	// Matching engine
	cfg.Match.WeightBudget = getEnvInt("MATCH_WEIGHT_BUDGET", 25)
	cfg.Match.WeightCleanliness = getEnvInt("MATCH_WEIGHT_CLEANLINESS", 20)
	cfg.Match.WeightSchedule = getEnvInt("MATCH_WEIGHT_SCHEDULE", 20)
	cfg.Match.WeightPersonality = getEnvInt("MATCH_WEIGHT_PERSONALITY", 20)
	cfg.Match.WeightInterests = getEnvInt("MATCH_WEIGHT_INTERESTS", 15)
	cfg.Match.PositiveThreshold = getEnvInt("MATCH_POSITIVE_THRESHOLD", 75)
	cfg.Match.NegativeThreshold = getEnvInt("MATCH_NEGATIVE_THRESHOLD", 45)
	cfg.Match.MaxPositive = getEnvInt("MATCH_MAX_POSITIVE", 5)
	cfg.Match.MaxNeutral = getEnvInt("MATCH_MAX_NEUTRAL", 3)
	cfg.Match.MaxNegative = getEnvInt("MATCH_MAX_NEGATIVE", 3)
	cfg.Match.NeutralScore = getEnvInt("MATCH_NEUTRAL_SCORE", 50)
	cfg.Match.BatchConcurrency = getEnvInt("MATCH_BATCH_CONCURRENCY", 4)

	// App
	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

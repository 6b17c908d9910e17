package match

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pokojowo/match-service/internal/app"
	"github.com/pokojowo/match-service/internal/cache"
	"github.com/pokojowo/match-service/internal/matching"
	"github.com/pokojowo/match-service/internal/repository"
)

// candidatePoolCap bounds how many candidates one batch run will score.
// Retrieval is ordered by user ID, so the cap is stable across runs.
const candidatePoolCap = 500

// Service exposes the matching engine over HTTP. It wires the profile
// repository (candidate retrieval), the Redis cache (result reuse) and the
// immutable engine configuration from the app context. The engine itself
// stays a pure function; every side effect lives here.
type Service struct {
	appCtx      *app.AppContext
	profileRepo *repository.ProfileRepository
}

// NewMatchService creates a new match service with dependencies from AppContext.
func NewMatchService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		profileRepo: repository.NewProfileRepository(appCtx.DB),
	}
}

// ComputePair scores one viewer/candidate pair, cache-first:
//  1. Attempts to read the cached result (match:pair:viewer:candidate).
//  2. On miss, loads both profiles and runs the engine.
//  3. Stores the fresh result with a 1h TTL; reads refresh the TTL.
func (s *Service) ComputePair(ctx context.Context, viewerID, candidateID uint64) (matching.Result, error) {
	key := s.appCtx.RedisCache.KeyForPairResult(viewerID, candidateID)

	if cached, _ := s.appCtx.RedisCache.Get(ctx, key); cached != "" {
		var result matching.Result
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			_ = s.appCtx.RedisCache.Touch(ctx, key)
			return result, nil
		}
		// Unparseable entries are dropped and recomputed.
		_ = s.appCtx.RedisCache.Del(ctx, key)
	}

	viewer, err := s.profileRepo.GetView(ctx, viewerID)
	if err != nil {
		return matching.Result{}, err
	}
	candidate, err := s.profileRepo.GetView(ctx, candidateID)
	if err != nil {
		return matching.Result{}, err
	}

	result, err := matching.ComputePair(viewer, candidate, s.appCtx.MatchCfg)
	if err != nil {
		return matching.Result{}, err
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = s.appCtx.RedisCache.Set(ctx, key, string(payload), cache.ResultTTL)
	}
	return result, nil
}

// ComputeBatch ranks the viewer's whole candidate pool. The batch is always
// computed fresh (the pool changes as profiles come and go); only the
// compatible-match count is cached, for the dashboard.
func (s *Service) ComputeBatch(ctx context.Context, viewerID uint64, opts matching.BatchOptions) (matching.BatchResult, error) {
	viewer, err := s.profileRepo.GetView(ctx, viewerID)
	if err != nil {
		return matching.BatchResult{}, err
	}

	candidates, err := s.profileRepo.ListCandidateViews(ctx, viewerID, candidatePoolCap)
	if err != nil {
		return matching.BatchResult{}, err
	}

	batch, err := matching.ComputeBatch(ctx, viewer, candidates, s.appCtx.MatchCfg, opts)
	if err != nil {
		return batch, err
	}

	// Refresh the cached compatible-match count as a side effect.
	countKey := s.appCtx.RedisCache.KeyForMatchCount(viewerID)
	_ = s.appCtx.RedisCache.Set(ctx, countKey, strconv.Itoa(batch.TotalMatches), cache.ResultTTL)

	return batch, nil
}

// CountMatches returns how many compatible (non-rejected) candidates the
// viewer has. Cache-first with a full batch recompute as fallback, mirroring
// the batch endpoint's bookkeeping.
func (s *Service) CountMatches(ctx context.Context, viewerID uint64) (int, error) {
	key := s.appCtx.RedisCache.KeyForMatchCount(viewerID)

	if cached, _ := s.appCtx.RedisCache.Get(ctx, key); cached != "" {
		if n, err := strconv.Atoi(cached); err == nil {
			_ = s.appCtx.RedisCache.Touch(ctx, key)
			return n, nil
		}
	}

	batch, err := s.ComputeBatch(ctx, viewerID, matching.BatchOptions{})
	if err != nil {
		return 0, err
	}
	return batch.TotalMatches, nil
}

// ValidateWeights checks a caller-supplied weight vector against the
// engine's configuration rules.
func (s *Service) ValidateWeights(w matching.Weights) error {
	return w.Validate()
}

package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Config is the explicit, passed-in configuration of a matching run. It is
// treated as immutable for the duration of a batch so runs stay
// deterministic and safely parallel. There is no hidden global state.
type Config struct {
	Weights Weights
	Explain ExplainConfig
	// NeutralScore is used when a dimension has no data to compare
	// (currently only interests).
	NeutralScore int
	// BatchConcurrency bounds the batch worker fan-out. Zero means the
	// default of 4.
	BatchConcurrency int
}

// DefaultConfig returns the system configuration.
func DefaultConfig() Config {
	return Config{
		Weights:          DefaultWeights(),
		Explain:          DefaultExplainConfig(),
		NeutralScore:     50,
		BatchConcurrency: 4,
	}
}

// Validate surfaces configuration problems before any scoring begins.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.Explain.validate(); err != nil {
		return err
	}
	if c.NeutralScore < 0 || c.NeutralScore > 100 {
		return newConfigError("neutral score %d outside 0-100", c.NeutralScore)
	}
	if c.BatchConcurrency < 0 {
		return newConfigError("batch concurrency %d is negative", c.BatchConcurrency)
	}
	return nil
}

func (c Config) concurrency() int {
	if c.BatchConcurrency > 0 {
		return c.BatchConcurrency
	}
	return 4
}

// Result is one computed match. Score is nil when the pair was rejected by a
// deal-breaker so that "incompatible" can never be confused with "compatible
// but scoring zero".
type Result struct {
	CandidateID     uint64            `json:"candidateId"`
	Score           *int              `json:"score,omitempty"`
	Tier            Tier              `json:"tier"`
	Breakdown       map[Dimension]int `json:"breakdown,omitempty"`
	Explanations    []Explanation     `json:"explanations,omitempty"`
	SharedInterests []string          `json:"sharedInterests,omitempty"`
	Rejected        bool              `json:"rejected"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	// LimitedData marks that at least one dimension scored its neutral
	// value for lack of data, so the UI can flag "limited data".
	LimitedData bool `json:"limitedData,omitempty"`
}

// ComputePair runs the full pipeline for exactly two profiles:
// validation, deal-breakers, dimension scoring, weighted aggregation,
// explanation assembly and tiering.
//
// Validation errors propagate directly here — the caller asked about these
// two specific profiles and deserves a direct answer. Batch mode instead
// skips and reports invalid candidates.
func ComputePair(a, b ProfileView, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := a.Validate(); err != nil {
		return Result{}, err
	}
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	return computeAdmitted(a, b, cfg)
}

// computeAdmitted assumes cfg and both profiles are already validated.
func computeAdmitted(a, b ProfileView, cfg Config) (Result, error) {
	decision := EvaluateDealBreakers(a, b)
	if !decision.Admissible {
		return Result{
			CandidateID:     b.ID,
			Tier:            TierNone,
			Rejected:        true,
			RejectionReason: decision.Reason(),
		}, nil
	}

	scores := make(map[Dimension]int, len(dimensionPriority))
	var fragments []Fragment
	limited := false

	budget, frags := scoreBudget(a, b)
	scores[DimBudget] = budget
	fragments = append(fragments, frags...)

	clean, frags := scoreCleanliness(a, b)
	scores[DimCleanliness] = clean
	fragments = append(fragments, frags...)

	sched, frags := scoreSchedule(a, b)
	scores[DimSchedule] = sched
	fragments = append(fragments, frags...)

	pers, frags := scorePersonality(a, b)
	scores[DimPersonality] = pers
	fragments = append(fragments, frags...)

	interests, frags, interestsLimited := scoreInterests(a, b, cfg.NeutralScore)
	scores[DimInterests] = interests
	fragments = append(fragments, frags...)
	limited = limited || interestsLimited

	weights := EffectiveWeights(cfg.Weights, a, b)
	overall, err := Aggregate(scores, weights)
	if err != nil {
		return Result{}, err
	}

	breakdown := make(map[Dimension]int, len(scores))
	for dim, s := range scores {
		breakdown[dim] = s
	}

	return Result{
		CandidateID:     b.ID,
		Score:           &overall,
		Tier:            TierForScore(overall),
		Breakdown:       breakdown,
		Explanations:    AssembleExplanations(fragments, scores, weights, cfg.Explain),
		SharedInterests: SharedInterests(a, b),
		LimitedData:     limited,
	}, nil
}

// SkippedCandidate reports a candidate dropped from a batch because its
// profile failed validation.
type SkippedCandidate struct {
	CandidateID uint64 `json:"candidateId"`
	Reason      string `json:"reason"`
}

// BatchOptions narrows and windows a batch result.
type BatchOptions struct {
	MinScore int // drop matches scoring below this (0 keeps everything)
	Limit    int // top-K window size; 0 means no limit
	Offset   int // window start within the ranked list
}

// BatchStats summarizes a ranked batch for dashboards.
type BatchStats struct {
	AverageScore   int `json:"averageScore"`
	HighestScore   int `json:"highestScore"`
	LowestScore    int `json:"lowestScore"`
	PerfectMatches int `json:"perfectMatches"`
	GreatMatches   int `json:"greatMatches"`
	GoodMatches    int `json:"goodMatches"`
}

// BatchResult is a ranked, windowed view over one viewer's candidate pool.
type BatchResult struct {
	Matches                []Result `json:"matches"`
	TotalCandidates        int      `json:"totalCandidates"`
	FilteredByDealBreakers int      `json:"filteredByDealBreakers"`
	// TotalMatches counts ranked matches before the limit/offset window,
	// after the min-score filter.
	TotalMatches int                `json:"totalMatches"`
	Skipped      []SkippedCandidate `json:"skipped,omitempty"`
	Stats        BatchStats         `json:"stats"`
}

// ComputeBatch scores the viewer against every candidate, in parallel, and
// returns the admissible matches ranked by score descending (ties by
// candidate ID ascending, so pagination is reproducible).
//
// Behavior:
//   - A ConfigError or an invalid viewer profile aborts the whole batch.
//   - Invalid candidates are skipped and reported, the rest proceed.
//   - Rejected pairs are counted, not returned.
//   - On context cancellation, scheduling stops and the partial ranked
//     result is returned together with ctx.Err(); pairs already computed
//     remain valid.
func ComputeBatch(ctx context.Context, viewer ProfileView, candidates []ProfileView, cfg Config, opts BatchOptions) (BatchResult, error) {
	var out BatchResult

	if err := cfg.Validate(); err != nil {
		return out, err
	}
	if err := viewer.Validate(); err != nil {
		return out, err
	}

	type slot struct {
		result  Result
		skipped *SkippedCandidate
		done    bool
	}
	slots := make([]slot, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency())

scheduling:
	for i, cand := range candidates {
		if cand.ID == viewer.ID {
			continue // never score a profile against itself
		}
		select {
		case <-gCtx.Done():
			break scheduling
		default:
		}

		i, cand := i, cand
		g.Go(func() error {
			if err := cand.Validate(); err != nil {
				slots[i] = slot{skipped: &SkippedCandidate{CandidateID: cand.ID, Reason: err.Error()}, done: true}
				return nil
			}
			res, err := computeAdmitted(viewer, cand, cfg)
			if err != nil {
				// Only config errors can surface here; they are fatal.
				return err
			}
			slots[i] = slot{result: res, done: true}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}

	var matches []Result
	for _, s := range slots {
		switch {
		case !s.done:
			// Never scheduled: cancellation hit before this candidate.
		case s.skipped != nil:
			out.Skipped = append(out.Skipped, *s.skipped)
		case s.result.Rejected:
			out.TotalCandidates++
			out.FilteredByDealBreakers++
		default:
			out.TotalCandidates++
			matches = append(matches, s.result)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := *matches[i].Score, *matches[j].Score
		if si != sj {
			return si > sj
		}
		return matches[i].CandidateID < matches[j].CandidateID
	})

	if opts.MinScore > 0 {
		kept := matches[:0]
		for _, m := range matches {
			if *m.Score >= opts.MinScore {
				kept = append(kept, m)
			}
		}
		matches = kept
	}

	out.TotalMatches = len(matches)
	out.Stats = computeStats(matches)
	out.Matches = window(matches, opts.Offset, opts.Limit)

	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func window(matches []Result, offset, limit int) []Result {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matches) {
		return nil
	}
	matches = matches[offset:]
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}

func computeStats(matches []Result) BatchStats {
	var stats BatchStats
	if len(matches) == 0 {
		return stats
	}

	total := 0
	stats.LowestScore = 100
	for _, m := range matches {
		s := *m.Score
		total += s
		if s > stats.HighestScore {
			stats.HighestScore = s
		}
		if s < stats.LowestScore {
			stats.LowestScore = s
		}
		switch m.Tier {
		case TierPerfect:
			stats.PerfectMatches++
		case TierGreat:
			stats.GreatMatches++
		case TierGood:
			stats.GoodMatches++
		}
	}
	stats.AverageScore = (total + len(matches)/2) / len(matches)
	return stats
}

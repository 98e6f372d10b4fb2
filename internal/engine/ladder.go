package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Upstream error taxonomy. The generator client wraps its failures with
// these sentinels so the ladder can log the category; all of them are
// recovered locally and never surfaced to the caller as failures.
var (
	ErrUpstreamTimeout   = errors.New("upstream generator timeout")
	ErrUpstreamTransport = errors.New("upstream generator transport error")
	ErrUpstreamParse     = errors.New("upstream generator parse error")
)

// ModelTier selects the generator model configuration.
type ModelTier string

const (
	TierPrimary   ModelTier = "primary"
	TierSecondary ModelTier = "secondary"
)

// GenerationSpec is the structured request handed to the external generator.
// Constraints are embedded in the prompt; the engine re-checks all of them.
type GenerationSpec struct {
	Count          int
	MaxFlightHours float64
	EffectiveCap   float64
	Interests      []string
	Season         Season
	Party          TravelParty
	DurationDays   int
	// Exclude lists "city|country" keys the generator should avoid, used by
	// the top-up call.
	Exclude []string
}

// CandidateGenerator is the external text generator. The engine depends only
// on this contract, never on how the text is produced.
type CandidateGenerator interface {
	Generate(ctx context.Context, tier ModelTier, spec GenerationSpec) ([]RawCandidate, error)
}

// PoolCache stores the last good normalized candidate pool per duration
// band. Get returns nil, nil on a miss.
type PoolCache interface {
	Get(ctx context.Context, band string) ([]Candidate, error)
	Set(ctx context.Context, band string, pool []Candidate) error
}

// DurationBand is the coarse heuristic keying the pool cache.
func DurationBand(userHours float64) string {
	switch {
	case userHours <= 5:
		return "short"
	case userHours <= 9:
		return "medium"
	default:
		return "long"
	}
}

// generationCount is how many candidates each generator call asks for.
const generationCount = 16

// defaultUpstreamTimeout bounds one generator call.
const defaultUpstreamTimeout = 15 * time.Second

// Engine runs the full shortlist pipeline: generator calls with fallback,
// normalization, constraint filtering, preference scoring, and
// diversity-constrained selection, guaranteeing N results whenever the
// combined pool can supply them.
type Engine struct {
	gen     CandidateGenerator
	pools   PoolCache
	curated CuratedPools
	norm    *Normalizer
	scorer  *Scorer
	recency *RecencyCache
	safety  *SafetyList
	log     *slog.Logger
	timeout time.Duration
}

// Options tunes an Engine beyond its required collaborators.
type Options struct {
	// Pools is the optional last-good-pool cache rung; nil skips it.
	Pools PoolCache
	// Curated overrides the built-in fallback pools when non-empty.
	Curated *CuratedPools
	// UpstreamTimeout bounds each generator call; zero means the default.
	UpstreamTimeout time.Duration
	// RegionFloors overrides the default plausibility floors when non-nil.
	RegionFloors map[Region]float64
}

// New constructs an Engine. The recency cache is injected so tests can seed
// or empty it; it is the only state shared across requests.
func New(gen CandidateGenerator, safety *SafetyList, recency *RecencyCache, log *slog.Logger, opts Options) *Engine {
	floors := opts.RegionFloors
	if floors == nil {
		floors = DefaultRegionFloors()
	}
	curated := DefaultCuratedPools()
	if opts.Curated != nil {
		curated = *opts.Curated
	}
	timeout := opts.UpstreamTimeout
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	return &Engine{
		gen:     gen,
		pools:   opts.Pools,
		curated: curated,
		norm:    NewNormalizer(floors, safety),
		scorer:  NewScorer(recency),
		recency: recency,
		safety:  safety,
		log:     log,
		timeout: timeout,
	}
}

// Recommend produces the shortlist for one request. It never returns an
// error for upstream failures; those degrade through the ladder and are
// reflected in the shortlist's mode tag.
func (e *Engine) Recommend(ctx context.Context, req SelectionRequest) (*Shortlist, error) {
	req.Normalize()
	policy := PolicyFor(req.MaxFlightHours)
	spec := e.buildSpec(req, policy)
	band := DurationBand(req.MaxFlightHours)

	pool, liveOK, transportFailed := e.collectLive(ctx, req, policy, spec)

	// Cache the live pool for the fallback rung of later requests.
	if liveOK && len(pool) >= req.N && e.pools != nil {
		if err := e.pools.Set(ctx, band, pool); err != nil {
			e.log.Warn("pool cache set failed", "band", band, "err", err)
		}
	}

	mode := ModeLive
	if len(pool) < req.N {
		pool = e.collectFallback(ctx, req, policy, band, pool)
		if transportFailed {
			mode = ModeErrorFallback
		} else {
			mode = ModeSample
		}
	}

	scored := e.scorer.Score(pool, req, policy)
	outcome := SelectDiverse(scored, req, policy)
	if outcome.RegionCapDropped {
		e.log.Info("diversity selector dropped region cap", "band", band)
	}

	// No selection path, fallback pools included, may bypass the safety
	// exclusion on the way out.
	results := make([]Candidate, 0, len(outcome.Picked))
	for _, c := range outcome.Picked {
		if e.safety.Blocked(c.City, c.Country) {
			e.log.Warn("restricted destination reached selection, dropped", "key", c.Key())
			continue
		}
		results = append(results, c)
	}

	if len(results) < req.N {
		mode = ModeErrorFallback
		e.log.Error("degraded shortlist: combined pool cannot supply N",
			"want", req.N, "got", len(results), "band", band)
	}

	keys := make([]string, len(results))
	for i, c := range results {
		keys[i] = c.Key()
	}
	e.recency.Add(keys...)

	return &Shortlist{Mode: mode, Results: results}, nil
}

func (e *Engine) buildSpec(req SelectionRequest, policy SelectionPolicy) GenerationSpec {
	return GenerationSpec{
		Count:          generationCount,
		MaxFlightHours: req.MaxFlightHours,
		EffectiveCap:   policy.EffectiveCap(req.MaxFlightHours),
		Interests:      req.Interests,
		Season:         req.Season,
		Party:          req.Party,
		DurationDays:   req.DurationDays,
		Exclude:        req.Exclusions,
	}
}

// collectLive runs the CallPrimary and CallSecondary rungs plus the top-up
// call, returning the filtered live pool. liveOK reports that at least one
// generator call produced a usable pool; transportFailed that both model
// calls failed outright.
func (e *Engine) collectLive(ctx context.Context, req SelectionRequest, policy SelectionPolicy, spec GenerationSpec) (pool []Candidate, liveOK, transportFailed bool) {
	raws, err := e.callGenerator(ctx, TierPrimary, spec)
	if err != nil {
		e.log.Warn("primary generator call failed", "category", errorCategory(err), "err", err)
		raws, err = e.callGenerator(ctx, TierSecondary, spec)
		if err != nil {
			e.log.Warn("secondary generator call failed", "category", errorCategory(err), "err", err)
			return nil, false, !errors.Is(err, ErrUpstreamParse)
		}
	}

	pool = e.pipeline(raws, req, policy)
	if len(pool) == 0 {
		// Both calls "succeeded" but nothing survived; treat as unusable.
		return nil, false, false
	}

	// Short of N: one top-up call excluding everything already seen before
	// resorting to fallback pools. The exclusion list depends on the first
	// call's results, so the calls cannot run concurrently.
	if len(pool) < req.N {
		topUp := spec
		topUp.Exclude = append(append([]string{}, spec.Exclude...), poolKeys(pool)...)
		more, terr := e.callGenerator(ctx, TierPrimary, topUp)
		if terr != nil {
			e.log.Warn("top-up generator call failed", "category", errorCategory(terr), "err", terr)
		} else {
			pool = mergePools(pool, e.pipeline(more, req, policy))
		}
	}

	return pool, true, false
}

// collectFallback runs the UseCachedPool and UseCurated rungs, merging into
// whatever live candidates exist. Cached and curated candidates go through
// the same filters as live ones.
func (e *Engine) collectFallback(ctx context.Context, req SelectionRequest, policy SelectionPolicy, band string, pool []Candidate) []Candidate {
	if e.pools != nil {
		cached, err := e.pools.Get(ctx, band)
		if err != nil {
			e.log.Warn("pool cache get failed", "band", band, "err", err)
		}
		if len(cached) > 0 {
			filtered, removed := ApplyConstraints(cached, req, policy, e.safety)
			e.logFiltered(removed)
			pool = mergePools(pool, filtered)
		}
	}

	if len(pool) < req.N {
		curated := e.pipeline(e.curated.PoolFor(req.MaxFlightHours), req, policy)
		pool = mergePools(pool, curated)
	}

	return pool
}

// pipeline runs normalization and constraint filtering over raw records.
func (e *Engine) pipeline(raws []RawCandidate, req SelectionRequest, policy SelectionPolicy) []Candidate {
	normalized, drops := e.norm.Normalize(raws)
	for _, d := range drops {
		e.log.Debug("candidate dropped by normalizer", "city", d.City, "country", d.Country, "reason", string(d.Reason))
	}
	filtered, removed := ApplyConstraints(normalized, req, policy, e.safety)
	e.logFiltered(removed)
	return filtered
}

func (e *Engine) logFiltered(removed []Filtered) {
	for _, f := range removed {
		e.log.Debug("candidate removed by constraint filter", "key", f.Key, "reason", string(f.Reason))
	}
}

func (e *Engine) callGenerator(ctx context.Context, tier ModelTier, spec GenerationSpec) ([]RawCandidate, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.gen.Generate(callCtx, tier, spec)
}

func errorCategory(err error) string {
	switch {
	case errors.Is(err, ErrUpstreamTimeout):
		return "timeout"
	case errors.Is(err, ErrUpstreamParse):
		return "parse"
	case errors.Is(err, ErrUpstreamTransport):
		return "transport"
	default:
		return "unknown"
	}
}

func poolKeys(pool []Candidate) []string {
	keys := make([]string, len(pool))
	for i, c := range pool {
		keys[i] = c.Key()
	}
	return keys
}

// mergePools appends extras onto base, skipping keys already present.
func mergePools(base, extra []Candidate) []Candidate {
	seen := make(map[string]bool, len(base))
	for _, c := range base {
		seen[c.Key()] = true
	}
	for _, c := range extra {
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		base = append(base, c)
	}
	return base
}

// Package aggregate runs one aggregation request end to end: pick the active
// adapter set per the fallback policy, fan out concurrently, merge,
// deduplicate, and hand the unique set to the scorer.
package aggregate

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/score"
	"github.com/Kamu2000/Job-Hunter/internal/source"
)

// Source labels identify which mode produced a result, for observability.
const (
	SourcePrimary  = "jsearch"
	SourceScrapers = "scrapers"
)

// Result is the response of one aggregation request. Count always equals
// len(Jobs); zero jobs is a valid outcome, not a failure.
type Result struct {
	Jobs   []model.Job `json:"jobs"`
	Count  int         `json:"count"`
	Source string      `json:"source"`
}

// Aggregator owns the fallback policy and the fan-out.
//
// Primary mode is used when a credentialed primary adapter is configured; any
// runtime failure from it degrades the request to the secondary set. The same
// failing adapter is never retried within one request.
type Aggregator struct {
	primary   source.Adapter // nil → secondary mode is the default
	secondary []source.Adapter
	scorer    *score.Scorer
}

// New builds an Aggregator. primary may be nil when no credential is
// configured.
func New(primary source.Adapter, secondary []source.Adapter, scorer *score.Scorer) *Aggregator {
	return &Aggregator{primary: primary, secondary: secondary, scorer: scorer}
}

// FetchJobs runs one aggregation request. It never returns an error: adapter
// failures degrade to empty contributions and an empty profile match yields
// an empty, valid result.
func (a *Aggregator) FetchJobs(ctx context.Context, profile model.UserProfile, page int) Result {
	if page < 1 {
		page = 1
	}

	jobs, label := a.collect(ctx, profile, page)
	unique := Dedupe(jobs)
	ranked := a.scorer.Rank(unique, profile)

	return Result{Jobs: ranked, Count: len(ranked), Source: label}
}

// collect selects the mode once per request and gathers raw jobs.
func (a *Aggregator) collect(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, string) {
	if a.primary != nil {
		jobs, err := fetchSafe(ctx, a.primary, profile, page)
		if err == nil {
			return jobs, SourcePrimary
		}
		slog.Warn("primary source failed, degrading to scraper set",
			"adapter", a.primary.Name(), "err", err)
	}
	return a.fanOut(ctx, profile, page), SourceScrapers
}

// fanOut invokes every secondary adapter concurrently. Each goroutine writes
// only its own slot, so results concatenate in a fixed adapter order with no
// shared accumulator and no locks; determinism of the final output is
// restored by the scorer's stable sort.
func (a *Aggregator) fanOut(ctx context.Context, profile model.UserProfile, page int) []model.Job {
	results := make([][]model.Job, len(a.secondary))

	var wg sync.WaitGroup
	for i, adapter := range a.secondary {
		wg.Add(1)
		go func(slot int, ad source.Adapter) {
			defer wg.Done()
			jobs, err := fetchSafe(ctx, ad, profile, page)
			if err != nil {
				slog.Warn("adapter failed, contributing nothing",
					"adapter", ad.Name(), "err", err)
				return
			}
			results[slot] = jobs
		}(i, adapter)
	}
	wg.Wait()

	var merged []model.Job
	for _, jobs := range results {
		merged = append(merged, jobs...)
	}
	return merged
}

// fetchSafe wraps an adapter call so a panicking transform degrades to an
// error instead of taking down the request.
func fetchSafe(ctx context.Context, ad source.Adapter, profile model.UserProfile, page int) (jobs []model.Job, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("adapter panicked", "adapter", ad.Name(), "panic", r)
			jobs, err = nil, &adapterPanicError{adapter: ad.Name()}
		}
	}()
	return ad.Fetch(ctx, profile, page)
}

type adapterPanicError struct{ adapter string }

func (e *adapterPanicError) Error() string {
	return "adapter " + e.adapter + " panicked during fetch"
}

// dedupeKey identifies a listing across sources: same title and company,
// case-insensitively, means the same job.
type dedupeKey struct {
	title   string
	company string
}

// Dedupe removes cross-source duplicates, keeping the first occurrence in
// concatenation order.
func Dedupe(jobs []model.Job) []model.Job {
	seen := make(map[dedupeKey]struct{}, len(jobs))
	unique := make([]model.Job, 0, len(jobs))

	for _, job := range jobs {
		key := dedupeKey{
			title:   strings.ToLower(job.Title),
			company: strings.ToLower(job.Company),
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, job)
	}
	return unique
}

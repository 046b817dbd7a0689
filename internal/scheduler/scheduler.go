// Package scheduler wires up the cron job that periodically refreshes the
// stored job feed from the configured sources.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Kamu2000/Job-Hunter/internal/aggregate"
	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/store"
)

// Scheduler wraps robfig/cron and manages the feed refresh loop.
type Scheduler struct {
	cron  *cron.Cron
	agg   *aggregate.Aggregator
	store store.Store
	spec  string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(agg *aggregate.Aggregator, st store.Store, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		agg:   agg,
		store: st,
		spec:  fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one refresh
// immediately so the feed is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.refresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// refresh loads the stored profile, runs one aggregation pass and saves the
// ranked feed. A missing profile is not an error: there is simply nothing to
// refresh until the user saves one.
func (s *Scheduler) refresh(ctx context.Context) {
	log.Println("[scheduler] Feed refresh started")

	var profile model.UserProfile
	err := s.store.Load(ctx, store.KeyProfile, &profile)
	if errors.Is(err, store.ErrNotFound) {
		log.Println("[scheduler] No profile stored — nothing to refresh")
		return
	}
	if err != nil {
		log.Printf("[scheduler] Load profile error: %v", err)
		return
	}

	res := s.agg.FetchJobs(ctx, profile, 1)
	if err := s.store.Save(ctx, store.KeyJobFeed, res.Jobs); err != nil {
		log.Printf("[scheduler] Save feed error: %v", err)
		return
	}

	log.Printf("[scheduler] Feed refresh complete — %d job(s) from %s", res.Count, res.Source)
}

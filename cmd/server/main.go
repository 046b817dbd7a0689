// job-hunter — personal job-search backend.
//
// Aggregates remote-friendly job postings from a primary paid API with a
// scraper fallback set, ranks them against the stored profile, and tracks
// applications on a kanban board. Exposes a REST API; a cron loop keeps the
// stored feed fresh.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kamu2000/Job-Hunter/internal/aggregate"
	"github.com/Kamu2000/Job-Hunter/internal/config"
	"github.com/Kamu2000/Job-Hunter/internal/scheduler"
	"github.com/Kamu2000/Job-Hunter/internal/score"
	"github.com/Kamu2000/Job-Hunter/internal/server"
	"github.com/Kamu2000/Job-Hunter/internal/source"
	"github.com/Kamu2000/Job-Hunter/internal/store"
	"github.com/Kamu2000/Job-Hunter/internal/tracker"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[job-hunter] No .env file found, using environment")
	}

	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[job-hunter] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Storage ──────────────────────────────────────────────────────────────
	var st store.Store
	var pub tracker.Publisher = tracker.NoopPublisher{}

	switch {
	case cfg.DatabaseURL != "":
		log.Println("[job-hunter] Connecting to PostgreSQL…")
		pool, err := store.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[job-hunter] PostgreSQL: %v", err)
		}
		defer pool.Close()
		pg, err := store.NewPostgres(ctx, pool)
		if err != nil {
			log.Fatalf("[job-hunter] PostgreSQL: %v", err)
		}
		st = pg
		log.Println("[job-hunter] PostgreSQL connected ✓")

	case cfg.RedisURL != "":
		log.Println("[job-hunter] Connecting to Redis…")
		rdb, err := store.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("[job-hunter] Redis: %v", err)
		}
		defer rdb.Close()
		st = store.NewRedis(rdb)
		pub = tracker.NewRedisPublisher(rdb)
		log.Println("[job-hunter] Redis connected ✓")

	default:
		st = store.NewMemory()
		log.Println("[job-hunter] No DATABASE_URL or REDIS_URL — using in-memory storage")
	}

	// Redis can also back events alongside a Postgres store.
	if cfg.DatabaseURL != "" && cfg.RedisURL != "" {
		rdb, err := store.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("[job-hunter] Redis (events): %v — events disabled", err)
		} else {
			defer rdb.Close()
			pub = tracker.NewRedisPublisher(rdb)
		}
	}

	// ── Sources ──────────────────────────────────────────────────────────────
	var primary source.Adapter
	jsearch := source.NewJSearchAdapter(cfg.JSearchAPIKey)
	if jsearch.Enabled() {
		primary = jsearch
		log.Println("[job-hunter] JSearch API key present — primary source enabled")
	} else {
		log.Println("[job-hunter] No JSearch API key — scraper sources only")
	}

	secondary := []source.Adapter{
		source.NewWWRAdapter(),
		source.NewRemoteOKAdapter(),
		source.NewMuseAdapter(),
		source.NewRemotiveAdapter(),
	}
	adzuna := source.NewAdzunaAdapter(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry)
	if adzuna.Enabled() {
		secondary = append(secondary, adzuna)
		log.Println("[job-hunter] Adzuna credentials present — adapter enabled")
	}

	agg := aggregate.New(primary, secondary, score.NewScorer(score.DefaultWeights()))
	board := tracker.NewService(st, pub)

	// ── Scheduler ────────────────────────────────────────────────────────────
	sched := scheduler.New(agg, st, cfg.RefreshIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[job-hunter] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	h := server.NewHandler(agg, board, st)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		// Aggregation fans out to external sources with a 10s fetch timeout,
		// so the write deadline must outlast it.
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("[job-hunter] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[job-hunter] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[job-hunter] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[job-hunter] Shutdown error: %v", err)
	}
	log.Println("[job-hunter] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "job-hunter",
		"version": version,
	})
}

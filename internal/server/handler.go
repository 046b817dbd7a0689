// Package server implements the HTTP surface.
//
// Routes:
//
//	POST /api/fetch-jobs                → run one aggregation request
//	GET  /api/profile · PUT /api/profile
//	GET  /api/applications · POST /api/applications
//	POST /api/applications/{id}/move    → board transition
//	POST /api/applications/{id}/note    → free-text note
//	GET  /api/applications/stats        → board statistics
//	GET  /api/interviews · POST /api/interviews
//	GET  /api/tasks · POST /api/tasks
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Kamu2000/Job-Hunter/internal/aggregate"
	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/store"
	"github.com/Kamu2000/Job-Hunter/internal/tracker"
)

// JobFetcher is the aggregation entry point the handler depends on.
type JobFetcher interface {
	FetchJobs(ctx context.Context, profile model.UserProfile, page int) aggregate.Result
}

// Handler holds shared dependencies.
type Handler struct {
	fetcher JobFetcher
	board   *tracker.Service
	store   store.Store
}

// NewHandler returns a configured Handler.
func NewHandler(fetcher JobFetcher, board *tracker.Service, st store.Store) *Handler {
	return &Handler{fetcher: fetcher, board: board, store: st}
}

// RegisterRoutes mounts all routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/fetch-jobs", h.handleFetchJobs)
	mux.HandleFunc("/api/profile", h.handleProfile)
	mux.HandleFunc("/api/applications", h.handleApplications)
	mux.HandleFunc("/api/applications/", h.handleApplicationAction)
	mux.HandleFunc("/api/interviews", h.handleInterviews)
	mux.HandleFunc("/api/tasks", h.handleTasks)
}

// ─── Aggregation ─────────────────────────────────────────────────────────────

// fetchJobsRequest is the inbound aggregation request. Profile is a pointer
// so a missing field is distinguishable from an empty profile.
type fetchJobsRequest struct {
	Profile *model.UserProfile `json:"profile"`
	Page    int                `json:"page"`
}

func (h *Handler) handleFetchJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req fetchJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Profile == nil {
		// The single user-visible failure: everything upstream degrades.
		jsonError(w, "profile is required", http.StatusBadRequest)
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}

	res := h.fetcher.FetchJobs(r.Context(), *req.Profile, req.Page)
	jsonOK(w, res)
}

// ─── Profile ─────────────────────────────────────────────────────────────────

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var profile model.UserProfile
		err := h.store.Load(r.Context(), store.KeyProfile, &profile)
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "no profile stored", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("[server] load profile: %v", err)
			jsonError(w, "storage error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, profile)

	case http.MethodPut:
		var profile model.UserProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if err := h.store.Save(r.Context(), store.KeyProfile, profile); err != nil {
			log.Printf("[server] save profile: %v", err)
			jsonError(w, "storage error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, profile)

	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ─── Applications ────────────────────────────────────────────────────────────

func (h *Handler) handleApplications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		apps, err := h.board.ListApplications(r.Context())
		if err != nil {
			log.Printf("[server] list applications: %v", err)
			jsonError(w, "storage error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, apps)

	case http.MethodPost:
		var app tracker.Application
		if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		created, err := h.board.AddApplication(r.Context(), app)
		if err != nil {
			writeBoardError(w, err)
			return
		}
		jsonOK(w, created)

	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleApplicationAction dispatches /api/applications/{id}/{action} and
// /api/applications/stats.
func (h *Handler) handleApplicationAction(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts: ["api", "applications", ...]

	if len(parts) == 3 && parts[2] == "stats" {
		if r.Method != http.MethodGet {
			jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		stats, err := h.board.Statistics(r.Context())
		if err != nil {
			log.Printf("[server] statistics: %v", err)
			jsonError(w, "storage error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, stats)
		return
	}

	if len(parts) != 4 {
		jsonError(w, "invalid path", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	appID := parts[2]
	action := parts[3]

	switch action {
	case "move":
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		app, err := h.board.MoveCard(r.Context(), appID, body.Status)
		if err != nil {
			writeBoardError(w, err)
			return
		}
		jsonOK(w, app)

	case "note":
		var body struct {
			Note string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		app, err := h.board.AddNote(r.Context(), appID, body.Note)
		if err != nil {
			writeBoardError(w, err)
			return
		}
		jsonOK(w, app)

	default:
		jsonError(w, fmt.Sprintf("unknown action %q", action), http.StatusNotFound)
	}
}

// ─── Interviews / Tasks ──────────────────────────────────────────────────────

func (h *Handler) handleInterviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ivs, err := h.board.ListInterviews(r.Context())
		if err != nil {
			log.Printf("[server] list interviews: %v", err)
			jsonError(w, "storage error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, ivs)

	case http.MethodPost:
		var iv tracker.Interview
		if err := json.NewDecoder(r.Body).Decode(&iv); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		created, err := h.board.AddInterview(r.Context(), iv)
		if err != nil {
			writeBoardError(w, err)
			return
		}
		jsonOK(w, created)

	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tasks, err := h.board.ListTasks(r.Context())
		if err != nil {
			log.Printf("[server] list tasks: %v", err)
			jsonError(w, "storage error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, tasks)

	case http.MethodPost:
		var task tracker.Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			jsonError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		created, err := h.board.AddTask(r.Context(), task)
		if err != nil {
			writeBoardError(w, err)
			return
		}
		jsonOK(w, created)

	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func writeBoardError(w http.ResponseWriter, err error) {
	var verr *tracker.ValidationError
	switch {
	case errors.As(err, &verr):
		jsonError(w, verr.Msg, http.StatusBadRequest)
	case errors.Is(err, tracker.ErrNotFound):
		jsonError(w, "application not found", http.StatusNotFound)
	default:
		log.Printf("[server] board error: %v", err)
		jsonError(w, "storage error", http.StatusInternalServerError)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Kamu2000/Job-Hunter/internal/store"
)

// ErrNotFound is returned when an application, interview or task is missing.
var ErrNotFound = errors.New("tracker: not found")

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// Service encapsulates all board business logic on top of the injected
// persistence port. It is transport-agnostic.
type Service struct {
	store store.Store
	pub   Publisher
	now   func() time.Time
}

// NewService returns a configured Service. pub may be a NoopPublisher.
func NewService(st store.Store, pub Publisher) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{store: st, pub: pub, now: time.Now}
}

// ─── Applications ────────────────────────────────────────────────────────────

// ListApplications returns all tracked applications.
func (s *Service) ListApplications(ctx context.Context) ([]Application, error) {
	apps := []Application{}
	if err := s.store.Load(ctx, store.KeyApplications, &apps); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load applications: %w", err)
	}
	return apps, nil
}

// AddApplication stores a new application. Missing fields get defaults:
// Wishlist status, Medium priority, today's applied date.
func (s *Service) AddApplication(ctx context.Context, app Application) (Application, error) {
	if app.JobTitle == "" || app.Company == "" {
		return Application{}, &ValidationError{Msg: "jobTitle and company are required"}
	}

	app.ID = uuid.NewString()
	if app.Status == "" {
		app.Status = StatusWishlist
	} else if _, err := ParseStatus(string(app.Status)); err != nil {
		return Application{}, &ValidationError{Msg: err.Error()}
	}
	if app.Priority == "" {
		app.Priority = PriorityMedium
	}
	if app.AppliedDate == "" {
		app.AppliedDate = s.now().UTC().Format("2006-01-02")
	}
	app.LastUpdated = s.now().UTC()

	apps, err := s.ListApplications(ctx)
	if err != nil {
		return Application{}, err
	}
	apps = append(apps, app)
	if err := s.store.Save(ctx, store.KeyApplications, apps); err != nil {
		return Application{}, fmt.Errorf("save applications: %w", err)
	}
	return app, nil
}

// MoveCard transitions an application to a new board status.
// Returns ErrNotFound when the application does not exist and a
// ValidationError when the state machine rejects the transition.
func (s *Service) MoveCard(ctx context.Context, appID, newStatusStr string) (Application, error) {
	newStatus, err := ParseStatus(newStatusStr)
	if err != nil {
		return Application{}, &ValidationError{Msg: err.Error()}
	}

	apps, err := s.ListApplications(ctx)
	if err != nil {
		return Application{}, err
	}

	idx := -1
	for i := range apps {
		if apps[i].ID == appID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Application{}, ErrNotFound
	}

	from := apps[idx].Status
	if !IsTransitionAllowed(from, newStatus) {
		return Application{}, &ValidationError{
			Msg: fmt.Sprintf("transition %s → %s is not allowed", from, newStatus),
		}
	}

	apps[idx].Status = newStatus
	apps[idx].LastUpdated = s.now().UTC()
	apps[idx].History = append(apps[idx].History, StatusChange{
		From: from,
		To:   newStatus,
		At:   s.now().UTC(),
	})

	if err := s.store.Save(ctx, store.KeyApplications, apps); err != nil {
		return Application{}, fmt.Errorf("save applications: %w", err)
	}

	// Board event — non-fatal.
	event, _ := json.Marshal(map[string]string{
		"type":          EventCardMoved,
		"applicationId": appID,
		"from":          string(from),
		"to":            string(newStatus),
	})
	if err := s.pub.Publish(ctx, EventCardMoved, event); err != nil {
		slog.Warn("publish EVENT_CARD_MOVED failed", "err", err)
	}

	return apps[idx], nil
}

// AddNote sets or replaces the free-text note on an application.
func (s *Service) AddNote(ctx context.Context, appID, note string) (Application, error) {
	apps, err := s.ListApplications(ctx)
	if err != nil {
		return Application{}, err
	}
	for i := range apps {
		if apps[i].ID == appID {
			apps[i].Notes = note
			apps[i].LastUpdated = s.now().UTC()
			if err := s.store.Save(ctx, store.KeyApplications, apps); err != nil {
				return Application{}, fmt.Errorf("save applications: %w", err)
			}
			return apps[i], nil
		}
	}
	return Application{}, ErrNotFound
}

// ─── Interviews ──────────────────────────────────────────────────────────────

// ListInterviews returns all interviews.
func (s *Service) ListInterviews(ctx context.Context) ([]Interview, error) {
	ivs := []Interview{}
	if err := s.store.Load(ctx, store.KeyInterviews, &ivs); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load interviews: %w", err)
	}
	return ivs, nil
}

// AddInterview stores a new interview round.
func (s *Service) AddInterview(ctx context.Context, iv Interview) (Interview, error) {
	if iv.Company == "" || iv.Date == "" {
		return Interview{}, &ValidationError{Msg: "company and date are required"}
	}

	iv.ID = uuid.NewString()
	if iv.Type == "" {
		iv.Type = InterviewPhoneScreen
	}

	ivs, err := s.ListInterviews(ctx)
	if err != nil {
		return Interview{}, err
	}
	ivs = append(ivs, iv)
	if err := s.store.Save(ctx, store.KeyInterviews, ivs); err != nil {
		return Interview{}, fmt.Errorf("save interviews: %w", err)
	}
	return iv, nil
}

// ─── Tasks ───────────────────────────────────────────────────────────────────

// ListTasks returns all tasks.
func (s *Service) ListTasks(ctx context.Context) ([]Task, error) {
	tasks := []Task{}
	if err := s.store.Load(ctx, store.KeyTasks, &tasks); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

// AddTask stores a new task, defaulting to Todo / Medium.
func (s *Service) AddTask(ctx context.Context, task Task) (Task, error) {
	if task.Title == "" {
		return Task{}, &ValidationError{Msg: "title is required"}
	}

	task.ID = uuid.NewString()
	if task.Status == "" {
		task.Status = TaskTodo
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	task.CreatedAt = s.now().UTC()

	tasks, err := s.ListTasks(ctx)
	if err != nil {
		return Task{}, err
	}
	tasks = append(tasks, task)
	if err := s.store.Save(ctx, store.KeyTasks, tasks); err != nil {
		return Task{}, fmt.Errorf("save tasks: %w", err)
	}
	return task, nil
}

// ─── Statistics ──────────────────────────────────────────────────────────────

// Statistics rolls up the board. The response rate is the share of
// applications actually sent (past Wishlist) that got any reaction.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	apps, err := s.ListApplications(ctx)
	if err != nil {
		return Statistics{}, err
	}
	ivs, err := s.ListInterviews(ctx)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{ByStatus: make(map[Status]int)}
	sent, responded := 0, 0

	for _, app := range apps {
		stats.TotalApplications++
		stats.ByStatus[app.Status]++

		switch app.Status {
		case StatusOffer:
			stats.OffersReceived++
		case StatusRejected:
			stats.Rejections++
		default:
			stats.ActiveApplications++
		}

		if app.Status != StatusWishlist {
			sent++
		}
		if IsResponded(app.Status) {
			responded++
		}
	}

	for _, iv := range ivs {
		if !iv.Completed {
			stats.InterviewsScheduled++
		}
	}

	if sent > 0 {
		stats.ResponseRate = float64(responded) / float64(sent)
	}
	return stats, nil
}

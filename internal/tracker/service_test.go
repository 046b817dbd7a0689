package tracker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Kamu2000/Job-Hunter/internal/store"
	"github.com/Kamu2000/Job-Hunter/internal/tracker"
)

func newService() *tracker.Service {
	return tracker.NewService(store.NewMemory(), tracker.NoopPublisher{})
}

func TestAddApplication_Defaults(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	app, err := svc.AddApplication(ctx, tracker.Application{
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})
	if err != nil {
		t.Fatalf("AddApplication: %v", err)
	}
	if app.ID == "" {
		t.Error("application should get a generated ID")
	}
	if app.Status != tracker.StatusWishlist {
		t.Errorf("default status = %s, want Wishlist", app.Status)
	}
	if app.Priority != tracker.PriorityMedium {
		t.Errorf("default priority = %s, want Medium", app.Priority)
	}
	if app.AppliedDate == "" {
		t.Error("applied date should default to today")
	}
}

func TestAddApplication_Validation(t *testing.T) {
	svc := newService()
	_, err := svc.AddApplication(context.Background(), tracker.Application{Company: "Acme"})

	var verr *tracker.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("missing jobTitle should yield ValidationError, got %v", err)
	}
}

func TestMoveCard_ValidTransition(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	app, _ := svc.AddApplication(ctx, tracker.Application{JobTitle: "Dev", Company: "Acme"})

	moved, err := svc.MoveCard(ctx, app.ID, "Applied")
	if err != nil {
		t.Fatalf("MoveCard: %v", err)
	}
	if moved.Status != tracker.StatusApplied {
		t.Errorf("status = %s, want Applied", moved.Status)
	}
	if len(moved.History) != 1 || moved.History[0].From != tracker.StatusWishlist {
		t.Errorf("history not recorded: %+v", moved.History)
	}

	// The move must be durable.
	apps, _ := svc.ListApplications(ctx)
	if apps[0].Status != tracker.StatusApplied {
		t.Error("move was not persisted")
	}
}

func TestMoveCard_ForbiddenTransition(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	app, _ := svc.AddApplication(ctx, tracker.Application{JobTitle: "Dev", Company: "Acme"})

	_, err := svc.MoveCard(ctx, app.ID, "Offer")
	var verr *tracker.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Wishlist → Offer should yield ValidationError, got %v", err)
	}
}

func TestMoveCard_UnknownApplication(t *testing.T) {
	svc := newService()
	_, err := svc.MoveCard(context.Background(), "missing-id", "Applied")
	if !errors.Is(err, tracker.ErrNotFound) {
		t.Errorf("unknown ID should yield ErrNotFound, got %v", err)
	}
}

func TestAddNote(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	app, _ := svc.AddApplication(ctx, tracker.Application{JobTitle: "Dev", Company: "Acme"})
	updated, err := svc.AddNote(ctx, app.ID, "asked about comp band")
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if updated.Notes != "asked about comp band" {
		t.Errorf("note = %q", updated.Notes)
	}
}

func TestStatistics(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	// One wishlist, one applied, one that progressed to Offer, one rejection.
	svc.AddApplication(ctx, tracker.Application{JobTitle: "A", Company: "W"})
	svc.AddApplication(ctx, tracker.Application{JobTitle: "B", Company: "X", Status: tracker.StatusApplied})
	svc.AddApplication(ctx, tracker.Application{JobTitle: "C", Company: "Y", Status: tracker.StatusOffer})
	svc.AddApplication(ctx, tracker.Application{JobTitle: "D", Company: "Z", Status: tracker.StatusRejected})

	svc.AddInterview(ctx, tracker.Interview{Company: "Y", Date: "2026-09-01"})

	stats, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalApplications != 4 {
		t.Errorf("TotalApplications = %d, want 4", stats.TotalApplications)
	}
	if stats.ActiveApplications != 2 {
		t.Errorf("ActiveApplications = %d, want 2 (wishlist + applied)", stats.ActiveApplications)
	}
	if stats.OffersReceived != 1 || stats.Rejections != 1 {
		t.Errorf("offers=%d rejections=%d, want 1/1", stats.OffersReceived, stats.Rejections)
	}
	if stats.InterviewsScheduled != 1 {
		t.Errorf("InterviewsScheduled = %d, want 1", stats.InterviewsScheduled)
	}
	// 3 sent (past Wishlist), 2 responded (Offer + Rejected).
	if got, want := stats.ResponseRate, 2.0/3.0; got != want {
		t.Errorf("ResponseRate = %f, want %f", got, want)
	}
	if stats.ByStatus[tracker.StatusWishlist] != 1 {
		t.Errorf("ByStatus[Wishlist] = %d, want 1", stats.ByStatus[tracker.StatusWishlist])
	}
}

func TestAddTask_Defaults(t *testing.T) {
	svc := newService()
	task, err := svc.AddTask(context.Background(), tracker.Task{Title: "Update resume"})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Status != tracker.TaskTodo || task.Priority != tracker.PriorityMedium {
		t.Errorf("defaults not applied: %+v", task)
	}
}

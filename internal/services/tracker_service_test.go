package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"vefa/internal/amqp"
	"vefa/internal/core"
	"vefa/internal/seed"
	"vefa/internal/session"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []amqp.ActivityEvent
	err    error
	closed bool
}

func (f *fakePublisher) PublishActivity(_ context.Context, ev amqp.ActivityEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func newTestService(pub ActivityPublisher) (*TrackerService, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mgr := session.NewManager(seed.Default(), 10, time.Minute, logger)
	return NewTrackerService(mgr, pub, logger), &buf
}

func TestTrackerPublishesMutations(t *testing.T) {
	pub := &fakePublisher{}
	svc, _ := newTestService(pub)
	sess := svc.Session("")

	res := svc.TogglePayment(context.Background(), sess, 3)
	if !res.Changed {
		t.Fatalf("toggle should change payment 3")
	}
	svc.RemoveDocument(context.Background(), sess, 404)

	if len(pub.events) != 2 {
		t.Fatalf("events=%d, want 2", len(pub.events))
	}
	ev := pub.events[0]
	if ev.SessionID != sess.ID || ev.Domain != core.DomainPayments || ev.RecordID != 3 || !ev.Changed {
		t.Fatalf("unexpected event %+v", ev)
	}
	if pub.events[1].Changed {
		t.Fatalf("unknown id should publish changed=false")
	}
}

func TestTrackerPublishFailureDoesNotFailMutation(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc, logs := newTestService(pub)
	sess := svc.Session("")

	res := svc.RemoveContact(context.Background(), sess, 1)
	if !res.Changed || sess.Workspace.State().Contacts.Len() != 4 {
		t.Fatalf("mutation should apply despite publish failure")
	}
	if !bytes.Contains(logs.Bytes(), []byte("Failed to publish activity event")) {
		t.Fatalf("publish failure not logged: %s", logs.String())
	}
}

func TestTrackerWithoutPublisher(t *testing.T) {
	svc, _ := newTestService(nil)
	sess := svc.Session("")
	if res := svc.ToggleStepDocument(context.Background(), sess, 3, 5); !res.Changed {
		t.Fatalf("nested toggle failed")
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestTrackerSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestService(nil)
	a := svc.Session("")
	b := svc.Session("")

	svc.ToggleExpense(context.Background(), a, 1)
	ea, _ := a.Workspace.State().Expenses.Get(1)
	eb, _ := b.Workspace.State().Expenses.Get(1)
	if !ea.Paid || eb.Paid {
		t.Fatalf("sessions share state")
	}
	if again := svc.Session(a.ID); again.Workspace != a.Workspace || again.Created {
		t.Fatalf("session not reused")
	}
	if svc.SessionCount() != 2 {
		t.Fatalf("sessions=%d", svc.SessionCount())
	}
}

func TestTrackerPendingFeatures(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	for _, err := range []error{svc.AddDocument(ctx), svc.AddContact(ctx), svc.EditContact(ctx, 2)} {
		if !errors.Is(err, core.ErrNotImplemented) {
			t.Fatalf("expected ErrNotImplemented, got %v", err)
		}
	}
	var nie *core.NotImplementedError
	if err := svc.EditContact(ctx, 2); !errors.As(err, &nie) || nie.RecordID != 2 {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestTrackerReseedAndClose(t *testing.T) {
	pub := &fakePublisher{}
	svc, _ := newTestService(pub)
	sess := svc.Session("")

	svc.RemoveDocument(context.Background(), sess, 1)
	svc.Reseed(context.Background(), sess, core.DomainDocuments)
	if sess.Workspace.State().Documents.Len() != 12 {
		t.Fatalf("reseed did not restore documents")
	}
	if len(pub.events) != 1 {
		t.Fatalf("reseed must not publish, events=%d", len(pub.events))
	}
	if err := svc.Close(); err != nil || !pub.closed {
		t.Fatalf("publisher not closed: %v", err)
	}
}

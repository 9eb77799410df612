package worker

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"vefa/internal/amqp"
	"vefa/internal/core"
)

func newTestWorker() (*ActivityWorker, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewActivityWorker(logger, 100, time.Hour), &buf
}

func TestHandleActivityTallies(t *testing.T) {
	w, buf := newTestWorker()
	ctx := context.Background()

	events := []amqp.ActivityEvent{
		amqp.NewActivityEvent("s1", core.DomainPayments, core.ActionToggle, 3, true, 1),
		amqp.NewActivityEvent("s1", core.DomainPayments, core.ActionToggle, 99, false, 1),
		amqp.NewActivityEvent("s2", core.DomainDocuments, core.ActionRemove, 1, true, 1),
	}
	for _, ev := range events {
		if err := w.HandleActivity(ctx, ev); err != nil {
			t.Fatalf("HandleActivity: %v", err)
		}
	}

	got := w.Summary()
	if got[core.DomainPayments] != (Tally{Events: 2, Changed: 1}) {
		t.Errorf("payments tally = %+v", got[core.DomainPayments])
	}
	if got[core.DomainDocuments] != (Tally{Events: 1, Changed: 1}) {
		t.Errorf("documents tally = %+v", got[core.DomainDocuments])
	}
	if _, ok := got[core.DomainContacts]; ok {
		t.Error("contacts should have no tally")
	}
	if !strings.Contains(buf.String(), "Mutation applied") {
		t.Errorf("mutation not logged: %s", buf.String())
	}
}

func TestHandleActivitySkipsDuplicates(t *testing.T) {
	w, buf := newTestWorker()
	ctx := context.Background()
	ev := amqp.NewActivityEvent("s1", core.DomainSteps, core.ActionToggleDocument, 5, true, 2)

	for i := 0; i < 3; i++ {
		if err := w.HandleActivity(ctx, ev); err != nil {
			t.Fatalf("HandleActivity: %v", err)
		}
	}
	if got := w.Summary()[core.DomainSteps]; got.Events != 1 {
		t.Errorf("redeliveries counted: %+v", got)
	}
	if !strings.Contains(buf.String(), "Duplicate activity event skipped") {
		t.Error("duplicate not logged")
	}

	// same mutation later in time is a new event
	later := ev
	later.Timestamp = ev.Timestamp.Add(time.Second)
	_ = w.HandleActivity(ctx, later)
	if got := w.Summary()[core.DomainSteps]; got.Events != 2 {
		t.Errorf("Events = %d, want 2", got.Events)
	}
}

func TestSummaryIsACopy(t *testing.T) {
	w, _ := newTestWorker()
	_ = w.HandleActivity(context.Background(), amqp.NewActivityEvent("s", core.DomainContacts, core.ActionRemove, 1, true, 1))
	s := w.Summary()
	s[core.DomainContacts] = Tally{}
	if w.Summary()[core.DomainContacts].Events != 1 {
		t.Error("Summary leaked internal map")
	}
}

func TestLogSummary(t *testing.T) {
	w, buf := newTestWorker()
	_ = w.HandleActivity(context.Background(), amqp.NewActivityEvent("s", core.DomainExpenses, core.ActionToggle, 2, true, 1))
	buf.Reset()
	w.LogSummary(context.Background())
	out := buf.String()
	if strings.Count(out, "Activity summary") != 1 || !strings.Contains(out, "domain=expenses") {
		t.Errorf("unexpected summary output: %s", out)
	}
}

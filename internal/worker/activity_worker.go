package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"vefa/internal/amqp"
	"vefa/internal/cache"
	"vefa/internal/core"
	applog "vefa/internal/log"
	"vefa/internal/metrics"
)

// Tally counts the events seen for one domain.
type Tally struct {
	Events  int
	Changed int
}

// ActivityWorker consumes activity events: it logs each mutation, keeps
// per-domain tallies and drops redelivered duplicates.
type ActivityWorker struct {
	logger *slog.Logger
	slog   *applog.StructuredLogger
	seen   *cache.LRUCache[struct{}]

	mu    sync.Mutex
	tally map[core.Domain]Tally
}

// NewActivityWorker remembers up to dedupSize recent events for dedupTTL.
func NewActivityWorker(logger *slog.Logger, dedupSize int, dedupTTL time.Duration) *ActivityWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityWorker{
		logger: logger,
		slog:   applog.NewStructuredLogger(applog.FromSlog(logger, applog.ComponentActivity)),
		seen:   cache.NewLRUCache[struct{}](dedupSize, dedupTTL),
		tally:  make(map[core.Domain]Tally),
	}
}

// HandleActivity processes one event. It never fails: a broker redelivery
// of an event already handled is acknowledged and ignored.
func (w *ActivityWorker) HandleActivity(ctx context.Context, ev amqp.ActivityEvent) error {
	key := dedupKey(ev)
	if _, dup := w.seen.Get(key); dup {
		metrics.ActivityEventsTotal.WithLabelValues("duplicate").Inc()
		w.logger.DebugContext(ctx, "Duplicate activity event skipped",
			applog.FieldComponent, applog.ComponentActivity,
			applog.FieldSessionID, ev.SessionID,
			applog.FieldDomain, ev.Domain,
			applog.FieldRecordID, ev.RecordID)
		return nil
	}
	w.seen.Set(key, struct{}{})

	w.slog.LogMutation(ctx, ev.SessionID, string(ev.Domain), string(ev.Action), ev.RecordID, ev.Changed, ev.Revision)

	w.mu.Lock()
	t := w.tally[ev.Domain]
	t.Events++
	if ev.Changed {
		t.Changed++
	}
	w.tally[ev.Domain] = t
	w.mu.Unlock()

	metrics.ActivityEventsTotal.WithLabelValues("consumed").Inc()
	return nil
}

// Summary returns a copy of the per-domain tallies.
func (w *ActivityWorker) Summary() map[core.Domain]Tally {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[core.Domain]Tally, len(w.tally))
	for d, t := range w.tally {
		out[d] = t
	}
	return out
}

// LogSummary writes the tallies, one line per domain with activity.
func (w *ActivityWorker) LogSummary(ctx context.Context) {
	summary := w.Summary()
	for _, d := range core.Domains() {
		t, ok := summary[d]
		if !ok {
			continue
		}
		w.logger.InfoContext(ctx, "Activity summary",
			applog.FieldComponent, applog.ComponentActivity,
			applog.FieldDomain, d,
			"events", t.Events,
			"changed", t.Changed)
	}
}

// Cleaner exposes the dedup window to a cache.Manager.
func (w *ActivityWorker) Cleaner() cache.Cleaner {
	return w.seen
}

func dedupKey(ev amqp.ActivityEvent) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d|%d",
		ev.SessionID, ev.Domain, ev.Action, ev.RecordID, ev.Revision, ev.Timestamp.UnixNano())
}

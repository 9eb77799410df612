package services

import (
	"context"
	"fmt"
	"log/slog"

	"vefa/internal/amqp"
	"vefa/internal/core"
	applog "vefa/internal/log"
	"vefa/internal/metrics"
	"vefa/internal/session"
)

// ActivityPublisher publishes mutation events. *amqp.Client implements it.
type ActivityPublisher interface {
	PublishActivity(ctx context.Context, ev amqp.ActivityEvent) error
	Close() error
}

// Session is a resolved browser session.
type Session struct {
	ID        string
	Workspace *session.Workspace
	Created   bool
}

// TrackerService orchestrates workspace mutations: it applies them, counts
// them, logs them and publishes an activity event. Publishing is best effort
// and never fails a mutation.
type TrackerService struct {
	sessions  *session.Manager
	publisher ActivityPublisher
	logger    *slog.Logger
	slog      *applog.StructuredLogger
}

func NewTrackerService(sessions *session.Manager, publisher ActivityPublisher, logger *slog.Logger) *TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	structured := applog.NewStructuredLogger(applog.FromSlog(logger, applog.ComponentTracker))
	return &TrackerService{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
		slog:      structured,
	}
}

// Session resolves id to a workspace, creating one when needed.
func (s *TrackerService) Session(id string) Session {
	sid, ws, created := s.sessions.Resolve(id)
	metrics.ActiveSessions.Set(float64(s.sessions.Count()))
	return Session{ID: sid, Workspace: ws, Created: created}
}

// HasSession reports whether id names a live session.
func (s *TrackerService) HasSession(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s.sessions.Lookup(id)
	return ok
}

// SessionCount returns the number of live sessions.
func (s *TrackerService) SessionCount() int {
	return s.sessions.Count()
}

func (s *TrackerService) TogglePayment(ctx context.Context, sess Session, id int64) session.Result {
	return s.record(ctx, sess, sess.Workspace.TogglePayment(id))
}

func (s *TrackerService) ToggleExpense(ctx context.Context, sess Session, id int64) session.Result {
	return s.record(ctx, sess, sess.Workspace.ToggleExpense(id))
}

func (s *TrackerService) ToggleStep(ctx context.Context, sess Session, id int64) session.Result {
	return s.record(ctx, sess, sess.Workspace.ToggleStep(id))
}

func (s *TrackerService) ToggleStepDocument(ctx context.Context, sess Session, stepID, docID int64) session.Result {
	return s.record(ctx, sess, sess.Workspace.ToggleStepDocument(stepID, docID))
}

func (s *TrackerService) RemoveDocument(ctx context.Context, sess Session, id int64) session.Result {
	return s.record(ctx, sess, sess.Workspace.RemoveDocument(id))
}

func (s *TrackerService) RemoveContact(ctx context.Context, sess Session, id int64) session.Result {
	return s.record(ctx, sess, sess.Workspace.RemoveContact(id))
}

// Reseed resets one domain of the session to the seed records. Reseeds are
// not published.
func (s *TrackerService) Reseed(ctx context.Context, sess Session, d core.Domain) session.Result {
	res := sess.Workspace.Reseed(d)
	s.logger.DebugContext(ctx, "Domain reseeded",
		applog.FieldComponent, applog.ComponentTracker,
		applog.FieldSessionID, sess.ID,
		applog.FieldDomain, d)
	return res
}

// AddDocument is a pending workflow.
func (s *TrackerService) AddDocument(ctx context.Context) error {
	return s.pending(ctx, core.FeatureAddDocument, 0)
}

// AddContact is a pending workflow.
func (s *TrackerService) AddContact(ctx context.Context) error {
	return s.pending(ctx, core.FeatureAddContact, 0)
}

// EditContact is a pending workflow.
func (s *TrackerService) EditContact(ctx context.Context, id int64) error {
	return s.pending(ctx, core.FeatureEditContact, id)
}

func (s *TrackerService) pending(ctx context.Context, f core.Feature, id int64) error {
	metrics.PendingFeatureTotal.WithLabelValues(string(f)).Inc()
	s.logger.InfoContext(ctx, "Pending feature requested",
		applog.FieldComponent, applog.ComponentTracker,
		applog.FieldFeature, f,
		applog.FieldRecordID, id)
	return core.NotImplemented(f, id)
}

func (s *TrackerService) record(ctx context.Context, sess Session, res session.Result) session.Result {
	metrics.RecordMutation(string(res.Domain), string(res.Action), res.Changed)
	s.slog.LogMutation(ctx, sess.ID, string(res.Domain), string(res.Action), res.RecordID, res.Changed, res.Revision)

	if err := s.publish(ctx, sess.ID, res); err != nil {
		metrics.ActivityEventsTotal.WithLabelValues("publish_failed").Inc()
		s.logger.ErrorContext(ctx, "Failed to publish activity event",
			applog.FieldComponent, applog.ComponentAMQP,
			applog.FieldDomain, res.Domain,
			applog.FieldRecordID, res.RecordID,
			applog.FieldError, err)
	}
	return res
}

func (s *TrackerService) publish(ctx context.Context, sessionID string, res session.Result) error {
	if s.publisher == nil {
		return nil
	}
	ev := amqp.NewActivityEvent(sessionID, res.Domain, res.Action, res.RecordID, res.Changed, res.Revision)
	if err := s.publisher.PublishActivity(ctx, ev); err != nil {
		return err
	}
	metrics.ActivityEventsTotal.WithLabelValues("published").Inc()
	return nil
}

// Close releases the publisher.
func (s *TrackerService) Close() error {
	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.Close(); err != nil {
		return fmt.Errorf("close publisher: %w", err)
	}
	return nil
}

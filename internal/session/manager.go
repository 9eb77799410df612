package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vefa/internal/cache"
	applog "vefa/internal/log"
	"vefa/internal/seed"
)

// Manager hands out workspaces by session id. Idle sessions expire after
// the configured TTL and the least recently used ones are dropped when the
// limit is reached.
type Manager struct {
	snap     seed.Snapshot
	sessions *cache.LRUCache[*Workspace]
	logger   *slog.Logger
}

// NewManager creates a manager whose workspaces all start from snap.
func NewManager(snap seed.Snapshot, maxSessions int, ttl time.Duration, logger *slog.Logger, opts ...cache.Option[*Workspace]) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{snap: snap.Clone(), logger: logger}
	opts = append([]cache.Option[*Workspace]{
		cache.WithEvictHook[*Workspace](func(id string, _ *Workspace) {
			m.logger.Debug("Session dropped", applog.FieldComponent, applog.ComponentSession, applog.FieldSessionID, id)
		}),
	}, opts...)
	m.sessions = cache.NewLRUCache[*Workspace](maxSessions, ttl, opts...)
	return m
}

// Resolve returns the workspace for id. An empty, malformed or unknown id
// gets a fresh workspace under a new id; the returned id is the one the
// caller must keep using.
func (m *Manager) Resolve(id string) (string, *Workspace, bool) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	ws, created := m.sessions.GetOrCreate(id, func() *Workspace {
		return NewWorkspace(m.snap)
	})
	if created {
		m.logger.Debug("Session created", applog.FieldComponent, applog.ComponentSession, applog.FieldSessionID, id)
	}
	return id, ws, created
}

// Lookup returns an existing workspace without creating one.
func (m *Manager) Lookup(id string) (*Workspace, bool) {
	return m.sessions.Get(id)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	return m.sessions.Size()
}

// Cleaner exposes the session store to a cache.Manager.
func (m *Manager) Cleaner() cache.Cleaner {
	return m.sessions
}

package dialog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/content"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/sched"
)

// ManagerConfig wires the collaborators shared by every session.
type ManagerConfig struct {
	Content   *content.Store
	Backend   Backend
	Scheduler sched.Scheduler
	Archive   Archive // optional
	Logger    zerolog.Logger
	Pacing    Pacing
	Clock     func() time.Time // optional
	TTL       time.Duration    // idle session lifetime; 0 disables eviction

	// DefaultLanguage is the BCP 47 code applied when Create receives no
	// language. Empty or unsupported values fall back to the content store's
	// default table.
	DefaultLanguage string
}

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Manager owns the live sessions. Idle sessions past the TTL are evicted
// opportunistically on Create, the same cheap strategy the HTTP rate limiter
// uses for its per-client buckets.
type Manager struct {
	cfg ManagerConfig

	mu       sync.Mutex
	sessions map[string]*session
}

// NewManager returns an empty session registry.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Manager{
		cfg:      cfg,
		sessions: make(map[string]*session),
	}
}

// Create starts a new session in the given language ("" selects the
// configured default) and returns its id. The greeting is emitted
// immediately; the main menu follows one pacing step later.
func (m *Manager) Create(ctx context.Context, langCode string) (string, *Controller, error) {
	if langCode == "" {
		// A misconfigured default must not block session creation; it
		// falls back to the content store's default table.
		if def := m.cfg.DefaultLanguage; def != "" && m.cfg.Content.Supported(def) {
			langCode = def
		}
	} else if !m.cfg.Content.Supported(langCode) {
		return "", nil, ErrUnknownLanguage
	}

	var tag language.Tag
	if langCode != "" {
		tag = m.cfg.Content.Match(langCode)
	}

	ctrl := NewController(Config{
		Content:   m.cfg.Content,
		Backend:   m.cfg.Backend,
		Scheduler: m.cfg.Scheduler,
		Archive:   m.cfg.Archive,
		Logger:    m.cfg.Logger,
		Pacing:    m.cfg.Pacing,
		Clock:     m.cfg.Clock,
		Language:  tag,
	})
	ctrl.Start(ctx)

	id := uuid.NewString()
	now := m.cfg.Clock()

	m.mu.Lock()
	m.evictLocked(now)
	m.sessions[id] = &session{ctrl: ctrl, lastSeen: now}
	m.mu.Unlock()

	m.cfg.Logger.Info().Str("session_id", id).Msg("session created")
	return id, ctrl, nil
}

// Get returns the controller of a live session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = m.cfg.Clock()
	return s.ctrl, nil
}

// Delete ends a session, invalidating its pending deferred replies.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.ctrl.Close()
	m.cfg.Logger.Info().Str("session_id", id).Msg("session deleted")
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown closes every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.ctrl.Close()
	}
}

func (m *Manager) evictLocked(now time.Time) {
	if m.cfg.TTL <= 0 {
		return
	}
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.cfg.TTL {
			delete(m.sessions, id)
			s.ctrl.Close()
			m.cfg.Logger.Debug().Str("session_id", id).Msg("idle session evicted")
		}
	}
}

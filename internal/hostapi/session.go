package hostapi

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/username/goviet-ime/internal/engine"
)

// Session pairs one engine.Host with a correlation id, so every log line
// for a connection — a D-Bus client, an HTTP caller — traces back to it.
// Nothing is logged from internal/engine itself (spec.md §7); this is
// where that line gets written.
type Session struct {
	ID   string
	Host *engine.Host
}

// NewSession creates a freshly initialized session with a random id.
func NewSession() *Session {
	h := engine.NewHost()
	h.Initialize()
	return &Session{ID: uuid.NewString(), Host: h}
}

// ProcessKey runs a key through the session's engine and logs the outcome.
func (s *Session) ProcessKey(key engine.Keycode, shiftDown, capsOn, ctrlDown, altDown, cmdDown bool) engine.EditResult {
	result := s.Host.ProcessKey(key, shiftDown, capsOn, ctrlDown, altDown, cmdDown)
	log.Info().
		Str("session_id", s.ID).
		Uint16("keycode", uint16(key)).
		Uint8("action", uint8(result.Action)).
		Uint8("backspace", result.BackspaceCount).
		Uint8("output_len", result.ValidLen).
		Msg("key processed")
	return result
}

// Manager keeps one Session per caller-supplied id, for hosts that serve
// more than one concurrent composition (the HTTP test harness, one session
// per client). cmd/daemon only ever has one D-Bus client and uses a bare
// Session directly.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating one on first use. An empty id
// always creates a new session with a generated id.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			return s
		}
	}
	s := NewSession()
	if id != "" {
		s.ID = id
	}
	m.sessions[s.ID] = s
	return s
}

// Delete drops a session, e.g. when an HTTP client signals it is done.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

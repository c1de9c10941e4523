package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoSession = errors.New("no session in request context")
)

// Data is the authenticated identity carried by a session. Consumers read it
// through the Session interface; all mutation goes through the auth service.
type Data struct {
	UserID      string
	EmployeeID  *string
	Username    string
	Role        string
	DisplayName string
	LoggedIn    bool
}

// Session is the per-request session contract. The identifier is opaque and
// delivered via cookie; the payload lives server-side.
type Session interface {
	ID() string
	Data() Data
	SetData(data Data) error
	RegenerateID() error
	Destroy() error
}

// Store persists session payloads keyed by session identifier.
type Store interface {
	Load(id string) (Data, bool)
	Save(id string, data Data)
	Delete(id string)
}

// MemoryStore keeps sessions in process memory with a TTL. Expired entries
// are rejected at Load and pruned opportunistically at Save, so no background
// sweeper is needed.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Load(id string) (Data, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return Data{}, false
	}
	return entry.data, true
}

func (s *MemoryStore) Save(id string, data Data) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	s.entries[id] = memoryEntry{data: data, expiresAt: now.Add(s.ttl)}
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Manager binds a Store to cookie transport.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

type contextKey struct{}

// Middleware attaches a request-scoped Session to the context. A missing or
// unknown cookie yields an empty session; an identifier is only issued once
// data is written.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := &requestSession{manager: m, w: w}

		if cookie, err := r.Cookie(m.cookieName); err == nil {
			if data, ok := m.store.Load(cookie.Value); ok {
				sess.id = cookie.Value
				sess.data = data
			}
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sess)))
	})
}

// NewContext returns a context carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the Session attached by Middleware.
func FromContext(ctx context.Context) (Session, error) {
	sess, ok := ctx.Value(contextKey{}).(Session)
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

type requestSession struct {
	manager *Manager
	w       http.ResponseWriter
	id      string
	data    Data
}

func (s *requestSession) ID() string {
	return s.id
}

func (s *requestSession) Data() Data {
	return s.data
}

func (s *requestSession) SetData(data Data) error {
	if s.id == "" {
		s.id = uuid.NewString()
		s.setCookie(s.id, s.manager.ttl)
	}
	s.data = data
	s.manager.store.Save(s.id, data)
	return nil
}

// RegenerateID issues a fresh identifier for the same payload. Called right
// after login so a pre-auth session ID can never name an authenticated
// session.
func (s *requestSession) RegenerateID() error {
	if s.id != "" {
		s.manager.store.Delete(s.id)
	}
	s.id = uuid.NewString()
	s.manager.store.Save(s.id, s.data)
	s.setCookie(s.id, s.manager.ttl)
	return nil
}

// Destroy clears the server-side entry and expires the cookie. The cookie is
// expired even when no live entry resolved, so stale cookies do not outlive
// logout. Idempotent.
func (s *requestSession) Destroy() error {
	if s.id != "" {
		s.manager.store.Delete(s.id)
	}
	s.setCookie("", -time.Hour)
	s.id = ""
	s.data = Data{}
	return nil
}

func (s *requestSession) setCookie(value string, ttl time.Duration) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.manager.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   s.manager.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

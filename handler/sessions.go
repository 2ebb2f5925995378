package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/fhsmendes/weather-lookup/lookup"
	"github.com/google/uuid"
)

const SessionCookie = "weather_session"

// SessionStore associa cada navegador ao seu próprio lookup.Component.
type SessionStore struct {
	mu         sync.RWMutex
	components map[string]*lookup.Component
	resolver   lookup.Resolver
}

func NewSessionStore(resolver lookup.Resolver) *SessionStore {
	return &SessionStore{
		components: make(map[string]*lookup.Component),
		resolver:   resolver,
	}
}

func (s *SessionStore) Get(id string) *lookup.Component {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.components[id]
	if !ok {
		return nil
	}
	return c
}

// Create monta uma nova interface com estado inicial e devolve seu id.
func (s *SessionStore) Create() (string, *lookup.Component) {
	id := uuid.NewString()
	c := lookup.NewComponent(s.resolver)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.components[id] = c
	return id, c
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.components)
}

// Sweep descarta sessões sem uso desde antes de cutoff e retorna quantas saíram.
func (s *SessionStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, c := range s.components {
		if c.LastSeen().Before(cutoff) {
			delete(s.components, id)
			removed++
		}
	}
	return removed
}

// component devolve a sessão do cookie ou cria uma nova, gravando o cookie.
func (s *SessionStore) component(w http.ResponseWriter, r *http.Request) *lookup.Component {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if c := s.Get(cookie.Value); c != nil {
			c.Touch()
			return c
		}
	}

	id, c := s.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c
}

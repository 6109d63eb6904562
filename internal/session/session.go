// Package session keeps editor login state server-side. The persistence
// API issues the bearer token; we hold it behind an opaque cookie id so it
// never reaches the browser.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Sumatoha/shaq-web/internal/model"
)

// CookieName is the session cookie the editor handlers set and read.
const CookieName = "shaq_session"

type Session struct {
	ID        string
	Token     string
	User      model.User
	CreatedAt time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a fresh session for the token and returns it.
func (s *Store) Create(token string, user model.User) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id. A session whose token has expired is
// dropped on the spot, same as an upstream 401 would.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if exp, known := TokenExpiry(sess.Token); known && time.Now().After(exp) {
		s.Delete(id)
		return nil, false
	}
	return sess, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// InvalidateToken drops every session carrying the token. Wired to the API
// client's 401 hook.
func (s *Store) InvalidateToken(token string) {
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.Token == token {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}

// TokenExpiry peeks at the token's exp claim without verifying the
// signature; verification is the persistence API's job. Opaque tokens
// report no expiry and stay valid until upstream rejects them.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

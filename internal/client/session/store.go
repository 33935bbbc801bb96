package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Route identifies a client view. Navigation is injected so the store stays
// independent of how views are rendered.
type Route string

const (
	RouteLanding  Route = "landing"
	RouteLogin    Route = "login"
	RouteQuestion Route = "question"
)

// Notifier surfaces non-blocking user notifications (the toast equivalent).
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Navigator switches the active view.
type Navigator interface {
	Goto(route Route)
}

// Store derives the "authenticated" flag from the persisted token and keeps
// storage and navigation in step on login/logout.
//
// Authentication is recomputed from storage on every IsAuthenticated call;
// callers invoke it on each navigation cycle, so a token removed or expired
// behind the store's back reads as unauthenticated immediately. Expiry is
// checked locally only: a token revoked server-side still reads as
// authenticated until some API call answers 401.
type Store struct {
	storage TokenStorage
	notify  Notifier
	nav     Navigator

	now func() time.Time
}

func NewStore(storage TokenStorage, notify Notifier, nav Navigator) *Store {
	return &Store{storage: storage, notify: notify, nav: nav, now: time.Now}
}

// Token returns the raw stored token, or "" when none is stored.
func (s *Store) Token() string {
	token, err := s.storage.Load()
	if err != nil {
		return ""
	}
	return token
}

// IsAuthenticated re-reads the stored token and requires a present, parsable
// token with an unexpired exp claim. Every failure mode reads as
// unauthenticated (fail-closed): missing token, unreadable storage,
// malformed token, missing exp, expired exp.
func (s *Store) IsAuthenticated() bool {
	token, err := s.storage.Load()
	if err != nil || token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(s.now())
}

// Login persists the token, announces success, and navigates to the
// authenticated landing view.
func (s *Store) Login(token string) error {
	if err := s.storage.Save(token); err != nil {
		return err
	}
	s.notify.Success("Logged in successfully")
	s.nav.Goto(RouteQuestion)
	return nil
}

// Logout clears the token, announces success, and navigates to the public
// landing view.
func (s *Store) Logout() error {
	if err := s.storage.Clear(); err != nil {
		return err
	}
	s.notify.Success("Logged out successfully")
	s.nav.Goto(RouteLanding)
	return nil
}

// Expire is the 401 recovery path: clear the token, send the user to login,
// and tell them why. It is invoked identically no matter which endpoint
// produced the 401.
func (s *Store) Expire() error {
	if err := s.storage.Clear(); err != nil {
		return err
	}
	s.notify.Error("Session expired. Please login again")
	s.nav.Goto(RouteLogin)
	return nil
}

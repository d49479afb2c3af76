package services

import (
	"errors"
	"sync"

	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/pkg/auth"
	"github.com/shashiranjanraj/stylestore/pkg/event"
	"github.com/shashiranjanraj/stylestore/pkg/kvstore"
	"github.com/shashiranjanraj/stylestore/pkg/logger"
)

// ErrInvalidCredentials is the single generic login failure. It never
// reveals whether the email or the password was wrong, or whether any
// account exists at all.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SessionService owns the registered profile and the active session. At
// most one profile exists at a time; Register overwrites it without a
// duplicate check.
type SessionService struct {
	mu      sync.Mutex
	store   kvstore.Store
	current *models.UserProfile
}

// NewSessionService restores the persisted profile, if any, as the active
// session, so a restart does not sign the shopper out.
func NewSessionService(store kvstore.Store) *SessionService {
	s := &SessionService{store: store}

	var profile models.UserProfile
	ok, err := store.Get(kvstore.KeyUser, &profile)
	if err != nil {
		logger.Warn("session: could not restore profile", "error", err)
		return s
	}
	if ok {
		s.current = &profile
	}

	return s
}

// Register stores profile as the current identity, hashing the credential
// first — the plain text is never persisted or compared. Any prior profile
// is overwritten. The new profile becomes the active session.
func (s *SessionService) Register(profile models.UserProfile) (models.UserProfile, error) {
	hash, err := auth.HashPassword(profile.Password)
	if err != nil {
		return models.UserProfile{}, err
	}
	profile.Password = hash

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Put(kvstore.KeyUser, profile); err != nil {
		logger.Warn("session: persist failed", "key", kvstore.KeyUser, "error", err)
		event.Fire(event.PersistFailed, err)
	}
	s.current = &profile

	event.Fire(event.UserRegistered, profile.Public())
	return profile, nil
}

// Login succeeds only when a profile is stored and its email matches
// exactly and the password verifies against the stored hash. On success
// the profile becomes the active session.
func (s *SessionService) Login(email, password string) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile models.UserProfile
	ok, err := s.store.Get(kvstore.KeyUser, &profile)
	if err != nil {
		logger.Warn("session: could not read profile", "error", err)
		return models.UserProfile{}, ErrInvalidCredentials
	}
	if !ok || profile.Email != email || !auth.CheckPassword(profile.Password, password) {
		return models.UserProfile{}, ErrInvalidCredentials
	}

	s.current = &profile
	event.Fire(event.UserLoggedIn, profile.Public())
	return profile, nil
}

// Logout ends the active session only. The stored profile is kept, so the
// same credentials work on the next login without re-registering.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the active session profile, if any.
func (s *SessionService) Current() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.UserProfile{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether an active session profile is present.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

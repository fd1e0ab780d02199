package simpleotp

import (
	"sync"

	"github.com/goliatone/go-simpleotp/observable"
)

// sessionState owns the two observable cells. Writers store both cells
// under mu and notify only after every lock is released, so a subscriber
// may read either view, take a snapshot or even start another operation.
type sessionState struct {
	mu            sync.RWMutex
	authenticated *observable.Value[bool]
	user          *observable.Value[*User]
}

func newSessionState(seed *User) *sessionState {
	return &sessionState{
		authenticated: observable.New(seed != nil),
		user:          observable.New(seed),
	}
}

func (s *sessionState) authenticatedView() observable.ReadOnly[bool] {
	return s.authenticated.View()
}

func (s *sessionState) userView() observable.ReadOnly[*User] {
	return s.user.View()
}

func (s *sessionState) snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{
		Authenticated: s.authenticated.Get(),
		User:          s.user.Get(),
	}
}

// applyAuthenticated records user as signed in. A nil user can not be
// authenticated, so the cells are left as they are.
func (s *sessionState) applyAuthenticated(user *User) (from, to SessionStatus, notify func()) {
	if user == nil {
		s.mu.RLock()
		current := statusFor(s.authenticated.Get())
		s.mu.RUnlock()
		return current, current, func() {}
	}
	return s.apply(user)
}

func (s *sessionState) applyUnauthenticated() (from, to SessionStatus, notify func()) {
	return s.apply(nil)
}

// apply stores both cells and returns the function that notifies their
// subscribers. Callers run notify once they hold no locks of their own.
func (s *sessionState) apply(user *User) (SessionStatus, SessionStatus, func()) {
	s.mu.Lock()
	from := statusFor(s.authenticated.Get())
	authChanged := s.authenticated.Store(user != nil)
	userChanged := s.user.Store(user)
	s.mu.Unlock()

	notify := func() {
		if authChanged {
			s.authenticated.Notify()
		}
		if userChanged {
			s.user.Notify()
		}
	}

	return from, statusFor(user != nil), notify
}

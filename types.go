package simpleotp

import "context"

// StatusCode is the outcome reported by the underlying client for an
// authentication attempt. Only StatusOK is interpreted by this package.
type StatusCode string

// StatusOK marks a successful code exchange.
const StatusOK StatusCode = "OK"

// AuthResponse is what the underlying client returns from a code exchange.
// It is handed back to callers untouched.
type AuthResponse struct {
	Status  StatusCode     `json:"code"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// OK reports whether the response carries the success status.
func (r *AuthResponse) OK() bool {
	return r != nil && r.Status == StatusOK
}

// User is the identity record returned by the underlying client. The
// adapter stores and forwards it by reference without interpreting it.
type User struct {
	ID       string         `json:"id"`
	Email    string         `json:"email,omitempty"`
	SiteID   string         `json:"site_id,omitempty"`
	Token    string         `json:"token,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Client is the capability the adapter wraps. Implementations own the
// protocol exchange, network calls and token storage.
type Client interface {
	// GetUser returns the signed in user or nil when there is no session.
	GetUser() *User
	// AuthWithURLCode exchanges the code found in the current URL. Protocol
	// failures are reported through AuthResponse.Status, not the error.
	AuthWithURLCode(ctx context.Context) (*AuthResponse, error)
	// SignOut drops the client side session.
	SignOut(ctx context.Context) error
}

// Session is a consistent snapshot of both observable cells.
type Session struct {
	Authenticated bool
	User          *User
}

// Status returns the session status the snapshot represents.
func (s Session) Status() SessionStatus {
	return statusFor(s.Authenticated)
}

// SessionStatus names the two states a session can be in.
type SessionStatus string

const (
	SessionUnauthenticated SessionStatus = "unauthenticated"
	SessionAuthenticated   SessionStatus = "authenticated"
)

func statusFor(authenticated bool) SessionStatus {
	if authenticated {
		return SessionAuthenticated
	}
	return SessionUnauthenticated
}

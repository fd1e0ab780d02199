package simpleotp

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-simpleotp/observable"
)

// ReactiveClient wraps a Client and mirrors its session into observable
// cells. Only AuthWithURLCode and SignOut change the cells.
type ReactiveClient struct {
	// opMu serializes reading the client's session with writing the cells.
	// It is never held while a code exchange is in flight.
	opMu sync.Mutex

	client   Client
	state    *sessionState
	siteID   string
	activity ActivitySink
	logger   Logger
	provider LoggerProvider
	now      func() time.Time
}

// Option customizes a ReactiveClient.
type Option func(*ReactiveClient)

// WithLogger sets the logger used for client failures and sink errors.
func WithLogger(logger Logger) Option {
	return func(rc *ReactiveClient) {
		if logger != nil {
			rc.provider, rc.logger = ResolveLogger(loggerName, nil, logger)
		}
	}
}

// WithLoggerProvider resolves the "simpleotp" logger from provider.
func WithLoggerProvider(provider LoggerProvider) Option {
	return func(rc *ReactiveClient) {
		if provider != nil {
			rc.provider, rc.logger = ResolveLogger(loggerName, provider, rc.logger)
		}
	}
}

// WithActivitySink publishes lifecycle events to sink.
func WithActivitySink(sink ActivitySink) Option {
	return func(rc *ReactiveClient) {
		rc.activity = sinkOrDiscard(sink)
	}
}

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) Option {
	return func(rc *ReactiveClient) {
		if clock != nil {
			rc.now = clock
		}
	}
}

// WithSiteID tags activity events with the auth tenant.
func WithSiteID(siteID string) Option {
	return func(rc *ReactiveClient) {
		rc.siteID = siteID
	}
}

// New wraps client. The cells are seeded from client.GetUser so a session
// the client already holds is picked up without any call.
func New(client Client, opts ...Option) (*ReactiveClient, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	rc := &ReactiveClient{
		client:   client,
		activity: discardSink{},
		now:      time.Now,
	}
	rc.provider, rc.logger = ResolveLogger(loggerName, nil, nil)

	for _, opt := range opts {
		if opt != nil {
			opt(rc)
		}
	}

	seed := client.GetUser()
	rc.state = newSessionState(seed)

	if seed != nil {
		rc.logger.Debug("resumed existing session", "user_id", seed.ID)
		rc.recordActivity(context.Background(), ActivityEvent{
			EventType:  ActivityEventSessionResumed,
			UserID:     seed.ID,
			FromStatus: SessionUnauthenticated,
			ToStatus:   SessionAuthenticated,
		})
	}

	return rc, nil
}

// AuthWithURLCode delegates the code exchange to the wrapped client and
// returns its response and error untouched. The session is marked
// authenticated only when the call succeeds with StatusOK.
func (rc *ReactiveClient) AuthWithURLCode(ctx context.Context) (*AuthResponse, error) {
	resp, err := rc.client.AuthWithURLCode(ctx)
	if err != nil {
		rc.logger.Error("auth with url code failed", "error", err)
		rc.recordActivity(ctx, ActivityEvent{
			EventType:  ActivityEventURLCodeError,
			FromStatus: rc.Status(),
			ToStatus:   rc.Status(),
			Err:        err,
		})
		return resp, err
	}

	if !resp.OK() {
		var status StatusCode
		if resp != nil {
			status = resp.Status
		}
		rc.logger.Debug("auth with url code rejected", "status", status)
		rc.recordActivity(ctx, ActivityEvent{
			EventType:  ActivityEventURLCodeFailure,
			FromStatus: rc.Status(),
			ToStatus:   rc.Status(),
			Status:     status,
		})
		return resp, nil
	}

	rc.opMu.Lock()
	user := rc.client.GetUser()
	if user == nil {
		from := rc.Status()
		rc.opMu.Unlock()

		rc.logger.Warn("auth with url code succeeded without a user", "status", resp.Status)
		rc.recordActivity(ctx, ActivityEvent{
			EventType:  ActivityEventURLCodeFailure,
			FromStatus: from,
			ToStatus:   from,
			Status:     resp.Status,
		})
		return resp, nil
	}
	from, to, notify := rc.state.applyAuthenticated(user)
	rc.opMu.Unlock()

	notify()

	rc.recordActivity(ctx, ActivityEvent{
		EventType:  ActivityEventURLCodeSuccess,
		UserID:     user.ID,
		FromStatus: from,
		ToStatus:   to,
		Status:     resp.Status,
	})

	return resp, nil
}

// SignOut delegates to the wrapped client and then resets the session,
// whatever the client reported. The client error, if any, is returned
// as is.
func (rc *ReactiveClient) SignOut(ctx context.Context) error {
	rc.opMu.Lock()
	err := rc.client.SignOut(ctx)
	prev := rc.state.snapshot()
	from, to, notify := rc.state.applyUnauthenticated()
	rc.opMu.Unlock()

	notify()

	if err != nil {
		rc.logger.Warn("sign out reported an error, local session cleared anyway", "error", err)
	}

	event := ActivityEvent{
		EventType:  ActivityEventSignOut,
		FromStatus: from,
		ToStatus:   to,
		Err:        err,
	}
	if prev.User != nil {
		event.UserID = prev.User.ID
	}
	rc.recordActivity(ctx, event)

	return err
}

// IsAuthenticatedRef returns the read-only view of the authenticated flag.
func (rc *ReactiveClient) IsAuthenticatedRef() observable.ReadOnly[bool] {
	return rc.state.authenticatedView()
}

// GetUserRef returns the read-only view of the current user.
func (rc *ReactiveClient) GetUserRef() observable.ReadOnly[*User] {
	return rc.state.userView()
}

// IsAuthenticated reports the current value of the authenticated flag.
func (rc *ReactiveClient) IsAuthenticated() bool {
	return rc.state.authenticatedView().Get()
}

// User returns the current user, nil when signed out.
func (rc *ReactiveClient) User() *User {
	return rc.state.userView().Get()
}

// Session returns a consistent snapshot of both cells.
func (rc *ReactiveClient) Session() Session {
	return rc.state.snapshot()
}

// Status returns the current session status.
func (rc *ReactiveClient) Status() SessionStatus {
	return rc.Session().Status()
}

// SiteID returns the auth tenant this adapter was installed for.
func (rc *ReactiveClient) SiteID() string {
	return rc.siteID
}

// Underlying returns the wrapped client.
func (rc *ReactiveClient) Underlying() Client {
	return rc.client
}

func (rc *ReactiveClient) recordActivity(ctx context.Context, event ActivityEvent) {
	if event.SiteID == "" {
		event.SiteID = rc.siteID
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = rc.now()
	}

	sink := sinkOrDiscard(rc.activity)
	if err := sink.Record(context.WithoutCancel(ctx), event); err != nil {
		rc.logger.Warn("simpleotp activity sink error", "error", err)
	}
}

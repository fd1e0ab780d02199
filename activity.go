package simpleotp

import (
	"context"
	"time"
)

// ActivityEventType names a step in the session lifecycle.
type ActivityEventType string

const (
	ActivityEventSessionResumed ActivityEventType = "session.resumed"
	ActivityEventURLCodeSuccess ActivityEventType = "auth.url_code.success"
	ActivityEventURLCodeFailure ActivityEventType = "auth.url_code.failure"
	ActivityEventURLCodeError   ActivityEventType = "auth.url_code.error"
	ActivityEventSignOut        ActivityEventType = "auth.signout"
)

// ActivityEvent describes one lifecycle step. Err is set when the wrapped
// client reported an error; Status carries the exchange status, if any.
type ActivityEvent struct {
	EventType  ActivityEventType
	SiteID     string
	UserID     string
	FromStatus SessionStatus
	ToStatus   SessionStatus
	Status     StatusCode
	Err        error
	OccurredAt time.Time
}

// ActivitySink receives session lifecycle events. Recording is best effort:
// a failing sink is logged and never changes what the adapter returns.
type ActivitySink interface {
	Record(ctx context.Context, event ActivityEvent) error
}

// ActivitySinkFunc lets a plain function receive session events.
type ActivitySinkFunc func(ctx context.Context, event ActivityEvent) error

// Record calls f; a nil func drops the event.
func (f ActivitySinkFunc) Record(ctx context.Context, event ActivityEvent) error {
	if f == nil {
		return nil
	}
	return f(ctx, event)
}

// discardSink is installed when no sink is configured.
type discardSink struct{}

func (discardSink) Record(context.Context, ActivityEvent) error {
	return nil
}

func sinkOrDiscard(s ActivitySink) ActivitySink {
	if s == nil {
		return discardSink{}
	}
	return s
}

package simpleotp_test

import (
	"context"
	"sync"

	simpleotp "github.com/goliatone/go-simpleotp"
	"github.com/stretchr/testify/mock"
)

// MockClient implements simpleotp.Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetUser() *simpleotp.User {
	args := m.Called()
	user, _ := args.Get(0).(*simpleotp.User)
	return user
}

func (m *MockClient) AuthWithURLCode(ctx context.Context) (*simpleotp.AuthResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*simpleotp.AuthResponse)
	return resp, args.Error(1)
}

func (m *MockClient) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeClient is a stateful stand-in for the OTP client: a successful
// exchange stores next as the current user, SignOut clears it.
type fakeClient struct {
	mu     sync.Mutex
	user   *simpleotp.User
	next   *simpleotp.User
	status simpleotp.StatusCode
}

func (f *fakeClient) GetUser() *simpleotp.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user
}

func (f *fakeClient) AuthWithURLCode(ctx context.Context) (*simpleotp.AuthResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	status := f.status
	if status == "" {
		status = simpleotp.StatusOK
	}
	if status == simpleotp.StatusOK {
		f.user = f.next
	}
	return &simpleotp.AuthResponse{Status: status}, nil
}

func (f *fakeClient) SignOut(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	return nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []simpleotp.ActivityEvent
}

func (s *recordingSink) Record(_ context.Context, event simpleotp.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) types() []simpleotp.ActivityEventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]simpleotp.ActivityEventType, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.EventType)
	}
	return out
}

func (s *recordingSink) last() simpleotp.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[len(s.events)-1]
}

package simpleotp

import "context"

var clientCtxKey = &contextKey{"simpleotp"}

type contextKey struct {
	name string
}

// WithContext sets the ReactiveClient in the given context
func WithContext(ctx context.Context, rc *ReactiveClient) context.Context {
	return context.WithValue(ctx, clientCtxKey, rc)
}

// FromContext finds the ReactiveClient from the context.
func FromContext(ctx context.Context) (*ReactiveClient, bool) {
	if ctx == nil {
		return nil, false
	}
	raw, ok := ctx.Value(clientCtxKey).(*ReactiveClient)
	return raw, ok && raw != nil
}

// ClientFromContext is FromContext returning ErrPluginNotInstalled
// instead of a boolean.
func ClientFromContext(ctx context.Context) (*ReactiveClient, error) {
	rc, ok := FromContext(ctx)
	if !ok {
		return nil, ErrPluginNotInstalled
	}
	return rc, nil
}

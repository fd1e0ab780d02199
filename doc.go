// Package simpleotp wraps a one-time-password authentication client so that
// UI code can observe session changes instead of polling for them.
//
// Session state:
//   - ReactiveClient owns two observable cells, "is authenticated" and
//     "current user". Both are written together under one lock, so an
//     authenticated flag never travels without a user and vice versa.
//   - Consumers only ever receive read-only views (IsAuthenticatedRef,
//     GetUserRef). Views are stable: every call returns the same facade bound
//     to the same live cell.
//
// Lifecycle:
//   - New seeds the cells from whatever user the underlying Client already
//     holds, so a session established earlier is resumed.
//   - AuthWithURLCode delegates to the Client and flips the cells only on an
//     explicit StatusOK. Every other status and every error leaves them alone.
//   - SignOut delegates and then always resets the cells, even when the
//     Client reports an error.
//
// Registration:
//   - Install validates a Config, builds the Client through a ClientFactory and
//     provides the adapter under PluginKey. Use retrieves it again. WithContext
//     and FromContext carry the same handle through a call graph.
package simpleotp

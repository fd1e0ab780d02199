package simpleotp

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeMissingSiteID      = "SIMPLEOTP_MISSING_SITE_ID"
	TextCodeInvalidConfig      = "SIMPLEOTP_INVALID_CONFIG"
	TextCodeNilClient          = "SIMPLEOTP_NIL_CLIENT"
	TextCodeNilClientFactory   = "SIMPLEOTP_NIL_CLIENT_FACTORY"
	TextCodeNilContainer       = "SIMPLEOTP_NIL_CONTAINER"
	TextCodePluginNotInstalled = "SIMPLEOTP_PLUGIN_NOT_INSTALLED"
)

// ErrMissingSiteID is returned when a Config has no site identifier.
var ErrMissingSiteID = goerrors.New("simpleotp site id is required", goerrors.CategoryValidation).
	WithTextCode(TextCodeMissingSiteID).
	WithCode(goerrors.CodeBadRequest)

// ErrNilClient is returned when the adapter is built without a Client.
var ErrNilClient = goerrors.New("simpleotp client is required", goerrors.CategoryBadInput).
	WithTextCode(TextCodeNilClient)

// ErrNilClientFactory is returned by Install when no ClientFactory is given.
var ErrNilClientFactory = goerrors.New("simpleotp client factory is required", goerrors.CategoryBadInput).
	WithTextCode(TextCodeNilClientFactory)

// ErrNilContainer is returned by Install when there is nowhere to register the adapter.
var ErrNilContainer = goerrors.New("simpleotp container is required", goerrors.CategoryBadInput).
	WithTextCode(TextCodeNilContainer)

// ErrPluginNotInstalled is returned when looking up an adapter that was never installed.
var ErrPluginNotInstalled = goerrors.New("simpleotp plugin is not installed", goerrors.CategoryNotFound).
	WithTextCode(TextCodePluginNotInstalled).
	WithCode(goerrors.CodeNotFound)

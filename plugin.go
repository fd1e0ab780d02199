package simpleotp

import "sync"

// PluginKey is the fixed key the adapter is registered under.
const PluginKey = "simpleotp"

// Provider registers values for later lookup.
type Provider interface {
	Provide(key string, value any)
}

// Injector looks values up by key.
type Injector interface {
	Inject(key string) (any, bool)
}

// ClientFactory builds the underlying client from a validated Config.
type ClientFactory func(cfg Config) (Client, error)

var _ Provider = &Container{}
var _ Injector = &Container{}

// Container is a minimal dependency container scoped to one application.
// The zero value is ready to use.
type Container struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{values: map[string]any{}}
}

// Provide stores value under key, replacing any previous value.
func (c *Container) Provide(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		c.values = map[string]any{}
	}
	c.values[key] = value
}

// Inject returns the value stored under key.
func (c *Container) Inject(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// Install validates cfg, builds the client with factory and provides the
// resulting adapter under PluginKey. Factory errors are returned unmodified.
func Install(app Provider, cfg Config, factory ClientFactory, opts ...Option) (*ReactiveClient, error) {
	if app == nil {
		return nil, ErrNilContainer
	}

	if factory == nil {
		return nil, ErrNilClientFactory
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	client, err := factory(cfg)
	if err != nil {
		return nil, err
	}

	options := append([]Option{WithSiteID(cfg.SiteID)}, opts...)
	rc, err := New(client, options...)
	if err != nil {
		return nil, err
	}

	app.Provide(PluginKey, rc)
	return rc, nil
}

// Use returns the adapter registered by Install.
func Use(app Injector) (*ReactiveClient, bool) {
	if app == nil {
		return nil, false
	}
	raw, ok := app.Inject(PluginKey)
	if !ok {
		return nil, false
	}
	rc, ok := raw.(*ReactiveClient)
	return rc, ok && rc != nil
}

// MustUse is like Use but panics with ErrPluginNotInstalled when the
// adapter is missing.
func MustUse(app Injector) *ReactiveClient {
	rc, ok := Use(app)
	if !ok {
		panic(ErrPluginNotInstalled)
	}
	return rc
}

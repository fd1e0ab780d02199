package simpleotp_test

import (
	"errors"
	"testing"

	simpleotp "github.com/goliatone/go-simpleotp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallProvidesAdapterUnderPluginKey(t *testing.T) {
	container := simpleotp.NewContainer()

	var received simpleotp.Config
	factory := func(cfg simpleotp.Config) (simpleotp.Client, error) {
		received = cfg
		return &fakeClient{}, nil
	}

	rc, err := simpleotp.Install(container, simpleotp.Config{SiteID: "acme"}, factory)
	require.NoError(t, err)
	require.NotNil(t, rc)

	assert.Equal(t, "acme", received.SiteID)
	assert.Equal(t, simpleotp.DefaultAPIURL, received.APIURL)
	assert.Equal(t, "acme", rc.SiteID())

	raw, ok := container.Inject(simpleotp.PluginKey)
	require.True(t, ok)
	assert.Same(t, rc, raw)

	found, ok := simpleotp.Use(container)
	require.True(t, ok)
	assert.Same(t, rc, found)
	assert.Same(t, rc, simpleotp.MustUse(container))
}

func TestInstallPassesAPIURLOverride(t *testing.T) {
	var received simpleotp.Config
	_, err := simpleotp.Install(simpleotp.NewContainer(),
		simpleotp.Config{SiteID: "acme", APIURL: "https://otp.example.com"},
		func(cfg simpleotp.Config) (simpleotp.Client, error) {
			received = cfg
			return &fakeClient{}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "https://otp.example.com", received.APIURL)
}

func TestInstallErrors(t *testing.T) {
	okFactory := func(simpleotp.Config) (simpleotp.Client, error) { return &fakeClient{}, nil }
	factoryErr := errors.New("backend misconfigured")

	tests := []struct {
		name      string
		container simpleotp.Provider
		cfg       simpleotp.Config
		factory   simpleotp.ClientFactory
		expected  error
	}{
		{
			name:     "nil container",
			cfg:      simpleotp.Config{SiteID: "acme"},
			factory:  okFactory,
			expected: simpleotp.ErrNilContainer,
		},
		{
			name:      "nil factory",
			container: simpleotp.NewContainer(),
			cfg:       simpleotp.Config{SiteID: "acme"},
			expected:  simpleotp.ErrNilClientFactory,
		},
		{
			name:      "missing site id",
			container: simpleotp.NewContainer(),
			factory:   okFactory,
			expected:  simpleotp.ErrMissingSiteID,
		},
		{
			name:      "factory error is not masked",
			container: simpleotp.NewContainer(),
			cfg:       simpleotp.Config{SiteID: "acme"},
			factory: func(simpleotp.Config) (simpleotp.Client, error) {
				return nil, factoryErr
			},
			expected: factoryErr,
		},
		{
			name:      "factory returns nil client",
			container: simpleotp.NewContainer(),
			cfg:       simpleotp.Config{SiteID: "acme"},
			factory: func(simpleotp.Config) (simpleotp.Client, error) {
				return nil, nil
			},
			expected: simpleotp.ErrNilClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := simpleotp.Install(tt.container, tt.cfg, tt.factory)
			assert.Nil(t, rc)
			assert.ErrorIs(t, err, tt.expected)

			if c, ok := tt.container.(*simpleotp.Container); ok {
				_, found := simpleotp.Use(c)
				assert.False(t, found, "failed installs register nothing")
			}
		})
	}
}

func TestUseWithoutInstall(t *testing.T) {
	container := simpleotp.NewContainer()

	rc, ok := simpleotp.Use(container)
	assert.False(t, ok)
	assert.Nil(t, rc)

	rc, ok = simpleotp.Use(nil)
	assert.False(t, ok)
	assert.Nil(t, rc)

	container.Provide(simpleotp.PluginKey, "not an adapter")
	_, ok = simpleotp.Use(container)
	assert.False(t, ok)

	assert.PanicsWithValue(t, simpleotp.ErrPluginNotInstalled, func() {
		simpleotp.MustUse(simpleotp.NewContainer())
	})
}

func TestZeroValueContainer(t *testing.T) {
	var container simpleotp.Container
	container.Provide("key", 1)

	v, ok := container.Inject("key")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

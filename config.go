package simpleotp

import (
	"strings"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

// DefaultAPIURL is the backend used when Config.APIURL is empty.
const DefaultAPIURL = "https://api.simpleotp.com"

// Config holds the options recognized when installing the plugin.
type Config struct {
	// SiteID identifies the auth tenant.
	SiteID string `json:"site_id" yaml:"site_id" env:"SIMPLEOTP_SITE_ID"`
	// APIURL overrides the backend endpoint.
	APIURL string `json:"api_url,omitempty" yaml:"api_url,omitempty" env:"SIMPLEOTP_API_URL"`
}

// GetSiteID returns the auth tenant identifier.
func (c Config) GetSiteID() string {
	return strings.TrimSpace(c.SiteID)
}

// GetAPIURL returns the backend endpoint, falling back to DefaultAPIURL.
func (c Config) GetAPIURL() string {
	if u := strings.TrimSpace(c.APIURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return DefaultAPIURL
}

// WithDefaults returns a copy with whitespace trimmed and defaults applied.
func (c Config) WithDefaults() Config {
	return Config{
		SiteID: c.GetSiteID(),
		APIURL: c.GetAPIURL(),
	}
}

// Validate checks the configuration. A missing site id is reported as
// ErrMissingSiteID, anything else as a validation error.
func (c Config) Validate() error {
	if c.GetSiteID() == "" {
		return ErrMissingSiteID
	}

	err := validation.ValidateStruct(&c,
		validation.Field(&c.SiteID, validation.Required, validation.Length(1, 128)),
		validation.Field(&c.APIURL, is.URL),
	)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid simpleotp config").
			WithTextCode(TextCodeInvalidConfig)
	}

	return nil
}

// LoadConfig reads SIMPLEOTP_SITE_ID and SIMPLEOTP_API_URL from the
// environment. Any dotenv files given are loaded first; variables already
// set in the environment take precedence over them.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil {
			return Config{}, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to load dotenv files")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, goerrors.Wrap(err, goerrors.CategoryValidation, "failed to parse simpleotp environment").
			WithTextCode(TextCodeInvalidConfig)
	}

	return cfg.WithDefaults(), nil
}

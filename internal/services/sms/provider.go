package sms

import (
	"net/http"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/config"
	"github.com/rs/zerolog"
)

// Provider hands out the Sinch client when the credentials are configured.
type Provider struct {
	client *Client
	err    error
}

func NewProvider(cfg config.Sinch, base http.RoundTripper, logger zerolog.Logger) *Provider {
	if err := validate(cfg); err != nil {
		logger.Warn().Err(err).Msg("sinch client is not configured")
		return &Provider{err: err}
	}

	return &Provider{client: NewClient(cfg, base, logger)}
}

// Client returns the shared client or a *ConfigurationError.
func (p *Provider) Client() (*Client, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.client, nil
}

// Check validates the configuration without calling the provider.
func (p *Provider) Check() error {
	return p.err
}

func validate(cfg config.Sinch) error {
	var missing []string
	if cfg.KeyID == "" {
		missing = append(missing, "SINCH_KEY_ID")
	}
	if cfg.KeySecret == "" {
		missing = append(missing, "SINCH_KEY_SECRET")
	}
	if cfg.ProjectID == "" {
		missing = append(missing, "SINCH_PROJECT_ID")
	}

	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

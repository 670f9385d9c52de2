package sms

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/config"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const batchesPath = "/xms/v1/{project_id}/batches"

// Client sends SMS batches through the Sinch REST API.
type Client struct {
	http      *resty.Client
	projectID string
	logger    zerolog.Logger
}

// NewClient builds a client whose requests carry an OAuth2 bearer token.
// Token and API calls both go through base.
func NewClient(cfg config.Sinch, base http.RoundTripper, logger zerolog.Logger) *Client {
	if base == nil {
		base = http.DefaultTransport
	}

	credentials := clientcredentials.Config{
		ClientID:     cfg.KeyID,
		ClientSecret: cfg.KeySecret,
		TokenURL:     cfg.AuthURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Transport: base,
		Timeout:   cfg.RequestTimeout(),
	})

	httpClient := resty.NewWithClient(credentials.Client(ctx)).
		SetBaseURL(cfg.SMSURL).
		SetTimeout(cfg.RequestTimeout()).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger: logger})

	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("sinch response")
		return nil
	})

	return &Client{
		http:      httpClient,
		projectID: cfg.ProjectID,
		logger:    logger,
	}
}

// Send posts msg as a new batch and returns the created batch.
func (c *Client) Send(ctx context.Context, msg models.OutboundMessage) (models.Batch, error) {
	var batch models.Batch
	var failure apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("project_id", c.projectID).
		SetBody(msg).
		SetResult(&batch).
		SetError(&failure).
		Post(batchesPath)
	if err != nil {
		return models.Batch{}, fmt.Errorf("send sms batch: %w", err)
	}

	if !resp.IsSuccess() {
		return models.Batch{}, &SendError{
			StatusCode: resp.StatusCode(),
			Code:       failure.Code,
			Text:       failure.Text,
		}
	}

	c.logger.Info().
		Str("batch_id", batch.ID).
		Strs("to", batch.To).
		Msg("sms batch created")

	return batch, nil
}

type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

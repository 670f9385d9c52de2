package sms

import (
	"fmt"
	"strings"
)

// ConfigurationError lists the provider settings that are not set.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Missing, ", ")
}

// SendError is a non-2xx answer from the batches endpoint.
type SendError struct {
	StatusCode int
	Code       string
	Text       string
}

func (e *SendError) Error() string {
	if e.Code == "" && e.Text == "" {
		return fmt.Sprintf("sinch responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("sinch responded with status %d: %s: %s", e.StatusCode, e.Code, e.Text)
}

// apiError is the error body returned by the SMS REST API.
type apiError struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rentdesk/rentdesk/internal/config"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/httpclient"
	"github.com/rentdesk/rentdesk/internal/logger"
)

// Client sends SMS messages to tenants
type Client interface {
	Send(ctx context.Context, phoneNumber, message string) error
	IsEnabled() bool
}

// gatewayClient talks to the SMS gateway over HTTP. When the gateway is not
// configured it degrades to a disabled client that only logs.
type gatewayClient struct {
	http     httpclient.Client
	log      *logger.Logger
	enabled  bool
	baseURL  string
	apiKey   string
	senderID string
}

type sendRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

// NewClient creates a new SMS client from configuration
func NewClient(cfg *config.Configuration, http httpclient.Client, log *logger.Logger) Client {
	if !cfg.Sms.Enabled || cfg.Sms.BaseURL == "" || cfg.Sms.APIKey == "" {
		return &gatewayClient{
			log:     log,
			enabled: false,
		}
	}

	return &gatewayClient{
		http:     http,
		log:      log,
		enabled:  true,
		baseURL:  cfg.Sms.BaseURL,
		apiKey:   cfg.Sms.APIKey,
		senderID: cfg.Sms.SenderID,
	}
}

// IsEnabled returns whether the SMS client is enabled
func (c *gatewayClient) IsEnabled() bool {
	return c.enabled
}

// Send delivers a message through the gateway. Disabled clients log the
// message and report success so local runs behave like production without
// reaching a real gateway.
func (c *gatewayClient) Send(ctx context.Context, phoneNumber, message string) error {
	if !c.enabled {
		c.log.Infow("sms client disabled, skipping delivery",
			"phone_number", phoneNumber,
			"message", message,
		)
		return nil
	}

	if phoneNumber == "" {
		return ierr.NewError("missing phone number").
			WithHint("Recipient phone number is required").
			Mark(ierr.ErrValidation)
	}

	body, err := json.Marshal(sendRequest{
		To:       phoneNumber,
		Message:  message,
		SenderID: c.senderID,
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode sms payload").
			Mark(ierr.ErrSystem)
	}

	req := &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.baseURL + "/v1/messages",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
		},
		Body: body,
	}

	operation := func() error {
		_, err := c.http.Send(ctx, req)
		return err
	}

	b := backoff.WithContext(newSendBackoff(), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to deliver sms").
			WithReportableDetails(map[string]interface{}{
				"phone_number": phoneNumber,
			}).
			Mark(ierr.ErrHTTPClient)
	}

	return nil
}

func newSendBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 10 * time.Second
	return backoff.WithMaxRetries(b, 3)
}

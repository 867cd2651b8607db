package testutil

import (
	"context"
	"sync"

	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/sms"
)

var _ sms.Client = (*FakeSmsClient)(nil)

// SentSms captures one message handed to the fake gateway
type SentSms struct {
	PhoneNumber string
	Message     string
}

// FakeSmsClient is an in-memory sms.Client for tests. It records every send
// and can be told to fail on demand.
type FakeSmsClient struct {
	mu       sync.Mutex
	sent     []SentSms
	failWith string
}

// NewFakeSmsClient creates a new fake sms client
func NewFakeSmsClient() *FakeSmsClient {
	return &FakeSmsClient{}
}

// Send records the message, or fails if FailWith was set
func (c *FakeSmsClient) Send(ctx context.Context, phoneNumber string, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failWith != "" {
		return ierr.NewError(c.failWith).
			WithHint("Failed to send sms").
			Mark(ierr.ErrHTTPClient)
	}

	c.sent = append(c.sent, SentSms{PhoneNumber: phoneNumber, Message: message})
	return nil
}

// IsEnabled always reports true so dispatch paths are exercised
func (c *FakeSmsClient) IsEnabled() bool {
	return true
}

// FailWith makes every subsequent send fail with the given reason. Pass an
// empty string to restore successful sends.
func (c *FakeSmsClient) FailWith(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failWith = reason
}

// Sent returns a copy of all recorded messages
func (c *FakeSmsClient) Sent() []SentSms {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]SentSms, len(c.sent))
	copy(out, c.sent)
	return out
}

// Clear drops all recorded messages and resets failure mode
func (c *FakeSmsClient) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = nil
	c.failWith = ""
}

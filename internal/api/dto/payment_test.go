package dto

import (
	"encoding/json"
	"testing"
	"time"

	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPaymentEventMpesa(t *testing.T) {
	req := &WebhookPaymentRequest{
		Source: "mpesa",
		PaymentData: json.RawMessage(`{
			"TransID": "QR1",
			"TransAmount": 25000,
			"TransTime": "20260831143000",
			"MSISDN": "254700000001",
			"FirstName": "Jane",
			"LastName": "Wanjiku"
		}`),
	}

	event, err := req.ToPaymentEvent()
	require.NoError(t, err)
	assert.Equal(t, types.PaymentMethodMpesa, event.Method)
	assert.Equal(t, "QR1", event.ExternalID)
	assert.True(t, event.Amount.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, "254700000001", event.PayerPhone)
	assert.Equal(t, "Jane Wanjiku", event.PayerName)
	require.NotNil(t, event.PaidAt)
	assert.Equal(t, time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC), event.PaidAt.UTC())
}

func TestToPaymentEventKcb(t *testing.T) {
	req := &WebhookPaymentRequest{
		Source: "KCB",
		PaymentData: json.RawMessage(`{
			"transactionReference": "KCB-77",
			"amount": 18000,
			"phoneNumber": "254711000002",
			"customerName": "Peter Otieno",
			"transactionDate": "2026-08-31T14:30:00Z"
		}`),
	}

	event, err := req.ToPaymentEvent()
	require.NoError(t, err)
	assert.Equal(t, types.PaymentMethodKCB, event.Method)
	assert.Equal(t, "KCB-77", event.ExternalID)
	assert.True(t, event.Amount.Equal(decimal.NewFromInt(18000)))
	assert.Equal(t, "Peter Otieno", event.PayerName)
	require.NotNil(t, event.PaidAt)
}

func TestToPaymentEventUnsupportedSource(t *testing.T) {
	req := &WebhookPaymentRequest{
		Source:      "paypal",
		PaymentData: json.RawMessage(`{}`),
	}

	_, err := req.ToPaymentEvent()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestToPaymentEventMalformedPayload(t *testing.T) {
	req := &WebhookPaymentRequest{
		Source:      "mpesa",
		PaymentData: json.RawMessage(`{"TransAmount": "not-a-number"`),
	}

	_, err := req.ToPaymentEvent()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestPaymentEventValidate(t *testing.T) {
	valid := &PaymentEvent{
		Amount:     decimal.NewFromInt(100),
		Method:     types.PaymentMethodMpesa,
		ExternalID: "QR1",
	}
	assert.NoError(t, valid.Validate())

	missingRef := &PaymentEvent{
		Amount: decimal.NewFromInt(100),
		Method: types.PaymentMethodMpesa,
	}
	assert.Error(t, missingRef.Validate())

	zeroAmount := &PaymentEvent{
		Amount:     decimal.Zero,
		Method:     types.PaymentMethodMpesa,
		ExternalID: "QR1",
	}
	assert.Error(t, zeroAmount.Validate())

	badMethod := &PaymentEvent{
		Amount:     decimal.NewFromInt(100),
		Method:     types.PaymentMethod("cash"),
		ExternalID: "QR1",
	}
	assert.Error(t, badMethod.Validate())
}

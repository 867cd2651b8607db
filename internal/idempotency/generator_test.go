package idempotency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyIsDeterministic(t *testing.T) {
	g := NewGenerator()

	a := g.GenerateKey(ScopePayment, map[string]interface{}{"external_id": "QR1"})
	b := g.GenerateKey(ScopePayment, map[string]interface{}{"external_id": "QR1"})
	assert.Equal(t, a, b)
}

func TestGenerateKeyDiffersByParams(t *testing.T) {
	g := NewGenerator()

	a := g.GenerateKey(ScopePayment, map[string]interface{}{"external_id": "QR1"})
	b := g.GenerateKey(ScopePayment, map[string]interface{}{"external_id": "QR2"})
	assert.NotEqual(t, a, b)
}

func TestGenerateKeyDiffersByScope(t *testing.T) {
	g := NewGenerator()

	a := g.GenerateKey(ScopePayment, map[string]interface{}{"external_id": "QR1"})
	b := g.GenerateKey(ScopeInvoice, map[string]interface{}{"external_id": "QR1"})
	assert.NotEqual(t, a, b)
}

func TestGenerateKeyIgnoresParamOrder(t *testing.T) {
	g := NewGenerator()

	a := g.GenerateKey(ScopePayment, map[string]interface{}{"external_id": "QR1", "source": "mpesa"})
	b := g.GenerateKey(ScopePayment, map[string]interface{}{"source": "mpesa", "external_id": "QR1"})
	assert.Equal(t, a, b)
}

func TestValidateKey(t *testing.T) {
	g := NewGenerator()
	params := map[string]interface{}{"external_id": "QR1"}

	key := g.GenerateKey(ScopePayment, params)
	assert.True(t, g.ValidateKey(ScopePayment, params, key))
	assert.False(t, g.ValidateKey(ScopePayment, map[string]interface{}{"external_id": "QR2"}, key))
}

//go:build unit

package gateway_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"techfest-backend/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
)

func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "rzp_test_secret"
	payload := "order_abc123|pay_def456"

	t.Run("valid signature is accepted", func(t *testing.T) {
		assert.True(t, gateway.VerifySignature(payload, sign(payload, secret), secret))
	})

	t.Run("tampered signature is rejected", func(t *testing.T) {
		sig := sign(payload, secret)
		tampered := "0" + sig[1:]
		if tampered == sig {
			tampered = "1" + sig[1:]
		}
		assert.False(t, gateway.VerifySignature(payload, tampered, secret))
	})

	t.Run("signature for a different payload is rejected", func(t *testing.T) {
		other := sign("order_abc123|pay_other", secret)
		assert.False(t, gateway.VerifySignature(payload, other, secret))
	})

	t.Run("signature with wrong secret is rejected", func(t *testing.T) {
		assert.False(t, gateway.VerifySignature(payload, sign(payload, "wrong"), secret))
	})

	t.Run("empty signature is rejected", func(t *testing.T) {
		assert.False(t, gateway.VerifySignature(payload, "", secret))
	})

	t.Run("empty secret is rejected", func(t *testing.T) {
		assert.False(t, gateway.VerifySignature(payload, sign(payload, ""), ""))
	})
}

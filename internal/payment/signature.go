package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Callback is what the external checkout widget hands back after the
// user completes payment.
type Callback struct {
	PaymentID string
	OrderID   string
	Signature string
}

// VerifySignature checks the callback signature: HMAC-SHA256 of
// "<order_id>|<payment_id>" keyed with the gateway secret, hex encoded.
// The callback is never trusted without this check.
func VerifySignature(cb Callback, secret string) bool {
	if cb.PaymentID == "" || cb.OrderID == "" || cb.Signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(cb.OrderID + "|" + cb.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(cb.Signature))
}

// SignCallback computes the signature the gateway would produce for an
// order/payment pair. Used by tests and local checkout simulation.
func SignCallback(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

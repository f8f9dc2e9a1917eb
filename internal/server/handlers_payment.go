package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resumemint/internal/payment"
)

// VerifyPaymentRequest is the checkout callback forwarded by the client
// after the payment widget closes.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// Validate validates the VerifyPaymentRequest using the validator.
func (r *VerifyPaymentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleCreateOrder places a premium-plan order with the payment
// gateway and returns it for the checkout widget.
func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	if s.payments == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "payment gateway is not configured")
		return
	}

	order, err := s.payments.CreateOrder(r.Context())
	if err != nil {
		log.Printf("Error creating order: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "failed to create order")
		return
	}

	s.jsonResponse(w, http.StatusOK, order)
}

// handleVerifyPayment checks the checkout callback signature. Premium is
// only granted on {"status": "success"}; anything else leaves the
// client locked.
func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	if s.payments == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "payment gateway is not configured")
		return
	}

	var req VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"status": "failed"})
		return
	}
	if err := req.Validate(); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"status": "failed"})
		return
	}

	cb := payment.Callback{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	}
	if !payment.VerifySignature(cb, s.payments.KeySecret()) {
		log.Printf("Payment verification failed for order %s", req.RazorpayOrderID)
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"status": "failed"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "success"})
}

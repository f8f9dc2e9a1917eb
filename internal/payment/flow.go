package payment

import (
	"context"
	"fmt"
)

// State is a stage of the premium purchase flow.
type State int

// Flow states, in transition order.
const (
	StateIdle State = iota
	StateOrderRequested
	StateWidgetOpen
	StateVerifying
	StateUnlocked
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOrderRequested:
		return "order-requested"
	case StateWidgetOpen:
		return "widget-open"
	case StateVerifying:
		return "verifying"
	case StateUnlocked:
		return "unlocked"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned for out-of-order flow transitions.
var ErrInvalidTransition = fmt.Errorf("invalid payment flow transition")

// Flow tracks the purchase state machine for one session. Failure at any
// stage records StateFailed and the flow returns to idle on Reset; the
// premium flag itself is only touched on a verified success.
type Flow struct {
	state   State
	lastErr error
}

// NewFlow starts an idle flow.
func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

// State returns the current flow state.
func (f *Flow) State() State {
	return f.state
}

// LastError returns the error recorded by the most recent failure.
func (f *Flow) LastError() error {
	return f.lastErr
}

// RequestOrder moves idle -> order-requested.
func (f *Flow) RequestOrder() error {
	return f.transition(StateIdle, StateOrderRequested)
}

// OpenWidget moves order-requested -> widget-open.
func (f *Flow) OpenWidget() error {
	return f.transition(StateOrderRequested, StateWidgetOpen)
}

// BeginVerification moves widget-open -> verifying.
func (f *Flow) BeginVerification() error {
	return f.transition(StateWidgetOpen, StateVerifying)
}

// Complete moves verifying -> unlocked.
func (f *Flow) Complete() error {
	return f.transition(StateVerifying, StateUnlocked)
}

// Fail records a failure from any non-terminal state.
func (f *Flow) Fail(err error) {
	f.state = StateFailed
	f.lastErr = err
}

// Reset returns a failed or unlocked flow to idle so the user can retry
// or start over.
func (f *Flow) Reset() {
	f.state = StateIdle
}

func (f *Flow) transition(from, to State) error {
	if f.state != from {
		return fmt.Errorf("%w: %s -> %s (currently %s)", ErrInvalidTransition, from, to, f.state)
	}
	f.state = to
	return nil
}

// CheckoutFunc hands an order to the external checkout widget and blocks
// until the user completes or abandons it.
type CheckoutFunc func(ctx context.Context, order *Order) (Callback, error)

// OrderPlacer creates an order with the payment gateway.
type OrderPlacer interface {
	CreateOrder(ctx context.Context) (*Order, error)
	KeySecret() string
}

// Run drives the whole flow: order -> widget -> verification -> unlock.
// unlock is only called after the callback signature verifies. On any
// failure the flow ends idle and unlock is never called.
func (f *Flow) Run(ctx context.Context, gateway OrderPlacer, checkout CheckoutFunc, unlock func(ctx context.Context) error) error {
	fail := func(err error) error {
		f.Fail(err)
		f.Reset()
		return err
	}

	if err := f.RequestOrder(); err != nil {
		return err
	}

	order, err := gateway.CreateOrder(ctx)
	if err != nil {
		return fail(fmt.Errorf("order creation failed: %w", err))
	}

	if err := f.OpenWidget(); err != nil {
		return fail(err)
	}
	callback, err := checkout(ctx, order)
	if err != nil {
		return fail(fmt.Errorf("checkout failed: %w", err))
	}

	if err := f.BeginVerification(); err != nil {
		return fail(err)
	}
	if callback.OrderID != order.ID {
		return fail(fmt.Errorf("callback order id %q does not match order %q", callback.OrderID, order.ID))
	}
	if !VerifySignature(callback, gateway.KeySecret()) {
		return fail(fmt.Errorf("callback signature verification failed"))
	}

	if err := unlock(ctx); err != nil {
		return fail(fmt.Errorf("failed to persist premium unlock: %w", err))
	}
	return f.Complete()
}

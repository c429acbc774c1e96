package auth

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_mock.go -package=mock

// Biometric is the platform biometric surface.
type Biometric interface {
	Capability() Capability
	// Authenticate opens a prompt with the given title. The challenge must
	// end with an ErrorCanceled event once ctx is done.
	Authenticate(ctx context.Context, title string) *Challenge
}

// Coordinator drives the unlock state machine. Every method publishes the
// resulting state to Watch subscribers.
type Coordinator interface {
	// Activate evaluates the entry rules and auto-triggers the biometric
	// prompt when it is available. It blocks until that prompt ends.
	Activate(ctx context.Context) State
	// TriggerBiometric runs one biometric challenge to its terminal event.
	TriggerBiometric(ctx context.Context) State
	// VerifyPin checks pin and wipes it on every path.
	VerifyPin(ctx context.Context, pin []byte) Result
	ShowPinDialog(ctx context.Context) State
	// DismissPinDialog returns to StateRequiresAuth without counting a
	// failed attempt.
	DismissPinDialog(ctx context.Context) State
	// RefreshLockoutTimer is polled once per second while locked out.
	RefreshLockoutTimer(ctx context.Context) State
	// Lock ends the session and requires authentication again.
	Lock(ctx context.Context) State
	State() State
	Watch() (<-chan State, func())
}

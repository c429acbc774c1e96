package session

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// AutoLockSource reports the user's auto-lock timeout in minutes. 0 means
// the session never expires.
type AutoLockSource interface {
	AutoLockMinutes() int
}

// Policy decides whether the user must re-authenticate. Liveness is
// recomputed from the persisted last-activity time on every call.
type Policy interface {
	// StartSession records now as both session start and last activity.
	StartSession(ctx context.Context) error
	// Touch moves last activity to now. It is a no-op without a session.
	Touch(ctx context.Context) error
	HasActiveSession(ctx context.Context) (bool, error)
	ShouldRequireAuth(ctx context.Context) (bool, error)
	// EndSession clears both timestamps.
	EndSession(ctx context.Context) error
	State(ctx context.Context) (State, error)
}

// Lockout tracks failed PIN attempts and the timed lockout they trigger.
type Lockout interface {
	// RecordFailedAttempt bumps the counter and, on the last allowed
	// attempt, starts the lockout in the same write.
	RecordFailedAttempt(ctx context.Context) (Attempt, error)
	// IsLockedOut reports an active lockout. An elapsed lockout is cleared
	// along with the counter.
	IsLockedOut(ctx context.Context) (bool, error)
	// LockoutRemaining returns whole seconds left, rounded up. 0 when not
	// locked out.
	LockoutRemaining(ctx context.Context) (int, error)
	ResetFailedAttempts(ctx context.Context) error
	RemainingAttempts(ctx context.Context) (int, error)
}

// Attempt is the outcome of a recorded failed attempt.
type Attempt struct {
	Remaining int
	LockedOut bool
}

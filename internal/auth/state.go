package auth

// State is the unlock state shown to the user. The concrete types below are
// the only implementations.
type State interface {
	isState()
}

// StateRequiresAuth waits for the user to pick an unlock method.
type StateRequiresAuth struct {
	BiometricAvailable bool
	PinAvailable       bool
	Message            string
}

// StateBiometricInProgress is an open biometric prompt. Hint is set after a
// non-matching attempt.
type StateBiometricInProgress struct {
	Hint string
}

// StatePinInProgress is an open PIN dialog.
type StatePinInProgress struct {
	Hint string
}

// StateAuthenticated is the unlocked state.
type StateAuthenticated struct{}

// StateLockedOut rejects every unlock method until RemainingSeconds elapse.
type StateLockedOut struct {
	RemainingSeconds int
}

// StateError is a blocking failure with no fallback method.
type StateError struct {
	Message string
}

func (StateRequiresAuth) isState()        {}
func (StateBiometricInProgress) isState() {}
func (StatePinInProgress) isState()       {}
func (StateAuthenticated) isState()       {}
func (StateLockedOut) isState()           {}
func (StateError) isState()               {}

// Result is the outcome of one PIN verification.
type Result interface {
	isResult()
}

// ResultSuccess means the PIN matched and a session was started.
type ResultSuccess struct{}

// ResultFailed means the PIN did not match and attempts remain.
type ResultFailed struct {
	Message           string
	AttemptsRemaining int
}

// ResultLockedOut means the attempt was rejected because of a lockout,
// either already active or triggered by this attempt.
type ResultLockedOut struct {
	DurationSeconds int
}

// ResultError means verification could not be completed.
type ResultError struct {
	Message string
}

func (ResultSuccess) isResult()   {}
func (ResultFailed) isResult()    {}
func (ResultLockedOut) isResult() {}
func (ResultError) isResult()     {}

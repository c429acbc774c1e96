package session

import "time"

// State is the session liveness as seen at the moment of the check.
type State int

const (
	NoSession State = iota
	ActiveSession
	Expired
)

func (s State) String() string {
	switch s {
	case NoSession:
		return "no-session"
	case ActiveSession:
		return "active"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

type systemClock struct{}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

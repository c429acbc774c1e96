package auth

import (
	"context"
	"sync"
)

// Capability is what the device reports about biometric hardware.
type Capability int

const (
	CapabilityAvailable Capability = iota
	CapabilityNoHardware
	CapabilityUnavailable
	CapabilityNotEnrolled
)

func (c Capability) String() string {
	switch c {
	case CapabilityAvailable:
		return "available"
	case CapabilityNoHardware:
		return "no-hardware"
	case CapabilityUnavailable:
		return "unavailable"
	case CapabilityNotEnrolled:
		return "not-enrolled"
	default:
		return "unknown"
	}
}

// Biometric error codes reported by platform prompts.
const (
	ErrorHardwareUnavailable = 1
	ErrorUnableToProcess     = 2
	ErrorTimeout             = 3
	ErrorNoSpace             = 4
	ErrorCanceled            = 5
	ErrorLockout             = 7
	ErrorVendor              = 8
	ErrorLockoutPermanent    = 9
	ErrorUserCanceled        = 10
	ErrorNoBiometrics        = 11
	ErrorHardwareNotPresent  = 12
	ErrorNegativeButton      = 13
)

// Event is reported by a running biometric challenge.
type Event interface {
	isEvent()
}

// EventSucceeded ends the challenge with a match.
type EventSucceeded struct{}

// EventError ends the challenge without a match.
type EventError struct {
	Code    int
	Message string
}

// EventFailed is a non-matching attempt. The challenge keeps running.
type EventFailed struct{}

func (EventSucceeded) isEvent() {}
func (EventError) isEvent()     {}
func (EventFailed) isEvent()    {}

// Challenge is the event stream of one biometric prompt. Any number of
// EventFailed may be reported before exactly one terminal event, after
// which the channel is closed and further reports are dropped.
type Challenge struct {
	mu     sync.Mutex
	done   bool
	events chan Event
}

// NewChallenge returns an open challenge.
func NewChallenge() *Challenge {
	return &Challenge{events: make(chan Event, 4)}
}

// Events returns the stream read by the coordinator.
func (c *Challenge) Events() <-chan Event {
	return c.events
}

// Fail reports a non-matching attempt. It is dropped if the reader is
// behind.
func (c *Challenge) Fail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	select {
	case c.events <- EventFailed{}:
	default:
	}
}

// Succeed ends the challenge with a match.
func (c *Challenge) Succeed() {
	c.finish(EventSucceeded{})
}

// Error ends the challenge with an error code.
func (c *Challenge) Error(code int, message string) {
	c.finish(EventError{Code: code, Message: message})
}

// Done reports whether a terminal event was delivered.
func (c *Challenge) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

func (c *Challenge) finish(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	c.done = true

	// drop queued retries to make room for the terminal event
	for {
		select {
		case c.events <- ev:
			close(c.events)
			return
		default:
			select {
			case <-c.events:
			default:
			}
		}
	}
}

type unsupportedBiometric struct{}

// Unsupported returns a Biometric for devices without a usable sensor.
func Unsupported() Biometric {
	return unsupportedBiometric{}
}

func (unsupportedBiometric) Capability() Capability {
	return CapabilityNoHardware
}

func (unsupportedBiometric) Authenticate(context.Context, string) *Challenge {
	c := NewChallenge()
	c.Error(ErrorHardwareNotPresent, "No biometric hardware on this device.")
	return c
}

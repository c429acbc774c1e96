package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(c *Challenge) []Event {
	var events []Event
	for ev := range c.Events() {
		events = append(events, ev)
	}
	return events
}

func TestChallenge_SingleTerminalEvent(t *testing.T) {
	c := NewChallenge()
	c.Fail()
	c.Succeed()
	c.Error(ErrorCanceled, "late")
	c.Fail()

	assert.True(t, c.Done())
	assert.Equal(t, []Event{EventFailed{}, EventSucceeded{}}, drain(c))
}

func TestChallenge_TerminalSurvivesFullBuffer(t *testing.T) {
	c := NewChallenge()
	for range 10 {
		c.Fail()
	}
	c.Error(ErrorLockout, "too many attempts")

	events := drain(c)
	require.NotEmpty(t, events)
	assert.Equal(t, EventError{Code: ErrorLockout, Message: "too many attempts"}, events[len(events)-1])
}

func TestUnsupported(t *testing.T) {
	b := Unsupported()
	assert.Equal(t, CapabilityNoHardware, b.Capability())

	events := drain(b.Authenticate(context.Background(), "title"))
	require.Len(t, events, 1)
	assert.Equal(t, ErrorHardwareNotPresent, events[0].(EventError).Code)
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "available", CapabilityAvailable.String())
	assert.Equal(t, "no-hardware", CapabilityNoHardware.String())
	assert.Equal(t, "unavailable", CapabilityUnavailable.String())
	assert.Equal(t, "not-enrolled", CapabilityNotEnrolled.String())
	assert.Equal(t, "unknown", Capability(9).String())
}

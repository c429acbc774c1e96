// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the session liveness policy and the PIN
// attempt lockout. Both persist their timestamps and counters through a
// preferences store so they survive restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
)

const (
	// Prefix is shared by every preference owned by this package.
	Prefix = "session."

	prefStartedAt      = Prefix + "started_at"
	prefLastActivityAt = Prefix + "last_activity_at"
	prefFailedAttempts = Prefix + "failed_attempts"
	prefLockoutUntil   = Prefix + "lockout_until"

	// MaxPinAttempts is the number of wrong PINs that triggers a lockout.
	MaxPinAttempts = 5
	// LockoutDuration is how long a lockout lasts.
	LockoutDuration = 300 * time.Second
)

var (
	_ Policy  = (*Manager)(nil)
	_ Lockout = (*Manager)(nil)
)

// Manager implements both Policy and Lockout over one preferences store.
type Manager struct {
	prefs    store.Preferences
	autoLock AutoLockSource
	clock    Clock
	logger   *logger.Logger

	mu sync.Mutex
}

// NewManager returns a Manager reading the timeout from autoLock on every
// check, so a changed setting applies to the running session.
func NewManager(prefs store.Preferences, autoLock AutoLockSource, clock Clock, log *logger.Logger) *Manager {
	if clock == nil {
		clock = SystemClock()
	}
	return &Manager{
		prefs:    prefs,
		autoLock: autoLock,
		clock:    clock,
		logger:   log.GetChildLogger("session"),
	}
}

func (m *Manager) StartSession(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := encodeTime(m.clock.Now())
	err := m.prefs.SetMany(ctx, map[string][]byte{
		prefStartedAt:      now,
		prefLastActivityAt: now,
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	m.logger.Debug().Msg("session started")
	return nil
}

func (m *Manager) Touch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok, err := m.readTime(ctx, prefLastActivityAt)
	if err != nil || !ok {
		return err
	}
	if err = m.prefs.Set(ctx, prefLastActivityAt, encodeTime(m.clock.Now())); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (m *Manager) HasActiveSession(ctx context.Context) (bool, error) {
	state, err := m.State(ctx)
	return state == ActiveSession, err
}

func (m *Manager) ShouldRequireAuth(ctx context.Context) (bool, error) {
	active, err := m.HasActiveSession(ctx)
	if err != nil {
		return true, err
	}
	return !active, nil
}

func (m *Manager) EndSession(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.prefs.Delete(ctx, prefStartedAt, prefLastActivityAt); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	m.logger.Debug().Msg("session ended")
	return nil
}

func (m *Manager) State(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	last, ok, err := m.readTime(ctx, prefLastActivityAt)
	if err != nil {
		return NoSession, err
	}
	if !ok {
		return NoSession, nil
	}

	minutes := m.autoLock.AutoLockMinutes()
	if minutes <= 0 {
		return ActiveSession, nil
	}
	if m.clock.Now().Sub(last) < time.Duration(minutes)*time.Minute {
		return ActiveSession, nil
	}
	return Expired, nil
}

func (m *Manager) readTime(ctx context.Context, key string) (time.Time, bool, error) {
	raw, err := m.prefs.Get(ctx, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read %s: %w", key, err)
	}

	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", key, err)
	}
	return time.UnixMilli(ms), true, nil
}

func (m *Manager) readInt(ctx context.Context, key string) (int, error) {
	raw, err := m.prefs.Get(ctx, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}

	v, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func encodeTime(t time.Time) []byte {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10))
}

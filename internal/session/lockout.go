package session

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

func (m *Manager) RecordFailedAttempt(ctx context.Context) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	failed, err := m.readInt(ctx, prefFailedAttempts)
	if err != nil {
		return Attempt{}, err
	}
	failed++

	values := map[string][]byte{
		prefFailedAttempts: []byte(strconv.Itoa(failed)),
	}
	attempt := Attempt{Remaining: max(MaxPinAttempts-failed, 0)}
	if attempt.Remaining == 0 {
		values[prefLockoutUntil] = encodeTime(m.clock.Now().Add(LockoutDuration))
		attempt.LockedOut = true
	}

	if err = m.prefs.SetMany(ctx, values); err != nil {
		return Attempt{}, fmt.Errorf("record failed attempt: %w", err)
	}

	if attempt.LockedOut {
		m.logger.Warn().Dur("duration", LockoutDuration).Msg("pin attempts exhausted, locked out")
	} else {
		m.logger.Info().Int("remaining", attempt.Remaining).Msg("failed pin attempt")
	}
	return attempt, nil
}

func (m *Manager) IsLockedOut(ctx context.Context) (bool, error) {
	remaining, err := m.LockoutRemaining(ctx)
	if err != nil {
		return false, err
	}
	return remaining > 0, nil
}

// LockoutRemaining also clears a lockout whose end has passed and restores
// the full attempt budget.
func (m *Manager) LockoutRemaining(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	until, ok, err := m.readTime(ctx, prefLockoutUntil)
	if err != nil || !ok {
		return 0, err
	}

	left := until.Sub(m.clock.Now())
	if left <= 0 {
		if err = m.resetLocked(ctx); err != nil {
			return 0, err
		}
		m.logger.Info().Msg("lockout expired")
		return 0, nil
	}

	return int((left + time.Second - 1) / time.Second), nil
}

func (m *Manager) ResetFailedAttempts(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resetLocked(ctx)
}

func (m *Manager) RemainingAttempts(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	failed, err := m.readInt(ctx, prefFailedAttempts)
	if err != nil {
		return 0, err
	}
	return max(MaxPinAttempts-failed, 0), nil
}

func (m *Manager) resetLocked(ctx context.Context) error {
	if err := m.prefs.Delete(ctx, prefFailedAttempts, prefLockoutUntil); err != nil {
		return fmt.Errorf("reset failed attempts: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
)

const defaultAutoLockInterval = 15 * time.Second

type autoLockJob struct {
	policy      session.Policy
	coordinator auth.Coordinator
	onLock      func()
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockJob creates an autoLockJob that locks coordinator once policy
// requires authentication again, then calls onLock (may be nil). The job is
// idle until Start is called.
func NewAutoLockJob(policy session.Policy, coordinator auth.Coordinator, onLock func(), logger *logger.Logger) AutoLockJob {
	return &autoLockJob{
		policy:      policy,
		coordinator: coordinator,
		onLock:      onLock,
		logger:      logger,
	}
}

func (j *autoLockJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultAutoLockInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// check locks only an unlocked app. A failed session read locks as well.
func (j *autoLockJob) check(ctx context.Context) {
	if _, ok := j.coordinator.State().(auth.StateAuthenticated); !ok {
		return
	}

	requireAuth, err := j.policy.ShouldRequireAuth(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "autoLockJob.check").Msg("error reading session, locking")
		requireAuth = true
	}
	if !requireAuth {
		return
	}

	if _, unlocked := j.coordinator.Lock(ctx).(auth.StateAuthenticated); unlocked {
		// no unlock method is configured
		return
	}
	j.logger.Info().Msg("session expired, app locked")
	if j.onLock != nil {
		j.onLock()
	}
}

func (j *autoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

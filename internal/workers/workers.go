package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-persona-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type autoLockWorker struct {
	job      service.AutoLockJob
	interval time.Duration
}

// NewAutoLockWorker runs job every interval.
func NewAutoLockWorker(job service.AutoLockJob, interval time.Duration) Worker {
	return &autoLockWorker{job: job, interval: interval}
}

func (a *autoLockWorker) Start(ctx context.Context) {
	a.job.Start(ctx, a.interval)
}

func (a *autoLockWorker) Stop() {
	a.job.Stop()
}

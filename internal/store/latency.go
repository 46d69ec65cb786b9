package store

import (
	"context"
	"time"

	"github.com/biocom/careers-api/internal/careers"
)

// Operation weights for the simulated latency. Reads are fast, writes are
// slower, mirroring the loading-state behavior the frontend was built
// against (unit 100ms: get 200ms, list 300ms, update 400ms, create 500ms).
const (
	weightGet    = 2
	weightList   = 3
	weightToggle = 3
	weightDelete = 3
	weightUpdate = 4
	weightCreate = 5
)

// latencyStore decorates a Store with an artificial per-operation delay.
// The delay happens before the inner call, so a cancelled context never
// leaves a partial mutation behind.
type latencyStore struct {
	inner Store
	unit  time.Duration
}

// WithLatency wraps s so every operation waits weight*unit before
// executing. A non-positive unit returns s unchanged; production
// configurations simply never wrap.
func WithLatency(s Store, unit time.Duration) Store {
	if unit <= 0 {
		return s
	}
	return &latencyStore{inner: s, unit: unit}
}

func (l *latencyStore) wait(ctx context.Context, weight int) error {
	timer := time.NewTimer(time.Duration(weight) * l.unit)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *latencyStore) ListActive(ctx context.Context) ([]careers.JobPosting, error) {
	if err := l.wait(ctx, weightList); err != nil {
		return nil, err
	}
	return l.inner.ListActive(ctx)
}

func (l *latencyStore) ListAll(ctx context.Context) ([]careers.JobPosting, error) {
	if err := l.wait(ctx, weightList); err != nil {
		return nil, err
	}
	return l.inner.ListAll(ctx)
}

func (l *latencyStore) GetByID(ctx context.Context, id int) (*careers.JobPosting, error) {
	if err := l.wait(ctx, weightGet); err != nil {
		return nil, err
	}
	return l.inner.GetByID(ctx, id)
}

func (l *latencyStore) Create(ctx context.Context, in careers.CreateJobInput) (*careers.JobPosting, error) {
	if err := l.wait(ctx, weightCreate); err != nil {
		return nil, err
	}
	return l.inner.Create(ctx, in)
}

func (l *latencyStore) Update(ctx context.Context, id int, in careers.UpdateJobInput) (*careers.JobPosting, error) {
	if err := l.wait(ctx, weightUpdate); err != nil {
		return nil, err
	}
	return l.inner.Update(ctx, id, in)
}

func (l *latencyStore) ToggleActive(ctx context.Context, id int) (*careers.JobPosting, error) {
	if err := l.wait(ctx, weightToggle); err != nil {
		return nil, err
	}
	return l.inner.ToggleActive(ctx, id)
}

func (l *latencyStore) Delete(ctx context.Context, id int) (bool, error) {
	if err := l.wait(ctx, weightDelete); err != nil {
		return false, err
	}
	return l.inner.Delete(ctx, id)
}

func (l *latencyStore) Seed(ctx context.Context, jobs []careers.JobPosting) error {
	// Seeding is an operator action, not a simulated network call.
	return l.inner.Seed(ctx, jobs)
}

func (l *latencyStore) Close() error { return l.inner.Close() }

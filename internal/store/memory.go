package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/biocom/careers-api/internal/careers"
)

// MemoryStore keeps the job collection in process memory. It is the
// non-durable backing used for development and tests. All methods are safe
// for concurrent use; each mutation applies atomically under the lock.
type MemoryStore struct {
	mu     sync.RWMutex
	jobs   []careers.JobPosting // newest first
	nextID int                  // high-water mark + 1; never decreases
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// ListActive implements Store.
func (s *MemoryStore) ListActive(ctx context.Context) ([]careers.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]careers.JobPosting, 0, len(s.jobs))
	for _, job := range s.jobs {
		if job.IsActive {
			out = append(out, job)
		}
	}
	sortByPostedDesc(out)
	return out, nil
}

// ListAll implements Store.
func (s *MemoryStore) ListAll(ctx context.Context) ([]careers.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]careers.JobPosting, len(s.jobs))
	copy(out, s.jobs)
	sortByPostedDesc(out)
	return out, nil
}

// GetByID implements Store.
func (s *MemoryStore) GetByID(ctx context.Context, id int) (*careers.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id {
			j := job
			return &j, nil
		}
	}
	return nil, nil
}

// Create implements Store.
func (s *MemoryStore) Create(ctx context.Context, in careers.CreateJobInput) (*careers.JobPosting, error) {
	if err := checkCreate(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	job := careers.JobPosting{
		ID:           s.nextID,
		Title:        in.Title,
		Department:   in.Department,
		Location:     in.Location,
		Type:         in.Type,
		Level:        in.Level,
		Description:  in.Description,
		Requirements: in.Requirements,
		Benefits:     in.Benefits,
		SalaryRange:  in.SalaryRange,
		PostedDate:   time.Now().UTC(),
		ClosingDate:  in.ClosingDate,
		IsActive:     in.Active(),
	}
	s.nextID++

	// Head insert keeps the newest posting first, matching the listing order.
	s.jobs = append([]careers.JobPosting{job}, s.jobs...)
	return &job, nil
}

// Update implements Store.
func (s *MemoryStore) Update(ctx context.Context, id int, in careers.UpdateJobInput) (*careers.JobPosting, error) {
	if err := checkUpdate(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			in.ApplyTo(&s.jobs[i])
			j := s.jobs[i]
			return &j, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// ToggleActive implements Store.
func (s *MemoryStore) ToggleActive(ctx context.Context, id int) (*careers.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs[i].IsActive = !s.jobs[i].IsActive
			j := s.jobs[i]
			return &j, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Seed implements Store.
func (s *MemoryStore) Seed(ctx context.Context, jobs []careers.JobPosting) error {
	if err := checkSeed(jobs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.jobs) > 0 {
		return nil
	}

	s.jobs = make([]careers.JobPosting, len(jobs))
	copy(s.jobs, jobs)
	sortByPostedDesc(s.jobs)
	for _, job := range jobs {
		if job.ID >= s.nextID {
			s.nextID = job.ID + 1
		}
	}
	return nil
}

// Close implements Store. The memory backing holds no resources.
func (s *MemoryStore) Close() error { return nil }

// sortByPostedDesc orders postings newest first. The sort is stable so
// postings sharing a timestamp keep their insertion order.
func sortByPostedDesc(jobs []careers.JobPosting) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PostedDate.After(jobs[j].PostedDate)
	})
}

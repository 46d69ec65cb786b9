// Package store provides the job posting store: a common interface over
// in-memory, SQLite, and PostgreSQL backings, plus seed loading and an
// optional simulated-latency decorator.
package store

import (
	"context"

	"github.com/biocom/careers-api/internal/careers"
)

// Store is the asynchronous facade over the canonical job collection.
// All implementations order listings by posted date, newest first, and
// never reuse the id of a deleted posting.
//
// Operations apply atomically: a cancelled or failed mutation leaves no
// partial record behind. Concurrent writes to the same id are not
// serialized beyond that; the last write wins.
type Store interface {
	// ListActive returns the postings visible to the public listing.
	// An empty collection yields an empty slice, not an error.
	ListActive(ctx context.Context) ([]careers.JobPosting, error)

	// ListAll returns every posting regardless of visibility. Intended
	// for administrative consumers.
	ListAll(ctx context.Context) ([]careers.JobPosting, error)

	// GetByID returns the posting with the given id, or (nil, nil) when
	// no such posting exists. Absence is a handled outcome, not a fault.
	GetByID(ctx context.Context, id int) (*careers.JobPosting, error)

	// Create validates the input, assigns a fresh id and the current
	// timestamp as the posted date, and returns the stored posting.
	// Missing required fields yield a *ValidationError.
	Create(ctx context.Context, in careers.CreateJobInput) (*careers.JobPosting, error)

	// Update merges the set fields of in onto the stored posting. The id
	// and posted date can never change. Returns a *NotFoundError when the
	// id does not exist.
	Update(ctx context.Context, id int, in careers.UpdateJobInput) (*careers.JobPosting, error)

	// ToggleActive flips the visibility flag and returns the updated
	// posting. Returns a *NotFoundError when the id does not exist.
	ToggleActive(ctx context.Context, id int) (*careers.JobPosting, error)

	// Delete removes the posting. Deleting an absent id reports false
	// with a nil error.
	Delete(ctx context.Context, id int) (bool, error)

	// Seed inserts the given postings with their explicit ids into an
	// empty store. A non-empty store makes Seed a no-op. Duplicate ids
	// within the batch are a configuration error.
	Seed(ctx context.Context, jobs []careers.JobPosting) error

	// Close releases any resources held by the backing.
	Close() error
}

package store

import (
	"fmt"
	"strings"

	"github.com/biocom/careers-api/internal/careers"
)

// NotFoundError indicates an operation targeted an id that does not exist.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job posting not found: %d", e.ID)
}

// ValidationError indicates a create or update payload with missing or
// invalid fields. Fields holds the JSON names of the offending fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// checkCreate validates a create input at the store boundary. The admin UI
// validates too, but the store is the last line of defense.
func checkCreate(in careers.CreateJobInput) error {
	if err := in.Validate(); err != nil {
		if fields := careers.InvalidFields(err); len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// checkUpdate validates the set fields of an update input.
func checkUpdate(in careers.UpdateJobInput) error {
	if err := in.Validate(); err != nil {
		if fields := careers.InvalidFields(err); len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// checkSeed validates a seed batch: ids must be positive and unique, and
// every record must carry the required fields. A duplicate id is reported
// explicitly since it is most likely a data-entry bug in the seed file.
func checkSeed(jobs []careers.JobPosting) error {
	seen := make(map[int]bool, len(jobs))
	for _, job := range jobs {
		if job.ID <= 0 {
			return fmt.Errorf("seed record %q has invalid id %d", job.Title, job.ID)
		}
		if seen[job.ID] {
			return fmt.Errorf("duplicate job id %d in seed data", job.ID)
		}
		seen[job.ID] = true
		if job.Title == "" || job.Department == "" || job.Location == "" ||
			job.Description == "" || job.Requirements == "" {
			return fmt.Errorf("seed record %d is missing required fields", job.ID)
		}
		if !job.Type.Valid() || !job.Level.Valid() {
			return fmt.Errorf("seed record %d has invalid type or level", job.ID)
		}
	}
	return nil
}

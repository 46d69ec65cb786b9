package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/biocom/careers-api/internal/careers"
	"github.com/biocom/careers-api/internal/schemas"
)

//go:embed seed_schema.json
var seedSchema string

// seedJob mirrors careers.JobPosting but carries dates as strings so seed
// files can use plain dates ("2025-01-10") as well as full timestamps.
type seedJob struct {
	ID           int              `json:"id"`
	Title        string           `json:"title"`
	Department   string           `json:"department"`
	Location     string           `json:"location"`
	Type         careers.JobType  `json:"type"`
	Level        careers.JobLevel `json:"level"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	Benefits     string           `json:"benefits"`
	SalaryRange  string           `json:"salary_range"`
	PostedDate   string           `json:"posted_date"`
	ClosingDate  string           `json:"closing_date"`
	IsActive     *bool            `json:"is_active"`
}

type seedFile struct {
	Jobs []seedJob `json:"jobs"`
}

// LoadSeedFile reads and validates a JSON seed file. The file is checked
// against the embedded schema first, then against the store invariants, so
// a malformed seed (including a duplicate id) fails loudly before any
// record reaches a store.
func LoadSeedFile(path string) ([]careers.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	if err := schemas.ValidateJSONString(seedSchema, string(data)); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	jobs := make([]careers.JobPosting, 0, len(f.Jobs))
	for _, sj := range f.Jobs {
		posted, err := parseSeedDate(sj.PostedDate)
		if err != nil {
			return nil, fmt.Errorf("seed record %d: bad posted_date %q: %w", sj.ID, sj.PostedDate, err)
		}
		job := careers.JobPosting{
			ID:           sj.ID,
			Title:        sj.Title,
			Department:   sj.Department,
			Location:     sj.Location,
			Type:         sj.Type,
			Level:        sj.Level,
			Description:  sj.Description,
			Requirements: sj.Requirements,
			Benefits:     sj.Benefits,
			SalaryRange:  sj.SalaryRange,
			PostedDate:   posted,
			IsActive:     sj.IsActive == nil || *sj.IsActive,
		}
		if sj.ClosingDate != "" {
			closing, err := parseSeedDate(sj.ClosingDate)
			if err != nil {
				return nil, fmt.Errorf("seed record %d: bad closing_date %q: %w", sj.ID, sj.ClosingDate, err)
			}
			job.ClosingDate = &closing
		}
		jobs = append(jobs, job)
	}

	if err := checkSeed(jobs); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return jobs, nil
}

// parseSeedDate accepts RFC 3339 timestamps and bare dates.
func parseSeedDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

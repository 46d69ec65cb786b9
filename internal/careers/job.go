// Package careers provides type definitions for job postings and the
// request/response shapes shared by the store and the HTTP API.
package careers

import "time"

// JobType enumerates the employment type of a posting.
type JobType string

// Supported employment types.
const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
)

// Valid reports whether t is one of the supported employment types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract:
		return true
	}
	return false
}

// JobLevel enumerates the seniority level of a posting.
type JobLevel string

// Supported seniority levels.
const (
	JobLevelEntry     JobLevel = "entry"
	JobLevelMid       JobLevel = "mid"
	JobLevelSenior    JobLevel = "senior"
	JobLevelExecutive JobLevel = "executive"
)

// Valid reports whether l is one of the supported seniority levels.
func (l JobLevel) Valid() bool {
	switch l {
	case JobLevelEntry, JobLevelMid, JobLevelSenior, JobLevelExecutive:
		return true
	}
	return false
}

// JobPosting represents a single open position.
// ID and PostedDate are assigned by the store at creation and are immutable;
// IsActive governs whether the posting appears in the public listing.
type JobPosting struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	Type         JobType    `json:"type"`
	Level        JobLevel   `json:"level"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements"`
	Benefits     string     `json:"benefits,omitempty"`
	SalaryRange  string     `json:"salary_range,omitempty"`
	PostedDate   time.Time  `json:"posted_date"`
	ClosingDate  *time.Time `json:"closing_date,omitempty"`
	IsActive     bool       `json:"is_active"`
}

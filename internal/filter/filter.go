// Package filter derives the visible subset of a job collection from a
// free-text search term and categorical selectors. It is pure: no state,
// no I/O, and the output is always an order-preserving subsequence of the
// input.
package filter

import (
	"sort"
	"strings"

	"github.com/biocom/careers-api/internal/careers"
)

// All is the selector sentinel meaning "do not filter on this dimension".
// An empty selector is treated the same way.
const All = "all"

// Filter holds the search term and the categorical selectors.
type Filter struct {
	Search     string
	Department string
	Location   string
	Level      string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Search == "" &&
		selectorOff(f.Department) && selectorOff(f.Location) && selectorOff(f.Level)
}

// Apply returns the postings satisfying every active predicate, in the
// same relative order as jobs.
func Apply(jobs []careers.JobPosting, f Filter) []careers.JobPosting {
	out := make([]careers.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if Matches(job, f) {
			out = append(out, job)
		}
	}
	return out
}

// Matches reports whether a single posting satisfies the filter: the
// search term (case-insensitive substring on title, description, and
// department) AND each categorical selector.
func Matches(job careers.JobPosting, f Filter) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(job.Title), term) &&
			!strings.Contains(strings.ToLower(job.Description), term) &&
			!strings.Contains(strings.ToLower(job.Department), term) {
			return false
		}
	}
	return selectorMatch(f.Department, job.Department) &&
		selectorMatch(f.Location, job.Location) &&
		selectorMatch(f.Level, string(job.Level))
}

func selectorOff(selector string) bool {
	return selector == "" || selector == All
}

func selectorMatch(selector, value string) bool {
	return selectorOff(selector) || selector == value
}

// FacetSet holds the distinct categorical values present in a collection,
// used to populate selector choices. Values are sorted for determinism.
type FacetSet struct {
	Departments []string `json:"departments"`
	Locations   []string `json:"locations"`
	Levels      []string `json:"levels"`
}

// Facets derives the facet values from jobs.
func Facets(jobs []careers.JobPosting) FacetSet {
	departments := make(map[string]bool)
	locations := make(map[string]bool)
	levels := make(map[string]bool)
	for _, job := range jobs {
		departments[job.Department] = true
		locations[job.Location] = true
		levels[string(job.Level)] = true
	}
	return FacetSet{
		Departments: sortedKeys(departments),
		Locations:   sortedKeys(locations),
		Levels:      sortedKeys(levels),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

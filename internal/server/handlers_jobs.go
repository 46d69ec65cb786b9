package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/biocom/careers-api/internal/careers"
	"github.com/biocom/careers-api/internal/filter"
)

// ListJobsResponse is the public listing: the visible postings after
// filtering, plus the facet values derived from the full active set.
type ListJobsResponse struct {
	Jobs   []careers.JobPosting `json:"jobs"`
	Count  int                  `json:"count"`
	Facets filter.FacetSet      `json:"facets"`
}

// handleListJobs lists active postings, narrowed by the optional search
// and selector query parameters. Facets always reflect the unfiltered
// active set so selector choices do not shrink as filters are applied.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListActive(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}

	q := r.URL.Query()
	f := filter.Filter{
		Search:     q.Get("search"),
		Department: q.Get("department"),
		Location:   q.Get("location"),
		Level:      q.Get("level"),
	}

	visible := jobs
	if !f.IsZero() {
		visible = filter.Apply(jobs, f)
	}

	jsonResponse(w, http.StatusOK, ListJobsResponse{
		Jobs:   visible,
		Count:  len(visible),
		Facets: filter.Facets(jobs),
	})
}

// handleGetJob retrieves a single posting by id.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetByID(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if job == nil {
		jsonError(w, http.StatusNotFound, "Job not found")
		return
	}

	jsonResponse(w, http.StatusOK, job)
}

// ApplicationResponse acknowledges a mock application submission.
type ApplicationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleApply accepts a mock application for an active posting. Nothing
// is stored; the endpoint preserves the submission contract the frontend
// was built against.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req careers.ApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		fields := careers.InvalidFields(err)
		jsonError(w, http.StatusBadRequest, "Missing or invalid fields: "+joinFields(fields))
		return
	}

	job, err := s.store.GetByID(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if job == nil || !job.IsActive {
		jsonError(w, http.StatusNotFound, "Job not found")
		return
	}

	jsonResponse(w, http.StatusOK, ApplicationResponse{
		Success: true,
		Message: fmt.Sprintf("Application submitted successfully for %s!", job.Title),
	})
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, fmt.Errorf("id must be positive")
	}
	return id, nil
}

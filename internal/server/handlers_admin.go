package server

import (
	"encoding/json"
	"net/http"

	"github.com/biocom/careers-api/internal/careers"
)

// Admin handlers operate on the full collection, including inactive
// postings, and require an authenticated administrator session.

func (s *Server) handleAdminListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListAll(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (s *Server) handleAdminCreateJob(w http.ResponseWriter, r *http.Request) {
	var in careers.CreateJobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := s.store.Create(r.Context(), in)
	if err != nil {
		s.storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleAdminUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var in careers.UpdateJobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := s.store.Update(r.Context(), id, in)
	if err != nil {
		s.storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleAdminToggleJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.ToggleActive(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleAdminDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	deleted, err := s.store.Delete(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "Job not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Job deleted",
	})
}

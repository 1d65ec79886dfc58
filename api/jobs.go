package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

type JobsHandler struct {
	jobs     repository.JobRepo
	sessions repository.SessionRepo
}

func NewJobsHandler(jr repository.JobRepo, sess repository.SessionRepo) *JobsHandler {
	return &JobsHandler{jobs: jr, sessions: sess}
}

// List supports ship_id, component_id, engineer_id and status query filters.
// The first foreign-key filter present wins; status filtering is applied on
// top of the result.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	var (
		jobs []models.Job
		err  error
	)
	switch {
	case q.Get("ship_id") != "":
		jobs, err = h.jobs.ListJobsByShip(ctx, q.Get("ship_id"))
	case q.Get("component_id") != "":
		jobs, err = h.jobs.ListJobsByComponent(ctx, q.Get("component_id"))
	case q.Get("engineer_id") != "":
		jobs, err = h.jobs.ListJobsByEngineer(ctx, q.Get("engineer_id"))
	default:
		jobs, err = h.jobs.ListJobs(ctx)
	}
	if err != nil {
		respondError(w, err)
		return
	}

	if status := q.Get("status"); status != "" {
		filtered := make([]models.Job, 0, len(jobs))
		for _, j := range jobs {
			if j.Status == models.JobStatus(status) {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}

	writeJSON(w, jobs, http.StatusOK)
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.GetJob(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	if job == nil {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}

	writeJSON(w, job, http.StatusOK)
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin, models.RoleInspector, models.RoleEngineer) {
		return
	}

	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if _, err := h.jobs.CreateJob(r.Context(), &job); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, job, http.StatusCreated)
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin, models.RoleInspector, models.RoleEngineer) {
		return
	}

	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	job.ID = mux.Vars(r)["id"]

	if err := h.jobs.UpdateJob(r.Context(), &job); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, job, http.StatusOK)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin) {
		return
	}

	if err := h.jobs.DeleteJob(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

type ShipsHandler struct {
	ships      repository.ShipRepo
	components repository.ComponentRepo
	jobs       repository.JobRepo
	sessions   repository.SessionRepo
}

func NewShipsHandler(sr repository.ShipRepo, cr repository.ComponentRepo, jr repository.JobRepo, sess repository.SessionRepo) *ShipsHandler {
	return &ShipsHandler{ships: sr, components: cr, jobs: jr, sessions: sess}
}

func (h *ShipsHandler) List(w http.ResponseWriter, r *http.Request) {
	ships, err := h.ships.ListShips(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, ships, http.StatusOK)
}

func (h *ShipsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ship, err := h.ships.GetShip(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if ship == nil {
		http.Error(w, "ship not found", http.StatusNotFound)
		return
	}

	writeJSON(w, ship, http.StatusOK)
}

func (h *ShipsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin, models.RoleInspector) {
		return
	}

	var ship models.Ship
	if err := json.NewDecoder(r.Body).Decode(&ship); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if _, err := h.ships.CreateShip(r.Context(), &ship); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, ship, http.StatusCreated)
}

func (h *ShipsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin, models.RoleInspector) {
		return
	}

	var ship models.Ship
	if err := json.NewDecoder(r.Body).Decode(&ship); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	ship.ID = mux.Vars(r)["id"]

	if err := h.ships.UpdateShip(r.Context(), &ship); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, ship, http.StatusOK)
}

func (h *ShipsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin) {
		return
	}

	if err := h.ships.DeleteShip(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ShipsHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.components.ListComponentsByShip(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, annotateComponents(components), http.StatusOK)
}

func (h *ShipsHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.ListJobsByShip(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, jobs, http.StatusOK)
}

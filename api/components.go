package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/harborworks/fleetdeck/internal/maintenance"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

type ComponentsHandler struct {
	components repository.ComponentRepo
	sessions   repository.SessionRepo
}

func NewComponentsHandler(cr repository.ComponentRepo, sess repository.SessionRepo) *ComponentsHandler {
	return &ComponentsHandler{components: cr, sessions: sess}
}

// componentView annotates a component with its derived maintenance status.
// The status is computed on the read path and never stored.
type componentView struct {
	models.ShipComponent
	MaintenanceStatus maintenance.Status `json:"maintenanceStatus"`
}

func annotateComponents(components []models.ShipComponent) []componentView {
	now := time.Now().UTC()
	out := make([]componentView, 0, len(components))
	for _, c := range components {
		out = append(out, componentView{
			ShipComponent:     c,
			MaintenanceStatus: maintenance.StatusForDate(c.LastMaintenanceDate, now),
		})
	}
	return out
}

func (h *ComponentsHandler) List(w http.ResponseWriter, r *http.Request) {
	components, err := h.components.ListComponents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, annotateComponents(components), http.StatusOK)
}

func (h *ComponentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	component, err := h.components.GetComponent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	if component == nil {
		http.Error(w, "component not found", http.StatusNotFound)
		return
	}

	view := componentView{
		ShipComponent:     *component,
		MaintenanceStatus: maintenance.StatusForDate(component.LastMaintenanceDate, time.Now().UTC()),
	}
	writeJSON(w, view, http.StatusOK)
}

func (h *ComponentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin, models.RoleInspector) {
		return
	}

	var component models.ShipComponent
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if _, err := h.components.CreateComponent(r.Context(), &component); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, component, http.StatusCreated)
}

func (h *ComponentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin, models.RoleInspector) {
		return
	}

	var component models.ShipComponent
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	component.ID = mux.Vars(r)["id"]

	if err := h.components.UpdateComponent(r.Context(), &component); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, component, http.StatusOK)
}

func (h *ComponentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, h.sessions, models.RoleAdmin) {
		return
	}

	if err := h.components.DeleteComponent(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

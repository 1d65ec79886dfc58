package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/harborworks/fleetdeck/internal/maintenance"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

type DashboardHandler struct {
	ships      repository.ShipRepo
	components repository.ComponentRepo
	jobs       repository.JobRepo
}

func NewDashboardHandler(sr repository.ShipRepo, cr repository.ComponentRepo, jr repository.JobRepo) *DashboardHandler {
	return &DashboardHandler{ships: sr, components: cr, jobs: jr}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ships, err := h.ships.ListShips(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	components, err := h.components.ListComponents(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	jobs, err := h.jobs.ListJobs(ctx)
	if err != nil {
		respondError(w, err)
		return
	}

	now := time.Now().UTC()
	stats := models.DashboardStats{TotalShips: len(ships)}
	for _, c := range components {
		if maintenance.StatusForDate(c.LastMaintenanceDate, now) != maintenance.StatusUpToDate {
			stats.ComponentsNeedingMaintenance++
		}
	}
	for _, j := range jobs {
		switch j.Status {
		case models.JobInProgress:
			stats.JobsInProgress++
		case models.JobCompleted:
			stats.CompletedJobs++
		}
	}

	writeJSON(w, stats, http.StatusOK)
}

type calendarResponse struct {
	Year   int                    `json:"year"`
	Month  int                    `json:"month"`
	Days   []string               `json:"days"`
	Events []models.CalendarEvent `json:"events"`
}

// Calendar returns the fixed 42-cell month grid plus the scheduled jobs that
// fall inside it. Defaults to the current month.
func (h *DashboardHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	q := r.URL.Query()
	if y := q.Get("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = v
	}
	if m := q.Get("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(v)
	}

	grid := maintenance.MonthGrid(year, month)
	days := make([]string, 0, len(grid))
	for _, d := range grid {
		days = append(days, d.Format(maintenance.DateLayout))
	}
	first, last := grid[0], grid[len(grid)-1]

	ctx := r.Context()
	jobs, err := h.jobs.ListJobs(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	ships, err := h.ships.ListShips(ctx)
	if err != nil {
		respondError(w, err)
		return
	}
	shipNames := make(map[string]string, len(ships))
	for _, s := range ships {
		shipNames[s.ID] = s.Name
	}

	events := make([]models.CalendarEvent, 0)
	for _, j := range jobs {
		d, err := maintenance.ParseDate(j.ScheduledDate)
		if err != nil || d.Before(first) || d.After(last) {
			continue
		}

		name := shipNames[j.ShipID]
		if name == "" {
			name = "Unknown Ship"
		}
		events = append(events, models.CalendarEvent{
			ID:       "event_" + j.ID,
			Title:    fmt.Sprintf("%s - %s", j.Type, name),
			Date:     d.Format(maintenance.DateLayout),
			JobID:    j.ID,
			ShipID:   j.ShipID,
			Priority: j.Priority,
		})
	}

	writeJSON(w, calendarResponse{Year: year, Month: int(month), Days: days, Events: events}, http.StatusOK)
}

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/harborworks/fleetdeck/internal/maintenance"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

type NotificationsHandler struct {
	notifications repository.NotificationRepo
}

func NewNotificationsHandler(nr repository.NotificationRepo) *NotificationsHandler {
	return &NotificationsHandler{notifications: nr}
}

// notificationView annotates a notification with the relative age shown in
// the feed.
type notificationView struct {
	models.Notification
	TimeAgo string `json:"timeAgo"`
}

func annotateNotifications(notifications []models.Notification) []notificationView {
	now := time.Now().UTC()
	out := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		age := "Just now"
		if ts, err := time.Parse(time.RFC3339, n.Timestamp); err == nil {
			age = maintenance.TimeAgo(ts, now)
		}
		out = append(out, notificationView{Notification: n, TimeAgo: age})
	}
	return out
}

// List returns all notifications; ?unread=true narrows to unread ones.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListNotifications(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if r.URL.Query().Get("unread") == "true" {
		unread := make([]models.Notification, 0, len(notifications))
		for _, n := range notifications {
			if !n.IsRead {
				unread = append(unread, n)
			}
		}
		notifications = unread
	}

	writeJSON(w, annotateNotifications(notifications), http.StatusOK)
}

func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.MarkNotificationRead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, n, http.StatusOK)
}

func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.MarkAllNotificationsRead(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.DeleteNotification(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/harborworks/fleetdeck/api"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository/mock"
)

func TestNotificationsHandler_List(t *testing.T) {
	m := mock.New()
	m.Notifications = []models.Notification{
		{ID: "n1", Message: "old", Timestamp: time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339), IsRead: true},
		{ID: "n2", Message: "new", Timestamp: time.Now().UTC().Format(time.RFC3339)},
	}
	handler := api.NewNotificationsHandler(m)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/v1/notifications", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var views []struct {
		ID      string `json:"id"`
		TimeAgo string `json:"timeAgo"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].TimeAgo != "2 hours ago" {
		t.Fatalf("timeAgo = %q, want 2 hours ago", views[0].TimeAgo)
	}
	if views[1].TimeAgo != "Just now" {
		t.Fatalf("timeAgo = %q, want Just now", views[1].TimeAgo)
	}

	// unread filter drops the read one
	w = httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/v1/notifications?unread=true", nil))
	views = nil
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(views) != 1 || views[0].ID != "n2" {
		t.Fatalf("unread views = %#v", views)
	}
}

func TestNotificationsHandler_MarkRead(t *testing.T) {
	m := mock.New()
	m.Notifications = []models.Notification{{ID: "n1"}}
	handler := api.NewNotificationsHandler(m)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/v1/notifications/n1/read", nil), map[string]string{"id": "n1"})
	w := httptest.NewRecorder()
	handler.MarkRead(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body)
	}

	var n models.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !n.IsRead {
		t.Fatalf("response not marked read: %#v", n)
	}
	if !m.Notifications[0].IsRead {
		t.Fatalf("store not marked read")
	}

	req = mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/v1/notifications/ghost/read", nil), map[string]string{"id": "ghost"})
	w = httptest.NewRecorder()
	handler.MarkRead(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want 404", w.Code)
	}
}

func TestNotificationsHandler_MarkAllReadAndDelete(t *testing.T) {
	m := mock.New()
	m.Notifications = []models.Notification{{ID: "n1"}, {ID: "n2"}}
	handler := api.NewNotificationsHandler(m)

	w := httptest.NewRecorder()
	handler.MarkAllRead(w, httptest.NewRequest(http.MethodPost, "/v1/notifications/read-all", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("mark all status = %d, want 204", w.Code)
	}
	for _, n := range m.Notifications {
		if !n.IsRead {
			t.Fatalf("notification %s unread after mark all", n.ID)
		}
	}

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/v1/notifications/n1", nil), map[string]string{"id": "n1"})
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}
	if len(m.Notifications) != 1 || m.Notifications[0].ID != "n2" {
		t.Fatalf("delete not applied: %#v", m.Notifications)
	}
}

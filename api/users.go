package api

import (
	"net/http"

	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

type UsersHandler struct {
	users repository.UserRepo
}

func NewUsersHandler(ur repository.UserRepo) *UsersHandler {
	return &UsersHandler{users: ur}
}

// List returns all users, or only those with the given ?role=. Passwords are
// never serialized out.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		users []models.User
		err   error
	)
	if role := r.URL.Query().Get("role"); role != "" {
		users, err = h.users.ListUsersByRole(r.Context(), models.UserRole(role))
	} else {
		users, err = h.users.ListUsers(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, viewOf(&users[i]))
	}
	writeJSON(w, views, http.StatusOK)
}

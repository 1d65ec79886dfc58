package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

type AuthHandler struct {
	sessions      repository.SessionRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(sr repository.SessionRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sr, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userView is a User without the password field.
type userView struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func viewOf(u *models.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	ok, err := h.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	if !ok {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	user, err := h.sessions.CurrentUser(ctx)
	if err != nil || user == nil {
		respondError(w, fmt.Errorf("current user after login: %w", err))
		return
	}

	// Issue JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": req.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{Token: tokenStr, User: viewOf(user)}, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"message":"signed out"}`)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.CurrentUser(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if user == nil {
		http.Error(w, "No user logged in", http.StatusUnauthorized)
		return
	}

	writeJSON(w, viewOf(user), http.StatusOK)
}

package api

import (
	"github.com/gorilla/mux"
	"github.com/harborworks/fleetdeck/internal/config"
	"github.com/harborworks/fleetdeck/internal/repository/kv"
	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/internal/validate"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, st *store.Store) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := kv.New(st, logger)
	if cfg.StrictRefs {
		v, err := validate.New()
		if err != nil {
			return nil, err
		}
		repo = repo.WithStrictRefs(v)
	}

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	shipsHandler := NewShipsHandler(repo, repo, repo, repo)
	componentsHandler := NewComponentsHandler(repo, repo)
	jobsHandler := NewJobsHandler(repo, repo)
	notificationsHandler := NewNotificationsHandler(repo)
	usersHandler := NewUsersHandler(repo)
	dashboardHandler := NewDashboardHandler(repo, repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/login", authHandler.Login).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	authV1 := apiV1.PathPrefix("/auth").Subrouter()
	authV1.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	authV1.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Ships
	apiV1.HandleFunc("/ships", shipsHandler.List).Methods("GET")
	apiV1.HandleFunc("/ships", shipsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/ships/{id}", shipsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/ships/{id}", shipsHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/ships/{id}", shipsHandler.Delete).Methods("DELETE")
	apiV1.HandleFunc("/ships/{id}/components", shipsHandler.ListComponents).Methods("GET")
	apiV1.HandleFunc("/ships/{id}/jobs", shipsHandler.ListJobs).Methods("GET")

	// Components
	apiV1.HandleFunc("/components", componentsHandler.List).Methods("GET")
	apiV1.HandleFunc("/components", componentsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/components/{id}", componentsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/components/{id}", componentsHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/components/{id}", componentsHandler.Delete).Methods("DELETE")

	// Jobs
	apiV1.HandleFunc("/jobs", jobsHandler.List).Methods("GET")
	apiV1.HandleFunc("/jobs", jobsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/jobs/{id}", jobsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/jobs/{id}", jobsHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/jobs/{id}", jobsHandler.Delete).Methods("DELETE")

	// Notifications
	apiV1.HandleFunc("/notifications", notificationsHandler.List).Methods("GET")
	apiV1.HandleFunc("/notifications/read-all", notificationsHandler.MarkAllRead).Methods("POST")
	apiV1.HandleFunc("/notifications/{id}/read", notificationsHandler.MarkRead).Methods("POST")
	apiV1.HandleFunc("/notifications/{id}", notificationsHandler.Delete).Methods("DELETE")

	// Users
	apiV1.HandleFunc("/users", usersHandler.List).Methods("GET")

	// Dashboard
	apiV1.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods("GET")
	apiV1.HandleFunc("/calendar", dashboardHandler.Calendar).Methods("GET")

	return r, nil
}

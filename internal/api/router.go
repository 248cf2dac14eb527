package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/volleydraft-go/internal/api/handler"
	"github.com/mcoot/volleydraft-go/internal/api/middleware"
	"github.com/mcoot/volleydraft-go/internal/services/auth"
	"github.com/mcoot/volleydraft-go/internal/services/catalog"
	"github.com/mcoot/volleydraft-go/internal/services/roster"
	"github.com/mcoot/volleydraft-go/internal/services/seed"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	CatalogService *catalog.Service
	RosterService  *roster.Service
	SeedService    *seed.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.CatalogService)
	rosterHandler := handler.NewRosterHandler(cfg.RosterService)
	seedHandler := handler.NewSeedHandler(cfg.SeedService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for signing up or in)
	api.HandleFunc("/auth/signup", authHandler.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", authHandler.SignIn).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Player catalog routes (all require auth)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)

	// Roster routes (all require auth)
	rosters := api.PathPrefix("/roster").Subrouter()
	rosters.Use(authMiddleware)
	rosters.HandleFunc("", rosterHandler.Get).Methods(http.MethodGet)
	rosters.HandleFunc("", rosterHandler.Save).Methods(http.MethodPost)

	// Seeding endpoint (no auth, idempotent)
	api.HandleFunc("/seed-players", seedHandler.Seed).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

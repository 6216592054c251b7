package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/model"
)

// Store is the persistence the API handlers need.
type Store interface {
	IsUser(ctx context.Context, firstName, lastName string) (bool, error)
	GetBox(ctx context.Context, size string, num int64) (*model.Box, error)
	ListBoxes(ctx context.Context) ([]model.Box, error)
	ListLogs(ctx context.Context, size string, num int64, limit int) ([]model.LogEntry, error)
	Checkout(ctx context.Context, size string, num int64, actor model.User) (*model.LogEntry, error)
	Checkin(ctx context.Context, size string, num int64, actor model.User, location string) (*model.LogEntry, error)
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// NewRouter creates the API router with all endpoints registered under /api.
func NewRouter(store Store, secret string, ttl time.Duration, logger *zap.Logger) *mux.Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	authHandler := &AuthHandler{Store: store, Secret: secret, TTL: ttl, Logger: logger}
	boxesHandler := &BoxesHandler{Store: store, Logger: logger}

	authMW := AuthMiddleware(secret, store)

	r := mux.NewRouter().PathPrefix("/api").Subrouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		jsonError(w, http.StatusNotFound, "not found")
	})

	// Public: login.
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Authenticated routes.
	r.Handle("/auth/logout", authMW(http.HandlerFunc(authHandler.Logout))).Methods(http.MethodPost)
	r.Handle("/boxes", authMW(http.HandlerFunc(boxesHandler.List))).Methods(http.MethodGet)
	r.Handle("/boxes/{size}/{num:[0-9]+}", authMW(http.HandlerFunc(boxesHandler.Get))).Methods(http.MethodGet)
	r.Handle("/boxes/{size}/{num:[0-9]+}/checkout", authMW(http.HandlerFunc(boxesHandler.Checkout))).Methods(http.MethodPost)
	r.Handle("/boxes/{size}/{num:[0-9]+}/checkin", authMW(http.HandlerFunc(boxesHandler.Checkin))).Methods(http.MethodPost)

	return r
}

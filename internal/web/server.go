//go:generate mockgen -source=server.go -destination=mocks/store.go -package=mock_web
package web

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/model"
)

// Store is the persistence the page handlers need.
type Store interface {
	IsUser(ctx context.Context, firstName, lastName string) (bool, error)
	GetBox(ctx context.Context, size string, num int64) (*model.Box, error)
	IsAway(ctx context.Context, size string, num int64) (bool, error)
	GetStatus(ctx context.Context, size string, num int64) (string, error)
	ListBoxes(ctx context.Context) ([]model.Box, error)
	ListLogs(ctx context.Context, size string, num int64, limit int) ([]model.LogEntry, error)
	Checkout(ctx context.Context, size string, num int64, actor model.User) (*model.LogEntry, error)
	Checkin(ctx context.Context, size string, num int64, actor model.User, location string) (*model.LogEntry, error)
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// Options configures the web router.
type Options struct {
	Store  Store
	Logger *zap.Logger

	// Secret signs session cookies.
	Secret     string
	CookieName string
	SessionTTL time.Duration

	// BaseURL prefixes the scan URLs in QR codes. Empty derives it from
	// the request.
	BaseURL string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Store      Store
	Templates  *Templates
	Logger     *zap.Logger
	Secret     string
	CookieName string
	SessionTTL time.Duration
	BaseURL    string
}

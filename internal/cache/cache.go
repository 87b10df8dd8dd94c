package cache

import (
	"context"
	"time"

	"artistdesk/internal/model"
)

// Cache persists the most recent server responses so the app can render
// immediately on startup and stay usable when the portal is unreachable.
type Cache interface {
	// SaveRoster replaces the cached artist list.
	SaveRoster(ctx context.Context, artists []model.Artist) error

	// LoadRoster returns the cached artist list and when it was
	// fetched. A miss returns ErrMiss.
	LoadRoster(ctx context.Context) ([]model.Artist, time.Time, error)

	// SaveDashboard replaces the cached dashboard snapshot for one
	// artist.
	SaveDashboard(ctx context.Context, artistID int, dash model.Dashboard) error

	// LoadDashboard returns the cached snapshot for one artist and
	// when it was fetched. A miss returns ErrMiss.
	LoadDashboard(ctx context.Context, artistID int) (model.Dashboard, time.Time, error)

	// Prune removes snapshots older than maxAge.
	Prune(ctx context.Context, maxAge time.Duration) error

	Close() error
}

// Package store keeps generated charts around long enough to download them
// as CSV or PDF. It is a cache, not a system of record: entries expire.
package store

import (
	"context"
	"errors"
	"time"

	"inflation-lens/internal/model"
)

// ErrNotFound is returned when an ID is unknown or has expired.
var ErrNotFound = errors.New("chart not found")

// Chart is one stored generation with the selections that produced it.
type Chart struct {
	ID        string              `json:"id"`
	Asset     model.AssetType     `json:"asset"`
	Inflation model.InflationType `json:"inflation"`
	Range     model.TimeRange     `json:"range"`
	Seed      *int64              `json:"seed,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	Data      model.ChartData     `json:"data"`
}

// Store is implemented by MemoryStore and RedisStore.
type Store interface {
	Save(ctx context.Context, c *Chart) error
	Get(ctx context.Context, id string) (*Chart, error)
	Close() error
}

func chartKey(id string) string { return "chart:" + id }

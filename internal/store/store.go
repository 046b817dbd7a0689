// Package store is the persistence port: JSON values keyed by a process-wide
// string per entity type. The aggregation pipeline persists nothing itself;
// callers inject a Store into the tracker, scheduler and HTTP layer.
package store

import (
	"context"
	"errors"
)

// Well-known entity keys.
const (
	KeyProfile      = "profile"
	KeyApplications = "applications"
	KeyInterviews   = "interviews"
	KeyTasks        = "tasks"
	KeyJobFeed      = "job_feed"
)

// ErrNotFound is returned by Load when nothing is stored under the key;
// callers fall back to their defaults.
var ErrNotFound = errors.New("store: key not found")

// Store persists one JSON value per key.
type Store interface {
	// Load unmarshals the value stored under key into dest.
	Load(ctx context.Context, key string, dest any) error
	// Save marshals value and stores it under key, replacing any previous value.
	Save(ctx context.Context, key string, value any) error
}

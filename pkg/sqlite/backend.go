// Package sqlite provides the public API for the SQLite zoo Registry.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/zoo/internal/sqlite"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

// NewBackend creates a new SQLite backend instance that logs to logger
// (slog.Default when nil). The backend is not attached; call Attach with a
// Config to initialize.
//
// Example:
//
//	registry := sqlite.NewBackend(nil)
//	err := registry.Attach(types.Config{DataDir: ".zoo-db"})
//	defer registry.Detach()
func NewBackend(logger *slog.Logger) types.Registry {
	return sqlite.NewBackend(logger)
}

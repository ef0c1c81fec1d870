// Package sqlite provides the public API for the SQLite ledger backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/CryptoCavemen/farmer-house/internal/sqlite"
	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// NewBackend creates a new SQLite ledger instance.
// The ledger is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	ledger := sqlite.NewBackend()
//	err := ledger.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".farmhouse-db",
//	})
//	defer ledger.Detach()
func NewBackend() types.Ledger {
	return sqlite.NewBackend()
}

// Package types defines the Ledger and service interfaces, entity types, and
// standard errors for the farmer-house token economy.
//
// The package is deliberately free of storage concerns: internal/sqlite
// implements the Ledger interface, and pkg/farm builds the farm operations
// on top of it. Everything callers exchange with either layer lives here.
package types

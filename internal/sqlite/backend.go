package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// Well-known service names recorded in the services table.
const (
	serviceToken    = "token"
	serviceMetadata = "metadata"
	serviceCustody  = "custody"
)

// Backend implements types.Ledger using SQLite. A single mutex serializes
// Execute calls: the multi-step checks-then-mutate sequences of the farm
// operations are never interleaved with another mutation of the same
// accounts, which is the guarantee a hosting ledger would otherwise supply.
type Backend struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
	services types.ServiceIDs
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, applies the schema, and provisions the
// collaborating service identities on first run.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, "farmhouse.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying indexes: %w", err)
		}
	}

	services, err := loadOrCreateServices(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("provisioning services: %w", err)
	}

	b.db = db
	b.config = config
	b.services = services
	b.attached = true

	return nil
}

// Detach releases all resources held by the backend. After Detach, Execute
// returns ErrLedgerDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// ServiceIDs returns the collaborating service identities provisioned at
// first Attach. Stable across restarts on the same data directory.
func (b *Backend) ServiceIDs() (types.ServiceIDs, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ServiceIDs{}, types.ErrLedgerDetached
	}
	return b.services, nil
}

// Execute runs fn inside one SQLite transaction, serialized against every
// other Execute call. A nil return commits; any error rolls back every
// mutation fn performed and is returned verbatim.
func (b *Backend) Execute(fn func(tx types.Tx) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrLedgerDetached
	}

	sqlTx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	t := &tx{tx: sqlTx, services: b.services}
	if err := fn(t); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back after %v: %w", err, rbErr)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// loadOrCreateServices reads the service identity rows, generating them on
// first run so the same data directory always reports the same identities.
func loadOrCreateServices(db *sql.DB) (types.ServiceIDs, error) {
	var ids types.ServiceIDs

	for _, svc := range []struct {
		name string
		dest *string
	}{
		{serviceToken, &ids.Token},
		{serviceMetadata, &ids.Metadata},
		{serviceCustody, &ids.Custody},
	} {
		err := db.QueryRow("SELECT address FROM services WHERE name = ?", svc.name).Scan(svc.dest)
		if err == sql.ErrNoRows {
			addr, _ := types.DeriveAddress("farmer-house-service", svc.name)
			if _, err := db.Exec("INSERT INTO services (name, address) VALUES (?, ?)", svc.name, addr); err != nil {
				return ids, err
			}
			*svc.dest = addr
			continue
		}
		if err != nil {
			return ids, err
		}
	}

	return ids, nil
}

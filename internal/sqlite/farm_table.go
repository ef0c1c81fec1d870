package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// Farm store: the singleton configuration record.

// CreateFarm writes the farm record. The primary key on the derived
// address is what makes re-initialization fail: the record is created once
// and never updated.
func (t *tx) CreateFarm(farm *types.Farm) error {
	if farm == nil {
		return types.ErrInvalidAddress
	}
	if err := farm.Validate(); err != nil {
		return err
	}

	if _, err := t.Farm(farm.Address); err == nil {
		return types.ErrAlreadyInitialized
	} else if err != types.ErrNotFound {
		return err
	}

	farm.CreatedAt = time.Now()
	_, err := t.tx.Exec(`
		INSERT INTO farms
			(address, bump, authority, currency_mint, seed_collection,
			 sapling_collection, ripe_collection, field_collection, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		farm.Address, farm.Bump, farm.Authority, farm.CurrencyMint,
		farm.SeedCollection, farm.SaplingCollection, farm.RipeCollection,
		farm.FieldCollection, farm.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting farm: %w", err)
	}
	return nil
}

// Farm returns the record at address.
func (t *tx) Farm(address string) (*types.Farm, error) {
	if address == "" {
		return nil, types.ErrInvalidAddress
	}

	row := t.tx.QueryRow(`
		SELECT address, bump, authority, currency_mint, seed_collection,
		       sapling_collection, ripe_collection, field_collection, created_at
		FROM farms WHERE address = ?`, address)

	var f types.Farm
	var createdAt string
	err := row.Scan(&f.Address, &f.Bump, &f.Authority, &f.CurrencyMint,
		&f.SeedCollection, &f.SaplingCollection, &f.RipeCollection,
		&f.FieldCollection, &createdAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning farm: %w", err)
	}
	f.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing farm created_at: %w", err)
	}
	return &f, nil
}

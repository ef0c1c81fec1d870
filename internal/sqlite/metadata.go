package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// Metadata service: the authoritative record for an asset's display data
// and collection membership pointer.

// CreateMetadata writes a new metadata record for meta.Mint.
func (t *tx) CreateMetadata(meta *types.AssetMetadata, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}
	if meta == nil || meta.Mint == "" || meta.UpdateAuthority == "" {
		return types.ErrInvalidAddress
	}

	if _, err := t.Mint(meta.Mint); err != nil {
		return err
	}
	if _, err := t.Metadata(meta.Mint); err == nil {
		return types.ErrAlreadyExists
	} else if err != types.ErrNotFound {
		return err
	}

	meta.UpdatedAt = time.Now()
	_, err := t.tx.Exec(`
		INSERT INTO asset_metadata
			(mint, name, symbol, uri, collection, collection_verified, master_record, update_authority, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meta.Mint, meta.Name, meta.Symbol, meta.URI, meta.Collection,
		boolToInt(meta.CollectionVerified), boolToInt(meta.MasterRecord),
		meta.UpdateAuthority, meta.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting metadata: %w", err)
	}
	return nil
}

// Metadata returns the record for mint.
func (t *tx) Metadata(mint string) (*types.AssetMetadata, error) {
	if mint == "" {
		return nil, types.ErrInvalidAddress
	}

	row := t.tx.QueryRow(`
		SELECT mint, name, symbol, uri, collection, collection_verified, master_record, update_authority, updated_at
		FROM asset_metadata WHERE mint = ?`, mint)

	var m types.AssetMetadata
	var collection sql.NullString
	var verified, master int
	var updatedAt string
	err := row.Scan(&m.Mint, &m.Name, &m.Symbol, &m.URI, &collection,
		&verified, &master, &m.UpdateAuthority, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning metadata: %w", err)
	}
	m.Collection = collection.String
	m.CollectionVerified = verified != 0
	m.MasterRecord = master != 0
	m.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata updated_at: %w", err)
	}
	return &m, nil
}

// UpdateMetadata rewrites the display data and collection pointer of the
// record. The signer must be the record's update authority; this is how a
// watering transition is authenticated by the farm's derived signer rather
// than the caller's.
func (t *tx) UpdateMetadata(mint string, meta types.AssetMetadata, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}

	current, err := t.Metadata(mint)
	if err != nil {
		return err
	}
	if current.UpdateAuthority != signer.Address {
		return types.ErrAuthorityMismatch
	}

	_, err = t.tx.Exec(`
		UPDATE asset_metadata
		SET name = ?, symbol = ?, uri = ?, collection = ?, collection_verified = ?, updated_at = ?
		WHERE mint = ?`,
		meta.Name, meta.Symbol, meta.URI, meta.Collection,
		boolToInt(meta.CollectionVerified), time.Now().Format(time.RFC3339), mint)
	if err != nil {
		return fmt.Errorf("updating metadata: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

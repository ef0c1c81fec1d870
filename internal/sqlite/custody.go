package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// Custody service: constraint models, vaults, and slot transfers. The
// service enforces slot capacity and sub-asset collection constraints; the
// farm operations on top of it only ever move single units.

// CreateConstraintModel registers a new escrow policy object.
func (t *tx) CreateConstraintModel(model *types.ConstraintModel, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}
	if model == nil || model.Address == "" || model.Creator == "" {
		return types.ErrInvalidAddress
	}
	if model.Creator != signer.Address {
		return types.ErrAuthorityMismatch
	}

	if _, err := t.ConstraintModel(model.Address); err == nil {
		return types.ErrAlreadyExists
	} else if err != types.ErrNotFound {
		return err
	}

	model.CreatedAt = time.Now()
	_, err := t.tx.Exec(`
		INSERT INTO escrow_models (address, name, schema_uri, creator, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		model.Address, model.Name, model.SchemaURI, model.Creator,
		model.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting constraint model: %w", err)
	}
	return nil
}

// ConstraintModel returns the model at address.
func (t *tx) ConstraintModel(address string) (*types.ConstraintModel, error) {
	if address == "" {
		return nil, types.ErrInvalidAddress
	}

	row := t.tx.QueryRow(
		"SELECT address, name, schema_uri, creator, created_at FROM escrow_models WHERE address = ?",
		address)

	var m types.ConstraintModel
	var schemaURI sql.NullString
	var createdAt string
	err := row.Scan(&m.Address, &m.Name, &schemaURI, &m.Creator, &createdAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning constraint model: %w", err)
	}
	m.SchemaURI = schemaURI.String
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing model created_at: %w", err)
	}
	return &m, nil
}

// AddSlotConstraint attaches a slot policy to the model. The signer must be
// the model's creator.
func (t *tx) AddSlotConstraint(model string, constraint types.SlotConstraint, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}
	if constraint.Slot == "" || constraint.AllowedCollection == "" {
		return types.ErrInvalidAddress
	}

	m, err := t.ConstraintModel(model)
	if err != nil {
		return err
	}
	if m.Creator != signer.Address {
		return types.ErrAuthorityMismatch
	}

	var existing string
	err = t.tx.QueryRow(
		"SELECT slot FROM escrow_slot_constraints WHERE model = ? AND slot = ?",
		model, constraint.Slot).Scan(&existing)
	if err == nil {
		return types.ErrAlreadyExists
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking slot constraint: %w", err)
	}

	_, err = t.tx.Exec(`
		INSERT INTO escrow_slot_constraints (model, slot, capacity, allowed_collection)
		VALUES (?, ?, ?, ?)`,
		model, constraint.Slot, constraint.Capacity, constraint.AllowedCollection)
	if err != nil {
		return fmt.Errorf("inserting slot constraint: %w", err)
	}
	return nil
}

// slotConstraint loads the constraint for one slot of a model.
func (t *tx) slotConstraint(model, slot string) (*types.SlotConstraint, error) {
	row := t.tx.QueryRow(
		"SELECT slot, capacity, allowed_collection FROM escrow_slot_constraints WHERE model = ? AND slot = ?",
		model, slot)

	var c types.SlotConstraint
	err := row.Scan(&c.Slot, &c.Capacity, &c.AllowedCollection)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning slot constraint: %w", err)
	}
	return &c, nil
}

// CreateVault provisions the custody container for
// (vault.AssetMint, vault.Authority). The signer must be the authority.
func (t *tx) CreateVault(vault *types.EscrowVault, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}
	if vault == nil || vault.Address == "" || vault.AssetMint == "" || vault.Authority == "" {
		return types.ErrInvalidAddress
	}
	if vault.Authority != signer.Address {
		return types.ErrAuthorityMismatch
	}
	if _, err := t.ConstraintModel(vault.Model); err != nil {
		return err
	}

	if _, err := t.Vault(vault.AssetMint, vault.Authority); err == nil {
		return types.ErrAlreadyExists
	} else if err != types.ErrNotFound {
		return err
	}

	vault.CreatedAt = time.Now()
	_, err := t.tx.Exec(`
		INSERT INTO escrow_vaults (address, asset_mint, authority, model, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		vault.Address, vault.AssetMint, vault.Authority, vault.Model,
		vault.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting vault: %w", err)
	}
	return nil
}

// Vault returns the custody container for (assetMint, authority).
func (t *tx) Vault(assetMint, authority string) (*types.EscrowVault, error) {
	if assetMint == "" || authority == "" {
		return nil, types.ErrInvalidAddress
	}

	row := t.tx.QueryRow(`
		SELECT address, asset_mint, authority, model, created_at
		FROM escrow_vaults WHERE asset_mint = ? AND authority = ?`,
		assetMint, authority)

	var v types.EscrowVault
	var createdAt string
	err := row.Scan(&v.Address, &v.AssetMint, &v.Authority, &v.Model, &createdAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning vault: %w", err)
	}
	v.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing vault created_at: %w", err)
	}
	return &v, nil
}

// vaultByAddress loads a vault by its derived address.
func (t *tx) vaultByAddress(address string) (*types.EscrowVault, error) {
	row := t.tx.QueryRow(`
		SELECT address, asset_mint, authority, model, created_at
		FROM escrow_vaults WHERE address = ?`, address)

	var v types.EscrowVault
	var createdAt string
	err := row.Scan(&v.Address, &v.AssetMint, &v.Authority, &v.Model, &createdAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrTrifleMismatch
	}
	if err != nil {
		return nil, fmt.Errorf("scanning vault: %w", err)
	}
	v.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing vault created_at: %w", err)
	}
	return &v, nil
}

// TransferIn moves units of attributeMint from the signer's holding into
// the named vault slot, subject to the slot's constraint: the slot must be
// registered on the vault's model, the attribute must belong to the
// allowed collection, and the slot balance may not exceed its capacity.
func (t *tx) TransferIn(vault, slot, attributeMint string, amount uint64, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}

	v, err := t.vaultByAddress(vault)
	if err != nil {
		return err
	}

	constraint, err := t.slotConstraint(v.Model, slot)
	if err == types.ErrNotFound {
		return types.ErrTrifleMismatch
	}
	if err != nil {
		return err
	}

	meta, err := t.Metadata(attributeMint)
	if err != nil {
		return err
	}
	if meta.Collection != constraint.AllowedCollection {
		return types.ErrCollectionMismatch
	}

	held, err := t.slotAmount(vault, slot)
	if err != nil {
		return err
	}
	if held+amount > constraint.Capacity {
		return types.ErrTrifleMismatch
	}

	src, err := t.Holding(signer.Address, attributeMint)
	if err != nil {
		return err
	}
	escrowHolding, err := t.CreateHolding(v.Address, attributeMint)
	if err != nil {
		return err
	}
	if err := t.Transfer(src.Address, escrowHolding.Address, amount, signer); err != nil {
		return err
	}

	_, err = t.tx.Exec(`
		INSERT INTO escrow_holdings (vault, slot, attribute_mint, amount)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(vault, slot, attribute_mint) DO UPDATE SET
			amount = amount + excluded.amount`,
		vault, slot, attributeMint, amount)
	if err != nil {
		return fmt.Errorf("recording slot holding: %w", err)
	}
	return nil
}

// TransferOut releases units of attributeMint from the named vault slot
// back to owner's holding, creating the holding if absent. Only the vault
// authority may sign outbound transfers.
func (t *tx) TransferOut(vault, slot, attributeMint, owner string, amount uint64, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}

	v, err := t.vaultByAddress(vault)
	if err != nil {
		return err
	}
	if v.Authority != signer.Address {
		return types.ErrAuthorityMismatch
	}

	var held uint64
	err = t.tx.QueryRow(
		"SELECT amount FROM escrow_holdings WHERE vault = ? AND slot = ? AND attribute_mint = ?",
		vault, slot, attributeMint).Scan(&held)
	if err == sql.ErrNoRows {
		return types.ErrTrifleMismatch
	}
	if err != nil {
		return fmt.Errorf("reading slot holding: %w", err)
	}
	if held < amount {
		return types.ErrTrifleMismatch
	}

	escrowHolding, err := t.Holding(v.Address, attributeMint)
	if err != nil {
		return err
	}
	dst, err := t.CreateHolding(owner, attributeMint)
	if err != nil {
		return err
	}
	if err := t.Transfer(escrowHolding.Address, dst.Address, amount, types.Signer{Address: v.Address}); err != nil {
		return err
	}

	if held == amount {
		_, err = t.tx.Exec(
			"DELETE FROM escrow_holdings WHERE vault = ? AND slot = ? AND attribute_mint = ?",
			vault, slot, attributeMint)
	} else {
		_, err = t.tx.Exec(
			"UPDATE escrow_holdings SET amount = amount - ? WHERE vault = ? AND slot = ? AND attribute_mint = ?",
			amount, vault, slot, attributeMint)
	}
	if err != nil {
		return fmt.Errorf("releasing slot holding: %w", err)
	}
	return nil
}

// SlotHoldings returns every slot→sub-asset binding of the vault, ordered
// by slot name.
func (t *tx) SlotHoldings(vault string) ([]types.SlotHolding, error) {
	if vault == "" {
		return nil, types.ErrInvalidAddress
	}

	rows, err := t.tx.Query(
		"SELECT slot, attribute_mint, amount FROM escrow_holdings WHERE vault = ? ORDER BY slot",
		vault)
	if err != nil {
		return nil, fmt.Errorf("querying slot holdings: %w", err)
	}
	defer rows.Close()

	var holdings []types.SlotHolding
	for rows.Next() {
		var h types.SlotHolding
		if err := rows.Scan(&h.Slot, &h.AttributeMint, &h.Amount); err != nil {
			return nil, fmt.Errorf("scanning slot holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// slotAmount sums the units currently held in one slot across sub-assets.
func (t *tx) slotAmount(vault, slot string) (uint64, error) {
	var total uint64
	err := t.tx.QueryRow(
		"SELECT COALESCE(SUM(amount), 0) FROM escrow_holdings WHERE vault = ? AND slot = ?",
		vault, slot).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing slot holdings: %w", err)
	}
	return total, nil
}

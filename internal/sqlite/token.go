package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// Token service: mints and holding accounts.

// CreateMint provisions a new mint controlled by authority.
func (t *tx) CreateMint(authority string, decimals uint8) (string, error) {
	if authority == "" {
		return "", types.ErrInvalidAddress
	}

	addr := types.NewAddress()
	_, err := t.tx.Exec(`
		INSERT INTO mints (address, authority, decimals, supply, created_at)
		VALUES (?, ?, ?, 0, ?)`,
		addr, authority, decimals, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting mint: %w", err)
	}
	return addr, nil
}

// Mint returns the mint record at the given address.
func (t *tx) Mint(mint string) (*types.MintInfo, error) {
	if mint == "" {
		return nil, types.ErrInvalidAddress
	}

	row := t.tx.QueryRow(
		"SELECT address, authority, decimals, supply, created_at FROM mints WHERE address = ?", mint)

	var m types.MintInfo
	var createdAt string
	err := row.Scan(&m.Address, &m.Authority, &m.Decimals, &m.Supply, &createdAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning mint: %w", err)
	}
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing mint created_at: %w", err)
	}
	return &m, nil
}

// MintTo issues new supply into the dest holding. The signer must be the
// mint authority.
func (t *tx) MintTo(mint, dest string, amount uint64, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}

	m, err := t.Mint(mint)
	if err != nil {
		return err
	}
	if m.Authority != signer.Address {
		return types.ErrAuthorityMismatch
	}

	h, err := t.HoldingByAddress(dest)
	if err != nil {
		return err
	}
	if h.Mint != mint {
		return types.ErrMintMismatch
	}

	if _, err := t.tx.Exec(
		"UPDATE mints SET supply = supply + ? WHERE address = ?", amount, mint); err != nil {
		return fmt.Errorf("updating supply: %w", err)
	}
	if _, err := t.tx.Exec(
		"UPDATE holdings SET amount = amount + ? WHERE address = ?", amount, dest); err != nil {
		return fmt.Errorf("crediting holding: %w", err)
	}
	return nil
}

// CreateHolding returns the holding associating owner with mint, creating
// it with a zero balance if absent. Idempotent.
func (t *tx) CreateHolding(owner, mint string) (*types.Holding, error) {
	if owner == "" || mint == "" {
		return nil, types.ErrInvalidAddress
	}

	h, err := t.Holding(owner, mint)
	if err == nil {
		return h, nil
	}
	if err != types.ErrNotFound {
		return nil, err
	}

	if _, err := t.Mint(mint); err != nil {
		return nil, err
	}

	now := time.Now()
	created := &types.Holding{
		Address:      types.NewAddress(),
		Owner:        owner,
		Mint:         mint,
		Amount:       0,
		OwnerProgram: t.services.Token,
		CreatedAt:    now,
	}
	_, err = t.tx.Exec(`
		INSERT INTO holdings (address, owner, mint, amount, owner_program, created_at)
		VALUES (?, ?, ?, 0, ?, ?)`,
		created.Address, owner, mint, created.OwnerProgram, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("inserting holding: %w", err)
	}
	return created, nil
}

// Holding returns the holding account for (owner, mint).
func (t *tx) Holding(owner, mint string) (*types.Holding, error) {
	if owner == "" || mint == "" {
		return nil, types.ErrInvalidAddress
	}
	row := t.tx.QueryRow(`
		SELECT address, owner, mint, amount, owner_program, created_at
		FROM holdings WHERE owner = ? AND mint = ?`, owner, mint)
	return scanHolding(row)
}

// HoldingByAddress returns the holding account at address.
func (t *tx) HoldingByAddress(address string) (*types.Holding, error) {
	if address == "" {
		return nil, types.ErrInvalidAddress
	}
	row := t.tx.QueryRow(`
		SELECT address, owner, mint, amount, owner_program, created_at
		FROM holdings WHERE address = ?`, address)
	return scanHolding(row)
}

func scanHolding(row *sql.Row) (*types.Holding, error) {
	var h types.Holding
	var createdAt string
	err := row.Scan(&h.Address, &h.Owner, &h.Mint, &h.Amount, &h.OwnerProgram, &createdAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning holding: %w", err)
	}
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing holding created_at: %w", err)
	}
	return &h, nil
}

// Transfer moves amount units between holding accounts. The signer must
// own the source; the source balance must cover amount.
func (t *tx) Transfer(from, to string, amount uint64, signer types.Signer) error {
	if err := requireSigner(signer); err != nil {
		return err
	}

	src, err := t.HoldingByAddress(from)
	if err != nil {
		return err
	}
	dst, err := t.HoldingByAddress(to)
	if err != nil {
		return err
	}

	if src.Owner != signer.Address {
		return types.ErrOwnerMismatch
	}
	if src.Mint != dst.Mint {
		return types.ErrMintMismatch
	}
	if src.Amount < amount {
		return types.ErrAmountMismatch
	}

	if _, err := t.tx.Exec(
		"UPDATE holdings SET amount = amount - ? WHERE address = ?", amount, from); err != nil {
		return fmt.Errorf("debiting holding: %w", err)
	}
	if _, err := t.tx.Exec(
		"UPDATE holdings SET amount = amount + ? WHERE address = ?", amount, to); err != nil {
		return fmt.Errorf("crediting holding: %w", err)
	}
	return nil
}

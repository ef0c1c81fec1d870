package types

import "time"

// MintInfo describes a mint: the identity under which units of a fungible
// currency or a single-unit collectible are issued.
type MintInfo struct {
	Address   string
	Authority string // Only the authority may issue new supply.
	Decimals  uint8
	Supply    uint64
	CreatedAt time.Time
}

// AssetMetadata is the authoritative record binding a mint to its display
// data and its collection membership pointer. Collection membership is the
// single source of truth for a crop's lifecycle stage.
type AssetMetadata struct {
	Mint               string
	Name               string
	Symbol             string
	URI                string
	Collection         string // Collection mint address; empty for collection markers themselves.
	CollectionVerified bool
	MasterRecord       bool   // Set for single-unit collectibles.
	UpdateAuthority    string // Only this signer may rewrite the record.
	UpdatedAt          time.Time
}

// Holding associates a balance of one mint with its current owner.
type Holding struct {
	Address      string
	Owner        string
	Mint         string
	Amount       uint64
	OwnerProgram string // Service custodying the account, normally the token service.
	CreatedAt    time.Time
}

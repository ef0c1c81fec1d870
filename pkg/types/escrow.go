package types

import "time"

// ConstraintModel is the escrow policy object custody vaults reference.
// It names the slots a vault may use and what each slot may hold.
type ConstraintModel struct {
	Address   string // Derived from ("escrow", creator, name).
	Name      string
	SchemaURI string
	Creator   string
	CreatedAt time.Time
}

// SlotConstraint restricts one named slot of a constraint model.
type SlotConstraint struct {
	Slot              string
	Capacity          uint64 // Maximum units the slot may hold; 1 for this economy.
	AllowedCollection string // Collection the held sub-asset must belong to.
}

// EscrowVault is the per-asset custody container, addressed by
// (asset mint, authority). Slots are created lazily on first transfer in.
type EscrowVault struct {
	Address   string // Derived from ("trifle", asset mint, authority).
	AssetMint string
	Authority string
	Model     string // Constraint model address.
	CreatedAt time.Time
}

// SlotHolding is one slot→sub-asset binding inside a vault.
type SlotHolding struct {
	Slot          string
	AttributeMint string
	Amount        uint64
}

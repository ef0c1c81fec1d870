package types

// Ledger is the host execution environment the farm program runs against.
// It provides the transactional boundary: every operation runs to
// completion inside one Execute call or leaves no trace, and concurrent
// Execute calls are serialized by the backend, never by farm code.
type Ledger interface {
	// Attach connects the Ledger to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, Execute returns ErrLedgerDetached.
	Detach() error

	// Execute runs fn inside one atomic transaction. If fn returns an
	// error every mutation it performed is rolled back and the error is
	// surfaced verbatim.
	Execute(fn func(tx Tx) error) error

	// ServiceIDs returns the identities of the ledger's collaborating
	// services. Stable across Attach calls on the same data directory.
	ServiceIDs() (ServiceIDs, error)
}

// Tx is one atomic ledger transaction. It exposes the external
// collaborators the farm program moves value through.
type Tx interface {
	TokenService
	MetadataService
	CustodyService
	FarmStore

	// ServiceIDs returns the same identities as Ledger.ServiceIDs.
	ServiceIDs() ServiceIDs
}

// TokenService transfers fungible currency and single-unit collectibles
// between holding accounts.
type TokenService interface {
	// CreateMint provisions a new mint controlled by authority.
	CreateMint(authority string, decimals uint8) (string, error)

	// Mint returns the mint record. Returns ErrNotFound if absent.
	Mint(mint string) (*MintInfo, error)

	// MintTo issues amount new units of mint into the dest holding.
	// The signer must be the mint authority.
	MintTo(mint, dest string, amount uint64, signer Signer) error

	// CreateHolding returns the holding account associating owner with
	// mint, creating it with a zero balance if absent. Idempotent.
	CreateHolding(owner, mint string) (*Holding, error)

	// Holding returns the holding account for (owner, mint).
	// Returns ErrNotFound if it has never been created.
	Holding(owner, mint string) (*Holding, error)

	// HoldingByAddress returns the holding account at address.
	HoldingByAddress(address string) (*Holding, error)

	// Transfer moves amount units between holding accounts. The signer
	// must own the source holding; the source balance must cover amount
	// (ErrAmountMismatch otherwise). No partial transfer ever occurs.
	Transfer(from, to string, amount uint64, signer Signer) error
}

// MetadataService owns the authoritative asset metadata records, including
// the collection membership pointer lifecycle stages are derived from.
type MetadataService interface {
	// CreateMetadata writes a new metadata record for meta.Mint.
	CreateMetadata(meta *AssetMetadata, signer Signer) error

	// Metadata returns the record for mint. Returns ErrNotFound if absent.
	Metadata(mint string) (*AssetMetadata, error)

	// UpdateMetadata rewrites the display data and collection pointer of
	// mint's record. The signer must be the record's update authority
	// (ErrAuthorityMismatch otherwise).
	UpdateMetadata(mint string, meta AssetMetadata, signer Signer) error
}

// CustodyService escrows sub-assets inside named vault slots under the
// constraints registered on the vault's constraint model.
type CustodyService interface {
	// CreateConstraintModel registers a new escrow policy object.
	CreateConstraintModel(model *ConstraintModel, signer Signer) error

	// ConstraintModel returns the model at address.
	ConstraintModel(address string) (*ConstraintModel, error)

	// AddSlotConstraint attaches a slot policy to the model. The signer
	// must be the model's creator. Returns ErrAlreadyExists if the slot
	// is already constrained.
	AddSlotConstraint(model string, constraint SlotConstraint, signer Signer) error

	// CreateVault provisions the custody container for
	// (vault.AssetMint, vault.Authority). The signer must be the vault
	// authority. Returns ErrAlreadyExists if the vault exists.
	CreateVault(vault *EscrowVault, signer Signer) error

	// Vault returns the custody container for (assetMint, authority).
	// Returns ErrNotFound if absent.
	Vault(assetMint, authority string) (*EscrowVault, error)

	// TransferIn moves amount units of attributeMint from the signer's
	// holding into the named vault slot, subject to the slot's
	// constraint. Creates the slot binding lazily.
	TransferIn(vault, slot, attributeMint string, amount uint64, signer Signer) error

	// TransferOut releases amount units of attributeMint from the named
	// vault slot back to owner's holding, creating the holding if
	// absent. The signer must be the vault authority.
	TransferOut(vault, slot, attributeMint, owner string, amount uint64, signer Signer) error

	// SlotHoldings returns every slot→sub-asset binding of the vault,
	// ordered by slot name.
	SlotHoldings(vault string) ([]SlotHolding, error)
}

// FarmStore persists the singleton farm configuration record.
type FarmStore interface {
	// CreateFarm writes the farm record. Returns ErrAlreadyInitialized
	// if a record already exists at farm.Address.
	CreateFarm(farm *Farm) error

	// Farm returns the record at address. Returns ErrNotFound if absent.
	Farm(address string) (*Farm, error)
}

// Package sqlite implements the Ledger interface on SQLite. It is the
// stand-in for the host execution environment: one SQLite transaction per
// operation gives the all-or-nothing boundary, and a backend-wide mutex
// gives the serialized account access a hosting ledger would provide.
package sqlite

// Schema DDL. The ledger persists across Attach calls, so every statement
// is idempotent.
const (
	createFarms = `CREATE TABLE IF NOT EXISTS farms (
    address TEXT PRIMARY KEY,
    bump INTEGER NOT NULL,
    authority TEXT NOT NULL,
    currency_mint TEXT NOT NULL,
    seed_collection TEXT NOT NULL,
    sapling_collection TEXT NOT NULL,
    ripe_collection TEXT NOT NULL,
    field_collection TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createMints = `CREATE TABLE IF NOT EXISTS mints (
    address TEXT PRIMARY KEY,
    authority TEXT NOT NULL,
    decimals INTEGER NOT NULL,
    supply INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createHoldings = `CREATE TABLE IF NOT EXISTS holdings (
    address TEXT PRIMARY KEY,
    owner TEXT NOT NULL,
    mint TEXT NOT NULL,
    amount INTEGER NOT NULL,
    owner_program TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (mint) REFERENCES mints(address)
);`

	createAssetMetadata = `CREATE TABLE IF NOT EXISTS asset_metadata (
    mint TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    symbol TEXT NOT NULL,
    uri TEXT NOT NULL,
    collection TEXT,
    collection_verified INTEGER NOT NULL,
    master_record INTEGER NOT NULL,
    update_authority TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (mint) REFERENCES mints(address)
);`

	createEscrowModels = `CREATE TABLE IF NOT EXISTS escrow_models (
    address TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    schema_uri TEXT,
    creator TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createSlotConstraints = `CREATE TABLE IF NOT EXISTS escrow_slot_constraints (
    model TEXT NOT NULL,
    slot TEXT NOT NULL,
    capacity INTEGER NOT NULL,
    allowed_collection TEXT NOT NULL,
    PRIMARY KEY (model, slot),
    FOREIGN KEY (model) REFERENCES escrow_models(address)
);`

	createEscrowVaults = `CREATE TABLE IF NOT EXISTS escrow_vaults (
    address TEXT PRIMARY KEY,
    asset_mint TEXT NOT NULL,
    authority TEXT NOT NULL,
    model TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (model) REFERENCES escrow_models(address)
);`

	createEscrowHoldings = `CREATE TABLE IF NOT EXISTS escrow_holdings (
    vault TEXT NOT NULL,
    slot TEXT NOT NULL,
    attribute_mint TEXT NOT NULL,
    amount INTEGER NOT NULL,
    PRIMARY KEY (vault, slot, attribute_mint),
    FOREIGN KEY (vault) REFERENCES escrow_vaults(address)
);`

	createServices = `CREATE TABLE IF NOT EXISTS services (
    name TEXT PRIMARY KEY,
    address TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxHoldingsOwnerMint = `CREATE UNIQUE INDEX IF NOT EXISTS idx_holdings_owner_mint ON holdings(owner, mint);`
	idxVaultsMintAuth    = `CREATE UNIQUE INDEX IF NOT EXISTS idx_vaults_mint_auth ON escrow_vaults(asset_mint, authority);`
	idxMetadataColl      = `CREATE INDEX IF NOT EXISTS idx_metadata_collection ON asset_metadata(collection);`
	idxEscrowVault       = `CREATE INDEX IF NOT EXISTS idx_escrow_holdings_vault ON escrow_holdings(vault);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFarms,
	createMints,
	createHoldings,
	createAssetMetadata,
	createEscrowModels,
	createSlotConstraints,
	createEscrowVaults,
	createEscrowHoldings,
	createServices,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxHoldingsOwnerMint,
	idxVaultsMintAuth,
	idxMetadataColl,
	idxEscrowVault,
}

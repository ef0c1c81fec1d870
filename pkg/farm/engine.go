package farm

import (
	"github.com/rs/zerolog"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// Shop prices in currency minor units.
const (
	FieldPrice        uint64 = 70_000_000
	SeedPrice         uint64 = 2_000_000
	SaplingSalePrice  uint64 = 3_500_000
	RipeSalePrice     uint64 = 7_000_000
	FallbackSalePrice uint64 = 2_000_000
)

// DefaultModelName is the constraint model name used when Options leaves
// it empty.
const DefaultModelName = "farmer-house"

// ModelSlots are the escrow slot names registered on the constraint model.
// Each holds at most one unit of a seed-collection asset.
var ModelSlots = []string{"a1", "a2", "a3", "b1", "b2", "b3"}

// Options tune engine behavior.
type Options struct {
	// ModelName names the constraint model vaults are bound to.
	// Defaults to DefaultModelName.
	ModelName string

	// RequireVerifiedCollections makes every collection check also require
	// the verified marker. Off by default; the original deliberately
	// skipped verification, so the gap is opt-in rather than silent.
	RequireVerifiedCollections bool

	// Services are the expected collaborating service identities. When
	// zero, the ledger's own identities are adopted at construction.
	Services types.ServiceIDs

	// Logger receives operation tracing and constraint-registration
	// warnings. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Engine executes the farm operations against a ledger. All methods are
// safe for concurrent use: the ledger serializes Execute calls.
type Engine struct {
	ledger          types.Ledger
	auth            *AuthorityContext
	expected        types.ServiceIDs
	modelName       string
	requireVerified bool
	log             zerolog.Logger
}

// NewEngine builds an engine over an attached ledger.
func NewEngine(ledger types.Ledger, auth *AuthorityContext, opts Options) (*Engine, error) {
	expected := opts.Services
	if expected == (types.ServiceIDs{}) {
		ids, err := ledger.ServiceIDs()
		if err != nil {
			return nil, err
		}
		expected = ids
	}

	modelName := opts.ModelName
	if modelName == "" {
		modelName = DefaultModelName
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Engine{
		ledger:          ledger,
		auth:            auth,
		expected:        expected,
		modelName:       modelName,
		requireVerified: opts.RequireVerifiedCollections,
		log:             log,
	}, nil
}

// Authority returns the engine's authority context.
func (e *Engine) Authority() *AuthorityContext { return e.auth }

// ModelAddress returns the derived address of the engine's constraint
// model.
func (e *Engine) ModelAddress() string {
	addr, _ := types.DeriveAddress("escrow", e.auth.Address(), e.modelName)
	return addr
}

// VaultAddress returns the derived address of the custody vault for an
// asset under this farm's authority.
func (e *Engine) VaultAddress(assetMint string) string {
	addr, _ := types.DeriveAddress("trifle", assetMint, e.auth.Address())
	return addr
}

// verifyServices compares the ledger's collaborating service identities
// against the configured expectations. Every value-moving operation calls
// this before touching an account.
func (e *Engine) verifyServices(tx types.Tx) error {
	if tx.ServiceIDs() != e.expected {
		return types.ErrProgramMismatch
	}
	return nil
}

// farm loads the singleton farm record.
func (e *Engine) farm(tx types.Tx) (*types.Farm, error) {
	return tx.Farm(e.auth.Address())
}

// checkCollection validates an asset's collection membership against the
// expected collection, honoring the verified-collection flag.
func (e *Engine) checkCollection(meta *types.AssetMetadata, want string) error {
	if meta.Collection == "" || meta.Collection != want {
		return types.ErrCollectionMismatch
	}
	if e.requireVerified && !meta.CollectionVerified {
		return types.ErrCollectionNotVerified
	}
	return nil
}

// checkTokenOwned ensures a holding is custodied by the expected token
// service.
func (e *Engine) checkTokenOwned(h *types.Holding) error {
	if h.OwnerProgram != e.expected.Token {
		return types.ErrOwnerMismatch
	}
	return nil
}

package farm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CryptoCavemen/farmer-house/internal/sqlite"
	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// fixture is a fully initialized farm over a throwaway SQLite backend:
// collections and currency minted, farm record created, constraint model
// registered with all slots.
type fixture struct {
	t         *testing.T
	backend   *sqlite.Backend
	engine    *Engine
	authority types.Signer
	farm      *types.Farm
	currency  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { _ = backend.Detach() })

	authority := types.SignAs(types.NewAddress())
	auth := NewAuthorityContext(types.NewAddress(), authority.Address)
	engine, err := NewEngine(backend, auth, Options{})
	require.NoError(t, err)

	f := &fixture{
		t:         t,
		backend:   backend,
		engine:    engine,
		authority: authority,
	}

	f.currency, err = engine.CreateCurrencyMint(authority, 6)
	require.NoError(t, err)

	seeds := f.marker("Tomato Seed Collection", "SEEDC")
	saplings := f.marker("Tomato Sapling Collection", "SAPLC")
	ripe := f.marker("Ripe Tomato Collection", "RIPEC")
	fields := f.marker("Field Collection", "FIELDC")

	f.farm, err = engine.Initialize(authority, f.currency, seeds, saplings, ripe, fields)
	require.NoError(t, err)

	_, registered, err := engine.RegisterConstraintModel(authority, DefaultModelName, "https://example.com/schema.json")
	require.NoError(t, err)
	require.Len(t, registered, len(ModelSlots))

	return f
}

func (f *fixture) marker(name, symbol string) string {
	f.t.Helper()
	mint, err := f.engine.MintCollectionMarker(f.authority, name, symbol, "https://example.com/"+symbol)
	require.NoError(f.t, err)
	return mint
}

// stock mints one collectible in the given collection into the farm's own
// holding, ready for sale.
func (f *fixture) stock(name, collection string) string {
	f.t.Helper()
	mint, err := f.engine.MintCollectible(f.authority, name, "TOMATO", "https://example.com/asset", collection)
	require.NoError(f.t, err)
	return mint
}

// wallet creates a funded user wallet.
func (f *fixture) wallet(amount uint64) types.Signer {
	f.t.Helper()
	w := types.SignAs(types.NewAddress())
	require.NoError(f.t, f.engine.MintCurrency(f.authority, f.currency, w.Address, amount))
	return w
}

// balance reads the currency balance of a wallet, zero if it has no
// holding yet.
func (f *fixture) balance(owner string) uint64 {
	f.t.Helper()
	var amount uint64
	err := f.backend.Execute(func(tx types.Tx) error {
		h, err := tx.Holding(owner, f.currency)
		if err == types.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		amount = h.Amount
		return nil
	})
	require.NoError(f.t, err)
	return amount
}

// holdingOf reads the balance of owner's holding for an arbitrary mint.
func (f *fixture) holdingOf(owner, mint string) uint64 {
	f.t.Helper()
	var amount uint64
	err := f.backend.Execute(func(tx types.Tx) error {
		h, err := tx.Holding(owner, mint)
		if err == types.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		amount = h.Amount
		return nil
	})
	require.NoError(f.t, err)
	return amount
}

// holdingAddress returns the address of owner's holding for mint.
func (f *fixture) holdingAddress(owner, mint string) string {
	f.t.Helper()
	var addr string
	err := f.backend.Execute(func(tx types.Tx) error {
		h, err := tx.Holding(owner, mint)
		if err != nil {
			return err
		}
		addr = h.Address
		return nil
	})
	require.NoError(f.t, err)
	return addr
}

// collectionOf reads an asset's current collection pointer.
func (f *fixture) collectionOf(mint string) string {
	f.t.Helper()
	var collection string
	err := f.backend.Execute(func(tx types.Tx) error {
		meta, err := tx.Metadata(mint)
		if err != nil {
			return err
		}
		collection = meta.Collection
		return nil
	})
	require.NoError(f.t, err)
	return collection
}

// slotHoldings reads the slot bindings of the vault for fieldMint.
func (f *fixture) slotHoldings(fieldMint string) []types.SlotHolding {
	f.t.Helper()
	var holdings []types.SlotHolding
	err := f.backend.Execute(func(tx types.Tx) error {
		var err error
		holdings, err = tx.SlotHoldings(f.engine.VaultAddress(fieldMint))
		return err
	})
	require.NoError(f.t, err)
	return holdings
}

// buyFieldAndSeed walks a fresh buyer through the shop far enough to
// plant: buys one field and one seed.
func (f *fixture) buyFieldAndSeed() (buyer types.Signer, fieldMint, seedMint string) {
	f.t.Helper()
	fieldMint = f.stock("Field", f.farm.FieldCollection)
	seedMint = f.stock("Tomato Seed", f.farm.SeedCollection)
	buyer = f.wallet(FieldPrice + SeedPrice)
	require.NoError(f.t, f.engine.BuyField(buyer, fieldMint))
	require.NoError(f.t, f.engine.BuySeed(buyer, seedMint))
	return buyer, fieldMint, seedMint
}

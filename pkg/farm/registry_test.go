package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CryptoCavemen/farmer-house/internal/sqlite"
	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

func TestInitialize(t *testing.T) {
	f := newFixture(t)

	t.Run("farm record persisted", func(t *testing.T) {
		var got *types.Farm
		err := f.backend.Execute(func(tx types.Tx) error {
			var err error
			got, err = tx.Farm(f.engine.Authority().Address())
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, f.farm.Authority, got.Authority)
		assert.Equal(t, f.farm.CurrencyMint, got.CurrencyMint)
		assert.Equal(t, f.farm.SeedCollection, got.SeedCollection)
		assert.Equal(t, f.farm.Bump, got.Bump)
	})

	t.Run("second initialize fails", func(t *testing.T) {
		_, err := f.engine.Initialize(f.authority, f.currency,
			f.farm.SeedCollection, f.farm.SaplingCollection,
			f.farm.RipeCollection, f.farm.FieldCollection)
		assert.ErrorIs(t, err, types.ErrAlreadyInitialized)
	})

	t.Run("currency holding provisioned for farm", func(t *testing.T) {
		assert.Zero(t, f.balance(f.farm.Address))
		addr := f.holdingAddress(f.farm.Address, f.currency)
		assert.NotEmpty(t, addr)
	})
}

func TestInitializeRejectsWrongSigner(t *testing.T) {
	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { _ = backend.Detach() })

	authority := types.SignAs(types.NewAddress())
	engine, err := NewEngine(backend, NewAuthorityContext(types.NewAddress(), authority.Address), Options{})
	require.NoError(t, err)

	mint := types.NewAddress()

	_, err = engine.Initialize(types.Signer{}, mint, "a", "b", "c", "d")
	assert.ErrorIs(t, err, types.ErrMissingRequiredSignature)

	_, err = engine.Initialize(types.SignAs(types.NewAddress()), mint, "a", "b", "c", "d")
	assert.ErrorIs(t, err, types.ErrAuthorityMismatch)
}

func TestRegisterConstraintModel(t *testing.T) {
	f := newFixture(t)

	t.Run("all slots registered", func(t *testing.T) {
		var model *types.ConstraintModel
		err := f.backend.Execute(func(tx types.Tx) error {
			var err error
			model, err = tx.ConstraintModel(f.engine.ModelAddress())
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultModelName, model.Name)
		assert.Equal(t, f.farm.Address, model.Creator)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		_, _, err := f.engine.RegisterConstraintModel(f.authority, DefaultModelName, "")
		assert.ErrorIs(t, err, types.ErrAlreadyExists)
	})

	t.Run("wrong signer rejected", func(t *testing.T) {
		_, _, err := f.engine.RegisterConstraintModel(types.SignAs(types.NewAddress()), "other", "")
		assert.ErrorIs(t, err, types.ErrAuthorityMismatch)
	})
}

func TestMintCollectible(t *testing.T) {
	f := newFixture(t)

	t.Run("stocked under farm custody", func(t *testing.T) {
		mint := f.stock("Tomato Seed", f.farm.SeedCollection)
		assert.Equal(t, uint64(1), f.holdingOf(f.farm.Address, mint))
		assert.Equal(t, f.farm.SeedCollection, f.collectionOf(mint))
	})

	t.Run("unknown collection rejected", func(t *testing.T) {
		_, err := f.engine.MintCollectible(f.authority, "Stray", "X", "", types.NewAddress())
		assert.ErrorIs(t, err, types.ErrCollectionMismatch)
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		_, err := f.engine.MintCollectible(types.Signer{}, "Stray", "X", "", f.farm.SeedCollection)
		assert.ErrorIs(t, err, types.ErrMissingRequiredSignature)
	})
}

func TestMintCurrency(t *testing.T) {
	f := newFixture(t)

	w := f.wallet(1_000)
	assert.Equal(t, uint64(1_000), f.balance(w.Address))

	// Only the mint authority may issue.
	err := f.engine.MintCurrency(types.SignAs(types.NewAddress()), f.currency, w.Address, 1)
	assert.ErrorIs(t, err, types.ErrAuthorityMismatch)
}

// API integration tests: the economy driven through the public packages,
// including persistence across a detach/attach cycle.
package integration

import (
	"testing"

	"github.com/CryptoCavemen/farmer-house/pkg/farm"
	"github.com/CryptoCavemen/farmer-house/pkg/sqlite"
	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// setupLedger attaches a ledger to an isolated temp directory.
func setupLedger(t *testing.T, dataDir string) types.Ledger {
	t.Helper()
	ledger := sqlite.NewBackend()
	if err := ledger.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { ledger.Detach() })
	return ledger
}

func TestEconomySurvivesReattach(t *testing.T) {
	dataDir := t.TempDir()
	ledger := setupLedger(t, dataDir)

	program := types.NewAddress()
	authority := types.SignAs(types.NewAddress())
	auth := farm.NewAuthorityContext(program, authority.Address)

	engine, err := farm.NewEngine(ledger, auth, farm.Options{})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	currency, err := engine.CreateCurrencyMint(authority, 6)
	if err != nil {
		t.Fatalf("CreateCurrencyMint: %v", err)
	}

	collections := make([]string, 4)
	for i, name := range []string{"Seeds", "Saplings", "Ripe", "Fields"} {
		collections[i], err = engine.MintCollectionMarker(authority, name, "COLL", "")
		if err != nil {
			t.Fatalf("MintCollectionMarker(%s): %v", name, err)
		}
	}

	record, err := engine.Initialize(authority, currency,
		collections[0], collections[1], collections[2], collections[3])
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, _, err := engine.RegisterConstraintModel(authority, farm.DefaultModelName, ""); err != nil {
		t.Fatalf("RegisterConstraintModel: %v", err)
	}

	fieldMint, err := engine.MintCollectible(authority, "Field", "FIELD", "", record.FieldCollection)
	if err != nil {
		t.Fatalf("MintCollectible(field): %v", err)
	}
	seedMint, err := engine.MintCollectible(authority, "Seed", "TOMATO", "", record.SeedCollection)
	if err != nil {
		t.Fatalf("MintCollectible(seed): %v", err)
	}

	buyer := types.SignAs(types.NewAddress())
	if err := engine.MintCurrency(authority, currency, buyer.Address, farm.FieldPrice+farm.SeedPrice); err != nil {
		t.Fatalf("MintCurrency: %v", err)
	}
	if err := engine.BuyField(buyer, fieldMint); err != nil {
		t.Fatalf("BuyField: %v", err)
	}
	if err := engine.BuySeed(buyer, seedMint); err != nil {
		t.Fatalf("BuySeed: %v", err)
	}
	if err := engine.Plant(buyer, fieldMint, seedMint, "a1"); err != nil {
		t.Fatalf("Plant: %v", err)
	}

	// Everything so far must survive a full detach/attach cycle.
	if err := ledger.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	ledger = setupLedger(t, dataDir)
	engine, err = farm.NewEngine(ledger, auth, farm.Options{})
	if err != nil {
		t.Fatalf("NewEngine after reattach: %v", err)
	}

	var fieldHolding string
	err = ledger.Execute(func(tx types.Tx) error {
		h, err := tx.Holding(buyer.Address, fieldMint)
		if err != nil {
			return err
		}
		fieldHolding = h.Address
		return nil
	})
	if err != nil {
		t.Fatalf("resolve field holding after reattach: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := engine.Water(buyer, fieldHolding, fieldMint, seedMint, "a1"); err != nil {
			t.Fatalf("Water %d: %v", i+1, err)
		}
	}
	if err := engine.Harvest(buyer, fieldMint, seedMint, "a1"); err != nil {
		t.Fatalf("Harvest: %v", err)
	}
	if err := engine.SellCrop(buyer, seedMint); err != nil {
		t.Fatalf("SellCrop: %v", err)
	}

	// The seller ends with the ripe sale price and no crop.
	err = ledger.Execute(func(tx types.Tx) error {
		h, err := tx.Holding(buyer.Address, currency)
		if err != nil {
			return err
		}
		if h.Amount != farm.RipeSalePrice {
			t.Errorf("seller balance = %d, want %d", h.Amount, farm.RipeSalePrice)
		}
		crop, err := tx.Holding(buyer.Address, seedMint)
		if err != nil {
			return err
		}
		if crop.Amount != 0 {
			t.Errorf("seller crop balance = %d, want 0", crop.Amount)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("verify balances: %v", err)
	}
}

func TestCurrencyConservation(t *testing.T) {
	ledger := setupLedger(t, t.TempDir())

	authority := types.SignAs(types.NewAddress())
	auth := farm.NewAuthorityContext(types.NewAddress(), authority.Address)
	engine, err := farm.NewEngine(ledger, auth, farm.Options{})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	currency, err := engine.CreateCurrencyMint(authority, 6)
	if err != nil {
		t.Fatalf("CreateCurrencyMint: %v", err)
	}

	collections := make([]string, 4)
	for i, name := range []string{"Seeds", "Saplings", "Ripe", "Fields"} {
		collections[i], err = engine.MintCollectionMarker(authority, name, "COLL", "")
		if err != nil {
			t.Fatalf("MintCollectionMarker(%s): %v", name, err)
		}
	}
	record, err := engine.Initialize(authority, currency,
		collections[0], collections[1], collections[2], collections[3])
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, _, err := engine.RegisterConstraintModel(authority, farm.DefaultModelName, ""); err != nil {
		t.Fatalf("RegisterConstraintModel: %v", err)
	}

	seedMint, err := engine.MintCollectible(authority, "Seed", "TOMATO", "", record.SeedCollection)
	if err != nil {
		t.Fatalf("MintCollectible: %v", err)
	}

	const issued = 10_000_000
	buyer := types.SignAs(types.NewAddress())
	if err := engine.MintCurrency(authority, currency, buyer.Address, issued); err != nil {
		t.Fatalf("MintCurrency: %v", err)
	}

	// A buy followed by a sell moves currency between the buyer and the
	// farm without creating or destroying any.
	if err := engine.BuySeed(buyer, seedMint); err != nil {
		t.Fatalf("BuySeed: %v", err)
	}
	if err := engine.SellCrop(buyer, seedMint); err != nil {
		t.Fatalf("SellCrop: %v", err)
	}

	err = ledger.Execute(func(tx types.Tx) error {
		buyerH, err := tx.Holding(buyer.Address, currency)
		if err != nil {
			return err
		}
		farmH, err := tx.Holding(record.Address, currency)
		if err != nil {
			return err
		}
		if total := buyerH.Amount + farmH.Amount; total != issued {
			t.Errorf("total currency = %d, want %d", total, issued)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("verify conservation: %v", err)
	}
}

package farm

import (
	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// Initialize creates the singleton farm record and provisions the derived
// address's currency holding. The signer must be the authority wallet the
// engine was built for. Fails with ErrAlreadyInitialized if the farm
// exists.
func (e *Engine) Initialize(signer types.Signer, currencyMint, seedCollection, saplingCollection, ripeCollection, fieldCollection string) (*types.Farm, error) {
	if signer.Zero() {
		return nil, types.ErrMissingRequiredSignature
	}
	if signer.Address != e.auth.Authority() {
		return nil, types.ErrAuthorityMismatch
	}

	farm := &types.Farm{
		Address:           e.auth.Address(),
		Bump:              e.auth.Bump(),
		Authority:         e.auth.Authority(),
		CurrencyMint:      currencyMint,
		SeedCollection:    seedCollection,
		SaplingCollection: saplingCollection,
		RipeCollection:    ripeCollection,
		FieldCollection:   fieldCollection,
	}

	err := e.ledger.Execute(func(tx types.Tx) error {
		if err := tx.CreateFarm(farm); err != nil {
			return err
		}
		// Provision the currency holding the shop pays into and out of.
		_, err := tx.CreateHolding(farm.Address, currencyMint)
		return err
	})
	if err != nil {
		return nil, err
	}

	e.log.Info().Str("farm", farm.Address).Msg("farm initialized")
	return farm, nil
}

// RegisterConstraintModel creates the escrow policy object custody vaults
// reference and registers the six slot constraints, each restricted to one
// unit of a seed-collection asset.
//
// Per-slot registration failures are non-fatal: each is logged and skipped,
// and the returned slice names the slots that actually registered. Callers
// that need all six must check the length rather than the error.
func (e *Engine) RegisterConstraintModel(signer types.Signer, name, schemaURI string) (*types.ConstraintModel, []string, error) {
	if signer.Zero() {
		return nil, nil, types.ErrMissingRequiredSignature
	}
	if signer.Address != e.auth.Authority() {
		return nil, nil, types.ErrAuthorityMismatch
	}

	address, _ := types.DeriveAddress("escrow", e.auth.Address(), name)
	model := &types.ConstraintModel{
		Address:   address,
		Name:      name,
		SchemaURI: schemaURI,
		Creator:   e.auth.Address(),
	}

	var registered []string
	err := e.ledger.Execute(func(tx types.Tx) error {
		farm, err := e.farm(tx)
		if err != nil {
			return err
		}

		// The seed collection mint must exist before slots restricted to
		// it can be registered.
		if _, err := tx.Mint(farm.SeedCollection); err != nil {
			return types.ErrCollectionMismatch
		}

		if err := tx.CreateConstraintModel(model, e.auth.Signer()); err != nil {
			return err
		}

		for _, slot := range ModelSlots {
			constraint := types.SlotConstraint{
				Slot:              slot,
				Capacity:          1,
				AllowedCollection: farm.SeedCollection,
			}
			if err := tx.AddSlotConstraint(address, constraint, e.auth.Signer()); err != nil {
				e.log.Warn().Err(err).Str("slot", slot).Msg("slot constraint registration failed")
				continue
			}
			registered = append(registered, slot)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	e.log.Info().Str("model", address).Int("slots", len(registered)).Msg("constraint model registered")
	return model, registered, nil
}

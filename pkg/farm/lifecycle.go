package farm

import "github.com/CryptoCavemen/farmer-house/pkg/types"

// Metadata templates for watering transitions. Collection membership is
// what actually drives the lifecycle; the display fields just track it.
const (
	saplingName = "Tomato Sapling"
	ripeName    = "Ripe Tomato"
	cropSymbol  = "TOMATO"
	cropURI     = "https://fossil-test.fra1.digitaloceanspaces.com/caveman-test-metadata.json"
)

// Plant moves one unit of a seed asset into the named escrow slot of the
// caller's field vault, transferring custody from the caller to the vault.
// The asset must belong to the seed collection.
func (e *Engine) Plant(caller types.Signer, fieldMint, seedMint, slot string) error {
	if caller.Zero() {
		return types.ErrMissingRequiredSignature
	}

	err := e.ledger.Execute(func(tx types.Tx) error {
		if err := e.verifyServices(tx); err != nil {
			return err
		}
		farm, err := e.farm(tx)
		if err != nil {
			return err
		}

		meta, err := tx.Metadata(seedMint)
		if err != nil {
			return err
		}
		if err := e.checkCollection(meta, farm.SeedCollection); err != nil {
			return err
		}

		vault, err := tx.Vault(fieldMint, farm.Address)
		if err == types.ErrNotFound {
			return types.ErrTrifleMismatch
		}
		if err != nil {
			return err
		}

		return tx.TransferIn(vault.Address, slot, seedMint, 1, caller)
	})
	if err != nil {
		return err
	}

	e.log.Debug().Str("seed", seedMint).Str("slot", slot).Msg("seed planted")
	return nil
}

// Water advances a planted crop one stage: seed→sapling or sapling→ripe.
// This is a pure state advance — no custody moves; the crop's collection
// pointer is rewritten under the farm's derived signature, not the
// caller's. The caller must own the field holding the crop is planted in,
// and the named slot must hold exactly one unit of the crop.
func (e *Engine) Water(caller types.Signer, fieldHolding, fieldMint, cropMint, slot string) error {
	if caller.Zero() {
		return types.ErrMissingRequiredSignature
	}

	err := e.ledger.Execute(func(tx types.Tx) error {
		if err := e.verifyServices(tx); err != nil {
			return err
		}
		farm, err := e.farm(tx)
		if err != nil {
			return err
		}

		meta, err := tx.Metadata(cropMint)
		if err != nil {
			return err
		}
		if meta.Collection == farm.RipeCollection {
			return types.ErrCropReady
		}

		holding, err := tx.HoldingByAddress(fieldHolding)
		if err != nil {
			return err
		}
		if holding.Mint != fieldMint {
			return types.ErrMintMismatch
		}
		if holding.Owner != caller.Address {
			return types.ErrOwnerMismatch
		}

		vault, err := tx.Vault(fieldMint, farm.Address)
		if err == types.ErrNotFound {
			return types.ErrTrifleMismatch
		}
		if err != nil {
			return err
		}
		if err := e.checkSlotHoldsCrop(tx, vault.Address, slot, cropMint); err != nil {
			return err
		}

		update := types.AssetMetadata{
			Symbol: cropSymbol,
			URI:    cropURI,
		}
		switch meta.Collection {
		case farm.SeedCollection:
			update.Name = saplingName
			update.Collection = farm.SaplingCollection
		case farm.SaplingCollection:
			update.Name = ripeName
			update.Collection = farm.RipeCollection
		default:
			return types.ErrCollectionMismatch
		}

		return tx.UpdateMetadata(cropMint, update, e.auth.Signer())
	})
	if err != nil {
		return err
	}

	e.log.Debug().Str("crop", cropMint).Str("slot", slot).Msg("crop watered")
	return nil
}

// Harvest releases custody of a ripe crop: the single unit in the named
// vault slot returns to the caller's holding under the farm's derived
// signature, and the crop becomes sellable. The caller must hold the field
// the crop is planted in.
func (e *Engine) Harvest(caller types.Signer, fieldMint, cropMint, slot string) error {
	if caller.Zero() {
		return types.ErrMissingRequiredSignature
	}

	err := e.ledger.Execute(func(tx types.Tx) error {
		if err := e.verifyServices(tx); err != nil {
			return err
		}
		farm, err := e.farm(tx)
		if err != nil {
			return err
		}

		fieldHolding, err := tx.Holding(caller.Address, fieldMint)
		if err == types.ErrNotFound {
			return types.ErrOwnerMismatch
		}
		if err != nil {
			return err
		}
		if fieldHolding.Mint != fieldMint || fieldHolding.Amount < 1 {
			return types.ErrOwnerMismatch
		}

		meta, err := tx.Metadata(cropMint)
		if err != nil {
			return err
		}
		if err := e.checkCollection(meta, farm.RipeCollection); err != nil {
			return err
		}

		vault, err := tx.Vault(fieldMint, farm.Address)
		if err == types.ErrNotFound {
			return types.ErrTrifleMismatch
		}
		if err != nil {
			return err
		}

		return tx.TransferOut(vault.Address, slot, cropMint, caller.Address, 1, e.auth.Signer())
	})
	if err != nil {
		return err
	}

	e.log.Debug().Str("crop", cropMint).Str("slot", slot).Msg("crop harvested")
	return nil
}

// checkSlotHoldsCrop verifies the named slot holds exactly one unit and
// that the unit is the crop in question.
func (e *Engine) checkSlotHoldsCrop(tx types.Tx, vault, slot, cropMint string) error {
	holdings, err := tx.SlotHoldings(vault)
	if err != nil {
		return err
	}

	var total uint64
	found := false
	for _, h := range holdings {
		if h.Slot != slot {
			continue
		}
		total += h.Amount
		if h.AttributeMint == cropMint && h.Amount == 1 {
			found = true
		}
	}
	if !found || total != 1 {
		return types.ErrTrifleMismatch
	}
	return nil
}

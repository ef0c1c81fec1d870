package farm

import "github.com/CryptoCavemen/farmer-house/pkg/types"

// BuyField sells the buyer a field asset for FieldPrice: the buyer's
// currency moves to the farm, one field unit moves from the farm to the
// buyer, and — if the buyer has no custody vault for the field yet — the
// vault is created, bound to the farm's constraint model. All legs commit
// together or not at all.
func (e *Engine) BuyField(buyer types.Signer, fieldMint string) error {
	if buyer.Zero() {
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

		meta, err := tx.Metadata(fieldMint)
		if err != nil {
			return err
		}
		if err := e.checkCollection(meta, farm.FieldCollection); err != nil {
			return err
		}
		if meta.Mint != fieldMint {
			return types.ErrMintMismatch
		}
		if !meta.MasterRecord {
			return types.ErrMintMismatch
		}

		currencySrc, err := tx.Holding(buyer.Address, farm.CurrencyMint)
		if err != nil {
			return err
		}
		currencyDst, err := tx.Holding(farm.Address, farm.CurrencyMint)
		if err != nil {
			return err
		}
		fieldSrc, err := tx.Holding(farm.Address, fieldMint)
		if err != nil {
			return err
		}
		for _, h := range []*types.Holding{currencySrc, currencyDst, fieldSrc} {
			if err := e.checkTokenOwned(h); err != nil {
				return err
			}
		}

		if currencySrc.Amount < FieldPrice {
			return types.ErrAmountMismatch
		}
		if fieldSrc.Amount < 1 {
			return types.ErrAmountMismatch
		}

		if err := tx.Transfer(currencySrc.Address, currencyDst.Address, FieldPrice, buyer); err != nil {
			return err
		}

		fieldDst, err := tx.CreateHolding(buyer.Address, fieldMint)
		if err != nil {
			return err
		}
		if err := tx.Transfer(fieldSrc.Address, fieldDst.Address, 1, e.auth.Signer()); err != nil {
			return err
		}

		// Lazy, idempotent vault creation: an existing vault is reused
		// unchanged.
		_, err = tx.Vault(fieldMint, farm.Address)
		if err == nil {
			return nil
		}
		if err != types.ErrNotFound {
			return err
		}
		vault := &types.EscrowVault{
			Address:   e.VaultAddress(fieldMint),
			AssetMint: fieldMint,
			Authority: farm.Address,
			Model:     e.ModelAddress(),
		}
		return tx.CreateVault(vault, e.auth.Signer())
	})
	if err != nil {
		return err
	}

	e.log.Debug().Str("field", fieldMint).Msg("field bought")
	return nil
}

// BuySeed sells the buyer a seed asset for SeedPrice. Seeds are not escrow
// containers, so no vault is involved.
func (e *Engine) BuySeed(buyer types.Signer, seedMint string) error {
	if buyer.Zero() {
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
		if meta.Mint != seedMint {
			return types.ErrMintMismatch
		}

		currencySrc, err := tx.Holding(buyer.Address, farm.CurrencyMint)
		if err != nil {
			return err
		}
		currencyDst, err := tx.Holding(farm.Address, farm.CurrencyMint)
		if err != nil {
			return err
		}
		seedSrc, err := tx.Holding(farm.Address, seedMint)
		if err != nil {
			return err
		}
		for _, h := range []*types.Holding{currencySrc, currencyDst, seedSrc} {
			if err := e.checkTokenOwned(h); err != nil {
				return err
			}
		}

		if currencySrc.Amount < SeedPrice {
			return types.ErrAmountMismatch
		}
		if seedSrc.Amount < 1 {
			return types.ErrAmountMismatch
		}

		if err := tx.Transfer(currencySrc.Address, currencyDst.Address, SeedPrice, buyer); err != nil {
			return err
		}

		seedDst, err := tx.CreateHolding(buyer.Address, seedMint)
		if err != nil {
			return err
		}
		return tx.Transfer(seedSrc.Address, seedDst.Address, 1, e.auth.Signer())
	})
	if err != nil {
		return err
	}

	e.log.Debug().Str("seed", seedMint).Msg("seed bought")
	return nil
}

// SellCrop buys a crop back from the seller at a price derived from the
// crop's current collection: SaplingSalePrice for saplings, RipeSalePrice
// for ripe crops, FallbackSalePrice for anything else. One crop unit moves
// to the farm and the price moves to the seller, atomically.
func (e *Engine) SellCrop(seller types.Signer, cropMint string) error {
	if seller.Zero() {
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

		cropSrc, err := tx.Holding(seller.Address, cropMint)
		if err != nil {
			return err
		}
		if meta.Mint != cropSrc.Mint {
			return types.ErrMintMismatch
		}

		currencySrc, err := tx.Holding(farm.Address, farm.CurrencyMint)
		if err != nil {
			return err
		}
		for _, h := range []*types.Holding{cropSrc, currencySrc} {
			if err := e.checkTokenOwned(h); err != nil {
				return err
			}
		}

		price := sellPrice(farm, meta.Collection)
		if currencySrc.Amount < price {
			return types.ErrAmountMismatch
		}
		if cropSrc.Amount < 1 {
			return types.ErrAmountMismatch
		}

		cropDst, err := tx.CreateHolding(farm.Address, cropMint)
		if err != nil {
			return err
		}
		if err := tx.Transfer(cropSrc.Address, cropDst.Address, 1, seller); err != nil {
			return err
		}

		currencyDst, err := tx.CreateHolding(seller.Address, farm.CurrencyMint)
		if err != nil {
			return err
		}
		return tx.Transfer(currencySrc.Address, currencyDst.Address, price, e.auth.Signer())
	})
	if err != nil {
		return err
	}

	e.log.Debug().Str("crop", cropMint).Msg("crop sold")
	return nil
}

// sellPrice derives the buy-back price from a crop's collection.
func sellPrice(farm *types.Farm, collection string) uint64 {
	switch collection {
	case farm.SaplingCollection:
		return SaplingSalePrice
	case farm.RipeCollection:
		return RipeSalePrice
	default:
		return FallbackSalePrice
	}
}

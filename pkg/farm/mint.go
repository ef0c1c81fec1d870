package farm

import "github.com/CryptoCavemen/farmer-house/pkg/types"

// Genesis helpers: collection markers, collectibles and currency are
// minted by the authority before or during setup. None of these run during
// normal shop or lifecycle operations.

// MintCollectionMarker creates a collection mint owned by the signer. The
// marker's own metadata carries no collection pointer; other assets point
// at the marker's mint to declare membership.
func (e *Engine) MintCollectionMarker(signer types.Signer, name, symbol, uri string) (string, error) {
	if signer.Zero() {
		return "", types.ErrMissingRequiredSignature
	}
	if signer.Address != e.auth.Authority() {
		return "", types.ErrAuthorityMismatch
	}

	var mint string
	err := e.ledger.Execute(func(tx types.Tx) error {
		var err error
		mint, err = tx.CreateMint(signer.Address, 0)
		if err != nil {
			return err
		}
		holding, err := tx.CreateHolding(signer.Address, mint)
		if err != nil {
			return err
		}
		if err := tx.MintTo(mint, holding.Address, 1, signer); err != nil {
			return err
		}
		return tx.CreateMetadata(&types.AssetMetadata{
			Mint:            mint,
			Name:            name,
			Symbol:          symbol,
			URI:             uri,
			MasterRecord:    true,
			UpdateAuthority: signer.Address,
		}, signer)
	})
	if err != nil {
		return "", err
	}
	return mint, nil
}

// MintCollectible creates a single-unit asset inside the given collection,
// held by the farm's derived address and updatable only under its
// signature. This is how seeds, fields and crops enter the shop's stock.
// Requires an initialized farm.
func (e *Engine) MintCollectible(signer types.Signer, name, symbol, uri, collection string) (string, error) {
	if signer.Zero() {
		return "", types.ErrMissingRequiredSignature
	}

	var mint string
	err := e.ledger.Execute(func(tx types.Tx) error {
		farm, err := e.farm(tx)
		if err != nil {
			return err
		}
		if _, err := tx.Mint(collection); err != nil {
			return types.ErrCollectionMismatch
		}

		mint, err = tx.CreateMint(farm.Address, 0)
		if err != nil {
			return err
		}
		holding, err := tx.CreateHolding(farm.Address, mint)
		if err != nil {
			return err
		}
		if err := tx.MintTo(mint, holding.Address, 1, e.auth.Signer()); err != nil {
			return err
		}
		return tx.CreateMetadata(&types.AssetMetadata{
			Mint:            mint,
			Name:            name,
			Symbol:          symbol,
			URI:             uri,
			Collection:      collection,
			MasterRecord:    true,
			UpdateAuthority: farm.Address,
		}, e.auth.Signer())
	})
	if err != nil {
		return "", err
	}

	e.log.Debug().Str("mint", mint).Str("collection", collection).Msg("collectible minted")
	return mint, nil
}

// CreateCurrencyMint provisions the fungible currency mint under the
// signer's control.
func (e *Engine) CreateCurrencyMint(signer types.Signer, decimals uint8) (string, error) {
	if signer.Zero() {
		return "", types.ErrMissingRequiredSignature
	}
	if signer.Address != e.auth.Authority() {
		return "", types.ErrAuthorityMismatch
	}

	var mint string
	err := e.ledger.Execute(func(tx types.Tx) error {
		var err error
		mint, err = tx.CreateMint(signer.Address, decimals)
		return err
	})
	if err != nil {
		return "", err
	}
	return mint, nil
}

// MintCurrency issues currency into a wallet's holding. The signer must be
// the currency mint's authority. Genesis only; the shop never mints.
func (e *Engine) MintCurrency(signer types.Signer, currencyMint, wallet string, amount uint64) error {
	if signer.Zero() {
		return types.ErrMissingRequiredSignature
	}

	return e.ledger.Execute(func(tx types.Tx) error {
		holding, err := tx.CreateHolding(wallet, currencyMint)
		if err != nil {
			return err
		}
		return tx.MintTo(currencyMint, holding.Address, amount, signer)
	})
}

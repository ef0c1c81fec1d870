package types

import "time"

// Lifecycle stages. A crop's stage is never stored: it is derived from
// which collection the crop's metadata currently references.
type Stage string

const (
	StageSeed    Stage = "seed"
	StageSapling Stage = "sapling"
	StageRipe    Stage = "ripe"

	// StageTerminal is the custody-side stage of a harvested crop. It is
	// never produced by Classify; a harvested crop keeps the ripe
	// collection but no longer sits in an escrow slot.
	StageTerminal Stage = "terminal"
)

// Farm is the singleton configuration record governing one tokenized
// economy: the authority identity, the currency mint, and the four
// collection addresses the lifecycle is derived from. Created once at
// initialization and immutable thereafter.
type Farm struct {
	Address           string    // Derived from ("farmer-house-farms", program).
	Bump              uint8     // Nonce byte from the address derivation.
	Authority         string    // Wallet with exclusive rights over this farm.
	CurrencyMint      string    // Fungible currency mint.
	SeedCollection    string    // Collection of plantable seeds.
	SaplingCollection string    // Collection of watered, growing crops.
	RipeCollection    string    // Collection of fully grown crops.
	FieldCollection   string    // Collection of field (escrow container) assets.
	CreatedAt         time.Time // Timestamp of initialization.
}

// Validate checks that every identity field is set.
func (f *Farm) Validate() error {
	for _, addr := range []string{
		f.Address, f.Authority, f.CurrencyMint,
		f.SeedCollection, f.SaplingCollection, f.RipeCollection, f.FieldCollection,
	} {
		if addr == "" {
			return ErrInvalidAddress
		}
	}
	return nil
}

// Classify derives the lifecycle stage from a collection address. Returns
// ErrCollectionMismatch if the collection is not one of the three crop
// collections; field assets are containers, not crops, and classify the
// same way any foreign collection does.
func (f *Farm) Classify(collection string) (Stage, error) {
	switch collection {
	case f.SeedCollection:
		return StageSeed, nil
	case f.SaplingCollection:
		return StageSapling, nil
	case f.RipeCollection:
		return StageRipe, nil
	default:
		return "", ErrCollectionMismatch
	}
}

// IsField reports whether the collection is the farm's field collection.
func (f *Farm) IsField(collection string) bool {
	return collection != "" && collection == f.FieldCollection
}

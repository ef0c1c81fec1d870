package farm

import "github.com/CryptoCavemen/farmer-house/pkg/types"

// Descriptor is a read-only view over an asset's mint identity and
// collection membership, resolved against one farm record. Lifecycle stage
// is a pure query over it; the mutating transitions live on the engine.
type Descriptor struct {
	meta *types.AssetMetadata
	farm *types.Farm
}

// Describe resolves the descriptor for an asset mint.
func (e *Engine) Describe(mint string) (*Descriptor, error) {
	var d Descriptor
	err := e.ledger.Execute(func(tx types.Tx) error {
		farm, err := e.farm(tx)
		if err != nil {
			return err
		}
		meta, err := tx.Metadata(mint)
		if err != nil {
			return err
		}
		d = Descriptor{meta: meta, farm: farm}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Mint returns the asset's mint address.
func (d *Descriptor) Mint() string { return d.meta.Mint }

// Collection returns the asset's current collection membership.
func (d *Descriptor) Collection() string { return d.meta.Collection }

// Name returns the asset's display name.
func (d *Descriptor) Name() string { return d.meta.Name }

// Stage derives the lifecycle stage from the collection membership.
// Returns ErrCollectionMismatch if the asset is not in any crop collection.
func (d *Descriptor) Stage() (types.Stage, error) {
	return d.farm.Classify(d.meta.Collection)
}

// IsField reports whether the asset belongs to the field collection.
func (d *Descriptor) IsField() bool {
	return d.farm.IsField(d.meta.Collection)
}

// RequireRipe returns nil only when the asset has reached the ripe stage,
// and ErrCropNotRipe for any earlier stage. Read-side guard; Harvest
// itself reports ErrCollectionMismatch for non-ripe assets.
func (d *Descriptor) RequireRipe() error {
	stage, err := d.Stage()
	if err != nil {
		return err
	}
	if stage != types.StageRipe {
		return types.ErrCropNotRipe
	}
	return nil
}

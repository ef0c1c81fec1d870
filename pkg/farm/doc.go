// Package farm implements the farmer-house program: an authority-governed
// tokenized economy where collectible crops move through a
// seed→sapling→ripe→harvested lifecycle inside escrow vaults, and a shop
// swaps fungible currency for custody of assets.
//
// The package never talks to storage directly. Every operation resolves
// the farm record, validates the asset against it, and moves value through
// the ledger's collaborating services inside one atomic Execute call.
package farm

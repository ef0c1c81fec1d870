package types

import "errors"

// Operation errors. Every farm operation evaluates its preconditions before
// any mutation; the first failing check aborts the whole operation with one
// of these sentinels and no partial effect.
var (
	// ErrMissingRequiredSignature indicates a required authorizing signer
	// did not sign.
	ErrMissingRequiredSignature = errors.New("a required signature is missing")

	// ErrOwnerMismatch indicates an account's owner does not match the
	// expected owner.
	ErrOwnerMismatch = errors.New("the owner does not match")

	// ErrProgramMismatch indicates a collaborating service identity does
	// not match the configured one.
	ErrProgramMismatch = errors.New("the service identity does not match")

	// ErrAuthorityMismatch indicates the caller is not the registered
	// authority for the farm being mutated.
	ErrAuthorityMismatch = errors.New("the authority does not match")

	// ErrMintMismatch indicates an asset's declared mint does not match
	// the account referencing it.
	ErrMintMismatch = errors.New("the mint address does not match")

	// ErrAmountMismatch indicates a source holding does not have enough
	// units to transfer.
	ErrAmountMismatch = errors.New("the source holding does not have enough units to transfer")

	// ErrCollectionMismatch indicates an asset's collection membership
	// does not match any expected value for the operation.
	ErrCollectionMismatch = errors.New("the collection does not match, is unauthorised or is null")

	// ErrCollectionNotVerified indicates a collection marker has not been
	// verified. Only enforced when RequireVerifiedCollections is set.
	ErrCollectionNotVerified = errors.New("the collection is not verified")

	// ErrTrifleMismatch indicates the custody record or slot is absent,
	// malformed, or does not hold the expected single unit.
	ErrTrifleMismatch = errors.New("the custody record does not match or is null")

	// ErrCropNotRipe indicates the crop has not advanced far enough for
	// the requested operation.
	ErrCropNotRipe = errors.New("the crop is not ready to be harvested or sold, you have to water it a bit more")

	// ErrCropReady indicates the crop is already fully grown and does not
	// need to be watered anymore.
	ErrCropReady = errors.New("the crop is ready to be harvested and does not need to be watered anymore")
)

// Ledger lifecycle and record errors.
var (
	ErrLedgerDetached     = errors.New("ledger is detached")
	ErrAlreadyAttached    = errors.New("ledger is already attached")
	ErrAlreadyInitialized = errors.New("farm is already initialized")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidAddress     = errors.New("address must not be empty")
)

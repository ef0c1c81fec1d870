package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewAddress generates a fresh ledger address. Addresses for user wallets,
// mints and holding accounts are UUID v7 strings.
func NewAddress() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// DeriveAddress deterministically derives an address from the given seed
// strings, together with a one-byte nonce bound to the derivation. The same
// seeds always produce the same address, which is how the farm record, the
// constraint model and each custody vault get stable, signer-free
// identities.
func DeriveAddress(seeds ...string) (string, uint8) {
	sum := sha256.Sum256([]byte(strings.Join(seeds, "\x00")))
	return hex.EncodeToString(sum[:]), sum[0]
}

// Signer is the capability presented to the ledger to authorize a mutation
// of an account. A user signs as their own wallet address; privileged
// transfers carry the signer derived once from the authority context.
type Signer struct {
	Address string
	Bump    uint8
}

// SignAs returns a plain signer for the given wallet address.
func SignAs(address string) Signer {
	return Signer{Address: address}
}

// Zero reports whether the signer is absent.
func (s Signer) Zero() bool {
	return s.Address == ""
}

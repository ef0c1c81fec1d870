package sqlite

import (
	"database/sql"

	"github.com/CryptoCavemen/farmer-house/pkg/types"
)

// tx implements types.Tx over one SQLite transaction. The backend holds its
// mutex for the whole transaction, so tx methods never lock.
type tx struct {
	tx       *sql.Tx
	services types.ServiceIDs
}

var _ types.Tx = (*tx)(nil)

// ServiceIDs returns the collaborating service identities.
func (t *tx) ServiceIDs() types.ServiceIDs {
	return t.services
}

// requireSigner rejects an absent signer before any account is touched.
func requireSigner(s types.Signer) error {
	if s.Zero() {
		return types.ErrMissingRequiredSignature
	}
	return nil
}

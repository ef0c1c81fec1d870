package farm

import "github.com/CryptoCavemen/farmer-house/pkg/types"

// farmSeed is the derivation label binding a farm record to its program.
const farmSeed = "farmer-house-farms"

// AuthorityContext derives and holds the program-controlled signing
// identity for a farm. The derived address owns the farm record, the
// authority's holdings, and every custody vault; its Signer is the
// capability that authorizes outbound transfers without the human
// authority signing each one.
type AuthorityContext struct {
	program   string
	authority string
	address   string
	bump      uint8
}

// NewAuthorityContext binds the program identity and the human authority
// wallet to the derived farm signing identity.
func NewAuthorityContext(program, authority string) *AuthorityContext {
	address, bump := types.DeriveAddress(farmSeed, program)
	return &AuthorityContext{
		program:   program,
		authority: authority,
		address:   address,
		bump:      bump,
	}
}

// Program returns the program identity the context was derived for.
func (a *AuthorityContext) Program() string { return a.program }

// Authority returns the human authority wallet address.
func (a *AuthorityContext) Authority() string { return a.authority }

// Address returns the derived farm address.
func (a *AuthorityContext) Address() string { return a.address }

// Bump returns the nonce byte from the derivation.
func (a *AuthorityContext) Bump() uint8 { return a.bump }

// Signer returns the capability authorizing transfers out of accounts the
// derived address owns. Obtain it once and pass it to operations that act
// with the authority's custody rights.
func (a *AuthorityContext) Signer() types.Signer {
	return types.Signer{Address: a.address, Bump: a.bump}
}

package ports

// Claim is a single key-value fact embedded in a signed token. Claims are
// passed as an ordered slice; the signer decides how to encode them.
type Claim struct {
	Key   string
	Value any
}

// TokenSigner turns an ordered set of claims into an opaque signed string.
type TokenSigner interface {
	Sign(claims ...Claim) (string, error)
}

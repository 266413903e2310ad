package jwtx

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

var (
	_ Signer   = (*HMACSigner)(nil)
	_ Verifier = (*HMACVerifier)(nil)
)

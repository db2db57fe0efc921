package tbls

import (
	"crypto/cipher"
	"fmt"

	"github.com/drand/kyber"

	"github.com/dedis/tbls/internal/interpolate"
	"github.com/dedis/tbls/internal/poly"
	"github.com/dedis/tbls/internal/xhash"
)

// SecretKeySet is the dealer-side view of a (t, n)-threshold key: a random
// degree-t polynomial whose constant term is the master secret key and
// whose other coefficients determine every party's share.
type SecretKeySet struct {
	p *poly.Poly
}

// TryRandomSecretKeySet samples a degree-t SecretKeySet using rng, failing
// with ErrMutableAllocationFailed if t cannot be safely allocated.
func TryRandomSecretKeySet(t int, rng cipher.Stream) (*SecretKeySet, error) {
	p, err := poly.TryRandom(g1(), t, rng)
	if err != nil {
		return nil, err
	}
	return &SecretKeySet{p: p}, nil
}

// RandomSecretKeySet samples a degree-t SecretKeySet using the OS random
// number generator, panicking if it cannot be allocated. Use
// TryRandomSecretKeySet to handle the failure explicitly.
func RandomSecretKeySet(t int) *SecretKeySet {
	sks, err := TryRandomSecretKeySet(t, osRNG())
	if err != nil {
		panic(err)
	}
	return sks
}

// Threshold returns t: any t+1 shares reconstruct the master secret, any t
// or fewer reveal nothing about it.
func (sks *SecretKeySet) Threshold() int {
	return sks.p.Degree()
}

// SecretKey returns the master secret key, f(0).
func (sks *SecretKeySet) SecretKey() (*SecretKey, error) {
	fr := sks.p.Evaluate(g1(), g1().Scalar().Zero())
	return secretKeyFromMut(fr)
}

// SecretKeyShare returns party index's secret key share, f(index+1). Index
// is the caller's own choice of share identity; the +1 shift that keeps
// share indices from colliding with the master secret at 0 is applied
// internally.
func (sks *SecretKeySet) SecretKeyShare(index int) (*SecretKeyShare, error) {
	x := shareScalar(index)
	fr := sks.p.Evaluate(g1(), x)
	return secretKeyShareFromMut(fr)
}

// PublicKeySet returns the public commitment to this key set, safe to
// publish and used by every party to verify its own and others' shares.
func (sks *SecretKeySet) PublicKeySet() *PublicKeySet {
	return &PublicKeySet{c: sks.p.Commitment(g1())}
}

// PublicKeySet is the public commitment to a SecretKeySet: a degree-t group
// polynomial that lets any party verify a share without learning the
// master secret or any other party's share.
type PublicKeySet struct {
	c *poly.Commitment
}

// Threshold returns t.
func (pks *PublicKeySet) Threshold() int {
	return pks.c.Degree()
}

// PublicKey returns the master public key, f(0)*P1.
func (pks *PublicKeySet) PublicKey() *PublicKey {
	return &PublicKey{p: pks.c.Point0()}
}

// PublicKeyShare returns party index's public key share, f(index+1)*P1.
func (pks *PublicKeySet) PublicKeyShare(index int) *PublicKeyShare {
	x := shareScalar(index)
	return &PublicKeyShare{p: pks.c.Evaluate(g1(), x)}
}

// CombineSignatures reconstructs the master-level signature from t+1 (or
// more) signature shares, keyed by their contributing party's index.
// Returns ErrNotEnoughShares if fewer than t+1 are given, ErrDuplicateEntry
// if two carry the same index.
func (pks *PublicKeySet) CombineSignatures(shares map[int]*SignatureShare) (*Signature, error) {
	samples := make([]interpolate.Sample, 0, len(shares))
	for idx, s := range shares {
		samples = append(samples, interpolate.Sample{Index: idx, Value: s.p})
	}
	p, err := interpolate.Combine(g2(), pks.Threshold(), samples)
	if err != nil {
		return nil, err
	}
	return &Signature{p: p}, nil
}

// Decrypt reconstructs the plaintext of ct from t+1 (or more) decryption
// shares. It runs ct.Verify() itself; callers do not need to check it
// first. Returns an error if ct is not well-formed, or if too few or
// duplicate shares were given.
func (pks *PublicKeySet) Decrypt(shares map[int]*DecryptionShare, ct *Ciphertext) ([]byte, error) {
	if !ct.Verify() {
		return nil, fmt.Errorf("tbls: decrypt: %w", errCiphertextNotWellFormed)
	}
	samples := make([]interpolate.Sample, 0, len(shares))
	for idx, s := range shares {
		samples = append(samples, interpolate.Sample{Index: idx, Value: s.p})
	}
	g, err := interpolate.Combine(g1(), pks.Threshold(), samples)
	if err != nil {
		return nil, err
	}
	return xhash.X(g, ct.v)
}

// shareScalar computes index+1 in the (shared) scalar field, the same
// shift internal/interpolate applies on the combining side so that a
// share's evaluation point never collides with the master secret at x=0.
func shareScalar(index int) kyber.Scalar {
	x := g1().Scalar().SetInt64(int64(index))
	return x.Add(x, g1().Scalar().One())
}

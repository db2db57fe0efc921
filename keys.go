// Package tbls implements BLS signatures, (t, n)-threshold BLS signatures,
// and Boneh-Franklin-style pairing encryption with threshold decryption,
// over the BLS12-381 curve. A dealer builds a random polynomial over the
// scalar field; its constant term is the master secret, its per-coefficient
// lift to G1 is the master public key, and per-party shares are evaluations
// at non-zero points. Any t+1 signature or decryption shares reconstruct the
// master-level result; any t or fewer reveal nothing about it.
package tbls

import (
	"crypto/cipher"
	"fmt"

	"github.com/drand/kyber"

	"github.com/dedis/tbls/common/log"
	"github.com/dedis/tbls/internal/curve"
	"github.com/dedis/tbls/internal/secret"
	"github.com/dedis/tbls/internal/xhash"
)

// suite is the pairing suite used by every type in this package: public
// keys on G1, signatures and ciphertext tags on G2.
var suite = curve.Default()

func g1() kyber.Group { return suite.G1() }
func g2() kyber.Group { return suite.G2() }

// osRNG returns a cipher.Stream backed by the operating system's random
// number generator, for the convenience constructors that don't take an
// explicit rng. It panics with a fixed message on initialization failure;
// the *WithRng variants take the rng from the caller and never call it.
func osRNG() (stream cipher.Stream) {
	defer func() {
		if recover() != nil {
			panic(errOSRNG)
		}
	}()
	return g1().RandomStream()
}

// PublicKey is a point on G1.
type PublicKey struct {
	p kyber.Point
}

// PublicKeyFromPoint wraps an existing G1 point as a PublicKey, without
// going through SecretKey.PublicKey, for deserialization.
func PublicKeyFromPoint(p kyber.Point) *PublicKey {
	return &PublicKey{p: p}
}

// Point returns the underlying G1 point.
func (pk *PublicKey) Point() kyber.Point {
	return pk.p
}

// Equal reports whether two public keys are the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(other.p)
}

// VerifyG2 returns true if sig matches the given G2 element under pk, i.e.
// e(pk, hash) == e(P1, sig).
func (pk *PublicKey) VerifyG2(sig *Signature, hash kyber.Point) bool {
	left := suite.Pair(pk.p, hash)
	right := suite.Pair(g1().Point().Base(), sig.p)
	return left.Equal(right)
}

// Verify returns true if sig is pk's signature over msg. Equivalent to
// VerifyG2(sig, H2(msg)).
func (pk *PublicKey) Verify(sig *Signature, msg []byte) bool {
	return pk.VerifyG2(sig, xhash.H2(g2(), msg))
}

// Encrypt encrypts msg for pk using the OS random number generator. Use
// EncryptWithRng to supply your own.
func (pk *PublicKey) Encrypt(msg []byte) (*Ciphertext, error) {
	return pk.EncryptWithRng(osRNG(), msg)
}

// EncryptWithRng performs a Boneh-Franklin-style pairing encryption:
// U = r*P1, V = X(r*pk, msg), W = r*H12(U, V).
func (pk *PublicKey) EncryptWithRng(rng cipher.Stream, msg []byte) (*Ciphertext, error) {
	r := g1().Scalar().Pick(rng)
	u := g1().Point().Mul(r, nil)

	rpk := g1().Point().Mul(r, pk.p)
	v, err := xhash.X(rpk, msg)
	if err != nil {
		return nil, fmt.Errorf("tbls: encrypt: %w", err)
	}

	h, err := xhash.H12(g2(), u, v)
	if err != nil {
		return nil, fmt.Errorf("tbls: encrypt: %w", err)
	}
	w := g2().Point().Mul(r, h)

	return &Ciphertext{u: u, v: v, w: w}, nil
}

// ToBytes returns the compressed G1 encoding of pk.
func (pk *PublicKey) ToBytes() ([]byte, error) {
	return pk.p.MarshalBinary()
}

// MarshalBinary implements encoding.BinaryMarshaler via the compressed G1
// encoding.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.ToBytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	p := g1().Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return err
	}
	pk.p = p
	return nil
}

// String renders a ten-hex-character prefix of the point's display
// encoding, e.g. "PublicKey(0123456789)". It never fully serializes the
// point.
func (pk *PublicKey) String() string {
	return fmt.Sprintf("PublicKey(%s)", debugPrefix(pk.p))
}

// debugPrefix returns the first ten hex characters of p's string form, the
// convention every public/share type in this package uses for Debug/String
// output. kyber's Point interface exposes only a single (compressed) byte
// encoding through MarshalBinary/String; there is no separate uncompressed
// codec to prefer for display, so this is also the module's display form.
func debugPrefix(p kyber.Point) string {
	s := p.String()
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}

// SecretKey is a single scalar held in zero-on-drop storage.
type SecretKey struct {
	sc *secret.Scalar
}

// secretKeyFromMut copies fr into pinned storage and zeroes fr, per the
// secret-memory discipline every constructor that receives a bare scalar
// must follow.
func secretKeyFromMut(fr kyber.Scalar) (*SecretKey, error) {
	sc, err := secret.New(g1(), fr)
	if err != nil {
		return nil, err
	}
	return &SecretKey{sc: sc}, nil
}

// NewSecretKey returns the zero scalar's SecretKey, the type's default
// value.
func NewSecretKey() (*SecretKey, error) {
	return secretKeyFromMut(g1().Scalar().Zero())
}

// Random returns a fresh random SecretKey using the OS random number
// generator.
func Random() (*SecretKey, error) {
	return RandomWithRng(osRNG())
}

// RandomWithRng returns a fresh random SecretKey drawn from rng.
func RandomWithRng(rng cipher.Stream) (*SecretKey, error) {
	return secretKeyFromMut(g1().Scalar().Pick(rng))
}

// PublicKey returns the matching public key, sk*P1.
func (sk *SecretKey) PublicKey() *PublicKey {
	fr, err := sk.sc.Value()
	if err != nil {
		log.DefaultLogger().Errorw("secret key scalar corrupted", "err", err)
		return &PublicKey{p: g1().Point().Null()}
	}
	return &PublicKey{p: g1().Point().Mul(fr, nil)}
}

// SignG2 signs the given G2 element: sig = sk*hash.
func (sk *SecretKey) SignG2(hash kyber.Point) *Signature {
	fr, err := sk.sc.Value()
	if err != nil {
		log.DefaultLogger().Errorw("secret key scalar corrupted", "err", err)
		return &Signature{p: g2().Point().Null()}
	}
	return &Signature{p: g2().Point().Mul(fr, hash)}
}

// Sign signs msg. Equivalent to SignG2(H2(msg)).
func (sk *SecretKey) Sign(msg []byte) *Signature {
	return sk.SignG2(xhash.H2(g2(), msg))
}

// Decrypt returns the decrypted plaintext, and false if ct is not
// well-formed (the mandatory CCA check described by Ciphertext.Verify).
func (sk *SecretKey) Decrypt(ct *Ciphertext) ([]byte, bool) {
	if !ct.Verify() {
		return nil, false
	}
	fr, err := sk.sc.Value()
	if err != nil {
		log.DefaultLogger().Errorw("secret key scalar corrupted", "err", err)
		return nil, false
	}
	g := g1().Point().Mul(fr, ct.u)
	pt, err := xhash.X(g, ct.v)
	if err != nil {
		return nil, false
	}
	return pt, true
}

// Reveal returns a non-redacted debug string: the ten-hex-character prefix
// of the matching public key's display encoding. Unlike GoString, it is
// intended for operators who explicitly need to fingerprint a key, never for
// logging by library code.
func (sk *SecretKey) Reveal() string {
	return fmt.Sprintf("SecretKey(%s)", debugPrefix(sk.PublicKey().p))
}

// GoString redacts the secret scalar entirely; no method on SecretKey
// returns its bytes except through the pinned internal/secret storage.
func (sk *SecretKey) GoString() string {
	return "SecretKey(...)"
}

// Zero explicitly zeroes the secret key's pinned storage. Callers that hold
// a SecretKey for a bounded critical section should call this when done
// rather than relying on the best-effort finalizer.
func (sk *SecretKey) Zero() {
	sk.sc.Zero()
}

package tbls

import (
	"fmt"

	"github.com/drand/kyber"

	"github.com/dedis/tbls/common/log"
	"github.com/dedis/tbls/internal/secret"
	"github.com/dedis/tbls/internal/xhash"
)

// SecretKeyShare is a single party's evaluation of the dealer's secret
// polynomial, f(index+1). It has the same internal layout as SecretKey; the
// distinct type exists so the compiler flags an attempt to pass a share
// where a master-level secret is expected, and vice versa.
type SecretKeyShare struct {
	sc *secret.Scalar
}

// secretKeyShareFromMut copies fr into pinned storage and zeroes fr, per the
// secret-memory discipline every constructor that receives a bare scalar
// must follow.
func secretKeyShareFromMut(fr kyber.Scalar) (*SecretKeyShare, error) {
	sc, err := secret.New(g1(), fr)
	if err != nil {
		return nil, err
	}
	return &SecretKeyShare{sc: sc}, nil
}

// PublicKeyShare returns the party's public key share, f(index+1)*P1.
func (sks *SecretKeyShare) PublicKeyShare() *PublicKeyShare {
	fr, err := sks.sc.Value()
	if err != nil {
		log.DefaultLogger().Errorw("secret key share scalar corrupted", "err", err)
		return &PublicKeyShare{p: g1().Point().Null()}
	}
	return &PublicKeyShare{p: g1().Point().Mul(fr, nil)}
}

// SignG2 produces a signature share over the given G2 element.
func (sks *SecretKeyShare) SignG2(hash kyber.Point) *SignatureShare {
	fr, err := sks.sc.Value()
	if err != nil {
		log.DefaultLogger().Errorw("secret key share scalar corrupted", "err", err)
		return &SignatureShare{p: g2().Point().Null()}
	}
	return &SignatureShare{p: g2().Point().Mul(fr, hash)}
}

// Sign produces a signature share over msg. Equivalent to
// SignG2(H2(msg)).
func (sks *SecretKeyShare) Sign(msg []byte) *SignatureShare {
	return sks.SignG2(xhash.H2(g2(), msg))
}

// DecryptShare returns the party's decryption share for ct, or nil if ct is
// not well-formed.
func (sks *SecretKeyShare) DecryptShare(ct *Ciphertext) *DecryptionShare {
	if !ct.Verify() {
		return nil
	}
	return sks.DecryptShareNoVerify(ct)
}

// DecryptShareNoVerify returns the party's decryption share for ct without
// running Ciphertext.Verify first. Use only when the caller has already
// verified ct (or verification is being deferred to a later combine step).
func (sks *SecretKeyShare) DecryptShareNoVerify(ct *Ciphertext) *DecryptionShare {
	fr, err := sks.sc.Value()
	if err != nil {
		log.DefaultLogger().Errorw("secret key share scalar corrupted", "err", err)
		return nil
	}
	return &DecryptionShare{p: g1().Point().Mul(fr, ct.u)}
}

// GoString redacts the secret scalar entirely, matching SecretKey's secrecy
// contract: shares export only their public image and the decrypt/sign
// operations, never the scalar itself.
func (sks *SecretKeyShare) GoString() string {
	return "SecretKeyShare(...)"
}

// Zero explicitly zeroes the share's pinned storage.
func (sks *SecretKeyShare) Zero() {
	sks.sc.Zero()
}

// PublicKeyShare is a single party's public key share, a point on G1.
type PublicKeyShare struct {
	p kyber.Point
}

// PublicKeyShareFromPoint wraps an existing G1 point as a PublicKeyShare,
// for deserialization.
func PublicKeyShareFromPoint(p kyber.Point) *PublicKeyShare {
	return &PublicKeyShare{p: p}
}

// Point returns the underlying G1 point.
func (pks *PublicKeyShare) Point() kyber.Point { return pks.p }

// Equal reports whether two public key shares are the same point.
func (pks *PublicKeyShare) Equal(other *PublicKeyShare) bool {
	return pks.p.Equal(other.p)
}

// VerifyG2 returns true if sig matches the given G2 element under pks.
func (pks *PublicKeyShare) VerifyG2(sig *SignatureShare, hash kyber.Point) bool {
	left := suite.Pair(pks.p, hash)
	right := suite.Pair(g1().Point().Base(), sig.p)
	return left.Equal(right)
}

// Verify returns true if sig is this party's signature share over msg.
func (pks *PublicKeyShare) Verify(sig *SignatureShare, msg []byte) bool {
	return pks.VerifyG2(sig, xhash.H2(g2(), msg))
}

// VerifyDecryptionShare returns true if share is this party's decryption
// share of ct, i.e. e(share, H12(U,V)) == e(pks, W). Unlike Ciphertext.Verify,
// which only checks ct's own internal consistency, this additionally binds
// the check to a specific party's public key share.
func (pks *PublicKeyShare) VerifyDecryptionShare(share *DecryptionShare, ct *Ciphertext) bool {
	h, err := xhash.H12(g2(), ct.u, ct.v)
	if err != nil {
		return false
	}
	left := suite.Pair(share.p, h)
	right := suite.Pair(pks.p, ct.w)
	return left.Equal(right)
}

// MarshalBinary returns the compressed G1 encoding.
func (pks *PublicKeyShare) MarshalBinary() ([]byte, error) {
	return pks.p.MarshalBinary()
}

// ToBytes returns the compressed G1 encoding of pks, mirroring PublicKey's
// ToBytes.
func (pks *PublicKeyShare) ToBytes() ([]byte, error) {
	return pks.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pks *PublicKeyShare) UnmarshalBinary(data []byte) error {
	p := g1().Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return err
	}
	pks.p = p
	return nil
}

// String renders a ten-hex-character prefix of the point's display
// encoding.
func (pks *PublicKeyShare) String() string {
	return fmt.Sprintf("PublicKeyShare(%s)", debugPrefix(pks.p))
}

// SignatureShare is a single party's signature share, a point on G2.
type SignatureShare struct {
	p kyber.Point
}

// SignatureShareFromPoint wraps an existing G2 point as a SignatureShare.
func SignatureShareFromPoint(p kyber.Point) *SignatureShare {
	return &SignatureShare{p: p}
}

// Point returns the underlying G2 point.
func (ss *SignatureShare) Point() kyber.Point { return ss.p }

// Equal reports whether two signature shares are the same point.
func (ss *SignatureShare) Equal(other *SignatureShare) bool {
	return ss.p.Equal(other.p)
}

// MarshalBinary returns the compressed G2 encoding.
func (ss *SignatureShare) MarshalBinary() ([]byte, error) {
	return ss.p.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ss *SignatureShare) UnmarshalBinary(data []byte) error {
	p := g2().Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return err
	}
	ss.p = p
	return nil
}

// String renders a ten-hex-character prefix of the point's display
// encoding.
func (ss *SignatureShare) String() string {
	return fmt.Sprintf("SignatureShare(%s)", debugPrefix(ss.p))
}

// DecryptionShare is a single party's decryption share, fr_i*U, a point on
// G1.
type DecryptionShare struct {
	p kyber.Point
}

// DecryptionShareFromPoint wraps an existing G1 point as a DecryptionShare.
func DecryptionShareFromPoint(p kyber.Point) *DecryptionShare {
	return &DecryptionShare{p: p}
}

// Point returns the underlying G1 point.
func (ds *DecryptionShare) Point() kyber.Point { return ds.p }

// Equal reports whether two decryption shares are the same point.
func (ds *DecryptionShare) Equal(other *DecryptionShare) bool {
	return ds.p.Equal(other.p)
}

// MarshalBinary returns the compressed G1 encoding.
func (ds *DecryptionShare) MarshalBinary() ([]byte, error) {
	return ds.p.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ds *DecryptionShare) UnmarshalBinary(data []byte) error {
	p := g1().Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return err
	}
	ds.p = p
	return nil
}

// String renders a ten-hex-character prefix of the point's display
// encoding.
func (ds *DecryptionShare) String() string {
	return fmt.Sprintf("DecryptionShare(%s)", debugPrefix(ds.p))
}

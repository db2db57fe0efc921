package tbls

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/drand/kyber"

	"github.com/dedis/tbls/internal/xhash"
)

// Ciphertext is the triple (U, V, W) produced by PublicKey.Encrypt: U is a
// G1 point, V is the XOR-masked payload, W is a G2 point binding U and V
// together. Ciphertext.Verify is the mandatory well-formedness check every
// decryption path runs before touching V, defending against chosen
// ciphertext manipulation of U or W.
type Ciphertext struct {
	u kyber.Point
	v []byte
	w kyber.Point
}

// newCiphertext is the only constructor that bypasses the well-formedness
// predicate; it exists solely for deserialization, where the bytes came
// from MarshalBinary of a value that was well-formed when it was built.
func newCiphertext(u kyber.Point, v []byte, w kyber.Point) *Ciphertext {
	return &Ciphertext{u: u, v: v, w: w}
}

// Verify returns true iff e(P1, W) == e(U, H12(U, V)). This check is
// mandatory before any decryption: it is the scheme's only defense against
// an adversary that tampers with U, V or W independently.
func (ct *Ciphertext) Verify() bool {
	h, err := xhash.H12(g2(), ct.u, ct.v)
	if err != nil {
		return false
	}
	left := suite.Pair(g1().Point().Base(), ct.w)
	right := suite.Pair(ct.u, h)
	return left.Equal(right)
}

// MarshalBinary encodes the ciphertext as U (compressed G1) || len(V) as a
// big-endian uint32 || V || W (compressed G2).
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	uBytes, err := ct.u.MarshalBinary()
	if err != nil {
		return nil, err
	}
	wBytes, err := ct.w.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(uBytes)+4+len(ct.v)+len(wBytes))
	out = append(out, uBytes...)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(ct.v)))
	out = append(out, lenBuf[:]...)
	out = append(out, ct.v...)
	out = append(out, wBytes...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for the envelope
// produced by MarshalBinary.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	u := g1().Point()
	uLen := u.MarshalSize()
	if len(data) < uLen+4 {
		return io.ErrUnexpectedEOF
	}
	if err := u.UnmarshalBinary(data[:uLen]); err != nil {
		return err
	}
	rest := data[uLen:]
	vLen := int(binary.BigEndian.Uint32(rest[:4]))
	rest = rest[4:]
	if len(rest) < vLen {
		return io.ErrUnexpectedEOF
	}
	v := make([]byte, vLen)
	copy(v, rest[:vLen])
	rest = rest[vLen:]

	w := g2().Point()
	if err := w.UnmarshalBinary(rest); err != nil {
		return err
	}

	*ct = *newCiphertext(u, v, w)
	return nil
}

// String deliberately does not print V: it is the caller's masked payload,
// not a secret of this package, but printing it by default would make this
// type's Debug output unwieldy for anything but tiny messages.
func (ct *Ciphertext) String() string {
	return fmt.Sprintf("Ciphertext{U: %s, len(V): %d, W: %s}", debugPrefix(ct.u), len(ct.v), debugPrefix(ct.w))
}

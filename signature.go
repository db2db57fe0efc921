package tbls

import (
	"fmt"
	"math/bits"

	"github.com/drand/kyber"
)

// Signature is a point on G2.
type Signature struct {
	p kyber.Point
}

// SignatureFromPoint wraps an existing G2 point as a Signature, for
// deserialization.
func SignatureFromPoint(p kyber.Point) *Signature {
	return &Signature{p: p}
}

// Point returns the underlying G2 point.
func (s *Signature) Point() kyber.Point {
	return s.p
}

// Equal reports whether two signatures are the same point.
func (s *Signature) Equal(other *Signature) bool {
	return s.p.Equal(other.p)
}

// MarshalBinary returns the compressed G2 encoding.
func (s *Signature) MarshalBinary() ([]byte, error) {
	return s.p.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Signature) UnmarshalBinary(data []byte) error {
	p := g2().Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return err
	}
	s.p = p
	return nil
}

// String renders a ten-hex-character prefix of the point's display encoding.
func (s *Signature) String() string {
	return fmt.Sprintf("Signature(%s)", debugPrefix(s.p))
}

// Parity returns a single bit derived by XORing every byte of the point's
// encoding and taking the popcount parity of the result. It is a convenience
// for unbiased single-bit extraction from a signature (e.g. for a
// common-coin construction); its only contract is determinism in the
// signature, not any cryptographic guarantee beyond that.
func (s *Signature) Parity() (bool, error) {
	enc, err := s.p.MarshalBinary()
	if err != nil {
		return false, err
	}
	var xored byte
	for _, b := range enc {
		xored ^= b
	}
	return bits.OnesCount8(xored)%2 != 0, nil
}

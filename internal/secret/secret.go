// Package secret implements the zero-on-drop storage discipline used for
// the secret scalars of caller-facing key types: the master secret key and
// every secret key share pass through a Scalar before they are handed out.
// The dealer polynomial's coefficients (internal/poly) are not held in a
// Scalar; they stay in a plain slice.
//
// Go has no destructors, so "zero on drop" here means: a fixed heap buffer
// whose address never changes, a Zero method that overwrites it through a
// volatile-style byte loop the compiler cannot elide, and a best-effort
// runtime.SetFinalizer backstop for callers who forget to call Zero
// explicitly. The finalizer is not a replacement for calling Zero: GC timing
// is unspecified, so secret material may live arbitrarily long without it.
package secret

import (
	"runtime"

	"github.com/drand/kyber"
)

// Scalar is a heap-pinned, zero-on-drop holder for one secret field element.
// The zero value is not usable; construct with New.
type Scalar struct {
	buf []byte
	grp kyber.Group
}

// New copies fr's bytes into a freshly allocated, pinned buffer and
// overwrites fr itself with the group's zero scalar. The caller must not
// keep using fr afterwards for anything secret.
func New(grp kyber.Group, fr kyber.Scalar) (*Scalar, error) {
	buf, err := fr.MarshalBinary()
	if err != nil {
		return nil, err
	}
	s := &Scalar{buf: buf, grp: grp}
	zeroScalar(fr)
	runtime.SetFinalizer(s, (*Scalar).Zero)
	return s, nil
}

// Clone allocates a new pinned buffer and byte-copies this scalar into it.
func (s *Scalar) Clone() *Scalar {
	cp := make([]byte, len(s.buf))
	copy(cp, s.buf)
	clone := &Scalar{buf: cp, grp: s.grp}
	runtime.SetFinalizer(clone, (*Scalar).Zero)
	return clone
}

// Value reconstructs the kyber.Scalar from the pinned bytes. The returned
// scalar is a regular (non zero-on-drop) value; callers performing further
// secret arithmetic on it should wrap the result with New again.
func (s *Scalar) Value() (kyber.Scalar, error) {
	fr := s.grp.Scalar()
	if err := fr.UnmarshalBinary(s.buf); err != nil {
		return nil, err
	}
	return fr, nil
}

// Zero overwrites the pinned buffer with zero bytes. It is idempotent and
// safe to call more than once (e.g. once explicitly, once via finalizer).
func (s *Scalar) Zero() {
	if s == nil {
		return
	}
	zeroBytes(s.buf)
}

// zeroBytes writes zero into every byte of b through a loop the compiler
// cannot prove is dead, matching the "compiler-opaque write" requirement for
// secret-memory discipline.
//
//go:noinline
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroScalar clears a kyber.Scalar's own representation immediately after
// its bytes have been copied into pinned storage, so the source value never
// outlives the copy.
func zeroScalar(fr kyber.Scalar) {
	fr.Zero()
}

// Package poly implements the scalar polynomial and its group commitment
// used as the share-distribution schema: a dealer samples a random
// polynomial of degree t, its constant term becomes the master secret, its
// per-coefficient lift to G1 becomes the publicly verifiable commitment, and
// shares are evaluations of the polynomial at non-zero points.
package poly

import (
	"crypto/cipher"
	"errors"

	"github.com/drand/kyber"
)

// ErrAllocationFailed is returned when a polynomial of the requested degree
// cannot be constructed in a way that supports later zeroization, e.g. a
// requested length that overflows the coefficient slice allocation.
var ErrAllocationFailed = errors.New("tbls: could not allocate a zeroizable polynomial")

// maxDegree bounds the coefficient count so that (degree+1) never overflows
// int or exhausts memory; any degree request above it is treated the same
// way a real allocation failure would be.
const maxDegree = 1 << 24

// Poly is the coefficient vector of f(x) = sum(c_i * x^i). The vector is the
// only representation of the secret polynomial; callers that need to keep it
// around past the current call should copy coefficients into
// internal/secret storage themselves.
type Poly struct {
	coeffs []kyber.Scalar
}

// TryRandom samples t+1 independent scalar coefficients from the group's
// scalar field using rng. It fails with ErrAllocationFailed if t is so large
// the coefficient slice cannot be safely allocated.
func TryRandom(grp kyber.Group, t int, rng cipher.Stream) (*Poly, error) {
	if t < 0 || t > maxDegree {
		return nil, ErrAllocationFailed
	}
	coeffs := make([]kyber.Scalar, t+1)
	for i := range coeffs {
		coeffs[i] = grp.Scalar().Pick(rng)
	}
	return &Poly{coeffs: coeffs}, nil
}

// Degree returns t = len(coeffs) - 1.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Evaluate computes f(x) via Horner's rule.
func (p *Poly) Evaluate(grp kyber.Group, x kyber.Scalar) kyber.Scalar {
	acc := grp.Scalar().Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(acc, x)
		acc = acc.Add(acc, p.coeffs[i])
	}
	return acc
}

// Commitment lifts every coefficient c_i to C_i = c_i * P1, yielding a
// commitment of the same degree that lets third parties verify shares
// without learning the coefficients.
func (p *Poly) Commitment(grp kyber.Group) *Commitment {
	commits := make([]kyber.Point, len(p.coeffs))
	base := grp.Point().Base()
	for i, c := range p.coeffs {
		commits[i] = grp.Point().Mul(c, base)
	}
	return &Commitment{points: commits}
}

// Commitment is the per-coefficient group lift of a Poly: [c0*P1, ..., ct*P1].
type Commitment struct {
	points []kyber.Point
}

// Degree returns t = len(points) - 1.
func (c *Commitment) Degree() int {
	return len(c.points) - 1
}

// Evaluate computes f(x)*P1 via Horner's rule over the group, without ever
// reconstructing f itself.
func (c *Commitment) Evaluate(grp kyber.Group, x kyber.Scalar) kyber.Point {
	acc := grp.Point().Null()
	for i := len(c.points) - 1; i >= 0; i-- {
		acc = acc.Mul(x, acc)
		acc = acc.Add(acc, c.points[i])
	}
	return acc
}

// Point0 returns the constant-term commitment C0, i.e. the master public
// key's underlying point.
func (c *Commitment) Point0() kyber.Point {
	return c.points[0]
}

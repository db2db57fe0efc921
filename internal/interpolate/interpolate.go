// Package interpolate implements Lagrange interpolation at x=0 over a
// prime-order group, the combiner used to reconstruct a master-level
// signature or decryption share from t+1 share-level samples.
package interpolate

import (
	"errors"

	"github.com/drand/kyber"
)

// ErrNotEnoughShares is returned when fewer than t+1 samples are supplied.
var ErrNotEnoughShares = errors.New("tbls: not enough shares to reconstruct")

// ErrDuplicateEntry is returned when two samples carry the same (shifted)
// index, which would make a Lagrange denominator vanish.
var ErrDuplicateEntry = errors.New("tbls: duplicate share index")

// Sample is one (index, value) pair contributed by a share holder. Index is
// the caller-chosen share index i; the +1 shift required because f(0) is
// the master secret is applied internally, not by the caller.
type Sample struct {
	Index int
	Value kyber.Point
}

// Combine takes the first t+1 samples from items (in iteration order,
// discarding any excess) and reconstructs f(0) for the unique degree-t
// polynomial f passing through {(index+1, value)}. grp supplies the scalar
// field the indices are shifted into and the group the values live in.
func Combine(grp kyber.Group, t int, items []Sample) (kyber.Point, error) {
	if len(items) < t+1 {
		return nil, ErrNotEnoughShares
	}
	samples := items[:t+1]

	if t == 0 {
		return samples[0].Value, nil
	}

	xs := make([]kyber.Scalar, len(samples))
	for i, s := range samples {
		xs[i] = indexPlusOne(grp, s.Index)
	}

	// Prefix/suffix products give every numerator in two linear passes
	// instead of recomputing a product-of-others per sample.
	n := len(samples)
	pref := make([]kyber.Scalar, n)
	suf := make([]kyber.Scalar, n)
	pref[0] = grp.Scalar().One()
	for i := 1; i < n; i++ {
		pref[i] = grp.Scalar().Mul(pref[i-1], xs[i-1])
	}
	suf[n-1] = grp.Scalar().One()
	for i := n - 2; i >= 0; i-- {
		suf[i] = grp.Scalar().Mul(suf[i+1], xs[i+1])
	}

	result := grp.Point().Null()
	for j := range samples {
		num := grp.Scalar().Mul(pref[j], suf[j])

		den := grp.Scalar().One()
		for k := range samples {
			if k == j {
				continue
			}
			diff := grp.Scalar().Sub(xs[k], xs[j])
			if diff.Equal(grp.Scalar().Zero()) {
				return nil, ErrDuplicateEntry
			}
			den = den.Mul(den, diff)
		}

		denInv, err := invert(grp, den)
		if err != nil {
			return nil, ErrDuplicateEntry
		}
		lambda := grp.Scalar().Mul(num, denInv)

		term := grp.Point().Mul(lambda, samples[j].Value)
		result = result.Add(result, term)
	}
	return result, nil
}

// invert wraps Inv, converting the zero-denominator case (which indicates a
// duplicate index) into ErrDuplicateEntry instead of panicking.
func invert(grp kyber.Group, s kyber.Scalar) (kyber.Scalar, error) {
	if s.Equal(grp.Scalar().Zero()) {
		return nil, ErrDuplicateEntry
	}
	return grp.Scalar().Inv(s), nil
}

func indexPlusOne(grp kyber.Group, i int) kyber.Scalar {
	x := grp.Scalar().SetInt64(int64(i))
	return x.Add(x, grp.Scalar().One())
}

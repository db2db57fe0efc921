package interpolate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/tbls/internal/curve"
	"github.com/dedis/tbls/internal/poly"
)

func TestCombineReconstructsConstantTerm(t *testing.T) {
	s := curve.New()
	g := s.G2()
	rng := g.RandomStream()

	p, err := poly.TryRandom(g, 3, rng)
	require.NoError(t, err)
	c := p.Commitment(g)

	want := c.Point0()

	indices := []int{5, 8, 7, 10}
	samples := make([]Sample, len(indices))
	for i, idx := range indices {
		x := g.Scalar().SetInt64(int64(idx))
		x = x.Add(x, g.Scalar().One())
		samples[i] = Sample{Index: idx, Value: c.Evaluate(g, x)}
	}

	got, err := Combine(g, 3, samples)
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestCombineIsInvariantToWhichSharesAreUsed(t *testing.T) {
	s := curve.New()
	g := s.G2()
	rng := g.RandomStream()

	p, err := poly.TryRandom(g, 3, rng)
	require.NoError(t, err)
	c := p.Commitment(g)

	sampleAt := func(idx int) Sample {
		x := g.Scalar().SetInt64(int64(idx))
		x = x.Add(x, g.Scalar().One())
		return Sample{Index: idx, Value: c.Evaluate(g, x)}
	}

	first := []Sample{sampleAt(5), sampleAt(8), sampleAt(7), sampleAt(10)}
	second := []Sample{sampleAt(42), sampleAt(43), sampleAt(44), sampleAt(45)}

	a, err := Combine(g, 3, first)
	require.NoError(t, err)
	b, err := Combine(g, 3, second)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestCombineDegreeZero(t *testing.T) {
	s := curve.New()
	g := s.G2()
	rng := g.RandomStream()

	p, err := poly.TryRandom(g, 0, rng)
	require.NoError(t, err)
	c := p.Commitment(g)

	x := g.Scalar().SetInt64(1)
	x = x.Add(x, g.Scalar().One())
	sample := Sample{Index: 1, Value: c.Evaluate(g, x)}

	got, err := Combine(g, 0, []Sample{sample})
	require.NoError(t, err)
	require.True(t, c.Point0().Equal(got))
}

func TestCombineNotEnoughShares(t *testing.T) {
	s := curve.New()
	g := s.G2()
	rng := g.RandomStream()

	p, err := poly.TryRandom(g, 3, rng)
	require.NoError(t, err)
	c := p.Commitment(g)

	x := g.Scalar().SetInt64(1)
	x = x.Add(x, g.Scalar().One())
	sample := Sample{Index: 1, Value: c.Evaluate(g, x)}

	_, err = Combine(g, 3, []Sample{sample})
	require.ErrorIs(t, err, ErrNotEnoughShares)
}

func TestCombineDuplicateIndex(t *testing.T) {
	s := curve.New()
	g := s.G2()
	rng := g.RandomStream()

	p, err := poly.TryRandom(g, 1, rng)
	require.NoError(t, err)
	c := p.Commitment(g)

	x := g.Scalar().SetInt64(4)
	x = x.Add(x, g.Scalar().One())
	value := c.Evaluate(g, x)

	samples := []Sample{
		{Index: 4, Value: value},
		{Index: 4, Value: value},
	}

	_, err = Combine(g, 1, samples)
	require.ErrorIs(t, err, ErrDuplicateEntry)
}

package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/tbls/internal/curve"
)

func TestEvaluateMatchesCommitment(t *testing.T) {
	s := curve.New()
	g := s.G1()
	rng := g.RandomStream()

	p, err := TryRandom(g, 3, rng)
	require.NoError(t, err)
	require.Equal(t, 3, p.Degree())

	c := p.Commitment(g)
	require.Equal(t, 3, c.Degree())

	for x := 0; x < 10; x++ {
		xs := g.Scalar().SetInt64(int64(x))
		want := g.Point().Mul(p.Evaluate(g, xs), nil)
		got := c.Evaluate(g, xs)
		require.True(t, want.Equal(got), "mismatch at x=%d", x)
	}
}

func TestPoint0IsConstantTerm(t *testing.T) {
	s := curve.New()
	g := s.G1()
	rng := g.RandomStream()

	p, err := TryRandom(g, 5, rng)
	require.NoError(t, err)
	c := p.Commitment(g)

	want := g.Point().Mul(p.Evaluate(g, g.Scalar().Zero()), nil)
	require.True(t, want.Equal(c.Point0()))
}

func TestTryRandomRejectsOversizedDegree(t *testing.T) {
	s := curve.New()
	g := s.G1()
	rng := g.RandomStream()

	_, err := TryRandom(g, maxDegree+1, rng)
	require.ErrorIs(t, err, ErrAllocationFailed)
}

func TestTryRandomRejectsNegativeDegree(t *testing.T) {
	s := curve.New()
	g := s.G1()
	rng := g.RandomStream()

	_, err := TryRandom(g, -1, rng)
	require.ErrorIs(t, err, ErrAllocationFailed)
}

func TestZeroDegreeIsConstant(t *testing.T) {
	s := curve.New()
	g := s.G1()
	rng := g.RandomStream()

	p, err := TryRandom(g, 0, rng)
	require.NoError(t, err)
	require.Equal(t, 0, p.Degree())

	a := p.Evaluate(g, g.Scalar().SetInt64(0))
	b := p.Evaluate(g, g.Scalar().SetInt64(99))
	require.True(t, a.Equal(b))
}

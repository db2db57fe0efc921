package secret

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/tbls/internal/curve"
)

func TestValueRoundTrip(t *testing.T) {
	g := curve.New().G1()
	fr := g.Scalar().SetInt64(12345)
	want := fr.Clone()

	s, err := New(g, fr)
	require.NoError(t, err)

	got, err := s.Value()
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestNewZeroesSourceScalar(t *testing.T) {
	g := curve.New().G1()
	fr := g.Scalar().SetInt64(777)

	_, err := New(g, fr)
	require.NoError(t, err)

	require.True(t, fr.Equal(g.Scalar().Zero()))
}

func TestZeroClearsStorage(t *testing.T) {
	g := curve.New().G1()
	fr := g.Scalar().SetInt64(99)

	s, err := New(g, fr)
	require.NoError(t, err)
	s.Zero()

	got, err := s.Value()
	require.NoError(t, err)
	require.True(t, got.Equal(g.Scalar().Zero()))
}

func TestZeroIsIdempotentAndNilSafe(t *testing.T) {
	var s *Scalar
	require.NotPanics(t, func() { s.Zero() })

	g := curve.New().G1()
	fr := g.Scalar().SetInt64(1)
	live, err := New(g, fr)
	require.NoError(t, err)
	live.Zero()
	live.Zero()
}

func TestCloneIsIndependent(t *testing.T) {
	g := curve.New().G1()
	fr := g.Scalar().SetInt64(55)

	s, err := New(g, fr)
	require.NoError(t, err)

	clone := s.Clone()
	s.Zero()

	got, err := clone.Value()
	require.NoError(t, err)
	require.True(t, got.Equal(g.Scalar().SetInt64(55)))
}
